package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/vitalis/internal/cli/formatter"
	"github.com/alexanderramin/vitalis/internal/domain"
	"github.com/alexanderramin/vitalis/internal/service"
)

// analyzeFlags holds the raw flag values of the analyze command.
type analyzeFlags struct {
	name          string
	age           int
	gender        string
	height        float64
	weight        float64
	familyHistory string

	favc string
	fcvc int
	ncp  int
	caec string
	ch2o float64
	calc string

	smoke  string
	scc    string
	faf    int
	tue    float64
	mtrans string

	jsonOut bool
	csvPath string
	xlsPath string
}

func (f *analyzeFlags) submission() domain.Submission {
	return domain.Submission{
		Profile: domain.Profile{
			Name:              f.name,
			FamilyHistory:     domain.ParseAnswer(f.familyHistory),
			Alcohol:           domain.ParseSnackFrequency(f.calc),
			CalorieMonitoring: domain.ParseAnswer(f.scc),
			Transport:         domain.ParseTransport(f.mtrans),
		},
		Person: domain.PersonRecord{
			WeightKg: f.weight,
			HeightM:  f.height,
			Age:      f.age,
			Gender:   domain.ParseGender(f.gender),
		},
		Lifestyle: domain.LifestyleAnswers{
			HighCalorieFood:    domain.ParseAnswer(f.favc),
			VegetableFrequency: domain.VegetableFrequency(f.fcvc),
			MainMeals:          domain.MealCount(f.ncp),
			Snacking:           domain.ParseSnackFrequency(f.caec),
			Activity:           domain.ActivityLevel(f.faf),
			ScreenTimeHours:    f.tue,
			WaterLiters:        f.ch2o,
			Smoking:            domain.ParseAnswer(f.smoke),
		},
	}
}

func newAnalyzeCmd(app *App) *cobra.Command {
	var f analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyse one submission and print metrics and recommendations",
		Long: `Analyse one submission without the interactive shell.

Every questionnaire answer is a flag. The run keeps a history of exactly
one entry, which --csv and --xlsx can export.`,
		Example: `  vitalis analyze --name Alex --age 25 --gender male --height 1.70 --weight 60 \
    --family-history no --favc no --fcvc 3 --ncp 3 --caec sometimes --ch2o 2 \
    --calc never --smoke no --scc no --faf 2 --tue 2 --mtrans walking`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			res, err := app.Analysis.Analyze(ctx, f.submission())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if f.jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(res); err != nil {
					return fmt.Errorf("encoding result: %w", err)
				}
			} else {
				printAnalysis(out, f.name, res)
			}

			for _, target := range []struct {
				path   string
				format exportFormat
			}{{f.csvPath, exportCSV}, {f.xlsPath, exportXLSX}} {
				if target.path == "" {
					continue
				}
				if _, err := exportToFile(ctx, app, target.format, target.path); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported history to %s\n", target.path)
			}
			return nil
		},
	}

	fl := cmd.Flags()
	isGender := func(s string) bool { return domain.ParseGender(s) != "" }
	isAnswer := func(s string) bool { return domain.ParseAnswer(s) != "" }
	isFrequency := func(s string) bool { return domain.ParseSnackFrequency(s) != "" }
	isTransport := func(s string) bool { return domain.ParseTransport(s) != "" }

	fl.StringVar(&f.name, "name", "", "Name")
	fl.IntVar(&f.age, "age", 0, "Age in years (15-100)")
	choiceVar(fl, &f.gender, "gender", "male, female", isGender, "Gender")
	fl.Float64Var(&f.height, "height", 0, "Height in meters (1.0-2.5)")
	fl.Float64Var(&f.weight, "weight", 0, "Weight in kilograms (5-300)")
	choiceVar(fl, &f.familyHistory, "family-history", "yes, no", isAnswer, "Family history of obesity")

	choiceVar(fl, &f.favc, "favc", "yes, no", isAnswer, "Frequent high-calorie food")
	fl.IntVar(&f.fcvc, "fcvc", 0, "Vegetable frequency: 1 never, 2 rarely, 3 always")
	fl.IntVar(&f.ncp, "ncp", 0, "Main meals per day (1-4)")
	choiceVar(fl, &f.caec, "caec", "never, sometimes, often, always", isFrequency, "Eating between meals")
	fl.Float64Var(&f.ch2o, "ch2o", 0, "Water per day in liters (1-10)")
	choiceVar(fl, &f.calc, "calc", "never, sometimes, often, always", isFrequency, "Alcohol")

	choiceVar(fl, &f.smoke, "smoke", "yes, no", isAnswer, "Smoking")
	choiceVar(fl, &f.scc, "scc", "yes, no", isAnswer, "Calorie monitoring")
	fl.IntVar(&f.faf, "faf", 0, "Physical activity: 1 never, 2 sometimes, 3 often")
	fl.Float64Var(&f.tue, "tue", 0, "Screen time per day in hours (0-24)")
	choiceVar(fl, &f.mtrans, "mtrans", "car, motorbike, bicycle, public_transport, walking", isTransport, "Transport")

	fl.BoolVar(&f.jsonOut, "json", false, "Print the result as JSON")
	fl.StringVar(&f.csvPath, "csv", "", "Also export the history to this CSV file")
	fl.StringVar(&f.xlsPath, "xlsx", "", "Also export the history to this XLSX file")

	return cmd
}

func printAnalysis(w io.Writer, name string, res *service.AnalysisResult) {
	fmt.Fprint(w, formatter.FormatResult(name, res.Metrics))
	fmt.Fprintln(w)
	fmt.Fprint(w, formatter.FormatRecommendations(res.Recommendations))
}

// choiceFlag is a string flag restricted to a fixed set of spellings, so
// typos fail at parse time instead of reading as a missing answer.
type choiceFlag struct {
	target  *string
	choices string
	valid   func(string) bool
}

var _ pflag.Value = (*choiceFlag)(nil)

func (c *choiceFlag) String() string { return *c.target }
func (c *choiceFlag) Type() string   { return "string" }

func (c *choiceFlag) Set(s string) error {
	if !c.valid(s) {
		return fmt.Errorf("must be one of: %s", c.choices)
	}
	*c.target = s
	return nil
}

func choiceVar(fs *pflag.FlagSet, p *string, name, choices string, valid func(string) bool, usage string) {
	fs.Var(&choiceFlag{target: p, choices: choices, valid: valid}, name, fmt.Sprintf("%s: %s", usage, choices))
}

package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexanderramin/vitalis/internal/domain"
)

func sampleEntries() []*domain.HistoryEntry {
	ts := time.Date(2025, 3, 14, 9, 30, 5, 0, time.UTC)
	return []*domain.HistoryEntry{
		{
			ID: "a", Seq: 1, Timestamp: ts, Name: "Alex", Age: 25, Gender: domain.GenderMale,
			HeightM: 1.7, WeightKg: 60, BMI: 20.76, BMR: 1566.09, Category: domain.CategoryNormal,
			Activity: domain.ActivitySometimes, ScreenTimeHours: 2.5, WaterLiters: 2, Smoking: domain.AnswerNo,
		},
		{
			ID: "b", Seq: 2, Timestamp: ts.Add(time.Minute), Name: "Lee, Jr.", Age: 40, Gender: domain.GenderFemale,
			HeightM: 1.6, WeightKg: 80, BMI: 31.25, BMR: 1482.23, Category: domain.CategoryOverweightII,
			Activity: domain.ActivityRarely, ScreenTimeHours: 10, WaterLiters: 1.5, Smoking: domain.AnswerYes,
		},
	}
}

func TestRecord(t *testing.T) {
	got := Record(sampleEntries()[0])
	assert.Equal(t, []string{
		"2025-03-14 09:30:05", "Alex", "25", "Male", "1.7", "60",
		"20.76", "1566.09", "Normal Weight", "2", "2.5", "2", "no",
	}, got)
	assert.Len(t, got, len(Columns))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleEntries()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "timestamp,name,age,gender,height,weight,bmi,bmr,category,FAF,TUE,CH2O,SMOKE", lines[0])

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "Lee, Jr.", records[2][1], "commas in names must be quoted")
	assert.Equal(t, "Overweight Level II", records[2][8])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, strings.Join(Columns, ",")+"\n", buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleEntries()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Columns, rows[0])
	assert.Equal(t, "Alex", rows[1][1])
	assert.Equal(t, "20.76", rows[1][6])
	assert.Equal(t, "Overweight Level II", rows[2][8])
}

func TestWriteXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, Columns, rows[0])
}

package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/alexanderramin/vitalis/internal/domain"
	"github.com/alexanderramin/vitalis/internal/export"
	"github.com/alexanderramin/vitalis/internal/metrics"
	"github.com/alexanderramin/vitalis/internal/repository"
	"github.com/alexanderramin/vitalis/internal/service"
	"github.com/alexanderramin/vitalis/internal/testutil"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	history := repository.NewSQLiteHistoryRepo(testutil.NewTestDB(t))
	m := metrics.New()
	obs := service.NewMetricsUseCaseObserver(m)
	h := NewHandler(
		service.NewAnalysisService(history, testutil.FixedClock(testutil.FixedTime), obs),
		service.NewHistoryService(history, obs),
		m.Handler(),
		nil,
	)
	return h.NewRouter()
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func submissionJSON(t *testing.T, opts ...testutil.SubmissionOption) string {
	t.Helper()
	b, err := json.Marshal(testutil.NewTestSubmission(opts...))
	require.NoError(t, err)
	return string(b)
}

func TestHealthz(t *testing.T) {
	w := doRequest(setupRouter(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAnalyze_Success(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodPost, "/api/analyze", submissionJSON(t))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Metrics struct {
			BMI      float64 `json:"bmi"`
			BMR      float64 `json:"bmr"`
			Category string  `json:"category"`
		} `json:"metrics"`
		Recommendations domain.RecommendationSet `json:"recommendations"`
		Entry           domain.HistoryEntry      `json:"entry"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 20.76, resp.Metrics.BMI, 0.01)
	assert.Equal(t, "Normal Weight", resp.Metrics.Category)
	assert.NotEmpty(t, resp.Recommendations.Target)
	assert.Len(t, resp.Recommendations.Lifestyle, 4)
	assert.Equal(t, 1, resp.Entry.Seq)
	assert.Equal(t, domain.CategoryNormal, resp.Entry.Category)
}

func TestAnalyze_ValidationFailure(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodPost, "/api/analyze",
		submissionJSON(t, testutil.WithName(""), testutil.WithHeight(3)))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Error  string              `json:"error"`
		Fields []domain.FieldError `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "please complete all fields", resp.Error)
	require.Len(t, resp.Fields, 2)
	assert.Equal(t, "name", resp.Fields[0].Field)
	assert.Equal(t, "height", resp.Fields[1].Field)

	w = doRequest(router, http.MethodGet, "/api/history", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestAnalyze_MalformedBody(t *testing.T) {
	w := doRequest(setupRouter(t), http.MethodPost, "/api/analyze", `{"person":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid request body"}`, w.Body.String())
}

func TestHistory_GrowsPerAcceptedSubmission(t *testing.T) {
	router := setupRouter(t)

	for i, weight := range []float64{60, 80} {
		w := doRequest(router, http.MethodPost, "/api/analyze", submissionJSON(t, testutil.WithWeight(weight)))
		require.Equal(t, http.StatusOK, w.Code)

		w = doRequest(router, http.MethodGet, "/api/history", "")
		require.Equal(t, http.StatusOK, w.Code)
		var entries []domain.HistoryEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
		assert.Len(t, entries, i+1)
	}

	w := doRequest(router, http.MethodGet, "/api/history/trend", "")
	require.Equal(t, http.StatusOK, w.Code)
	var points []service.TrendPoint
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &points))
	require.Len(t, points, 2)
	assert.Equal(t, domain.CategoryOverweightI, points[1].Category)
}

func TestCategories(t *testing.T) {
	w := doRequest(setupRouter(t), http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, w.Code)

	var cats []struct {
		Label string   `json:"label"`
		Hex   string   `json:"hex"`
		Lower float64  `json:"lower"`
		Upper *float64 `json:"upper"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cats))
	require.Len(t, cats, 6)
	assert.Equal(t, "Insufficient Weight", cats[0].Label)
	assert.Equal(t, 18.5, *cats[0].Upper)
	assert.Equal(t, 40.0, cats[5].Lower)
	assert.Nil(t, cats[5].Upper)
}

func TestExportCSV(t *testing.T) {
	router := setupRouter(t)
	doRequest(router, http.MethodPost, "/api/analyze", submissionJSON(t))

	w := doRequest(router, http.MethodGet, "/api/history.csv", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), export.CSVFileName)

	lines := strings.Split(strings.TrimRight(w.Body.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
}

func TestExportXLSX(t *testing.T) {
	router := setupRouter(t)
	doRequest(router, http.MethodPost, "/api/analyze", submissionJSON(t))

	w := doRequest(router, http.MethodGet, "/api/history.xlsx", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), export.XLSXFileName)

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestMetricsEndpoint(t *testing.T) {
	router := setupRouter(t)
	doRequest(router, http.MethodPost, "/api/analyze", submissionJSON(t))
	doRequest(router, http.MethodPost, "/api/analyze", submissionJSON(t, testutil.WithAge(3)))

	w := doRequest(router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `vitalis_submissions_total{category="Normal Weight"} 1`)
	assert.Contains(t, body, `vitalis_validation_failures_total 1`)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	router := setupRouter(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, ln, router, zap.NewNop()) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

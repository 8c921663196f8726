// Package httpapi exposes the analysis service over a small JSON API.
package httpapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/alexanderramin/vitalis/internal/domain"
	"github.com/alexanderramin/vitalis/internal/export"
	"github.com/alexanderramin/vitalis/internal/service"
)

// Handler holds the services shared by all route handlers.
type Handler struct {
	analysis service.AnalysisService
	history  service.HistoryService
	metrics  http.Handler
	logger   *zap.Logger
}

// NewHandler builds a Handler. metrics may be nil to leave /metrics unrouted;
// a nil logger discards request logs.
func NewHandler(analysis service.AnalysisService, history service.HistoryService, metrics http.Handler, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{analysis: analysis, history: history, metrics: metrics, logger: logger}
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// NewRouter returns a gin engine with every route registered.
func (h *Handler) NewRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger())
	h.RegisterRoutes(router)
	return router
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/healthz", h.health)
	if h.metrics != nil {
		router.GET("/metrics", gin.WrapH(h.metrics))
	}

	api := router.Group("/api")
	api.POST("/analyze", h.analyze)
	api.GET("/categories", h.listCategories)
	api.GET("/history", h.listHistory)
	api.GET("/history/trend", h.getTrend)
	api.GET("/history.csv", h.exportCSV)
	api.GET("/history.xlsx", h.exportXLSX)
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.logger.Info("http_request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// analyze runs one submission through the pipeline.
// POST /api/analyze. Body: domain.Submission as JSON.
// 422 carries {"error": ..., "fields": [...]} when validation fails.
func (h *Handler) analyze(c *gin.Context) {
	var sub domain.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.analysis.Analyze(c.Request.Context(), sub)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			msg := "invalid submission"
			if errors.Is(err, domain.ErrIncompleteSubmission) {
				msg = domain.ErrIncompleteSubmission.Error()
			}
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": msg, "fields": verr.Fields})
			return
		}
		h.logger.Error("analyze failed", zap.Error(err))
		apiError(c, http.StatusInternalServerError, "failed to analyze submission")
		return
	}
	c.JSON(http.StatusOK, res)
}

type categoryInfo struct {
	Label string   `json:"label"`
	Color string   `json:"color"`
	Hex   string   `json:"hex"`
	Lower float64  `json:"lower"`
	Upper *float64 `json:"upper"` // null for the open-ended top band
}

// listCategories returns the BMI category table in ascending order.
// GET /api/categories.
func (h *Handler) listCategories(c *gin.Context) {
	cats := domain.Categories()
	out := make([]categoryInfo, len(cats))
	for i, cat := range cats {
		info := categoryInfo{
			Label: cat.String(),
			Color: string(cat.Color()),
			Hex:   cat.Hex(),
			Lower: cat.LowerBound(),
		}
		if up := cat.UpperBound(); !math.IsInf(up, 1) {
			info.Upper = &up
		}
		out[i] = info
	}
	c.JSON(http.StatusOK, out)
}

// listHistory returns every entry in submission order, [] when empty.
// GET /api/history.
func (h *Handler) listHistory(c *gin.Context) {
	entries, err := h.history.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list history failed", zap.Error(err))
		apiError(c, http.StatusInternalServerError, "failed to fetch history")
		return
	}
	if entries == nil {
		entries = []*domain.HistoryEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// getTrend returns the BMI series for charting.
// GET /api/history/trend.
func (h *Handler) getTrend(c *gin.Context) {
	points, err := h.history.Trend(c.Request.Context())
	if err != nil {
		h.logger.Error("history trend failed", zap.Error(err))
		apiError(c, http.StatusInternalServerError, "failed to fetch trend")
		return
	}
	if points == nil {
		points = []service.TrendPoint{}
	}
	c.JSON(http.StatusOK, points)
}

func (h *Handler) exportCSV(c *gin.Context) {
	h.sendExport(c, export.CSVFileName, "text/csv; charset=utf-8", h.history.ExportCSV)
}

func (h *Handler) exportXLSX(c *gin.Context) {
	h.sendExport(c, export.XLSXFileName,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", h.history.ExportXLSX)
}

// sendExport buffers the whole file so a failed export never reaches the
// client as a truncated download.
func (h *Handler) sendExport(c *gin.Context, filename, contentType string, write func(context.Context, io.Writer) (int, error)) {
	var buf bytes.Buffer
	if _, err := write(c.Request.Context(), &buf); err != nil {
		h.logger.Error("export failed", zap.String("file", filename), zap.Error(err))
		apiError(c, http.StatusInternalServerError, "failed to export history")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// Package server exposes the query surface over HTTP.
package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/activity"
	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/aggregate"
)

// Aggregator produces the combined activity set a query runs against.
type Aggregator interface {
	Aggregate(ctx context.Context) []activity.Activity
}

// ErrorResponse is the JSON body of every non-2xx reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type Handler struct {
	agg    Aggregator
	router *gin.Engine
}

func NewHandler(agg Aggregator) *Handler {
	router := gin.New()
	router.Use(gin.Logger(), gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Error: "internal_error",
		})
	}))
	h := &Handler{agg: agg, router: router}
	h.registerRoutes()
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.health)
	h.router.GET("/api/activity", h.listActivity)
	h.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// activityQuery binds the query parameters of GET /api/activity. Negative
// paging values are rejected at binding; absent ones take the customary
// defaults.
type activityQuery struct {
	Source string `form:"source"`
	Limit  int    `form:"limit,default=20" binding:"gte=0"`
	Offset int    `form:"offset,default=0" binding:"gte=0"`
	From   string `form:"from"`
	To     string `form:"to"`
}

func (h *Handler) listActivity(c *gin.Context) {
	var req activityQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}
	from, err := aggregate.ParseInstant(req.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}
	to, err := aggregate.ParseInstant(req.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	items := h.agg.Aggregate(c.Request.Context())
	page, err := aggregate.Query(items, aggregate.Options{
		Source: req.Source,
		From:   from,
		To:     to,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, page)
}

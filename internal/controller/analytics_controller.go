package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hirelab/interview-trainer/config"
	"github.com/hirelab/interview-trainer/internal/dto"
	"github.com/hirelab/interview-trainer/internal/service"
)

type AnalyticsController struct {
	analyticsService service.AnalyticsService
	cfg              *config.Config
}

func NewAnalyticsController(as service.AnalyticsService, cfg *config.Config) *AnalyticsController {
	return &AnalyticsController{analyticsService: as, cfg: cfg}
}

// GetHistory godoc
// @Summary List a user's interview history, newest first
// @Tags History & Analytics
// @Produce json
// @Param user_id path string true "User ID"
// @Param limit query int false "Maximum entries (default 10)"
// @Success 200 {object} dto.HistoryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Router /users/{user_id}/history [get]
func (c *AnalyticsController) GetHistory(ctx *gin.Context) {
	limit := 10
	if raw := ctx.Query("limit"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil || val < 1 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid limit"})
			return
		}
		limit = val
	}
	history, err := c.analyticsService.GetHistory(ctx.Param("user_id"), limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load history"})
		return
	}
	ctx.JSON(http.StatusOK, history)
}

// GetAnalytics godoc
// @Summary Aggregate analytics for a user
// @Description Degrades to an unavailable notice when the analytics feature is disabled.
// @Tags History & Analytics
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} dto.AnalyticsDTO
// @Router /users/{user_id}/analytics [get]
func (c *AnalyticsController) GetAnalytics(ctx *gin.Context) {
	if !c.cfg.Interview.EnableAnalytics {
		ctx.JSON(http.StatusOK, dto.NoticeResponse{Available: false, Notice: "Analytics is disabled"})
		return
	}
	analytics, err := c.analyticsService.GetAnalytics(ctx.Param("user_id"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load analytics"})
		return
	}
	ctx.JSON(http.StatusOK, analytics)
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gymtrack/internal/services"
	"gymtrack/pkg/utils"
)

type AnalyticsController struct {
	analyticsService services.AnalyticsServiceInterface
}

func NewAnalyticsController(analyticsService services.AnalyticsServiceInterface) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
	}
}

func (ac *AnalyticsController) targetMember(c *gin.Context) (uuid.UUID, bool) {
	memberID, err := uuid.Parse(c.Query("member_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid or missing member_id")
		return uuid.Nil, false
	}
	return memberID, true
}

// WeeklyVolume godoc
// @Summary Weekly workout volume
// @Description Sum of sets*reps*weight per ISO week over the last N weeks
// @Tags Analytics
// @Produce json
// @Param member_id query string true "Target member id"
// @Param weeks query int false "Window size in weeks (default 12, max 52)"
// @Success 200 {object} utils.APIResponse
// @Router /analytics/weekly-volume [get]
func (ac *AnalyticsController) WeeklyVolume(c *gin.Context) {
	memberID, ok := ac.targetMember(c)
	if !ok {
		return
	}

	weeks, err := strconv.Atoi(c.DefaultQuery("weeks", "12"))
	if err != nil || weeks < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid weeks parameter")
		return
	}

	entries, err := ac.analyticsService.WeeklyVolume(c.Request.Context(), identityFrom(c), memberID, weeks)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Weekly volume computed successfully")
}

// AverageDuration godoc
// @Summary Average session duration per week or month
// @Tags Analytics
// @Produce json
// @Param member_id query string true "Target member id"
// @Param interval query string false "week (default) or month"
// @Success 200 {object} utils.APIResponse
// @Router /analytics/average-duration [get]
func (ac *AnalyticsController) AverageDuration(c *gin.Context) {
	memberID, ok := ac.targetMember(c)
	if !ok {
		return
	}

	entries, err := ac.analyticsService.AverageDuration(
		c.Request.Context(), identityFrom(c), memberID, c.DefaultQuery("interval", "week"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Average duration computed successfully")
}

// MeasurementTrend godoc
// @Summary Body measurement series ordered by date
// @Tags Analytics
// @Produce json
// @Param member_id query string true "Target member id"
// @Success 200 {object} utils.APIResponse
// @Router /analytics/measurement-trend [get]
func (ac *AnalyticsController) MeasurementTrend(c *gin.Context) {
	memberID, ok := ac.targetMember(c)
	if !ok {
		return
	}

	trend, err := ac.analyticsService.MeasurementTrend(c.Request.Context(), identityFrom(c), memberID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trend, "Measurement trend fetched successfully")
}

// TopExercises godoc
// @Summary Most performed exercises for a member
// @Tags Analytics
// @Produce json
// @Param member_id query string true "Target member id"
// @Param limit query int false "Max entries (default 10)"
// @Success 200 {object} utils.APIResponse
// @Router /analytics/top-exercises [get]
func (ac *AnalyticsController) TopExercises(c *gin.Context) {
	memberID, ok := ac.targetMember(c)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit (must be 1-100)")
		return
	}

	entries, err := ac.analyticsService.TopExercises(c.Request.Context(), identityFrom(c), memberID, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Top exercises computed successfully")
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gymtrack/internal/models/request_models"
	"gymtrack/internal/services"
	"gymtrack/pkg/utils"
)

type WorkoutController struct {
	workoutService services.WorkoutServiceInterface
}

func NewWorkoutController(workoutService services.WorkoutServiceInterface) *WorkoutController {
	return &WorkoutController{
		workoutService: workoutService,
	}
}

// ---------- Sessions ----------

func (wc *WorkoutController) CreateSession(c *gin.Context) {
	var req request_models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := wc.workoutService.CreateSession(c.Request.Context(), identityFrom(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Session created successfully")
}

func (wc *WorkoutController) SessionsForMember(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	sessions, err := wc.workoutService.GetSessionsForMember(
		c.Request.Context(), identityFrom(c), memberID, c.Query("start"), c.Query("end"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sessions, "Sessions fetched successfully")
}

func (wc *WorkoutController) RecentSessions(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit (must be 1-100)")
		return
	}

	sessions, err := wc.workoutService.GetRecentSessions(c.Request.Context(), identityFrom(c), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sessions, "Sessions fetched successfully")
}

func (wc *WorkoutController) UpdateSession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid session id")
		return
	}

	var req request_models.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := wc.workoutService.UpdateSession(c.Request.Context(), identityFrom(c), sessionID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Session updated successfully")
}

func (wc *WorkoutController) DeleteSession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid session id")
		return
	}

	if err := wc.workoutService.DeleteSession(c.Request.Context(), identityFrom(c), sessionID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Session deleted successfully")
}

// ---------- Logs ----------

func (wc *WorkoutController) CreateLog(c *gin.Context) {
	var req request_models.CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	workoutLog, err := wc.workoutService.CreateLog(c.Request.Context(), identityFrom(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, workoutLog, "Log created successfully")
}

func (wc *WorkoutController) LogsForSession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid session id")
		return
	}

	logs, err := wc.workoutService.GetLogsForSession(c.Request.Context(), identityFrom(c), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, logs, "Logs fetched successfully")
}

func (wc *WorkoutController) UpdateLog(c *gin.Context) {
	logID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid log id")
		return
	}

	var req request_models.UpdateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	workoutLog, err := wc.workoutService.UpdateLog(c.Request.Context(), identityFrom(c), logID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, workoutLog, "Log updated successfully")
}

func (wc *WorkoutController) DeleteLog(c *gin.Context) {
	logID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid log id")
		return
	}

	if err := wc.workoutService.DeleteLog(c.Request.Context(), identityFrom(c), logID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Log deleted successfully")
}

package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP statuses.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingCredentials):
		RespondError(c, http.StatusUnauthorized, "Missing credentials")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Not authorized to access this member's data")
	case errors.Is(err, ErrMemberNotFound):
		RespondError(c, http.StatusNotFound, "Member not found")
	case errors.Is(err, ErrExerciseNotFound):
		RespondError(c, http.StatusNotFound, "Exercise not found")
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "Session not found")
	case errors.Is(err, ErrLogNotFound):
		RespondError(c, http.StatusNotFound, "Workout log not found")
	case errors.Is(err, ErrMeasurementNotFound):
		RespondError(c, http.StatusNotFound, "Measurement not found")
	case errors.Is(err, ErrUsernameTaken):
		RespondError(c, http.StatusConflict, "Username already exists")
	case errors.Is(err, ErrExerciseNameTaken):
		RespondError(c, http.StatusConflict, "Exercise name already exists")
	case errors.Is(err, ErrExerciseInUse):
		RespondError(c, http.StatusConflict, "Exercise is still referenced by workout logs")
	case errors.Is(err, ErrInvalidDateRange):
		RespondError(c, http.StatusBadRequest, "Start date must not be after end date")
	case errors.Is(err, ErrInvalidInterval):
		RespondError(c, http.StatusBadRequest, "Interval must be week or month")
	case errors.Is(err, ErrInvalidLimit):
		RespondError(c, http.StatusBadRequest, "Limit must be greater than 0")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gymtrack/internal/models/request_models"
	"gymtrack/internal/services"
	"gymtrack/pkg/utils"
)

type ExerciseController struct {
	exerciseService services.ExerciseServiceInterface
}

func NewExerciseController(exerciseService services.ExerciseServiceInterface) *ExerciseController {
	return &ExerciseController{
		exerciseService: exerciseService,
	}
}

func (ec *ExerciseController) Create(c *gin.Context) {
	var req request_models.CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	exercise, err := ec.exerciseService.CreateExercise(c.Request.Context(), identityFrom(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, exercise, "Exercise created successfully")
}

func (ec *ExerciseController) List(c *gin.Context) {
	exercises, err := ec.exerciseService.ListExercises(c.Request.Context(), identityFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, exercises, "Exercises fetched successfully")
}

func (ec *ExerciseController) Get(c *gin.Context) {
	exerciseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid exercise id")
		return
	}

	exercise, err := ec.exerciseService.GetExercise(c.Request.Context(), identityFrom(c), exerciseID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, exercise, "Exercise fetched successfully")
}

func (ec *ExerciseController) Update(c *gin.Context) {
	exerciseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid exercise id")
		return
	}

	var req request_models.UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	exercise, err := ec.exerciseService.UpdateExercise(c.Request.Context(), identityFrom(c), exerciseID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, exercise, "Exercise updated successfully")
}

func (ec *ExerciseController) Delete(c *gin.Context) {
	exerciseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid exercise id")
		return
	}

	if err := ec.exerciseService.DeleteExercise(c.Request.Context(), identityFrom(c), exerciseID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Exercise deleted successfully")
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gymtrack/internal/models/request_models"
	"gymtrack/internal/services"
	"gymtrack/pkg/utils"
)

type MeasurementController struct {
	measurementService services.MeasurementServiceInterface
}

func NewMeasurementController(measurementService services.MeasurementServiceInterface) *MeasurementController {
	return &MeasurementController{
		measurementService: measurementService,
	}
}

func (mc *MeasurementController) Create(c *gin.Context) {
	var req request_models.CreateMeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	measurement, err := mc.measurementService.CreateMeasurement(c.Request.Context(), identityFrom(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, measurement, "Measurement created successfully")
}

func (mc *MeasurementController) ForMember(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	measurements, err := mc.measurementService.GetMeasurementsForMember(
		c.Request.Context(), identityFrom(c), memberID, c.Query("start"), c.Query("end"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, measurements, "Measurements fetched successfully")
}

func (mc *MeasurementController) Update(c *gin.Context) {
	measurementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid measurement id")
		return
	}

	var req request_models.UpdateMeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	measurement, err := mc.measurementService.UpdateMeasurement(c.Request.Context(), identityFrom(c), measurementID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, measurement, "Measurement updated successfully")
}

func (mc *MeasurementController) Delete(c *gin.Context) {
	measurementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid measurement id")
		return
	}

	if err := mc.measurementService.DeleteMeasurement(c.Request.Context(), identityFrom(c), measurementID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Measurement deleted successfully")
}

package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"gymtrack/internal/models/db_models"
	"gymtrack/internal/models/request_models"
	"gymtrack/internal/models/response_models"
	"gymtrack/internal/repositories"
	"gymtrack/pkg/utils"
)

type MeasurementServiceInterface interface {
	CreateMeasurement(ctx context.Context, identity Identity, request request_models.CreateMeasurementRequest) (response_models.MeasurementResponse, error)
	GetMeasurementsForMember(ctx context.Context, identity Identity, memberID uuid.UUID, start, end string) ([]response_models.MeasurementResponse, error)
	UpdateMeasurement(ctx context.Context, identity Identity, measurementID uuid.UUID, request request_models.UpdateMeasurementRequest) (response_models.MeasurementResponse, error)
	DeleteMeasurement(ctx context.Context, identity Identity, measurementID uuid.UUID) error
}

type MeasurementService struct {
	measurementRepo repositories.MeasurementRepository
	memberRepo      repositories.MemberRepository
}

func NewMeasurementService(
	measurementRepo repositories.MeasurementRepository,
	memberRepo repositories.MemberRepository,
) MeasurementServiceInterface {
	return &MeasurementService{
		measurementRepo: measurementRepo,
		memberRepo:      memberRepo,
	}
}

func (m *MeasurementService) CreateMeasurement(ctx context.Context, identity Identity, request request_models.CreateMeasurementRequest) (response_models.MeasurementResponse, error) {
	memberID, err := uuid.Parse(request.MemberID)
	if err != nil {
		return response_models.MeasurementResponse{}, utils.ErrMemberNotFound
	}
	if !identity.CanAccess(memberID) {
		return response_models.MeasurementResponse{}, utils.ErrForbidden
	}

	member, err := m.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return response_models.MeasurementResponse{}, utils.ErrDatabaseError
	}
	if member == nil {
		return response_models.MeasurementResponse{}, utils.ErrMemberNotFound
	}

	measureDate, err := utils.ParseDate(request.MeasureDate)
	if err != nil {
		return response_models.MeasurementResponse{}, utils.ErrInvalidDateRange
	}

	measurement := &db_models.BodyMeasurement{
		MemberID:    memberID,
		MeasureDate: measureDate,
		Weight:      request.Weight,
		Chest:       request.Chest,
		Arms:        request.Arms,
		Waist:       request.Waist,
		Notes:       request.Notes,
	}

	if err := m.measurementRepo.Insert(ctx, measurement); err != nil {
		return response_models.MeasurementResponse{}, utils.ErrDatabaseError
	}

	log.Printf("Added measurement id=%s member_id=%s", measurement.ID, memberID)

	return toMeasurementResponse(measurement), nil
}

func (m *MeasurementService) GetMeasurementsForMember(ctx context.Context, identity Identity, memberID uuid.UUID, start, end string) ([]response_models.MeasurementResponse, error) {
	if !identity.CanAccess(memberID) {
		return nil, utils.ErrForbidden
	}

	startDate, endDate, err := parseDateRange(start, end)
	if err != nil {
		return nil, err
	}

	measurements, err := m.measurementRepo.FindForMember(ctx, memberID, startDate, endDate)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.MeasurementResponse, 0, len(measurements))
	for i := range measurements {
		responses = append(responses, toMeasurementResponse(&measurements[i]))
	}
	return responses, nil
}

func (m *MeasurementService) UpdateMeasurement(ctx context.Context, identity Identity, measurementID uuid.UUID, request request_models.UpdateMeasurementRequest) (response_models.MeasurementResponse, error) {
	measurement, err := m.ownedMeasurement(ctx, identity, measurementID)
	if err != nil {
		return response_models.MeasurementResponse{}, err
	}

	if request.MeasureDate != nil {
		measureDate, err := utils.ParseDate(*request.MeasureDate)
		if err != nil {
			return response_models.MeasurementResponse{}, utils.ErrInvalidDateRange
		}
		measurement.MeasureDate = measureDate
	}
	if request.Weight != nil {
		measurement.Weight = *request.Weight
	}
	if request.Chest != nil {
		measurement.Chest = *request.Chest
	}
	if request.Arms != nil {
		measurement.Arms = *request.Arms
	}
	if request.Waist != nil {
		measurement.Waist = *request.Waist
	}
	if request.Notes != nil {
		measurement.Notes = *request.Notes
	}

	if err := m.measurementRepo.Update(ctx, measurement); err != nil {
		return response_models.MeasurementResponse{}, utils.ErrDatabaseError
	}

	log.Printf("Updated measurement id=%s", measurement.ID)

	return toMeasurementResponse(measurement), nil
}

func (m *MeasurementService) DeleteMeasurement(ctx context.Context, identity Identity, measurementID uuid.UUID) error {
	if _, err := m.ownedMeasurement(ctx, identity, measurementID); err != nil {
		return err
	}

	if _, err := m.measurementRepo.Delete(ctx, measurementID); err != nil {
		return utils.ErrDatabaseError
	}

	log.Printf("Deleted measurement id=%s", measurementID)

	return nil
}

func (m *MeasurementService) ownedMeasurement(ctx context.Context, identity Identity, measurementID uuid.UUID) (*db_models.BodyMeasurement, error) {
	measurement, err := m.measurementRepo.FindByID(ctx, measurementID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if measurement == nil {
		return nil, utils.ErrMeasurementNotFound
	}
	if !identity.CanAccess(measurement.MemberID) {
		return nil, utils.ErrForbidden
	}
	return measurement, nil
}

func toMeasurementResponse(measurement *db_models.BodyMeasurement) response_models.MeasurementResponse {
	return response_models.MeasurementResponse{
		ID:          measurement.ID.String(),
		MemberID:    measurement.MemberID.String(),
		MeasureDate: measurement.MeasureDate.Format(utils.DateLayout),
		Weight:      measurement.Weight,
		Chest:       measurement.Chest,
		Arms:        measurement.Arms,
		Waist:       measurement.Waist,
		Notes:       measurement.Notes,
	}
}

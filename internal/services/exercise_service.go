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

const defaultExerciseListLimit = 500

type ExerciseServiceInterface interface {
	CreateExercise(ctx context.Context, identity Identity, request request_models.CreateExerciseRequest) (response_models.ExerciseResponse, error)
	ListExercises(ctx context.Context, identity Identity) ([]response_models.ExerciseResponse, error)
	GetExercise(ctx context.Context, identity Identity, exerciseID uuid.UUID) (response_models.ExerciseResponse, error)
	UpdateExercise(ctx context.Context, identity Identity, exerciseID uuid.UUID, request request_models.UpdateExerciseRequest) (response_models.ExerciseResponse, error)
	DeleteExercise(ctx context.Context, identity Identity, exerciseID uuid.UUID) error
}

type ExerciseService struct {
	exerciseRepo repositories.ExerciseRepository
}

func NewExerciseService(exerciseRepo repositories.ExerciseRepository) ExerciseServiceInterface {
	return &ExerciseService{
		exerciseRepo: exerciseRepo,
	}
}

func (e *ExerciseService) CreateExercise(ctx context.Context, identity Identity, request request_models.CreateExerciseRequest) (response_models.ExerciseResponse, error) {
	if !identity.IsAdmin() {
		return response_models.ExerciseResponse{}, utils.ErrForbidden
	}

	existing, err := e.exerciseRepo.FindByName(ctx, request.Name)
	if err != nil {
		return response_models.ExerciseResponse{}, utils.ErrDatabaseError
	}
	if existing != nil {
		return response_models.ExerciseResponse{}, utils.ErrExerciseNameTaken
	}

	exercise := &db_models.Exercise{
		Name:        request.Name,
		MuscleGroup: request.MuscleGroup,
		Equipment:   request.Equipment,
	}

	if err := e.exerciseRepo.Insert(ctx, exercise); err != nil {
		return response_models.ExerciseResponse{}, utils.ErrDatabaseError
	}

	log.Printf("Added exercise id=%s name=%s", exercise.ID, exercise.Name)

	return toExerciseResponse(exercise), nil
}

// ListExercises is open to members and admins alike; the catalog is
// shared reference data.
func (e *ExerciseService) ListExercises(ctx context.Context, identity Identity) ([]response_models.ExerciseResponse, error) {
	exercises, err := e.exerciseRepo.FindAll(ctx, defaultExerciseListLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ExerciseResponse, 0, len(exercises))
	for i := range exercises {
		responses = append(responses, toExerciseResponse(&exercises[i]))
	}
	return responses, nil
}

func (e *ExerciseService) GetExercise(ctx context.Context, identity Identity, exerciseID uuid.UUID) (response_models.ExerciseResponse, error) {
	exercise, err := e.exerciseRepo.FindByID(ctx, exerciseID)
	if err != nil {
		return response_models.ExerciseResponse{}, utils.ErrDatabaseError
	}
	if exercise == nil {
		return response_models.ExerciseResponse{}, utils.ErrExerciseNotFound
	}

	return toExerciseResponse(exercise), nil
}

func (e *ExerciseService) UpdateExercise(ctx context.Context, identity Identity, exerciseID uuid.UUID, request request_models.UpdateExerciseRequest) (response_models.ExerciseResponse, error) {
	if !identity.IsAdmin() {
		return response_models.ExerciseResponse{}, utils.ErrForbidden
	}

	exercise, err := e.exerciseRepo.FindByID(ctx, exerciseID)
	if err != nil {
		return response_models.ExerciseResponse{}, utils.ErrDatabaseError
	}
	if exercise == nil {
		return response_models.ExerciseResponse{}, utils.ErrExerciseNotFound
	}

	if request.Name != nil && *request.Name != exercise.Name {
		existing, err := e.exerciseRepo.FindByName(ctx, *request.Name)
		if err != nil {
			return response_models.ExerciseResponse{}, utils.ErrDatabaseError
		}
		if existing != nil {
			return response_models.ExerciseResponse{}, utils.ErrExerciseNameTaken
		}
		exercise.Name = *request.Name
	}
	if request.MuscleGroup != nil {
		exercise.MuscleGroup = *request.MuscleGroup
	}
	if request.Equipment != nil {
		exercise.Equipment = *request.Equipment
	}

	if err := e.exerciseRepo.Update(ctx, exercise); err != nil {
		return response_models.ExerciseResponse{}, utils.ErrDatabaseError
	}

	log.Printf("Updated exercise id=%s", exercise.ID)

	return toExerciseResponse(exercise), nil
}

// DeleteExercise refuses to remove an exercise that workout logs still
// reference; logs reference the catalog, they do not own it.
func (e *ExerciseService) DeleteExercise(ctx context.Context, identity Identity, exerciseID uuid.UUID) error {
	if !identity.IsAdmin() {
		return utils.ErrForbidden
	}

	referencing, err := e.exerciseRepo.CountReferencingLogs(ctx, exerciseID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if referencing > 0 {
		return utils.ErrExerciseInUse
	}

	rows, err := e.exerciseRepo.Delete(ctx, exerciseID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if rows == 0 {
		return utils.ErrExerciseNotFound
	}

	log.Printf("Deleted exercise id=%s", exerciseID)

	return nil
}

func toExerciseResponse(exercise *db_models.Exercise) response_models.ExerciseResponse {
	return response_models.ExerciseResponse{
		ID:          exercise.ID.String(),
		Name:        exercise.Name,
		MuscleGroup: exercise.MuscleGroup,
		Equipment:   exercise.Equipment,
	}
}

package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"gymtrack/internal/models/db_models"
	"gymtrack/internal/models/request_models"
	"gymtrack/internal/models/response_models"
	"gymtrack/internal/repositories"
	"gymtrack/pkg/utils"
)

const defaultRecentSessionsLimit = 20

type WorkoutServiceInterface interface {
	CreateSession(ctx context.Context, identity Identity, request request_models.CreateSessionRequest) (response_models.SessionResponse, error)
	GetSessionsForMember(ctx context.Context, identity Identity, memberID uuid.UUID, start, end string) ([]response_models.SessionResponse, error)
	GetRecentSessions(ctx context.Context, identity Identity, limit int) ([]response_models.SessionResponse, error)
	UpdateSession(ctx context.Context, identity Identity, sessionID uuid.UUID, request request_models.UpdateSessionRequest) (response_models.SessionResponse, error)
	DeleteSession(ctx context.Context, identity Identity, sessionID uuid.UUID) error

	CreateLog(ctx context.Context, identity Identity, request request_models.CreateLogRequest) (response_models.LogResponse, error)
	GetLogsForSession(ctx context.Context, identity Identity, sessionID uuid.UUID) ([]response_models.LogResponse, error)
	UpdateLog(ctx context.Context, identity Identity, logID uuid.UUID, request request_models.UpdateLogRequest) (response_models.LogResponse, error)
	DeleteLog(ctx context.Context, identity Identity, logID uuid.UUID) error
}

type WorkoutService struct {
	workoutRepo  repositories.WorkoutRepository
	memberRepo   repositories.MemberRepository
	exerciseRepo repositories.ExerciseRepository
}

func NewWorkoutService(
	workoutRepo repositories.WorkoutRepository,
	memberRepo repositories.MemberRepository,
	exerciseRepo repositories.ExerciseRepository,
) WorkoutServiceInterface {
	return &WorkoutService{
		workoutRepo:  workoutRepo,
		memberRepo:   memberRepo,
		exerciseRepo: exerciseRepo,
	}
}

// ---------- Sessions ----------

func (w *WorkoutService) CreateSession(ctx context.Context, identity Identity, request request_models.CreateSessionRequest) (response_models.SessionResponse, error) {
	memberID, err := uuid.Parse(request.MemberID)
	if err != nil {
		return response_models.SessionResponse{}, utils.ErrMemberNotFound
	}
	if !identity.CanAccess(memberID) {
		return response_models.SessionResponse{}, utils.ErrForbidden
	}

	member, err := w.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return response_models.SessionResponse{}, utils.ErrDatabaseError
	}
	if member == nil {
		return response_models.SessionResponse{}, utils.ErrMemberNotFound
	}

	sessionDate, err := utils.ParseDate(request.SessionDate)
	if err != nil {
		return response_models.SessionResponse{}, utils.ErrInvalidDateRange
	}

	session := &db_models.WorkoutSession{
		MemberID:      memberID,
		SessionDate:   sessionDate,
		TotalDuration: request.TotalDuration,
		Notes:         request.Notes,
	}

	if err := w.workoutRepo.InsertSession(ctx, session); err != nil {
		return response_models.SessionResponse{}, utils.ErrDatabaseError
	}

	log.Printf("Added session id=%s member_id=%s date=%s", session.ID, memberID, request.SessionDate)

	return toSessionResponse(session), nil
}

func (w *WorkoutService) GetSessionsForMember(ctx context.Context, identity Identity, memberID uuid.UUID, start, end string) ([]response_models.SessionResponse, error) {
	if !identity.CanAccess(memberID) {
		return nil, utils.ErrForbidden
	}

	startDate, endDate, err := parseDateRange(start, end)
	if err != nil {
		return nil, err
	}

	sessions, err := w.workoutRepo.FindSessionsForMember(ctx, memberID, startDate, endDate)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toSessionResponses(sessions), nil
}

func (w *WorkoutService) GetRecentSessions(ctx context.Context, identity Identity, limit int) ([]response_models.SessionResponse, error) {
	if !identity.IsAdmin() {
		return nil, utils.ErrForbidden
	}
	if limit <= 0 {
		limit = defaultRecentSessionsLimit
	}

	sessions, err := w.workoutRepo.FindRecentSessions(ctx, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toSessionResponses(sessions), nil
}

func (w *WorkoutService) UpdateSession(ctx context.Context, identity Identity, sessionID uuid.UUID, request request_models.UpdateSessionRequest) (response_models.SessionResponse, error) {
	session, err := w.ownedSession(ctx, identity, sessionID)
	if err != nil {
		return response_models.SessionResponse{}, err
	}

	if request.SessionDate != nil {
		sessionDate, err := utils.ParseDate(*request.SessionDate)
		if err != nil {
			return response_models.SessionResponse{}, utils.ErrInvalidDateRange
		}
		session.SessionDate = sessionDate
	}
	if request.TotalDuration != nil {
		session.TotalDuration = *request.TotalDuration
	}
	if request.Notes != nil {
		session.Notes = *request.Notes
	}

	if err := w.workoutRepo.UpdateSession(ctx, session); err != nil {
		return response_models.SessionResponse{}, utils.ErrDatabaseError
	}

	log.Printf("Updated session id=%s", session.ID)

	return toSessionResponse(session), nil
}

// DeleteSession removes the session and, through the cascade constraint,
// every log it owns.
func (w *WorkoutService) DeleteSession(ctx context.Context, identity Identity, sessionID uuid.UUID) error {
	if _, err := w.ownedSession(ctx, identity, sessionID); err != nil {
		return err
	}

	if _, err := w.workoutRepo.DeleteSession(ctx, sessionID); err != nil {
		return utils.ErrDatabaseError
	}

	log.Printf("Deleted session id=%s", sessionID)

	return nil
}

// ---------- Logs ----------

// CreateLog checks both foreign keys up front so a bad exercise or
// session id fails with not-found and inserts nothing.
func (w *WorkoutService) CreateLog(ctx context.Context, identity Identity, request request_models.CreateLogRequest) (response_models.LogResponse, error) {
	sessionID, err := uuid.Parse(request.SessionID)
	if err != nil {
		return response_models.LogResponse{}, utils.ErrSessionNotFound
	}
	exerciseID, err := uuid.Parse(request.ExerciseID)
	if err != nil {
		return response_models.LogResponse{}, utils.ErrExerciseNotFound
	}

	session, err := w.workoutRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return response_models.LogResponse{}, utils.ErrDatabaseError
	}
	if session == nil {
		return response_models.LogResponse{}, utils.ErrSessionNotFound
	}
	if !identity.CanAccess(session.MemberID) {
		return response_models.LogResponse{}, utils.ErrForbidden
	}

	exercise, err := w.exerciseRepo.FindByID(ctx, exerciseID)
	if err != nil {
		return response_models.LogResponse{}, utils.ErrDatabaseError
	}
	if exercise == nil {
		return response_models.LogResponse{}, utils.ErrExerciseNotFound
	}

	workoutLog := &db_models.WorkoutLog{
		SessionID:      sessionID,
		ExerciseID:     exerciseID,
		Sets:           request.Sets,
		Reps:           request.Reps,
		Weight:         request.Weight,
		CaloriesBurned: request.CaloriesBurned,
	}

	if err := w.workoutRepo.InsertLog(ctx, workoutLog); err != nil {
		return response_models.LogResponse{}, utils.ErrDatabaseError
	}

	log.Printf("Added log id=%s session_id=%s exercise_id=%s", workoutLog.ID, sessionID, exerciseID)

	response := toLogResponse(workoutLog)
	response.ExerciseName = exercise.Name
	return response, nil
}

func (w *WorkoutService) GetLogsForSession(ctx context.Context, identity Identity, sessionID uuid.UUID) ([]response_models.LogResponse, error) {
	session, err := w.workoutRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}
	if !identity.CanAccess(session.MemberID) {
		return nil, utils.ErrForbidden
	}

	logs, err := w.workoutRepo.FindLogsForSession(ctx, sessionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.LogResponse, 0, len(logs))
	for i := range logs {
		response := toLogResponse(&logs[i])
		response.ExerciseName = logs[i].Exercise.Name
		responses = append(responses, response)
	}
	return responses, nil
}

func (w *WorkoutService) UpdateLog(ctx context.Context, identity Identity, logID uuid.UUID, request request_models.UpdateLogRequest) (response_models.LogResponse, error) {
	workoutLog, err := w.ownedLog(ctx, identity, logID)
	if err != nil {
		return response_models.LogResponse{}, err
	}

	if request.ExerciseID != nil {
		exerciseID, err := uuid.Parse(*request.ExerciseID)
		if err != nil {
			return response_models.LogResponse{}, utils.ErrExerciseNotFound
		}
		exercise, err := w.exerciseRepo.FindByID(ctx, exerciseID)
		if err != nil {
			return response_models.LogResponse{}, utils.ErrDatabaseError
		}
		if exercise == nil {
			return response_models.LogResponse{}, utils.ErrExerciseNotFound
		}
		workoutLog.ExerciseID = exerciseID
	}
	if request.Sets != nil {
		workoutLog.Sets = *request.Sets
	}
	if request.Reps != nil {
		workoutLog.Reps = *request.Reps
	}
	if request.Weight != nil {
		workoutLog.Weight = *request.Weight
	}
	if request.CaloriesBurned != nil {
		workoutLog.CaloriesBurned = *request.CaloriesBurned
	}

	if err := w.workoutRepo.UpdateLog(ctx, workoutLog); err != nil {
		return response_models.LogResponse{}, utils.ErrDatabaseError
	}

	log.Printf("Updated log id=%s", workoutLog.ID)

	return toLogResponse(workoutLog), nil
}

func (w *WorkoutService) DeleteLog(ctx context.Context, identity Identity, logID uuid.UUID) error {
	if _, err := w.ownedLog(ctx, identity, logID); err != nil {
		return err
	}

	if _, err := w.workoutRepo.DeleteLog(ctx, logID); err != nil {
		return utils.ErrDatabaseError
	}

	log.Printf("Deleted log id=%s", logID)

	return nil
}

// ---------- helpers ----------

func (w *WorkoutService) ownedSession(ctx context.Context, identity Identity, sessionID uuid.UUID) (*db_models.WorkoutSession, error) {
	session, err := w.workoutRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}
	if !identity.CanAccess(session.MemberID) {
		return nil, utils.ErrForbidden
	}
	return session, nil
}

// ownedLog resolves scope through the log's session, since logs carry no
// member id of their own.
func (w *WorkoutService) ownedLog(ctx context.Context, identity Identity, logID uuid.UUID) (*db_models.WorkoutLog, error) {
	workoutLog, err := w.workoutRepo.FindLogByID(ctx, logID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if workoutLog == nil {
		return nil, utils.ErrLogNotFound
	}
	if _, err := w.ownedSession(ctx, identity, workoutLog.SessionID); err != nil {
		return nil, err
	}
	return workoutLog, nil
}

func parseDateRange(start, end string) (*time.Time, *time.Time, error) {
	var startDate, endDate *time.Time
	if start != "" {
		parsed, err := utils.ParseDate(start)
		if err != nil {
			return nil, nil, utils.ErrInvalidDateRange
		}
		startDate = &parsed
	}
	if end != "" {
		parsed, err := utils.ParseDate(end)
		if err != nil {
			return nil, nil, utils.ErrInvalidDateRange
		}
		endDate = &parsed
	}
	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		return nil, nil, utils.ErrInvalidDateRange
	}
	return startDate, endDate, nil
}

func toSessionResponse(session *db_models.WorkoutSession) response_models.SessionResponse {
	return response_models.SessionResponse{
		ID:            session.ID.String(),
		MemberID:      session.MemberID.String(),
		SessionDate:   session.SessionDate.Format(utils.DateLayout),
		TotalDuration: session.TotalDuration,
		Notes:         session.Notes,
	}
}

func toSessionResponses(sessions []db_models.WorkoutSession) []response_models.SessionResponse {
	responses := make([]response_models.SessionResponse, 0, len(sessions))
	for i := range sessions {
		responses = append(responses, toSessionResponse(&sessions[i]))
	}
	return responses
}

func toLogResponse(workoutLog *db_models.WorkoutLog) response_models.LogResponse {
	return response_models.LogResponse{
		ID:             workoutLog.ID.String(),
		SessionID:      workoutLog.SessionID.String(),
		ExerciseID:     workoutLog.ExerciseID.String(),
		Sets:           workoutLog.Sets,
		Reps:           workoutLog.Reps,
		Weight:         workoutLog.Weight,
		CaloriesBurned: workoutLog.CaloriesBurned,
	}
}

package services

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"gymtrack/internal/models/db_models"
	"gymtrack/internal/repositories"
)

func mustParse(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}

// In-memory repository fakes backing the service tests.

type fakeMemberRepo struct {
	members map[uuid.UUID]*db_models.Member
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[uuid.UUID]*db_models.Member)}
}

func (f *fakeMemberRepo) Insert(_ context.Context, member *db_models.Member) error {
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	clone := *member
	f.members[member.ID] = &clone
	return nil
}

func (f *fakeMemberRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Member, error) {
	member, ok := f.members[id]
	if !ok {
		return nil, nil
	}
	clone := *member
	return &clone, nil
}

func (f *fakeMemberRepo) FindByUsername(_ context.Context, username string) (*db_models.Member, error) {
	for _, member := range f.members {
		if member.Username == username {
			clone := *member
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeMemberRepo) FindAll(_ context.Context, limit, offset int) ([]db_models.Member, error) {
	all := make([]db_models.Member, 0, len(f.members))
	for _, member := range f.members {
		all = append(all, *member)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt < all[j].CreatedAt })
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeMemberRepo) SearchByName(_ context.Context, name string) ([]db_models.Member, error) {
	var matched []db_models.Member
	for _, member := range f.members {
		if strings.Contains(strings.ToLower(member.Name), strings.ToLower(name)) {
			matched = append(matched, *member)
		}
	}
	return matched, nil
}

func (f *fakeMemberRepo) FindByGender(_ context.Context, gender string) ([]db_models.Member, error) {
	var matched []db_models.Member
	for _, member := range f.members {
		if member.Gender == gender {
			matched = append(matched, *member)
		}
	}
	return matched, nil
}

func (f *fakeMemberRepo) Update(_ context.Context, member *db_models.Member) error {
	clone := *member
	f.members[member.ID] = &clone
	return nil
}

func (f *fakeMemberRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := f.members[id]; !ok {
		return 0, nil
	}
	delete(f.members, id)
	return 1, nil
}

type fakeExerciseRepo struct {
	exercises map[uuid.UUID]*db_models.Exercise
	refCounts map[uuid.UUID]int64
}

func newFakeExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{
		exercises: make(map[uuid.UUID]*db_models.Exercise),
		refCounts: make(map[uuid.UUID]int64),
	}
}

func (f *fakeExerciseRepo) Insert(_ context.Context, exercise *db_models.Exercise) error {
	if exercise.ID == uuid.Nil {
		exercise.ID = uuid.New()
	}
	clone := *exercise
	f.exercises[exercise.ID] = &clone
	return nil
}

func (f *fakeExerciseRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Exercise, error) {
	exercise, ok := f.exercises[id]
	if !ok {
		return nil, nil
	}
	clone := *exercise
	return &clone, nil
}

func (f *fakeExerciseRepo) FindByName(_ context.Context, name string) (*db_models.Exercise, error) {
	for _, exercise := range f.exercises {
		if exercise.Name == name {
			clone := *exercise
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeExerciseRepo) FindAll(_ context.Context, limit int) ([]db_models.Exercise, error) {
	all := make([]db_models.Exercise, 0, len(f.exercises))
	for _, exercise := range f.exercises {
		all = append(all, *exercise)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeExerciseRepo) Update(_ context.Context, exercise *db_models.Exercise) error {
	clone := *exercise
	f.exercises[exercise.ID] = &clone
	return nil
}

func (f *fakeExerciseRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := f.exercises[id]; !ok {
		return 0, nil
	}
	delete(f.exercises, id)
	return 1, nil
}

func (f *fakeExerciseRepo) CountReferencingLogs(_ context.Context, id uuid.UUID) (int64, error) {
	return f.refCounts[id], nil
}

type fakeWorkoutRepo struct {
	sessions map[uuid.UUID]*db_models.WorkoutSession
	logs     map[uuid.UUID]*db_models.WorkoutLog
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{
		sessions: make(map[uuid.UUID]*db_models.WorkoutSession),
		logs:     make(map[uuid.UUID]*db_models.WorkoutLog),
	}
}

func (f *fakeWorkoutRepo) InsertSession(_ context.Context, session *db_models.WorkoutSession) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	clone := *session
	f.sessions[session.ID] = &clone
	return nil
}

func (f *fakeWorkoutRepo) FindSessionByID(_ context.Context, id uuid.UUID) (*db_models.WorkoutSession, error) {
	session, ok := f.sessions[id]
	if !ok {
		return nil, nil
	}
	clone := *session
	return &clone, nil
}

func (f *fakeWorkoutRepo) FindSessionsForMember(_ context.Context, memberID uuid.UUID, start, end *time.Time) ([]db_models.WorkoutSession, error) {
	var matched []db_models.WorkoutSession
	for _, session := range f.sessions {
		if session.MemberID != memberID {
			continue
		}
		if start != nil && session.SessionDate.Before(*start) {
			continue
		}
		if end != nil && session.SessionDate.After(*end) {
			continue
		}
		matched = append(matched, *session)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].SessionDate.After(matched[j].SessionDate)
	})
	return matched, nil
}

func (f *fakeWorkoutRepo) FindRecentSessions(_ context.Context, limit int) ([]db_models.WorkoutSession, error) {
	all := make([]db_models.WorkoutSession, 0, len(f.sessions))
	for _, session := range f.sessions {
		all = append(all, *session)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].SessionDate.After(all[j].SessionDate)
	})
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeWorkoutRepo) UpdateSession(_ context.Context, session *db_models.WorkoutSession) error {
	clone := *session
	f.sessions[session.ID] = &clone
	return nil
}

func (f *fakeWorkoutRepo) DeleteSession(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := f.sessions[id]; !ok {
		return 0, nil
	}
	delete(f.sessions, id)
	for logID, workoutLog := range f.logs {
		if workoutLog.SessionID == id {
			delete(f.logs, logID)
		}
	}
	return 1, nil
}

func (f *fakeWorkoutRepo) InsertLog(_ context.Context, workoutLog *db_models.WorkoutLog) error {
	if workoutLog.ID == uuid.Nil {
		workoutLog.ID = uuid.New()
	}
	clone := *workoutLog
	f.logs[workoutLog.ID] = &clone
	return nil
}

func (f *fakeWorkoutRepo) FindLogByID(_ context.Context, id uuid.UUID) (*db_models.WorkoutLog, error) {
	workoutLog, ok := f.logs[id]
	if !ok {
		return nil, nil
	}
	clone := *workoutLog
	return &clone, nil
}

func (f *fakeWorkoutRepo) FindLogsForSession(_ context.Context, sessionID uuid.UUID) ([]db_models.WorkoutLog, error) {
	var matched []db_models.WorkoutLog
	for _, workoutLog := range f.logs {
		if workoutLog.SessionID == sessionID {
			matched = append(matched, *workoutLog)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt < matched[j].CreatedAt })
	return matched, nil
}

func (f *fakeWorkoutRepo) UpdateLog(_ context.Context, workoutLog *db_models.WorkoutLog) error {
	clone := *workoutLog
	f.logs[workoutLog.ID] = &clone
	return nil
}

func (f *fakeWorkoutRepo) DeleteLog(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := f.logs[id]; !ok {
		return 0, nil
	}
	delete(f.logs, id)
	return 1, nil
}

type fakeMeasurementRepo struct {
	measurements map[uuid.UUID]*db_models.BodyMeasurement
}

func newFakeMeasurementRepo() *fakeMeasurementRepo {
	return &fakeMeasurementRepo{measurements: make(map[uuid.UUID]*db_models.BodyMeasurement)}
}

func (f *fakeMeasurementRepo) Insert(_ context.Context, measurement *db_models.BodyMeasurement) error {
	if measurement.ID == uuid.Nil {
		measurement.ID = uuid.New()
	}
	clone := *measurement
	f.measurements[measurement.ID] = &clone
	return nil
}

func (f *fakeMeasurementRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.BodyMeasurement, error) {
	measurement, ok := f.measurements[id]
	if !ok {
		return nil, nil
	}
	clone := *measurement
	return &clone, nil
}

func (f *fakeMeasurementRepo) FindForMember(_ context.Context, memberID uuid.UUID, start, end *time.Time) ([]db_models.BodyMeasurement, error) {
	var matched []db_models.BodyMeasurement
	for _, measurement := range f.measurements {
		if measurement.MemberID != memberID {
			continue
		}
		if start != nil && measurement.MeasureDate.Before(*start) {
			continue
		}
		if end != nil && measurement.MeasureDate.After(*end) {
			continue
		}
		matched = append(matched, *measurement)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].MeasureDate.Before(matched[j].MeasureDate)
	})
	return matched, nil
}

func (f *fakeMeasurementRepo) Update(_ context.Context, measurement *db_models.BodyMeasurement) error {
	clone := *measurement
	f.measurements[measurement.ID] = &clone
	return nil
}

func (f *fakeMeasurementRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := f.measurements[id]; !ok {
		return 0, nil
	}
	delete(f.measurements, id)
	return 1, nil
}

type fakeAnalyticsRepo struct {
	volumeRows []repositories.LogVolumeRow
	topRows    []repositories.TopExerciseRow
}

func (f *fakeAnalyticsRepo) LogsWithSessionDate(_ context.Context, _ uuid.UUID, since time.Time) ([]repositories.LogVolumeRow, error) {
	var matched []repositories.LogVolumeRow
	for _, row := range f.volumeRows {
		if !row.SessionDate.Before(since) {
			matched = append(matched, row)
		}
	}
	return matched, nil
}

func (f *fakeAnalyticsRepo) TopExercises(_ context.Context, _ uuid.UUID, limit int) ([]repositories.TopExerciseRow, error) {
	if limit < len(f.topRows) {
		return f.topRows[:limit], nil
	}
	return f.topRows, nil
}

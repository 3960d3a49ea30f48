package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gymtrack/internal/infra"
	"gymtrack/internal/models/db_models"
)

// These tests need a real PostgreSQL instance; set TEST_DATABASE_URL to
// run them, otherwise they are skipped.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping postgres tests")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, infra.AutoMigrate(db))

	cleanTables(db)
	t.Cleanup(func() { cleanTables(db) })

	return db
}

func cleanTables(db *gorm.DB) {
	db.Exec("DELETE FROM workout_logs")
	db.Exec("DELETE FROM workout_sessions")
	db.Exec("DELETE FROM body_measurements")
	db.Exec("DELETE FROM exercises")
	db.Exec("DELETE FROM members")
}

func seedTestMember(t *testing.T, db *gorm.DB) *db_models.Member {
	t.Helper()
	member := &db_models.Member{
		Username:     gofakeit.Username(),
		PasswordHash: "not-a-real-hash",
		Role:         db_models.RoleMember,
		Name:         gofakeit.Name(),
		Age:          gofakeit.Number(18, 70),
		Gender:       gofakeit.RandomString([]string{"male", "female"}),
		JoinedDate:   time.Now().AddDate(0, -6, 0),
		Phone:        gofakeit.Phone(),
		Email:        gofakeit.Email(),
	}
	require.NoError(t, db.Create(member).Error)
	return member
}

func seedTestExercise(t *testing.T, db *gorm.DB, name string) *db_models.Exercise {
	t.Helper()
	exercise := &db_models.Exercise{
		Name:        name,
		MuscleGroup: "chest",
		Equipment:   "barbell",
	}
	require.NoError(t, db.Create(exercise).Error)
	return exercise
}

func seedTestSession(t *testing.T, db *gorm.DB, memberID uuid.UUID, date time.Time, duration int) *db_models.WorkoutSession {
	t.Helper()
	session := &db_models.WorkoutSession{
		MemberID:      memberID,
		SessionDate:   date,
		TotalDuration: duration,
	}
	require.NoError(t, db.Create(session).Error)
	return session
}

func seedTestLog(t *testing.T, db *gorm.DB, sessionID, exerciseID uuid.UUID, sets, reps int, weight float64) *db_models.WorkoutLog {
	t.Helper()
	workoutLog := &db_models.WorkoutLog{
		SessionID:  sessionID,
		ExerciseID: exerciseID,
		Sets:       sets,
		Reps:       reps,
		Weight:     weight,
	}
	require.NoError(t, db.Create(workoutLog).Error)
	return workoutLog
}

func TestMemberRepositoryRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	member := seedTestMember(t, db)

	found, err := repo.FindByUsername(ctx, member.Username)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, member.ID, found.ID)

	byID, err := repo.FindByID(ctx, member.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, member.Username, byID.Username)

	missing, err := repo.FindByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	rows, err := repo.Delete(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = repo.Delete(ctx, member.ID)
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestDeleteMemberCascadesToSessionsLogsAndMeasurements(t *testing.T) {
	db := setupTestDB(t)
	memberRepo := NewMemberRepository(db)
	ctx := context.Background()

	member := seedTestMember(t, db)
	exercise := seedTestExercise(t, db, "Bench Press")
	session := seedTestSession(t, db, member.ID, time.Now(), 60)
	seedTestLog(t, db, session.ID, exercise.ID, 3, 10, 60)
	require.NoError(t, db.Create(&db_models.BodyMeasurement{
		MemberID:    member.ID,
		MeasureDate: time.Now(),
		Weight:      80,
	}).Error)

	rows, err := memberRepo.Delete(ctx, member.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), rows)

	var sessions, logs, measurements, exercises int64
	require.NoError(t, db.Model(&db_models.WorkoutSession{}).Count(&sessions).Error)
	require.NoError(t, db.Model(&db_models.WorkoutLog{}).Count(&logs).Error)
	require.NoError(t, db.Model(&db_models.BodyMeasurement{}).Count(&measurements).Error)
	require.NoError(t, db.Model(&db_models.Exercise{}).Count(&exercises).Error)

	assert.Zero(t, sessions)
	assert.Zero(t, logs)
	assert.Zero(t, measurements)

	// the shared catalog survives member deletion
	assert.Equal(t, int64(1), exercises)
}

func TestDeleteSessionCascadesToItsLogsOnly(t *testing.T) {
	db := setupTestDB(t)
	workoutRepo := NewWorkoutRepository(db)
	ctx := context.Background()

	member := seedTestMember(t, db)
	exercise := seedTestExercise(t, db, "Row")
	kept := seedTestSession(t, db, member.ID, time.Now().AddDate(0, 0, -1), 40)
	doomed := seedTestSession(t, db, member.ID, time.Now(), 50)
	keptLog := seedTestLog(t, db, kept.ID, exercise.ID, 3, 8, 40)
	seedTestLog(t, db, doomed.ID, exercise.ID, 4, 12, 30)

	rows, err := workoutRepo.DeleteSession(ctx, doomed.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), rows)

	logs, err := workoutRepo.FindLogsForSession(ctx, kept.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, keptLog.ID, logs[0].ID)
	assert.Equal(t, "Row", logs[0].Exercise.Name)

	orphaned, err := workoutRepo.FindLogsForSession(ctx, doomed.ID)
	require.NoError(t, err)
	assert.Empty(t, orphaned)
}

func TestExerciseDeleteRestrictedWhileReferenced(t *testing.T) {
	db := setupTestDB(t)
	exerciseRepo := NewExerciseRepository(db)
	workoutRepo := NewWorkoutRepository(db)
	ctx := context.Background()

	member := seedTestMember(t, db)
	exercise := seedTestExercise(t, db, "Pull Up")
	session := seedTestSession(t, db, member.ID, time.Now(), 30)
	workoutLog := seedTestLog(t, db, session.ID, exercise.ID, 3, 10, 0)

	n, err := exerciseRepo.CountReferencingLogs(ctx, exercise.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// the FK constraint refuses the delete while logs point at the row
	_, err = exerciseRepo.Delete(ctx, exercise.ID)
	assert.Error(t, err)

	_, err = workoutRepo.DeleteLog(ctx, workoutLog.ID)
	require.NoError(t, err)

	rows, err := exerciseRepo.Delete(ctx, exercise.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}

func TestFindSessionsForMemberRangeAndOrder(t *testing.T) {
	db := setupTestDB(t)
	workoutRepo := NewWorkoutRepository(db)
	ctx := context.Background()

	member := seedTestMember(t, db)
	other := seedTestMember(t, db)

	base := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	old := seedTestSession(t, db, member.ID, base.AddDate(0, 0, -30), 30)
	mid := seedTestSession(t, db, member.ID, base, 45)
	recent := seedTestSession(t, db, member.ID, base.AddDate(0, 0, 10), 60)
	seedTestSession(t, db, other.ID, base, 90)

	all, err := workoutRepo.FindSessionsForMember(ctx, member.ID, nil, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, recent.ID, all[0].ID)
	assert.Equal(t, mid.ID, all[1].ID)
	assert.Equal(t, old.ID, all[2].ID)

	start := base.AddDate(0, 0, -1)
	end := base.AddDate(0, 0, 1)
	ranged, err := workoutRepo.FindSessionsForMember(ctx, member.ID, &start, &end)
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, mid.ID, ranged[0].ID)
}

func TestMeasurementsOrderedByDateAscending(t *testing.T) {
	db := setupTestDB(t)
	measurementRepo := NewMeasurementRepository(db)
	ctx := context.Background()

	member := seedTestMember(t, db)
	dates := []string{"2026-03-10", "2026-01-05", "2026-02-20"}
	for _, d := range dates {
		measureDate, err := time.Parse("2006-01-02", d)
		require.NoError(t, err)
		require.NoError(t, measurementRepo.Insert(ctx, &db_models.BodyMeasurement{
			MemberID:    member.ID,
			MeasureDate: measureDate,
			Weight:      gofakeit.Float64Range(60, 90),
		}))
	}

	measurements, err := measurementRepo.FindForMember(ctx, member.ID, nil, nil)
	require.NoError(t, err)
	require.Len(t, measurements, 3)
	assert.True(t, measurements[0].MeasureDate.Before(measurements[1].MeasureDate))
	assert.True(t, measurements[1].MeasureDate.Before(measurements[2].MeasureDate))
}

func TestAnalyticsRows(t *testing.T) {
	db := setupTestDB(t)
	analyticsRepo := NewAnalyticsRepository(db)
	ctx := context.Background()

	member := seedTestMember(t, db)
	bench := seedTestExercise(t, db, "Bench Press")
	squat := seedTestExercise(t, db, "Back Squat")

	session := seedTestSession(t, db, member.ID, time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC), 60)
	seedTestLog(t, db, session.ID, bench.ID, 3, 10, 20)
	seedTestLog(t, db, session.ID, bench.ID, 2, 8, 15)
	seedTestLog(t, db, session.ID, squat.ID, 5, 5, 100)

	rows, err := analyticsRepo.LogsWithSessionDate(ctx, member.ID, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	var volume float64
	for _, row := range rows {
		volume += float64(row.Sets) * float64(row.Reps) * row.Weight
	}
	assert.InDelta(t, 3340, volume, 0.001)

	top, err := analyticsRepo.TopExercises(ctx, member.ID, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Bench Press", top[0].ExerciseName)
	assert.Equal(t, int64(2), top[0].TimesPerformed)
	assert.Equal(t, int64(46), top[0].TotalReps)
	assert.InDelta(t, 840, top[0].TotalLift, 0.001)
	assert.Equal(t, "Back Squat", top[1].ExerciseName)
	assert.InDelta(t, 2500, top[1].TotalLift, 0.001)
}

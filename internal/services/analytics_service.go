package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"gymtrack/internal/models/response_models"
	"gymtrack/internal/repositories"
	"gymtrack/pkg/utils"
)

const (
	IntervalWeek  = "week"
	IntervalMonth = "month"

	DefaultVolumeWeeks      = 12
	MaxVolumeWeeks          = 52
	DefaultTopExerciseLimit = 10
)

type AnalyticsServiceInterface interface {
	WeeklyVolume(ctx context.Context, identity Identity, memberID uuid.UUID, weeks int) ([]response_models.WeeklyVolumeEntry, error)
	AverageDuration(ctx context.Context, identity Identity, memberID uuid.UUID, interval string) ([]response_models.AverageDurationEntry, error)
	MeasurementTrend(ctx context.Context, identity Identity, memberID uuid.UUID) (response_models.MeasurementTrend, error)
	TopExercises(ctx context.Context, identity Identity, memberID uuid.UUID, limit int) ([]response_models.TopExerciseEntry, error)
}

type AnalyticsService struct {
	analyticsRepo   repositories.AnalyticsRepository
	workoutRepo     repositories.WorkoutRepository
	measurementRepo repositories.MeasurementRepository
	now             func() time.Time
}

func NewAnalyticsService(
	analyticsRepo repositories.AnalyticsRepository,
	workoutRepo repositories.WorkoutRepository,
	measurementRepo repositories.MeasurementRepository,
) AnalyticsServiceInterface {
	return &AnalyticsService{
		analyticsRepo:   analyticsRepo,
		workoutRepo:     workoutRepo,
		measurementRepo: measurementRepo,
		now:             time.Now,
	}
}

// WeeklyVolume groups the member's logs by the ISO week of their session
// date; volume per week is the sum of sets*reps*weight. Weeks without
// logs are omitted rather than zero-filled.
func (a *AnalyticsService) WeeklyVolume(ctx context.Context, identity Identity, memberID uuid.UUID, weeks int) ([]response_models.WeeklyVolumeEntry, error) {
	if !identity.CanAccess(memberID) {
		return nil, utils.ErrForbidden
	}
	if weeks <= 0 {
		weeks = DefaultVolumeWeeks
	}
	if weeks > MaxVolumeWeeks {
		return nil, utils.ErrInvalidLimit
	}

	since := utils.WeeksWindowStart(a.now(), weeks)
	rows, err := a.analyticsRepo.LogsWithSessionDate(ctx, memberID, since)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	volumes := make(map[string]float64)
	for _, row := range rows {
		week := utils.ISOWeekKey(row.SessionDate)
		volumes[week] += float64(row.Sets) * float64(row.Reps) * row.Weight
	}

	return sortedVolumeEntries(volumes), nil
}

// AverageDuration averages session duration per ISO week or per calendar
// month, selected by interval.
func (a *AnalyticsService) AverageDuration(ctx context.Context, identity Identity, memberID uuid.UUID, interval string) ([]response_models.AverageDurationEntry, error) {
	if !identity.CanAccess(memberID) {
		return nil, utils.ErrForbidden
	}

	var bucketKey func(time.Time) string
	switch interval {
	case "", IntervalWeek:
		bucketKey = utils.ISOWeekKey
	case IntervalMonth:
		bucketKey = utils.MonthKey
	default:
		return nil, utils.ErrInvalidInterval
	}

	sessions, err := a.workoutRepo.FindSessionsForMember(ctx, memberID, nil, nil)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, session := range sessions {
		key := bucketKey(session.SessionDate)
		sums[key] += session.TotalDuration
		counts[key]++
	}

	entries := make([]response_models.AverageDurationEntry, 0, len(sums))
	for key, sum := range sums {
		entries = append(entries, response_models.AverageDurationEntry{
			Bucket:      key,
			AvgDuration: float64(sum) / float64(counts[key]),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Bucket < entries[j].Bucket
	})

	return entries, nil
}

// MeasurementTrend returns one series per tracked field, all aligned on
// the shared dates axis and strictly ascending by measure date.
func (a *AnalyticsService) MeasurementTrend(ctx context.Context, identity Identity, memberID uuid.UUID) (response_models.MeasurementTrend, error) {
	if !identity.CanAccess(memberID) {
		return response_models.MeasurementTrend{}, utils.ErrForbidden
	}

	measurements, err := a.measurementRepo.FindForMember(ctx, memberID, nil, nil)
	if err != nil {
		return response_models.MeasurementTrend{}, utils.ErrDatabaseError
	}

	trend := response_models.MeasurementTrend{
		Dates:  make([]string, 0, len(measurements)),
		Weight: make([]float64, 0, len(measurements)),
		Chest:  make([]float64, 0, len(measurements)),
		Arms:   make([]float64, 0, len(measurements)),
		Waist:  make([]float64, 0, len(measurements)),
	}
	for _, measurement := range measurements {
		trend.Dates = append(trend.Dates, measurement.MeasureDate.Format(utils.DateLayout))
		trend.Weight = append(trend.Weight, measurement.Weight)
		trend.Chest = append(trend.Chest, measurement.Chest)
		trend.Arms = append(trend.Arms, measurement.Arms)
		trend.Waist = append(trend.Waist, measurement.Waist)
	}

	return trend, nil
}

func (a *AnalyticsService) TopExercises(ctx context.Context, identity Identity, memberID uuid.UUID, limit int) ([]response_models.TopExerciseEntry, error) {
	if !identity.CanAccess(memberID) {
		return nil, utils.ErrForbidden
	}
	if limit <= 0 {
		limit = DefaultTopExerciseLimit
	}

	rows, err := a.analyticsRepo.TopExercises(ctx, memberID, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	entries := make([]response_models.TopExerciseEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, response_models.TopExerciseEntry{
			ExerciseID:     row.ExerciseID,
			ExerciseName:   row.ExerciseName,
			TimesPerformed: row.TimesPerformed,
			TotalReps:      row.TotalReps,
			TotalLift:      row.TotalLift,
		})
	}
	return entries, nil
}

// Zero-padded ISO week keys sort lexically in chronological order.
func sortedVolumeEntries(volumes map[string]float64) []response_models.WeeklyVolumeEntry {
	entries := make([]response_models.WeeklyVolumeEntry, 0, len(volumes))
	for week, volume := range volumes {
		entries = append(entries, response_models.WeeklyVolumeEntry{Week: week, Volume: volume})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Week < entries[j].Week
	})
	return entries
}

package analytics_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gymtrack/internal/repositories"
	"gymtrack/internal/services"
)

var Module = fx.Provide(
	provideAnalyticsRepo, provideAnalyticsService)

func provideAnalyticsRepo(db *gorm.DB) repositories.AnalyticsRepository {
	return repositories.NewAnalyticsRepository(db)
}

func provideAnalyticsService(
	analyticsRepo repositories.AnalyticsRepository,
	workoutRepo repositories.WorkoutRepository,
	measurementRepo repositories.MeasurementRepository,
) services.AnalyticsServiceInterface {
	return services.NewAnalyticsService(analyticsRepo, workoutRepo, measurementRepo)
}

package measurement_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gymtrack/internal/repositories"
	"gymtrack/internal/services"
)

var Module = fx.Provide(
	provideMeasurementRepo, provideMeasurementService)

func provideMeasurementRepo(db *gorm.DB) repositories.MeasurementRepository {
	return repositories.NewMeasurementRepository(db)
}

func provideMeasurementService(
	measurementRepo repositories.MeasurementRepository,
	memberRepo repositories.MemberRepository,
) services.MeasurementServiceInterface {
	return services.NewMeasurementService(measurementRepo, memberRepo)
}

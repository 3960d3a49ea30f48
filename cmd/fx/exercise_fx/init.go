package exercise_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gymtrack/internal/repositories"
	"gymtrack/internal/services"
)

var Module = fx.Provide(
	provideExerciseRepo, provideExerciseService)

func provideExerciseRepo(db *gorm.DB) repositories.ExerciseRepository {
	return repositories.NewExerciseRepository(db)
}

func provideExerciseService(exerciseRepo repositories.ExerciseRepository) services.ExerciseServiceInterface {
	return services.NewExerciseService(exerciseRepo)
}

package workout_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gymtrack/internal/repositories"
	"gymtrack/internal/services"
)

var Module = fx.Provide(
	provideWorkoutRepo, provideWorkoutService)

func provideWorkoutRepo(db *gorm.DB) repositories.WorkoutRepository {
	return repositories.NewWorkoutRepository(db)
}

func provideWorkoutService(
	workoutRepo repositories.WorkoutRepository,
	memberRepo repositories.MemberRepository,
	exerciseRepo repositories.ExerciseRepository,
) services.WorkoutServiceInterface {
	return services.NewWorkoutService(workoutRepo, memberRepo, exerciseRepo)
}

package controllers_fx

import (
	"go.uber.org/fx"

	"gymtrack/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewMemberController),
	fx.Provide(controllers.NewExerciseController),
	fx.Provide(controllers.NewWorkoutController),
	fx.Provide(controllers.NewMeasurementController),
	fx.Provide(controllers.NewAnalyticsController))

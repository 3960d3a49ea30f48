package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"gymtrack/cmd/fx/analytics_fx"
	"gymtrack/cmd/fx/controllers_fx"
	"gymtrack/cmd/fx/db_fx"
	"gymtrack/cmd/fx/exercise_fx"
	"gymtrack/cmd/fx/measurement_fx"
	"gymtrack/cmd/fx/member_fx"
	"gymtrack/cmd/fx/workout_fx"
	"gymtrack/internal/api/controllers"
	"gymtrack/internal/services"
	"gymtrack/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		member_fx.Module,
		exercise_fx.Module,
		workout_fx.Module,
		measurement_fx.Module,
		analytics_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authService services.AuthServiceInterface,
	authController *controllers.AuthController,
	memberController *controllers.MemberController,
	exerciseController *controllers.ExerciseController,
	workoutController *controllers.WorkoutController,
	measurementController *controllers.MeasurementController,
	analyticsController *controllers.AnalyticsController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, authService,
		authController, memberController, exerciseController,
		workoutController, measurementController, analyticsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authService services.AuthServiceInterface,
	authController *controllers.AuthController,
	memberController *controllers.MemberController,
	exerciseController *controllers.ExerciseController,
	workoutController *controllers.WorkoutController,
	measurementController *controllers.MeasurementController,
	analyticsController *controllers.AnalyticsController) {

	// Public: credential validation and admin bootstrap.
	auth := r.Group("/auth")
	auth.POST("/login", authController.Login)
	auth.POST("/register-admin", authController.RegisterAdmin)

	// Everything else re-validates credentials on every request.
	authed := r.Group("/")
	authed.Use(middleware.CredentialAuth(authService))

	authed.GET("/me", authController.Me)

	members := authed.Group("/members")
	members.POST("", memberController.Create)
	members.GET("", memberController.List)
	members.GET("/search", middleware.RequireAdmin(), memberController.Search)
	members.GET("/:id", memberController.Get)
	members.PUT("/:id", memberController.Update)
	members.DELETE("/:id", memberController.Delete)

	exercises := authed.Group("/exercises")
	exercises.GET("", exerciseController.List)
	exercises.GET("/:id", exerciseController.Get)
	exercises.POST("", middleware.RequireAdmin(), exerciseController.Create)
	exercises.PUT("/:id", middleware.RequireAdmin(), exerciseController.Update)
	exercises.DELETE("/:id", middleware.RequireAdmin(), exerciseController.Delete)

	sessions := authed.Group("/sessions")
	sessions.POST("", workoutController.CreateSession)
	sessions.GET("/member/:memberId", workoutController.SessionsForMember)
	sessions.GET("/recent", middleware.RequireAdmin(), workoutController.RecentSessions)
	sessions.PUT("/:id", workoutController.UpdateSession)
	sessions.DELETE("/:id", workoutController.DeleteSession)

	logs := authed.Group("/logs")
	logs.POST("", workoutController.CreateLog)
	logs.GET("/session/:sessionId", workoutController.LogsForSession)
	logs.PUT("/:id", workoutController.UpdateLog)
	logs.DELETE("/:id", workoutController.DeleteLog)

	measurements := authed.Group("/measurements")
	measurements.POST("", measurementController.Create)
	measurements.GET("/member/:memberId", measurementController.ForMember)
	measurements.PUT("/:id", measurementController.Update)
	measurements.DELETE("/:id", measurementController.Delete)

	analytics := authed.Group("/analytics")
	analytics.GET("/weekly-volume", analyticsController.WeeklyVolume)
	analytics.GET("/average-duration", analyticsController.AverageDuration)
	analytics.GET("/measurement-trend", analyticsController.MeasurementTrend)
	analytics.GET("/top-exercises", analyticsController.TopExercises)
}

package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"voyago/cmd/fx/account_fx"
	"voyago/cmd/fx/archive_fx"
	"voyago/cmd/fx/db_fx"
	"voyago/cmd/fx/export_fx"
	"voyago/cmd/fx/feedback_fx"
	"voyago/cmd/fx/generation_fx"
	"voyago/cmd/fx/memcache_fx"
	"voyago/cmd/fx/plan_fx"
	"voyago/cmd/fx/profile_fx"
	"voyago/internal/api/controllers"
	"voyago/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		profile_fx.Module,
		plan_fx.Module,
		generation_fx.Module,
		feedback_fx.Module,
		export_fx.Module,
		archive_fx.Module,

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
	accountController *controllers.AccountController,
	profileController *controllers.ProfileController,
	planController *controllers.PlanController,
	fixedPointController *controllers.FixedPointController,
	generationController *controllers.GenerationController,
	exportController *controllers.ExportController,
	feedbackController *controllers.FeedbackController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController,
		profileController,
		planController,
		fixedPointController,
		generationController,
		exportController,
		feedbackController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	profileController *controllers.ProfileController,
	planController *controllers.PlanController,
	fixedPointController *controllers.FixedPointController,
	generationController *controllers.GenerationController,
	exportController *controllers.ExportController,
	feedbackController *controllers.FeedbackController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)

	// Shared plan views need no authentication.
	r.GET("/shared/:token", planController.GetSharedPlan)

	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware())

	profile := authed.Group("/profile")
	profile.GET("", profileController.GetProfile)
	profile.PUT("", profileController.UpdateProfile)

	plans := authed.Group("/plans")
	plans.POST("", planController.CreatePlan)
	plans.GET("", planController.ListPlans)
	plans.GET("/:planId", planController.GetPlan)
	plans.PUT("/:planId", planController.UpdatePlan)
	plans.DELETE("/:planId", planController.DeletePlan)
	plans.POST("/:planId/archive", planController.ArchivePlan)
	plans.POST("/:planId/share", planController.CreateShareLink)
	plans.POST("/:planId/generate", generationController.GeneratePlan)
	plans.GET("/:planId/export", exportController.ExportPlanPDF)

	plans.GET("/:planId/fixed-points", fixedPointController.ListFixedPoints)
	plans.POST("/:planId/fixed-points", fixedPointController.AddFixedPoint)
	plans.PUT("/:planId/fixed-points/:pointId", fixedPointController.UpdateFixedPoint)
	plans.DELETE("/:planId/fixed-points/:pointId", fixedPointController.DeleteFixedPoint)

	feedback := authed.Group("/feedback")
	feedback.POST("", feedbackController.SubmitFeedback)
	feedback.GET("/:planId", feedbackController.GetFeedback)
}

package main

import (
	"context"
	"net/http"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/clienthub/customers-service/internal/app"
	"github.com/clienthub/customers-service/internal/config"
	"github.com/clienthub/customers-service/internal/controllers"
	"github.com/clienthub/customers-service/internal/database"
	"github.com/clienthub/customers-service/internal/graph"
	"github.com/clienthub/customers-service/internal/metrics"
	"github.com/clienthub/customers-service/internal/middleware"
	"github.com/clienthub/customers-service/internal/repositories"
	"github.com/clienthub/customers-service/internal/routes"
	"github.com/clienthub/customers-service/internal/services"
	"github.com/clienthub/customers-service/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	if cfg.RunMigrations {
		if err := database.RunMigrations(cfg.DBUrl, cfg.MigrationsPath); err != nil {
			utils.Logger.WithError(err).Fatal("Failed to run database migrations")
		}
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize customers-service:", err)
	}
	defer application.Close()

	userRepo := repositories.NewUserRepository(application.DB)
	roleRepo := repositories.NewUserRoleRepository(application.DB)
	sessionRepo := repositories.NewSessionRepository(application.DB)
	cityRepo := repositories.NewCityRepository(application.DB)
	statusRepo := repositories.NewSocialStatusRepository(application.DB)
	customerRepo := repositories.NewCustomerRepository(application.DB)

	authService := services.NewAuthService(userRepo, sessionRepo, cfg)
	userService := services.NewUserService(userRepo, roleRepo)
	cityService := services.NewCityService(cityRepo, customerRepo)
	socialStatusService := services.NewSocialStatusService(statusRepo, customerRepo)
	customerService := services.NewCustomerService(customerRepo, cityRepo, statusRepo)
	cleanupService := services.NewSessionCleanupService(sessionRepo)

	if cfg.SeedSampleData {
		if err := app.SeedSampleData(
			context.Background(),
			cfg,
			userRepo,
			userService,
			cityService,
			socialStatusService,
			customerService,
		); err != nil {
			utils.Logger.WithError(err).Fatal("Failed to seed sample data")
		}
	}

	resolver := graph.NewResolver(
		authService,
		userService,
		cityService,
		socialStatusService,
		customerService,
	)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to build GraphQL schema")
	}

	graphqlController := controllers.NewGraphQLController(schema)
	healthController := controllers.NewHealthController(application)

	router := mux.NewRouter()

	// Public
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)
	router.Handle(routes.Metrics, metrics.Handler()).Methods(http.MethodGet)

	// The GraphQL endpoint accepts anonymous requests so signIn and
	// refreshSession can run; the resolvers gate everything else.
	api := router.NewRoute().Subrouter()
	api.Use(middleware.OptionalAuthMiddleware(cfg.RSAPublicKey))
	api.HandleFunc(routes.GraphQL, graphqlController.ExecuteHandler).Methods(http.MethodPost)

	c := cron.New()
	_, cleanupErr := c.AddFunc("5 0 * * *", func() {
		if e := cleanupService.CleanupDaily(context.Background()); e != nil {
			utils.Logger.WithError(e).Error("Scheduled session cleanup failed")
		}
	})
	if cleanupErr != nil {
		utils.Logger.WithError(cleanupErr).Fatal("Failed to schedule session cleanup cron")
	}
	c.Start()

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppURL},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(metrics.InstrumentHandler(router))); err != nil {
		utils.Logger.Fatal("customers-service failed to start:", err)
	}
}

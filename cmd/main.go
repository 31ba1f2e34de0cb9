package main

import (
	"fmt"
	"os"

	"github.com/initium-os/axiom-backend/internal/db"
	"github.com/initium-os/axiom-backend/internal/handlers"
	"github.com/initium-os/axiom-backend/internal/logger"
	"github.com/initium-os/axiom-backend/internal/middleware"
	"github.com/initium-os/axiom-backend/internal/repos"
	"github.com/initium-os/axiom-backend/internal/server"
	"github.com/initium-os/axiom-backend/internal/services"
	"github.com/initium-os/axiom-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	objectiveRepo := repos.NewObjectiveRepo(thePG, log)
	decisionLogRepo := repos.NewDecisionLogRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	authService := services.NewAuthService(log, jwtSecretKey)
	objectiveService := services.NewObjectiveService(thePG, log, objectiveRepo)

	// The completion credential is read exactly once here; absence selects
	// the process-wide simulated analysis mode.
	var aiClient services.AIClient
	if os.Getenv("OPENAI_API_KEY") != "" {
		aiClient, err = services.NewOpenAIClient(log)
		if err != nil {
			log.Error("Could not init OpenAIClient", "error", err)
			os.Exit(1)
		}
	} else {
		log.Warn("OPENAI_API_KEY not set, decision analysis runs in simulated mode")
	}
	decisionService := services.NewDecisionService(thePG, log, objectiveRepo, decisionLogRepo, aiClient)

	// Handlers
	log.Info("Setting up handlers from main...")
	objectiveHandler := handlers.NewObjectiveHandler(objectiveService)
	decisionHandler := handlers.NewDecisionHandler(decisionService)

	// Middleware
	log.Info("Setting up middleware from main...")
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AuthMiddleware:   authMiddleware,
		ObjectiveHandler: objectiveHandler,
		DecisionHandler:  decisionHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"shipping/cmd"
	httpin "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := connectDB(configs)
	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db)

	jobManager := jobs.NewJobManager(
		app.CreateListLowStockQueryHandler(),
		configs.LowStockSchedule,
		configs.LowStockThreshold,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs, db, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		APIKey:            goDotEnvVariable("API_KEY"),
		LowStockSchedule:  goDotEnvVariable("LOW_STOCK_SCHEDULE"),
		LowStockThreshold: goDotEnvVariableInt("LOW_STOCK_THRESHOLD"),
	}
	if config.LowStockSchedule == "" {
		config.LowStockSchedule = "@hourly"
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvVariableInt(key string) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Error parsing %s as integer: %v", key, err)
	}
	return value
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	// TranslateError maps driver constraint failures onto gorm's sentinel
	// errors, which the repositories rely on.
	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config, db *gorm.DB, logger *slog.Logger) {
	e := echo.New()
	e.Use(httpin.RequestLoggerMiddleware(logger))

	e.GET("/health", func(c echo.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return c.String(http.StatusServiceUnavailable, "Unhealthy")
		}
		if err := sqlDB.PingContext(c.Request().Context()); err != nil {
			return c.String(http.StatusServiceUnavailable, "Unhealthy")
		}
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreateAddPackageCommandHandler(),
		app.CreateRemovePackageCommandHandler(),
		app.CreateShipShipmentCommandHandler(),
		app.CreatePackPackageCommandHandler(),
		app.CreateAddItemLineCommandHandler(),
		app.CreateRemoveItemLineCommandHandler(),
		app.CreateListShipmentsQueryHandler(),
		app.CreateGetShipmentQueryHandler(),
		app.CreateGetPackageQueryHandler(),
		app.CreateListItemsQueryHandler(),
		app.CreateGetItemStockQueryHandler(),
	)

	api := e.Group("/api/v1", httpin.APIKeyMiddleware(configs.APIKey))
	server.RegisterRoutes(api)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

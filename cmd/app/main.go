package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"dotrack/cmd"
	httpin "dotrack/internal/adapters/in/http"
	"dotrack/internal/adapters/out/postgres/dorepo"
	"dotrack/internal/adapters/out/postgres/historyrepo"
	"dotrack/internal/adapters/out/postgres/partyrepo"
	"dotrack/internal/adapters/out/postgres/tokenrepo"
	"dotrack/internal/adapters/out/postgres/userrepo"
	"dotrack/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&dorepo.DeliveryOrderDTO{},
		&historyrepo.EntryDTO{},
		&partyrepo.PartyDTO{},
		&userrepo.UserDTO{},
		&tokenrepo.ResetTokenDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	doc, err := httpin.LoadOpenAPISpec()
	if err != nil {
		log.Fatalf("Failed to load API document: %v", err)
	}
	httpin.RegisterOpenAPIRoute(e, doc)
	if err = httpin.RegisterSwaggerUI(e, doc); err != nil {
		log.Fatalf("Failed to register swagger UI: %v", err)
	}

	servers.RegisterHandlersWithBaseURL(e, app.CreateHTTPServer(), "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

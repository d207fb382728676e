package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"finder/cmd"
	"finder/internal/adapters/out/cache"
	"finder/internal/adapters/out/postgres/jobrepo"
	"finder/internal/adapters/out/postgres/workerrepo"
	"finder/internal/adapters/out/push"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	ctx := context.Background()

	gormDB := mustOpenDB(configs)
	pushSender := mustCreatePushSender(ctx, configs, logger)
	categoryCache := mustCreateCategoryCache(ctx, configs)

	app := cmd.NewCompositionRoot(configs, gormDB, pushSender, categoryCache, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
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
		AwsRegion:  goDotEnvVariable("AWS_REGION"),
		RedisURL:   goDotEnvVariable("REDIS_URL"),
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&jobrepo.JobDTO{},
		&workerrepo.WorkerDTO{},
		&workerrepo.NotificationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func mustCreatePushSender(ctx context.Context, configs cmd.Config, logger *slog.Logger) *push.SNSPushSender {
	sender, err := push.NewSNSPushSender(ctx, configs.AwsRegion, logger)
	if err != nil {
		log.Fatalf("Failed to create SNS push sender: %v", err)
	}
	return sender
}

func mustCreateCategoryCache(ctx context.Context, configs cmd.Config) *cache.RedisCategoryCache {
	opts, err := redis.ParseURL(configs.RedisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	return cache.NewRedisCategoryCache(client)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

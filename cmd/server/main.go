package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/draftdeck/draftdeck/configs"
	"github.com/draftdeck/draftdeck/internal/api/handlers"
	job "github.com/draftdeck/draftdeck/internal/jobs"
	"github.com/draftdeck/draftdeck/internal/repository"
	"github.com/draftdeck/draftdeck/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()
	ctx := context.Background()

	var repo repository.WorkspaceRepository
	var db *sql.DB

	if cfg.PostgresURI != "" {
		var err error
		db, err = sql.Open("postgres", cfg.PostgresURI)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer closeDB(db)

		if err := db.Ping(); err != nil {
			log.Fatalf("Database is unreachable: %v", err)
		}
		if err := repository.EnsureSnapshotTable(ctx, db); err != nil {
			log.Fatalf("Failed to prepare snapshot table: %v", err)
		}
		repo = repository.NewPostgresWorkspaceRepository(db)
	} else {
		repo = repository.NewFileWorkspaceRepository(cfg.SnapshotPath)
	}

	clock := service.NewSystemClock()
	state := service.LoadState(ctx, repo, clock)

	templateService := service.NewTemplateService(state, clock)
	postService := service.NewPostService(state, clock)
	workspaceService := service.NewWorkspaceService(state)
	assetService := service.NewAssetService(*cfg)

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	api := app.Group("/api")

	workspace := handlers.NewWorkspaceHandler(workspaceService)
	api.Get("/workspace", workspace.GetWorkspace)
	api.Get("/workspace/stats", workspace.GetStats)
	api.Get("/activity", workspace.ListActivity)

	template := handlers.NewTemplateHandler(templateService)
	api.Get("/templates", template.ListTemplates)
	api.Post("/templates/save", template.SaveTemplate)
	api.Post("/templates/remove", template.RemoveTemplate)

	post := handlers.NewPostHandler(postService)
	api.Get("/posts", post.ListPosts)
	api.Post("/posts/compose", post.ComposePost)
	api.Post("/posts/approve", post.ApprovePost)
	api.Post("/posts/schedule", post.SchedulePost)
	api.Post("/posts/publish", post.PublishPost)
	api.Post("/posts/remove", post.RemovePost)

	asset := handlers.NewAssetHandler(assetService)
	api.Post("/assets/upload", asset.UploadAsset)

	// cron jobs
	snapshotJob := job.NewSnapshotJob(state, repo)

	c := cron.New()
	c.AddFunc(cfg.SnapshotEvery, snapshotJob.PersistSnapshot)
	c.Start()

	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost%s", cfg.ListenAddr)

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	if db != nil {
		closeDB(db)
	}
	log.Println("Server shutdown complete.")
}

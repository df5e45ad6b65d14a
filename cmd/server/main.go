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

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	config "github.com/sandeshm27/postline/configs"
	"github.com/sandeshm27/postline/internal/api/handlers"
	"github.com/sandeshm27/postline/internal/api/middleware"
	"github.com/sandeshm27/postline/internal/migrations"
	"github.com/sandeshm27/postline/internal/repository"
	"github.com/sandeshm27/postline/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	if err := runMigrations(context.Background(), db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	contentRepo := repository.NewContentRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	phoneNumberRepo := repository.NewPhoneNumberRepository(db)
	postRepo := repository.NewPostRepository(db)
	postLogRepo := repository.NewPostLogRepository(db)

	contentService := service.NewContentService(contentRepo, mediaRepo)
	phoneNumberService := service.NewPhoneNumberService(phoneNumberRepo)
	postService := service.NewPostService(db, contentRepo, mediaRepo, postRepo, postLogRepo)

	authMiddleware := middleware.NewAuthMiddleware(*cfg)

	phone := handlers.NewPhoneNumberHandler(*cfg, phoneNumberService)
	app.Post("/phone/auth", phone.Authenticate)

	post := handlers.NewPostHandler(postService)
	app.Get("/post", authMiddleware.ResolveAuth(), post.GeneratePost)
	app.Post("/post/:post_uuid/status", authMiddleware.ResolveAuth(), post.UpdatePostStatus)

	admin := app.Group("/admin")
	admin.Use(authMiddleware.RequireAuth())

	admin.Post("/phone_number", phone.CreatePhoneNumber)
	admin.Patch("/phone_number", phone.UpdatePhoneNumber)
	admin.Delete("/phone_number/:id", phone.DeletePhoneNumber)

	content := handlers.NewContentHandler(contentService)
	admin.Post("/content", content.CreateContent)
	admin.Get("/content/:id", content.GetContent)
	admin.Patch("/content/:id", content.UpdateContent)
	admin.Delete("/content/:id", content.DeleteContent)

	admin.Get("/post_history", post.GetPostHistory)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

	gracefulShutdown(app, db)
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
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

	closeDB(db)
	log.Println("Server shutdown complete.")
}

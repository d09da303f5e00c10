package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"music-catalog/core/cache"
	"music-catalog/core/config"
	"music-catalog/core/database"
	"music-catalog/core/loader"
	"music-catalog/core/logger"
	"music-catalog/core/middleware/auth"
	"music-catalog/core/middleware/rayid"
	"music-catalog/core/provider"

	"music-catalog/feature/album"
	"music-catalog/feature/genre"
	"music-catalog/feature/library"
	"music-catalog/feature/library/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "music-catalog/docs/swagger"
)

// @title Music Catalog API
// @version 1.0
// @description API for aggregated music metadata.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the music catalog server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := db.AutoMigrate(models.All()...); err != nil {
			logg.Fatal("Failed to migrate database", zap.Error(err))
		}

		// 4. Pick the provider clients once. Request paths never look at
		// the policy strings again; a disabled provider is a nil client.
		var catalogClient provider.Catalog
		if cfg.Provider.ExternalCatalog() {
			catalogClient = provider.NewCatalog(cfg.Provider)
			logg.Info("Catalog provider enabled", zap.String("provider", cfg.Provider.DataProvider))
		}
		var tagsClient provider.Tags
		if cfg.Provider.LastfmGenres() {
			tagsClient = provider.NewTags(cfg.Provider)
			logg.Info("Tags provider enabled", zap.String("provider", cfg.Provider.GenreProvider))
		}

		store := cache.New()
		saver := library.NewSaver(db, logg)

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(album.NewFeature(db, store, saver, catalogClient, cfg.Provider, logg))
		mgr.Register(genre.NewFeature(db, store, saver, tagsClient, cfg.Provider, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

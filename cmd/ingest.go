package cmd

import (
	"context"
	"fmt"

	"music-catalog/core/config"
	"music-catalog/core/database"
	"music-catalog/core/logger"
	"music-catalog/core/provider"
	"music-catalog/feature/library"
	"music-catalog/feature/library/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ingestCmd pulls one or more artists from the catalog provider into the
// local store, outside of the lazy request-driven path.
var ingestCmd = &cobra.Command{
	Use:   "ingest [artist name]...",
	Short: "Ingest artists from the catalog provider",
	Long: `Fetch each named artist from the catalog provider and persist the
artist, its albums, tracks and genres into the local store.

Examples:
  # Ingest a single artist
  ingest "Daft Punk"

  # Ingest several artists in one run
  ingest "Daft Punk" "Radiohead" "Justice"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func init() {
	RootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if !cfg.Provider.ExternalCatalog() {
		return fmt.Errorf("ingest requires an external data provider, got %q", cfg.Provider.DataProvider)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	catalog := provider.NewCatalog(cfg.Provider)
	saver := library.NewSaver(db, l)

	failures := 0
	for _, name := range args {
		l.Info("Ingesting artist", zap.String("artist", name))

		full, err := catalog.GetArtist(ctx, name)
		if err != nil {
			l.Error("Artist fetch failed", zap.String("artist", name), zap.Error(err))
			failures++
			continue
		}

		artist, err := saver.SaveArtist(ctx, full)
		if err != nil {
			l.Error("Artist save failed", zap.String("artist", name), zap.Error(err))
			failures++
			continue
		}

		l.Info("Artist ingested",
			zap.String("artist", artist.Name),
			zap.Uint("id", artist.ID),
			zap.Int("albums", len(full.Albums)),
		)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d artists failed to ingest", failures, len(args))
	}
	return nil
}

package main

import (
	"os"

	"estate-portal/internal/config"
	"estate-portal/internal/database"
	"estate-portal/internal/search"
	"estate-portal/internal/seed"
	"estate-portal/internal/storage"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	skipImages bool
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo seller and property catalog",
	Long: `Creates the demo seller account and fifteen bilingual demo
listings with placeholder photos. Safe to run repeatedly; existing
listings are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}

		log := logrus.New()
		if cfg.Logging.Format == "json" {
			log.SetFormatter(&logrus.JSONFormatter{})
		}

		db, err := database.New(cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.InitSchema(); err != nil {
			return err
		}

		store, err := storage.NewMediaStore(cfg.Media.Root)
		if err != nil {
			return err
		}

		var searchClient *search.SearchClient
		if cfg.Search.Meilisearch.Host != "" {
			searchClient = search.NewSearchClient(cfg.Search.Meilisearch.Host, cfg.Search.Meilisearch.APIKey)
			if err := searchClient.InitIndex(); err != nil {
				log.WithError(err).Warn("failed to initialize search index")
				searchClient = nil
			}
		}

		seeder := seed.NewSeeder(db, store, searchClient, log)
		return seeder.Run(seed.Options{
			SkipImages: skipImages,
			BcryptCost: cfg.Auth.BcryptCost,
		})
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "config/config.yaml", "path to the YAML config file")
	rootCmd.Flags().BoolVar(&skipImages, "skip-images", false, "seed listings without downloading photos")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"cafeapi/internal/config"
	"cafeapi/internal/database"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "cafes",
	Short: "Cafe & Wifi API",
	Long: `cafes serves a small JSON API over a table of cafes: random pick,
full listing, search by location, add, price update and removal of closed cafes.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Optional config file (yaml, json, toml, env); environment variables take precedence")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// setup loads config, opens the database and makes sure the table exists.
func setup() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	switch {
	case cfg.GinMode != "":
		gin.SetMode(cfg.GinMode)
	case cfg.IsProdLike():
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL, database.ParseLogLevel(cfg.DBLogLevel))
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, nil, err
	}

	return cfg, db, nil
}

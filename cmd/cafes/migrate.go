package main

import (
	"log"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the cafe table if it does not exist",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, _, err := setup()
		if err != nil {
			return err
		}
		log.Printf("migration completed: database=%s", cfg.DatabaseURL)
		return nil
	},
}

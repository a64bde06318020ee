package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Truncate all content tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db := openDB()

		// children first; identities restart so reseeded data lines up
		tables := []string{
			"activities",
			"votes",
			"question_tags",
			"answers",
			"questions",
			"tags",
			"user_profiles",
			"users",
		}

		for _, table := range tables {
			if err := db.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
				return fmt.Errorf("truncating %s: %w", table, err)
			}
			fmt.Printf("Truncated %s\n", table)
		}

		return nil
	},
}

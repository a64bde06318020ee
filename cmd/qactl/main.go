package main

import (
	"fmt"
	"log"
	"os"

	"qa-forum/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "qactl",
	Short: "Maintenance CLI for the Q&A forum database",
	Long: `qactl manages the forum's database outside the request path:
bulk-fills test data, truncates content tables and creates users.`,
}

func openDB() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()
	return config.InitDB(cfg.DatabaseDSN)
}

func main() {
	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(createUserCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"qa-forum/models"
	"qa-forum/repositories"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	createUserLogin    string
	createUserEmail    string
	createUserPassword string
	createUserStaff    bool
)

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Create a single user account",
	RunE: func(cmd *cobra.Command, args []string) error {
		db := openDB()
		userRepo := repositories.NewUserRepository(db)

		hashed, err := bcrypt.GenerateFromPassword([]byte(createUserPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := &models.User{
			Login:    createUserLogin,
			Email:    createUserEmail,
			Password: string(hashed),
			IsActive: true,
			IsStaff:  createUserStaff,
			Profile: &models.UserProfile{
				DisplayName: createUserLogin,
			},
		}

		if err := userRepo.Create(user); err != nil {
			return fmt.Errorf("creating user: %w", err)
		}

		fmt.Printf("Created user %s (id %d)\n", user.Login, user.ID)
		return nil
	},
}

func init() {
	createUserCmd.Flags().StringVar(&createUserLogin, "login", "", "unique login")
	createUserCmd.Flags().StringVar(&createUserEmail, "email", "", "unique email")
	createUserCmd.Flags().StringVar(&createUserPassword, "password", "", "password")
	createUserCmd.Flags().BoolVar(&createUserStaff, "staff", false, "grant staff flag")
	createUserCmd.MarkFlagRequired("login")
	createUserCmd.MarkFlagRequired("email")
	createUserCmd.MarkFlagRequired("password")
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/franciscosanchezn/bistro-boss-api/internal/auth"
	"github.com/franciscosanchezn/bistro-boss-api/internal/config"
	"github.com/franciscosanchezn/bistro-boss-api/internal/models"
	"github.com/franciscosanchezn/bistro-boss-api/internal/services"
)

var devAdminEmail string

// devAdminCmd bootstraps the first admin, since promotion itself requires one
var devAdminCmd = &cobra.Command{
	Use:   "dev-admin",
	Short: "Create or promote an admin account and print a bearer token for it",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.LoadConfig()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		s, err := openStore(ctx, conf)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close(context.Background())

		users := services.NewUserService(s)
		if _, _, err := users.Register(ctx, &models.User{Name: "Bistro Admin", Email: devAdminEmail}); err != nil {
			return err
		}
		user, err := s.FindUserByEmail(ctx, devAdminEmail)
		if err != nil {
			return err
		}
		if !user.IsAdmin() {
			if _, err := users.PromoteToAdmin(ctx, user.ID); err != nil {
				return err
			}
		}

		token, err := auth.NewTokenService(conf.TokenSecret, conf.TokenTTL).
			Issue(map[string]interface{}{"email": devAdminEmail})
		if err != nil {
			return err
		}

		fmt.Printf("Admin account ready: %s (ID: %s)\n", devAdminEmail, user.ID)
		fmt.Printf("Token (valid %s):\n%s\n", conf.TokenTTL, token)
		fmt.Println("\nUse it for testing:")
		fmt.Printf("curl -H 'Authorization: Bearer %s' http://localhost:%d/admin-stats\n", token, conf.Port)
		return nil
	},
}

func init() {
	devAdminCmd.Flags().StringVar(&devAdminEmail, "email", "admin@bistro.com", "Email of the admin account")
}

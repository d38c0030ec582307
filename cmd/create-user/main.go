package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"lexipro-backend/config"
	"lexipro-backend/models"
	"lexipro-backend/repository"
	"lexipro-backend/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the create-user command
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a LexiPro account",
		Long: `Create a client or lawyer account in the users table.
Example: create-user --email sarah@firm.test --password secret --name "Sarah Mitchell" --role lawyer`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			name, _ := cmd.Flags().GetString("name")
			role, _ := cmd.Flags().GetString("role")
			firm, _ := cmd.Flags().GetString("firm")

			return run(cmd, service.CreateUserRequest{
				Email:    email,
				Password: password,
				Name:     name,
				Role:     models.Role(role),
				FirmName: firm,
			})
		},
	}

	cmd.Flags().String("email", "", "Login email (required)")
	cmd.Flags().String("password", "", "Login password (required)")
	cmd.Flags().String("name", "", "Display name; client dashboards match cases by this name (required)")
	cmd.Flags().String("role", string(models.RoleClient), "Account role: client or lawyer")
	cmd.Flags().String("firm", "", "Firm name for lawyer accounts")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func run(cmd *cobra.Command, req service.CreateUserRequest) error {
	config.LoadDotEnv()

	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		return errors.New("DATABASE_URL is required")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	auth := service.NewAuthService(service.WithUserStore(repository.NewUserRepository(pool)))
	user, err := auth.CreateUser(ctx, req)
	if errors.Is(err, service.ErrUserExists) {
		cmd.Printf("User with email %s already exists\n", req.Email)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	cmd.Println("✅ User created successfully!")
	cmd.Printf("   ID: %s\n", user.ID)
	cmd.Printf("   Email: %s\n", user.Email)
	cmd.Printf("   Name: %s\n", user.Name)
	cmd.Printf("   Role: %s\n", user.Role)
	return nil
}

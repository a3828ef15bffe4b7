package migrate

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"faultdesk/internal/domain/user"
	"faultdesk/internal/infrastructure/auth"
	"faultdesk/internal/infrastructure/config"
	"faultdesk/internal/infrastructure/database"
	"faultdesk/internal/infrastructure/persistence/migrations"
	"faultdesk/internal/infrastructure/repository"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/biztime"
	"faultdesk/internal/shared/logger"
)

var (
	env           string
	adminUsername string
	adminPassword string
	adminCommand  string
	adminUnit     string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage the database schema and seed the initial administrator account.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newSeedAdminCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all database migrations to bring the schema up to date.`,
		RunE:  runUp,
	}
}

func newSeedAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the initial administrator account",
		Long:  `Create an administrator account so the system can be bootstrapped. Fails if the username is already taken.`,
		RunE:  runSeedAdmin,
	}

	cmd.Flags().StringVarP(&adminUsername, "username", "u", "", "Username for the administrator (required)")
	cmd.Flags().StringVarP(&adminPassword, "password", "p", "", "Password for the administrator (required)")
	cmd.Flags().StringVar(&adminCommand, "command", "", "Command the administrator belongs to (required)")
	cmd.Flags().StringVar(&adminUnit, "unit", "", "Unit the administrator belongs to (required)")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")
	cmd.MarkFlagRequired("command")
	cmd.MarkFlagRequired("unit")

	return cmd
}

func initEnv() (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if err := biztime.Init(""); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	_, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running migrations", "env", env)

	if err := migrations.MigrateAll(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runSeedAdmin(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	if len(adminPassword) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	hash, err := hasher.Hash(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin, err := user.NewUser(adminUsername, hash, authorization.RoleAdmin, adminCommand, adminUnit)
	if err != nil {
		return fmt.Errorf("invalid administrator details: %w", err)
	}

	repo := repository.NewUserRepository(database.Get())
	if err := repo.Save(context.Background(), admin); err != nil {
		return fmt.Errorf("failed to create administrator: %w", err)
	}

	log.Infow("administrator account created",
		"username", admin.Username(),
		"command", admin.Command(),
		"unit", admin.Unit())
	return nil
}

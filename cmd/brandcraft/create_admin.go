package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/brandcraft/internal/db"
	"github.com/jonathan/brandcraft/internal/server"
)

// adminPasswordEnv can supply the password so it stays out of shell history.
const adminPasswordEnv = "BRANDCRAFT_ADMIN_PASSWORD"

var (
	adminUsername string
	adminEmail    string
	adminPassword string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create or promote an administrator account",
	Long: "Creates an admin account, or promotes the existing account with that email and resets its password. " +
		"The password may be given with --password or the " + adminPasswordEnv + " environment variable.",
	RunE: runCreateAdmin,
}

func init() {
	createAdminCmd.Flags().StringVar(&adminUsername, "username", "admin", "Username for a newly created account")
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Admin email address (required)")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Admin password")

	if err := createAdminCmd.MarkFlagRequired("email"); err != nil {
		panic(fmt.Sprintf("failed to mark email flag as required: %v", err))
	}

	rootCmd.AddCommand(createAdminCmd)
}

func runCreateAdmin(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	password := adminPassword
	if password == "" {
		password = os.Getenv(adminPasswordEnv)
	}
	if len(password) < 6 {
		return fmt.Errorf("admin password must be at least 6 characters (use --password or %s)", adminPasswordEnv)
	}

	passwordConfig, err := appConfig.Password()
	if err != nil {
		return err
	}

	database, err := db.Open(ctx, appConfig.DatabaseDriver, appConfig.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return err
	}

	user, created, err := server.NewUserService(database, passwordConfig).EnsureAdmin(ctx, adminUsername, adminEmail, password)
	if err != nil {
		return err
	}

	verb := "Promoted"
	if created {
		verb = "Created"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s admin %s <%s> (%s)\n", verb, user.Username, user.Email, user.ID)
	return nil
}

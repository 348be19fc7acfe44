package main

import (
	"fmt"
	"os"
	"strings"

	"levantamiento_service/internal/domain/auth"
	"levantamiento_service/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cfg *config.Config

var (
	flagBackendURL string
	flagUserID     string
	flagRole       string
)

var rootCmd = &cobra.Command{
	Use:   "surveyctl",
	Short: "Review work surveys block by block",
	Long:  "Approves, rejects and reopens the blocks of a work survey (levantamiento) against a remote backend, and seeds local stores.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if flagBackendURL != "" {
			cfg.Backend.BaseURL = flagBackendURL
		}
		if flagUserID != "" {
			cfg.Principal.UserID = flagUserID
		}
		if flagRole != "" {
			cfg.Principal.Role = flagRole
		}

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackendURL, "backend", "", "base URL of the survey backend (overrides SURVEYS_BACKEND_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&flagUserID, "user", "", "user id to act as")
	rootCmd.PersistentFlags().StringVar(&flagRole, "role", "", "role to act as (admin, reviewer, requester)")
}

// principal returns the configured identity, refusing unknown roles up front.
func principal() (auth.Principal, error) {
	if strings.TrimSpace(cfg.Principal.UserID) == "" {
		return auth.Principal{}, eris.New("user id is required (--user or SURVEYS_PRINCIPAL_USER_ID)")
	}
	if _, ok := auth.ParseRole(cfg.Principal.Role); !ok {
		return auth.Principal{}, eris.Errorf("unknown role %q", cfg.Principal.Role)
	}
	return cfg.Principal.ToPrincipal(), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

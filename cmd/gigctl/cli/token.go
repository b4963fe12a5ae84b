package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	authsvc "github.com/presetapp/gigboard/internal/services/auth"
)

func NewTokenCommand() *cobra.Command {
	var (
		userID string
		email  string
		role   string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development access token",
		Long: `Sign an access token with the configured JWT secret. Intended for local
testing against the API; production tokens come from the auth provider.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if userID == "" {
				userID = uuid.NewString()
			}

			manager := authsvc.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.Audience, ttl)
			token, expiresAt, err := manager.GenerateAccessToken(userID, email, role)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "user_id:    %s\n", userID)
			fmt.Fprintf(out, "expires_at: %s\n", expiresAt.Format(time.RFC3339))
			fmt.Fprintln(out, token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "subject uuid (random when empty)")
	cmd.Flags().StringVar(&email, "email", "dev@example.com", "email claim")
	cmd.Flags().StringVar(&role, "role", "authenticated", "role claim")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")

	return cmd
}

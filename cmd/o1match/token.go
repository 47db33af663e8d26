package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/o1-match/internal/server"
)

func newTokenCmd(c *cli) *cobra.Command {
	var clientID string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the match API",
		Long:  "Sign a JWT with JWT_SECRET for an API client. A random client id is used when none is given.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			id := uuid.New()
			if clientID != "" {
				parsed, err := uuid.Parse(clientID)
				if err != nil {
					return fmt.Errorf("invalid --client-id: %w", err)
				}
				id = parsed
			}

			jwtConfig, err := c.cfg.JWT()
			if err != nil {
				return err
			}
			token, err := server.NewJWTService(jwtConfig).GenerateToken(id)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.out, token)
			return err
		},
	}

	cmd.Flags().StringVar(&clientID, "client-id", "", "Client UUID to embed in the token")
	return cmd
}

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-walker/config"
	"github.com/beka-birhanu/vinom-walker/infrastruture/token"
	"github.com/spf13/cobra"
)

var errMissingSecret = errors.New("JWT_SECRET is not set")

type tokenFlags struct {
	subject string
	ttl     time.Duration
}

func newTokenCmd() *cobra.Command {
	var flags tokenFlags
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the protected API routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if config.Envs.JWTSecret == "" {
				return errMissingSecret
			}
			t, err := token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer).Generate(flags.subject, flags.ttl)
			if err != nil {
				return fmt.Errorf("generate token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.subject, "subject", "operator", "Subject claim of the token")
	f.DurationVar(&flags.ttl, "ttl", 24*time.Hour, "Lifetime of the token")
	return cmd
}

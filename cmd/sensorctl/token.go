package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"sensorhub/internal/delivery/http/middleware"
	"sensorhub/internal/infra/auth"
)

func runToken(args []string, stdout io.Writer) error {
	var (
		secret  string
		subject string
		ttl     time.Duration
	)

	flagSet := newFlagSet("token")
	flagSet.StringVar(&secret, "secret", os.Getenv("SECRETKEY_ADMIN"), "admin signing key (secretKey.admin)")
	flagSet.StringVar(&subject, "subject", "operator", "who the token is issued to")
	flagSet.DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if ttl <= 0 {
		return fmt.Errorf("--ttl must be positive")
	}

	token, err := auth.NewJWTService().GenerateToken(subject, []string{middleware.RoleAdmin}, ttl, secret)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, token)

	return err
}

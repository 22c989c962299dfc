package main

import (
	"context"
	"io"
	"os"

	"loginprobe/internal/login"
	"loginprobe/pkg/config"
	"loginprobe/pkg/logger"
	"loginprobe/pkg/validator"
)

func main() {
	config.LoadEnvFile()
	cfg := config.Load()

	log := logger.NewWithWriter("login", os.Stderr, cfg.Log.Level)
	requester := login.NewRequester(nil, validator.New(), log)

	run(context.Background(), os.Stdout, requester, log, cfg)
}

// run makes at most one login attempt and prints its outcome. Failures are
// printed, never returned, so the exit status is the same either way.
func run(ctx context.Context, out io.Writer, requester *login.Requester, log logger.Logger, cfg *config.Config) {
	if err := cfg.ValidateCore(); err != nil {
		log.Error("Configuration incomplete", map[string]interface{}{"error": err.Error()})
		login.Report(out, nil, err)
		return
	}

	creds := login.Credentials{
		Username: cfg.Login.Username,
		Password: cfg.Login.Password,
	}

	resp, err := requester.AttemptLogin(ctx, cfg.Login.URL, creds)
	login.Report(out, resp, err)
}

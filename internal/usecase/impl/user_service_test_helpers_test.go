package impl

import (
	"io"
	"log/slog"
	"time"

	"gatehouse/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:   4,
			DefaultGuard: "web",
			RememberMe: config.RememberMeConfig{
				TTL:           30 * 24 * time.Hour,
				RecycleBuffer: time.Minute,
			},
			AccessTokens: config.AccessTokensConfig{
				Prefix:     "oat_",
				Delimiter:  ".",
				Type:       "auth_token",
				SecretSize: 40,
			},
		},
	}
}

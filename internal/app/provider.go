package app

import (
	"github.com/ferdiebergado/accounts/internal/config"
	"github.com/ferdiebergado/accounts/internal/platform/hash"
	"github.com/ferdiebergado/accounts/internal/platform/metrics"
	"github.com/ferdiebergado/accounts/internal/platform/router"
	"github.com/ferdiebergado/accounts/internal/platform/validation"
)

type Provider struct {
	Validator validation.Validator
	Hasher    hash.Hasher
	Router    router.Router
	Metrics   *metrics.Metrics
}

func newProvider(cfg *config.Config, securityKey string) *Provider {
	return &Provider{
		Validator: validation.NewGoPlaygroundValidator(),
		Hasher:    hash.NewArgon2Hasher(cfg.Argon2, securityKey),
		Router:    router.NewGoexpressRouter(),
		Metrics:   metrics.New(),
	}
}

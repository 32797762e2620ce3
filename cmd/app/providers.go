package main

import (
	"github.com/yanqian/linkrelay/internal/domain/relay"
	"github.com/yanqian/linkrelay/internal/infra/config"
	"github.com/yanqian/linkrelay/internal/infra/summarizerapi"
)

func provideRelayConfig(cfg *config.Config) relay.Config {
	return relay.Config{
		Rooms: cfg.Relay.Rooms,
	}
}

func provideSummarizerClient(cfg *config.Config) (*summarizerapi.Client, error) {
	return summarizerapi.NewClient(summarizerapi.Config{
		Endpoint:       cfg.Relay.Endpoint,
		ConnectTimeout: cfg.Relay.ConnectTimeout,
		ReadTimeout:    cfg.Relay.ReadTimeout,
		MaxBodyBytes:   cfg.Relay.MaxBodyBytes,
	})
}

//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/linkrelay/internal/bootstrap"
	"github.com/yanqian/linkrelay/internal/domain/relay"
	"github.com/yanqian/linkrelay/internal/infra/config"
	"github.com/yanqian/linkrelay/internal/infra/summarizerapi"
	httpiface "github.com/yanqian/linkrelay/internal/interface/http"
	"github.com/yanqian/linkrelay/pkg/logger"
	"github.com/yanqian/linkrelay/pkg/metrics"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		metrics.NewRelay,
		provideRelayConfig,
		provideSummarizerClient,
		relay.NewService,
		wire.Bind(new(relay.UpstreamClient), new(*summarizerapi.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

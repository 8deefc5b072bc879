//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/cosmic-blueprint/internal/bootstrap"
	"github.com/yanqian/cosmic-blueprint/internal/domain/reading"
	"github.com/yanqian/cosmic-blueprint/internal/infra/config"
	httpiface "github.com/yanqian/cosmic-blueprint/internal/interface/http"
	"github.com/yanqian/cosmic-blueprint/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideReadingConfig,
		provideChatClient,
		provideTokenEstimator,
		provideGeocoder,
		provideReadingCache,
		provideReadingArchive,
		reading.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}

//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/calorie-advisor/internal/bootstrap"
	"github.com/yanqian/calorie-advisor/internal/domain/calorie"
	"github.com/yanqian/calorie-advisor/internal/domain/temperature"
	"github.com/yanqian/calorie-advisor/internal/infra/config"
	"github.com/yanqian/calorie-advisor/internal/infra/scraper"
	"github.com/yanqian/calorie-advisor/internal/infra/selector"
	httpiface "github.com/yanqian/calorie-advisor/internal/interface/http"
	"github.com/yanqian/calorie-advisor/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideFetcher,
		provideSelectorRules,
		provideResolverConfig,
		selector.NewExtractor,
		temperature.NewResolver,
		calorie.NewService,
		wire.Bind(new(temperature.PageFetcher), new(*scraper.Fetcher)),
		wire.Bind(new(temperature.FieldExtractor), new(*selector.Extractor)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

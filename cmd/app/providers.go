package main

import (
	"log/slog"

	"github.com/yanqian/calorie-advisor/internal/domain/temperature"
	"github.com/yanqian/calorie-advisor/internal/infra/config"
	"github.com/yanqian/calorie-advisor/internal/infra/scraper"
	"github.com/yanqian/calorie-advisor/internal/infra/selector"
)

func provideFetcher(cfg *config.Config) *scraper.Fetcher {
	return scraper.NewFetcher(scraper.Config{
		Timeout:        cfg.Scraper.Timeout,
		AcceptLanguage: cfg.Scraper.AcceptLanguage,
		UserAgents:     cfg.Scraper.UserAgents,
	})
}

func provideSelectorRules(cfg *config.Config, logger *slog.Logger) (selector.RuleSet, error) {
	rules, err := selector.LoadFile(cfg.Scraper.RulesPath)
	if err != nil {
		return nil, err
	}
	if err := rules.Require(temperature.TemperatureField); err != nil {
		return nil, err
	}
	logger.Info("selector rules loaded", "path", cfg.Scraper.RulesPath, "fields", rules.Fields())
	return rules, nil
}

func provideResolverConfig(cfg *config.Config) temperature.Config {
	return temperature.Config{BaseURL: cfg.Scraper.BaseURL}
}

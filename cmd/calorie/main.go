package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/yanqian/calorie-advisor/internal/domain/calorie"
	"github.com/yanqian/calorie-advisor/internal/domain/temperature"
	"github.com/yanqian/calorie-advisor/internal/infra/config"
	"github.com/yanqian/calorie-advisor/internal/infra/scraper"
	"github.com/yanqian/calorie-advisor/internal/infra/selector"
	"github.com/yanqian/calorie-advisor/pkg/logger"
)

type cli struct {
	Gender  string        `help:"Gender used by the BMR equation (male or female)." required:""`
	Weight  float64       `help:"Weight in kilograms." required:""`
	Height  float64       `help:"Height in centimeters." required:""`
	Age     int           `help:"Age in years." required:""`
	Country string        `help:"Country name, e.g. lebanon." required:""`
	City    string        `help:"City name, e.g. beirut." required:""`
	Timeout time.Duration `help:"Overall deadline for the lookup." default:"15s"`
}

func main() {
	_ = godotenv.Load()

	var args cli
	kctx := kong.Parse(&args,
		kong.Name("calorie"),
		kong.Description("Estimate today's calorie intake adjusted for the temperature at a location."),
		kong.UsageOnError(),
	)
	kctx.FatalIfErrorf(args.Run())
}

// Run builds the service from config and prints a single estimate.
func (c *cli) Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.NewTo(os.Stderr)

	rules, err := selector.LoadFile(cfg.Scraper.RulesPath)
	if err != nil {
		return err
	}
	if err := rules.Require(temperature.TemperatureField); err != nil {
		return err
	}
	fetcher := scraper.NewFetcher(scraper.Config{
		Timeout:        cfg.Scraper.Timeout,
		AcceptLanguage: cfg.Scraper.AcceptLanguage,
		UserAgents:     cfg.Scraper.UserAgents,
	})
	resolver := temperature.NewResolver(temperature.Config{BaseURL: cfg.Scraper.BaseURL}, fetcher, selector.NewExtractor(rules), log)
	svc := calorie.NewService(resolver, log)

	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()
	return run(ctx, svc, c.request(), os.Stdout)
}

func (c *cli) request() calorie.Request {
	return calorie.Request{
		Gender:  c.Gender,
		Weight:  c.Weight,
		Height:  c.Height,
		Age:     c.Age,
		Country: c.Country,
		City:    c.City,
	}
}

func run(ctx context.Context, svc calorie.Service, req calorie.Request, w io.Writer) error {
	if err := req.Validate(); err != nil {
		return err
	}
	resp, err := svc.Advise(ctx, req)
	if err != nil {
		return err
	}
	if resp.Temperature != nil {
		fmt.Fprintf(w, ">> Temperature: %g °C (%s)\n", *resp.Temperature, resp.SourceURL)
	} else {
		fmt.Fprintf(w, "-- Temperature unavailable: %s (assuming moderate conditions)\n", resp.TemperatureError)
	}
	fmt.Fprintf(w, ">> BMR: %.2f kcal, factor %.1f\n", resp.BMR, resp.TemperatureFactor)
	fmt.Fprintf(w, ">> Daily Calorie Intake: %.2f kcal\n", resp.DailyIntake)
	return nil
}

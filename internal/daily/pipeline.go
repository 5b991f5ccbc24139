// Package daily assembles the morning message from the weather forecast,
// an AI suggestion, the anniversary block and the daily sentence.
package daily

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/chris/morning/internal/anniversary"
	"github.com/chris/morning/internal/compose"
	"github.com/chris/morning/internal/pick"
	"github.com/chris/morning/internal/quote"
	"github.com/chris/morning/internal/weather"
)

type WeatherSource interface {
	Today(ctx context.Context) (weather.Record, error)
}

type QuoteSource interface {
	Today(ctx context.Context) (quote.Quote, error)
}

type Suggester interface {
	Suggest(ctx context.Context, weatherMsg string) (string, error)
}

// Config wires a Pipeline. Advisor may be nil, in which case the
// suggestion block is left out.
type Config struct {
	Weather          WeatherSource
	Quotes           QuoteSource
	Advisor          Suggester
	Engine           *compose.Engine
	Anniversary      time.Time
	AnniversaryStyle anniversary.Style
	WeatherStyle     string
	Reminder         bool
	MaxLength        int
	Rand             pick.Rand
	Logger           *slog.Logger
}

type Pipeline struct {
	cfg Config
	log *slog.Logger
}

func New(cfg Config) *Pipeline {
	if cfg.Rand == nil {
		cfg.Rand = pick.Default()
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{cfg: cfg, log: log}
}

// Compose fetches the day's inputs and renders the full message for now.
// A weather, quote or anniversary failure aborts; a suggestion failure
// only drops that block.
func (p *Pipeline) Compose(ctx context.Context, now time.Time) (string, error) {
	var (
		rec weather.Record
		q   quote.Quote
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if rec, err = p.cfg.Weather.Today(gctx); err != nil {
			return fmt.Errorf("fetching weather: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if q, err = p.cfg.Quotes.Today(gctx); err != nil {
			return fmt.Errorf("fetching daily sentence: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	weatherMsg, err := p.cfg.Engine.WeatherMessage(p.cfg.WeatherStyle, rec, now)
	if err != nil {
		return "", fmt.Errorf("rendering weather: %w", err)
	}

	var suggestion string
	if p.cfg.Advisor != nil {
		suggestion, err = p.cfg.Advisor.Suggest(ctx, weatherMsg)
		if err != nil {
			p.log.Warn("suggestion unavailable, omitting", "error", err)
			suggestion = ""
		}
	}

	anniv, err := anniversary.Generate(p.cfg.Anniversary, now, p.cfg.AnniversaryStyle, p.cfg.Rand)
	if err != nil {
		return "", fmt.Errorf("rendering anniversary: %w", err)
	}

	opts := []compose.ConcatOption{compose.WithMaxLength(p.cfg.MaxLength)}
	if p.cfg.Reminder {
		opts = append(opts, compose.WithReminder(func() string { return compose.DailyReminder(now) }))
	}
	return compose.Concat([]string{weatherMsg, suggestion, anniv, q.String()}, opts...), nil
}

// StaticWeather serves a fixed record, for offline previews.
type StaticWeather weather.Record

func (s StaticWeather) Today(context.Context) (weather.Record, error) {
	return weather.Record(s), nil
}

// StaticQuote serves a fixed sentence, for offline previews.
type StaticQuote quote.Quote

func (s StaticQuote) Today(context.Context) (quote.Quote, error) {
	return quote.Quote(s), nil
}

// SampleQuote is the sentence used by offline previews.
var SampleQuote = StaticQuote{
	Content: "The best thing to hold onto in life is each other.",
	Note:    "生活中最值得珍惜的，是彼此。",
}

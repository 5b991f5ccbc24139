package main

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/chris/morning/config"
	"github.com/chris/morning/data"
	"github.com/chris/morning/internal/advisor"
	"github.com/chris/morning/internal/anniversary"
	"github.com/chris/morning/internal/catalog"
	"github.com/chris/morning/internal/compose"
	"github.com/chris/morning/internal/daily"
	"github.com/chris/morning/internal/discord"
	"github.com/chris/morning/internal/headers"
	"github.com/chris/morning/internal/llm"
	"github.com/chris/morning/internal/logger"
	"github.com/chris/morning/internal/pick"
	"github.com/chris/morning/internal/quote"
	"github.com/chris/morning/internal/scheduler"
	"github.com/chris/morning/internal/weather"
	"github.com/chris/morning/internal/weather/qweather"
)

type appOptions struct {
	offline          bool
	weatherStyle     string
	anniversaryStyle string
}

type app struct {
	cfg      *config.Config
	log      *slog.Logger
	closeLog func() error
	engine   *compose.Engine
	pipeline *daily.Pipeline
}

func newApp(opts appOptions) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, closeLog, err := logger.New(logger.Options{
		Env:    cfg.Env,
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		return nil, err
	}
	slog.SetDefault(log)
	log.Debug("configuration loaded", "provider", cfg.LLMProvider, "timezone", cfg.Timezone)

	a := &app{cfg: cfg, log: log, closeLog: closeLog}
	if err := a.build(opts); err != nil {
		closeLog()
		return nil, err
	}
	return a, nil
}

func (a *app) build(opts appOptions) error {
	cfg := a.cfg

	var r pick.Rand = pick.Default()
	if cfg.RandomSeed != 0 {
		r = pick.New(cfg.RandomSeed)
	}

	cat := catalog.New()
	if err := cat.LoadFile(cfg.WeatherDataPath, data.FS, data.WeatherFile); err != nil {
		return err
	}
	hdr, err := headers.LoadFile(cfg.HeadersPath, data.FS, data.HeaderFile)
	if err != nil {
		return err
	}
	a.log.Debug("datasets loaded", "categories", len(cat.Keys()), "headers", hdr.Len())
	a.engine = compose.NewEngine(cat, hdr, compose.WithRand(r))

	weatherStyle := firstNonEmpty(opts.weatherStyle, cfg.WeatherStyle)
	if weatherStyle != "" && !slices.Contains(a.engine.Styles(), weatherStyle) {
		return fmt.Errorf("%w: %q (have %v)", compose.ErrUnknownStyle, weatherStyle, a.engine.Styles())
	}
	annivStyle, err := anniversary.ParseStyle(firstNonEmpty(opts.anniversaryStyle, cfg.AnniversaryStyle))
	if err != nil {
		return err
	}
	start, err := cfg.AnniversaryDate()
	if err != nil {
		return err
	}

	pc := daily.Config{
		Engine:           a.engine,
		Anniversary:      start,
		AnniversaryStyle: annivStyle,
		WeatherStyle:     weatherStyle,
		Reminder:         cfg.DailyReminder,
		MaxLength:        cfg.MaxMessageLength,
		Rand:             r,
		Logger:           a.log,
	}
	if opts.offline {
		pc.Weather = daily.StaticWeather(weather.Sample())
		pc.Quotes = daily.SampleQuote
	} else {
		if err := a.online(&pc); err != nil {
			return err
		}
	}
	a.pipeline = daily.New(pc)
	return nil
}

func (a *app) online(pc *daily.Config) error {
	cfg := a.cfg
	if err := cfg.CheckOnline(); err != nil {
		return err
	}
	wc, err := qweather.New(qweather.Config{
		Host:          cfg.QWeatherHost,
		Location:      cfg.QWeatherLocation,
		Lang:          cfg.QWeatherLang,
		Unit:          cfg.QWeatherUnit,
		CredentialsID: cfg.CredentialsID,
		ProjectID:     cfg.ProjectID,
		PrivateKeyPEM: cfg.PrivateKeyPEM.Unmask(),
		Timeout:       cfg.HTTPTimeout,
	})
	if err != nil {
		return err
	}
	pc.Weather = wc
	pc.Quotes = quote.New(cfg.QuoteURL, cfg.HTTPTimeout)

	if cfg.LLMProvider == "none" {
		return nil
	}
	client, err := llm.NewClient(llm.ProviderConfig{
		Provider: cfg.LLMProvider,
		APIKey:   cfg.LLMKey(),
		Model:    cfg.LLMModel,
		BaseURL:  cfg.LLMBaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	pc.Advisor = advisor.New(client, advisor.WithLogger(a.log))
	return nil
}

// deliveryJob composes the message and sends it through Discord.
func (a *app) deliveryJob() (scheduler.Job, error) {
	if err := a.cfg.CheckDelivery(); err != nil {
		return nil, err
	}
	sender, err := discord.NewSender(discord.Config{
		BotToken:   a.cfg.DiscordToken.Unmask(),
		UserID:     a.cfg.DiscordUserID,
		WebhookURL: a.cfg.DiscordWebhook.Unmask(),
		Timeout:    a.cfg.HTTPTimeout,
	}, discord.WithLogger(a.log))
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, now time.Time) error {
		msg, err := a.pipeline.Compose(ctx, now)
		if err != nil {
			return err
		}
		a.log.Info("message composed", "size", humanize.Bytes(uint64(len(msg))), "chars", len([]rune(msg)))
		return sender.Send(ctx, msg)
	}, nil
}

func (a *app) Close() {
	if err := a.closeLog(); err != nil {
		slog.Error("closing log file", "error", err)
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

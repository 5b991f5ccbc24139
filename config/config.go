// Package config loads runtime settings from the environment, a local .env
// file and ~/.morning/config, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env       string `envconfig:"APP_ENV" default:"development" validate:"oneof=development production"`
	LogLevel  string `envconfig:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`
	LogFile   string `envconfig:"LOG_FILE"`

	QWeatherHost     string       `envconfig:"QWEATHER_HOST" default:"https://devapi.qweather.com" validate:"url"`
	QWeatherLocation string       `envconfig:"QWEATHER_LOCATION" default:"101040500" validate:"required"`
	QWeatherLang     string       `envconfig:"QWEATHER_LANG" default:"zh-hans"`
	QWeatherUnit     string       `envconfig:"QWEATHER_UNIT" default:"m" validate:"oneof=m i"`
	CredentialsID    string       `envconfig:"CREDENTIALS_ID"`
	ProjectID        string       `envconfig:"PROJECT_ID"`
	PrivateKeyPEM    SecretString `envconfig:"PRIVATE_KEY_PEM"`

	QuoteURL    string        `envconfig:"QUOTE_URL" default:"https://open.iciba.com/dsapi/" validate:"url"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"60s" validate:"gt=0"`

	Anniversary      string `envconfig:"ANNIVERSARY" validate:"required,datetime=2006-01-02"`
	AnniversaryStyle string `envconfig:"ANNIVERSARY_STYLE"`
	WeatherStyle     string `envconfig:"WEATHER_STYLE"`

	LLMProvider  string       `envconfig:"LLM_PROVIDER" default:"deepseek" validate:"oneof=deepseek openai anthropic ollama none"`
	DeepSeekKey  SecretString `envconfig:"DEEPSEEK_API_KEY"`
	OpenAIKey    SecretString `envconfig:"OPENAI_API_KEY"`
	AnthropicKey SecretString `envconfig:"ANTHROPIC_API_KEY"`
	LLMModel     string       `envconfig:"LLM_MODEL"`
	LLMBaseURL   string       `envconfig:"LLM_BASE_URL" validate:"omitempty,url"`

	DiscordToken   SecretString `envconfig:"DISCORD_BOT_TOKEN"`
	DiscordUserID  string       `envconfig:"DISCORD_USER_ID"`
	DiscordWebhook SecretString `envconfig:"DISCORD_WEBHOOK_URL"`

	SendHour   int    `envconfig:"SEND_HOUR" default:"7" validate:"min=0,max=23"`
	SendMinute int    `envconfig:"SEND_MINUTE" default:"30" validate:"min=0,max=59"`
	SendCron   string `envconfig:"SEND_CRON"`
	Timezone   string `envconfig:"TIMEZONE" default:"Asia/Shanghai" validate:"timezone"`

	WeatherDataPath  string `envconfig:"WEATHER_DATA_PATH"`
	HeadersPath      string `envconfig:"HEADERS_PATH"`
	MaxMessageLength int    `envconfig:"MAX_MESSAGE_LENGTH" default:"0" validate:"min=0"`
	DailyReminder    bool   `envconfig:"DAILY_REMINDER" default:"false"`
	RandomSeed       uint64 `envconfig:"RANDOM_SEED" default:"0"`
}

// Load reads .env and the user config file, then the environment.
// Variables already set in the environment take precedence.
func Load() (*Config, error) {
	files := []string{".env"}
	if f, err := ConfigFile(); err == nil {
		files = append(files, f)
	}
	return load(files)
}

func load(files []string) (*Config, error) {
	for _, f := range files {
		_ = godotenv.Load(f) // ignore error if absent
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, &Error{Kind: ErrParsing, Message: "failed to process environment configuration", Err: err}
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, &Error{Kind: ErrValidation, Message: "configuration validation failed", Err: err}
	}
	cfg.PrivateKeyPEM = SecretString(strings.ReplaceAll(string(cfg.PrivateKeyPEM), `\n`, "\n"))
	return &cfg, nil
}

// CheckOnline reports missing QWeather credentials.
func (c *Config) CheckOnline() error {
	var missing []string
	for name, v := range map[string]string{
		"CREDENTIALS_ID":  c.CredentialsID,
		"PROJECT_ID":      c.ProjectID,
		"PRIVATE_KEY_PEM": c.PrivateKeyPEM.Unmask(),
	} {
		if v == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &Error{Kind: ErrMissing, Message: "weather credentials not set: " + strings.Join(sorted(missing), ", ")}
	}
	return nil
}

// CheckDelivery requires a usable DM target or a webhook.
func (c *Config) CheckDelivery() error {
	dm := c.DiscordToken != "" && c.DiscordUserID != ""
	if !dm && c.DiscordWebhook == "" {
		return &Error{Kind: ErrMissing, Message: "set DISCORD_BOT_TOKEN and DISCORD_USER_ID, or DISCORD_WEBHOOK_URL"}
	}
	return nil
}

// LLMKey returns the API key for the configured provider.
func (c *Config) LLMKey() string {
	switch c.LLMProvider {
	case "openai":
		return c.OpenAIKey.Unmask()
	case "anthropic":
		return c.AnthropicKey.Unmask()
	case "deepseek":
		return c.DeepSeekKey.Unmask()
	}
	return ""
}

func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// AnniversaryDate parses ANNIVERSARY in the configured timezone.
func (c *Config) AnniversaryDate() (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, c.Anniversary, c.Location())
	if err != nil {
		return time.Time{}, &Error{Kind: ErrParsing, Message: "invalid ANNIVERSARY", Err: err}
	}
	return t, nil
}

// CronSpec is SEND_CRON when set, else a daily spec at SEND_HOUR:SEND_MINUTE.
func (c *Config) CronSpec() string {
	if c.SendCron != "" {
		return c.SendCron
	}
	return fmt.Sprintf("%d %d * * *", c.SendMinute, c.SendHour)
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".morning"), nil
}

func ConfigFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config"), nil
}

// IsMissing reports whether err is a missing-setting error.
func IsMissing(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == ErrMissing
}

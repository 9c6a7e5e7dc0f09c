package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"TickerSentry/internal/strategy"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Email struct {
		SMTPHost  string `yaml:"smtp_host"`
		SMTPPort  int    `yaml:"smtp_port"`
		Sender    string `yaml:"sender"`
		Password  string `yaml:"password"`
		Recipient string `yaml:"recipient"`
	} `yaml:"email"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Universe struct {
		CSVPath string `yaml:"csv_path"`
	} `yaml:"universe"`
	Schedule struct {
		DailyCron  string `yaml:"daily_cron"`
		WeeklyCron string `yaml:"weekly_cron"`
	} `yaml:"schedule"`
	Analysis struct {
		DailyBars  int `yaml:"daily_bars"`
		WeeklyBars int `yaml:"weekly_bars"`
	} `yaml:"analysis"`
	Thresholds struct {
		StrongSell float64 `yaml:"strong_sell"`
		Sell       float64 `yaml:"sell"`
		Warning    float64 `yaml:"warning"`
		Neutral    float64 `yaml:"neutral"`
		Buy        float64 `yaml:"buy"`
		StrongBuy  float64 `yaml:"strong_buy"`
	} `yaml:"thresholds"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; env vars alone
// can configure the bot.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("EMAIL_SENDER"); v != "" {
		cfg.Email.Sender = v
	}
	if v := os.Getenv("EMAIL_PASSWORD"); v != "" {
		cfg.Email.Password = v
	}
	if v := os.Getenv("EMAIL_RECIPIENT"); v != "" {
		cfg.Email.Recipient = v
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("UNIVERSE_CSV"); v != "" {
		cfg.Universe.CSVPath = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("CRON_WEEKLY"); v != "" {
		cfg.Schedule.WeeklyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	for key, dst := range map[string]*float64{
		"THRESHOLD_STRONG_SELL": &cfg.Thresholds.StrongSell,
		"THRESHOLD_SELL":        &cfg.Thresholds.Sell,
		"THRESHOLD_WARNING":     &cfg.Thresholds.Warning,
		"THRESHOLD_NEUTRAL":     &cfg.Thresholds.Neutral,
		"THRESHOLD_BUY":         &cfg.Thresholds.Buy,
		"THRESHOLD_STRONG_BUY":  &cfg.Thresholds.StrongBuy,
	} {
		if v := os.Getenv(key); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = f
			}
		}
	}

	// Defaults
	if cfg.Email.SMTPHost == "" {
		cfg.Email.SMTPHost = "smtp.gmail.com"
	}
	if cfg.Email.SMTPPort == 0 {
		cfg.Email.SMTPPort = 587
	}
	if cfg.Universe.CSVPath == "" {
		cfg.Universe.CSVPath = "configs/universe.csv"
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 17 * * 1-5"
	}
	if cfg.Schedule.WeeklyCron == "" {
		cfg.Schedule.WeeklyCron = "0 0 18 * * 5"
	}
	if cfg.Analysis.DailyBars == 0 {
		cfg.Analysis.DailyBars = 180
	}
	if cfg.Analysis.WeeklyBars == 0 {
		cfg.Analysis.WeeklyBars = 104
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/tickersentry.db"
	}

	return cfg, nil
}

// EngineThresholds merges configured cut-points over the defaults. A zero
// value means "not set"; cut-points are never legitimately zero.
func (c *Config) EngineThresholds() strategy.Thresholds {
	t := strategy.DefaultThresholds()
	if c.Thresholds.StrongSell > 0 {
		t.StrongSell = c.Thresholds.StrongSell
	}
	if c.Thresholds.Sell > 0 {
		t.Sell = c.Thresholds.Sell
	}
	if c.Thresholds.Warning > 0 {
		t.Warning = c.Thresholds.Warning
	}
	if c.Thresholds.Neutral > 0 {
		t.Neutral = c.Thresholds.Neutral
	}
	if c.Thresholds.Buy > 0 {
		t.Buy = c.Thresholds.Buy
	}
	if c.Thresholds.StrongBuy > 0 {
		t.StrongBuy = c.Thresholds.StrongBuy
	}
	return t
}

// EmailConfigured reports whether the SMTP notifier can be built.
func (c *Config) EmailConfigured() bool {
	return c.Email.Sender != "" && c.Email.Password != "" && c.Email.Recipient != ""
}

// Validate checks that all required fields are set and the threshold
// table is usable. Invalid thresholds are fatal here, before any
// analysis begins.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" && !c.EmailConfigured() {
		return fmt.Errorf("no notification channel: set telegram.bot_token or the email section")
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when telegram.bot_token is set")
	}
	if c.Analysis.DailyBars < 0 || c.Analysis.WeeklyBars < 0 {
		return fmt.Errorf("analysis bar counts must be positive")
	}
	if err := c.EngineThresholds().Validate(); err != nil {
		return fmt.Errorf("thresholds: %w", err)
	}
	return nil
}

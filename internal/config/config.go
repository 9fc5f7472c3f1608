package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"MCXTracker/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	DataSource struct {
		BaseURL        string `yaml:"base_url"`
		APIKey         string `yaml:"api_key"`
		CurrencyTicker string `yaml:"currency_ticker"`
	} `yaml:"data_source"`
	Tracker struct {
		DefaultContract string   `yaml:"default_contract"`
		Contracts       []string `yaml:"contracts"`
		Period          string   `yaml:"period"`
		Interval        string   `yaml:"interval"`
		DutyPercent     float64  `yaml:"duty_percent"`
		CacheTTLMinutes int      `yaml:"cache_ttl_minutes"`
	} `yaml:"tracker"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is fine; defaults carry the app.
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
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("QUOTE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("QUOTE_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("DUTY_PERCENT"); v != "" {
		var duty float64
		if _, err := fmt.Sscanf(v, "%f", &duty); err == nil {
			cfg.Tracker.DutyPercent = duty
		}
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.DataSource.CurrencyTicker == "" {
		cfg.DataSource.CurrencyTicker = "INR=X"
	}
	if cfg.Tracker.DefaultContract == "" {
		cfg.Tracker.DefaultContract = "GOLD"
	}
	if len(cfg.Tracker.Contracts) == 0 {
		cfg.Tracker.Contracts = []string{"GOLD", "SILVER"}
	}
	if cfg.Tracker.Period == "" {
		cfg.Tracker.Period = string(model.Period6Mo)
	}
	if cfg.Tracker.Interval == "" {
		cfg.Tracker.Interval = string(model.IntervalDaily)
	}
	if cfg.Tracker.DutyPercent == 0 {
		cfg.Tracker.DutyPercent = 12
	}
	if cfg.Tracker.CacheTTLMinutes == 0 {
		cfg.Tracker.CacheTTLMinutes = 5
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 18 * * 1-5"
	}

	return cfg, nil
}

// Validate checks that the calibration knobs are in range and the enums
// parse.
func (c *Config) Validate() error {
	if c.Tracker.DutyPercent < 0 || c.Tracker.DutyPercent > 15 {
		return fmt.Errorf("tracker.duty_percent must be in 0..15, got %.2f", c.Tracker.DutyPercent)
	}
	if _, err := model.ParsePeriod(c.Tracker.Period); err != nil {
		return fmt.Errorf("tracker.period: %w", err)
	}
	if _, err := model.ParseInterval(c.Tracker.Interval); err != nil {
		return fmt.Errorf("tracker.interval: %w", err)
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when telegram.bot_token is set")
	}
	return nil
}

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins []string
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type AuthConfig struct {
	SessionSecret  string
	MaxPINAttempts int
	LockoutMinutes int
}

type ChatConfig struct {
	APIKey        string
	Model         string
	HistoryWindow int
	MaxToolRounds int
}

type SweepConfig struct {
	CronSpec string
	Secret   string
}

type ExportConfig struct {
	PDFFontPath string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Auth        AuthConfig
	Chat        ChatConfig
	Sweep       SweepConfig
	Export      ExportConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host:        v.GetString("HTTP_HOST"),
			Port:        v.GetInt("HTTP_PORT"),
			CORSOrigins: parseList(v.GetString("CORS_ORIGINS")),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
		Auth: AuthConfig{
			SessionSecret:  v.GetString("SESSION_SECRET"),
			MaxPINAttempts: v.GetInt("PIN_MAX_ATTEMPTS"),
			LockoutMinutes: v.GetInt("PIN_LOCKOUT_MINUTES"),
		},
		Chat: ChatConfig{
			APIKey:        v.GetString("OPENAI_API_KEY"),
			Model:         v.GetString("OPENAI_MODEL"),
			HistoryWindow: v.GetInt("CHAT_HISTORY_WINDOW"),
			MaxToolRounds: v.GetInt("CHAT_MAX_TOOL_ROUNDS"),
		},
		Sweep: SweepConfig{
			CronSpec: v.GetString("SWEEP_CRON"),
			Secret:   v.GetString("CRON_SECRET"),
		},
		Export: ExportConfig{
			PDFFontPath: v.GetString("PDF_FONT_PATH"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7080
	}
	if cfg.Auth.MaxPINAttempts == 0 {
		cfg.Auth.MaxPINAttempts = 5
	}
	if cfg.Auth.LockoutMinutes == 0 {
		cfg.Auth.LockoutMinutes = 15
	}
	if cfg.Chat.Model == "" {
		cfg.Chat.Model = "gpt-4o-mini"
	}
	if cfg.Chat.HistoryWindow == 0 {
		cfg.Chat.HistoryWindow = 10
	}
	if cfg.Chat.MaxToolRounds == 0 {
		cfg.Chat.MaxToolRounds = 5
	}
	if cfg.Sweep.CronSpec == "" {
		cfg.Sweep.CronSpec = "0 0 * * *"
	}
	if cfg.Export.PDFFontPath == "" {
		cfg.Export.PDFFontPath = "fonts/NotoSansKR-Regular.ttf"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if cfg.Auth.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if cfg.Chat.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	return nil
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}

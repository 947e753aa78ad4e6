package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	DatabaseURL  string
	DiscordToken string
	DiscordGuild string

	DeadlockAPIURL    string // default https://api.deadlock-api.com/v1
	DeadlockAssetsURL string // default https://assets.deadlock-api.com/v2

	RedisURL      string        // opcional, vacío = sin cache
	HTTPAddr      string        // opcional, default :8080
	PollInterval  time.Duration // cada cuánto miramos el historial
	AdminRoleIDs  []string
	LogLevel      string
	PreviewSecret string // sólo lo usa la lambda de preview
}

const (
	defaultAPIURL       = "https://api.deadlock-api.com/v1"
	defaultAssetsURL    = "https://assets.deadlock-api.com/v2"
	defaultHTTPAddr     = ":8080"
	defaultPollInterval = time.Minute
)

// Load lee el entorno (main ya hizo godotenv.Load). Devuelve error con la
// primera variable requerida que falte.
func Load() (Config, error) {
	var missing []string
	get := func(k string, req bool) string {
		v := strings.TrimSpace(os.Getenv(k))
		if v == "" && req {
			missing = append(missing, k)
		}
		return v
	}

	cfg := Config{
		DatabaseURL:       get("DATABASE_URL", true),
		DiscordToken:      get("DISCORD_BOT_TOKEN", true),
		DiscordGuild:      get("DISCORD_GUILD_ID", true),
		DeadlockAPIURL:    get("DEADLOCK_API_URL", false),
		DeadlockAssetsURL: get("DEADLOCK_ASSETS_URL", false),
		RedisURL:          get("REDIS_URL", false),
		HTTPAddr:          get("HTTP_ADDR", false),
		AdminRoleIDs:      splitList(get("ADMIN_ROLE_IDS", false)),
		LogLevel:          get("LOG_LEVEL", false),
		PreviewSecret:     get("PREVIEW_SECRET", false),
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("faltante env %s", strings.Join(missing, ", "))
	}

	if cfg.DeadlockAPIURL == "" {
		cfg.DeadlockAPIURL = defaultAPIURL
	}
	if cfg.DeadlockAssetsURL == "" {
		cfg.DeadlockAssetsURL = defaultAssetsURL
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = defaultHTTPAddr
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.PollInterval = defaultPollInterval
	if raw := get("POLL_INTERVAL", false); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("POLL_INTERVAL inválido %q", raw)
		}
		cfg.PollInterval = d
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

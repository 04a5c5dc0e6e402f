package config

import (
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Telegram struct {
		User  int64  `env:"TELEGRAM_USER"`
		Token string `env:"TELEGRAM_TOKEN"`
	}
	Feed struct {
		SubmitDelay time.Duration `env:"FEED_SUBMIT_DELAY" env-default:"500ms"`
		LikeSeedMax int           `env:"FEED_LIKE_SEED_MAX" env-default:"1000"`
		WorkerPool  int           `env:"FEED_WORKER_POOL" env-default:"8"`
		RateEvery   time.Duration `env:"FEED_RATE_EVERY" env-default:"3s"`
		RateBurst   int           `env:"FEED_RATE_BURST" env-default:"3"`
	}
	Player struct {
		ScriptURL   string        `env:"PLAYER_SCRIPT_URL" env-default:"https://www.youtube.com/iframe_api"`
		LoadTimeout time.Duration `env:"PLAYER_LOAD_TIMEOUT" env-default:"15s"`
		MaxRetries  uint64        `env:"PLAYER_LOAD_MAX_RETRIES" env-default:"3"`
		Origin      string        `env:"PLAYER_ORIGIN"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

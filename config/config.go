package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv" // 引入這個庫來讀取 .env 檔案
)

// Config 結構體用於儲存應用程式的配置
type Config struct {
	Port       string        `env:"PORT"        envDefault:"8080"`
	MongoDBURI string        `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	DBName     string        `env:"DB_NAME"     envDefault:"icebreaker"`
	JWTSecret  string        `env:"JWT_SECRET,required,notEmpty"`
	TokenTTL   time.Duration `env:"TOKEN_TTL"   envDefault:"24h"`
	// RedisURL enables the Redis broker and interest cache. Empty runs in-process.
	RedisURL    string   `env:"REDIS_URL"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
	AppEnv      string   `env:"APP_ENV"      envDefault:"development"`
	LogLevel    string   `env:"LOG_LEVEL"    envDefault:"info"`

	MaxInterestTags int  `env:"MAX_INTEREST_TAGS" envDefault:"4"`
	MessageWindow   int  `env:"MESSAGE_WINDOW"    envDefault:"200"`
	SeedActivities  bool `env:"SEED_ACTIVITIES"   envDefault:"true"`
}

// Production reports whether the app runs with production settings.
func (c *Config) Production() bool {
	return c.AppEnv == "production"
}

// LoadConfig 載入配置，優先從環境變數讀取，其次從 .env 檔案讀取
func LoadConfig() (*Config, error) {
	// 嘗試載入 .env 檔案，如果不存在也不會報錯
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse reads the configuration from environment variables only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxInterestTags <= 0 {
		return nil, fmt.Errorf("MAX_INTEREST_TAGS must be positive, got %d", cfg.MaxInterestTags)
	}
	if cfg.MessageWindow <= 0 {
		return nil, fmt.Errorf("MESSAGE_WINDOW must be positive, got %d", cfg.MessageWindow)
	}
	return &cfg, nil
}

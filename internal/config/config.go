package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned when the loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/108.0.0.0 Safari/537.36"

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string   `mapstructure:"env" validate:"required"` // current application environment (local, dev, production etc)
	TelegramAPIToken string   `mapstructure:"-"`                       // Telegram API token loaded from environment, empty disables the bot
	HTTP             HTTP     `mapstructure:"http"`                    // HTTP server section
	Glossary         Glossary `mapstructure:"glossary"`                // upstream glossary page section
	Quiz             Quiz     `mapstructure:"quiz"`                    // quiz assembly section
	Export           Export   `mapstructure:"export"`                  // static export section
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Addr         string   `mapstructure:"addr" validate:"required"`          // listen address
	BasePath     string   `mapstructure:"base_path"`                         // prefix for static hosting, e.g. "/GlossaryQuiz"
	AllowOrigins []string `mapstructure:"allow_origins" validate:"required"` // CORS origins
}

// Glossary describes where and how the glossary page is fetched.
type Glossary struct {
	URL       string        `mapstructure:"url" validate:"required,url"`      // glossary page URL
	BaseURL   string        `mapstructure:"base_url" validate:"required,url"` // origin prefixed to root-relative image paths
	UserAgent string        `mapstructure:"user_agent" validate:"required"`   // browser-like identification header
	Timeout   time.Duration `mapstructure:"timeout" validate:"gt=0"`          // request timeout
}

// Quiz contains quiz assembly parameters.
type Quiz struct {
	QuestionCount int `mapstructure:"question_count" validate:"gte=1"` // questions per quiz
	OptionCount   int `mapstructure:"option_count" validate:"gte=2"`   // options per question
}

// Export contains static export parameters.
type Export struct {
	OutDir string `mapstructure:"out_dir" validate:"required"` // output directory
	Rounds int    `mapstructure:"rounds" validate:"gte=1"`     // pre-assembled quizzes embedded in the page
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	// A missing .env is fine, real environment variables still apply.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	setDefaults(v)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("http.addr", "HTTP_ADDR")
	_ = v.BindEnv("http.base_path", "BASE_PATH")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	return unmarshal(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.base_path", "")
	v.SetDefault("http.allow_origins", []string{"*"})
	v.SetDefault("glossary.url", "https://bsmg.wiki/mapping/glossary.html")
	v.SetDefault("glossary.base_url", "https://bsmg.wiki")
	v.SetDefault("glossary.user_agent", defaultUserAgent)
	v.SetDefault("glossary.timeout", "10s")
	v.SetDefault("quiz.question_count", 10)
	v.SetDefault("quiz.option_count", 4)
	v.SetDefault("export.out_dir", "out")
	v.SetDefault("export.rounds", 5)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.HTTP.BasePath = strings.TrimRight(cfg.HTTP.BasePath, "/")
	cfg.Glossary.BaseURL = strings.TrimRight(cfg.Glossary.BaseURL, "/")

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &cfg, nil
}

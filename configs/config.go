package configs

import (
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App      `mapstructure:"app"`
	Provider `mapstructure:"provider"`
	Database `mapstructure:"database"`
	History  `mapstructure:"history"`

	// Prompts overrides the built-in system prompt per operation kind.
	// Keys are lowercased by viper.
	Prompts map[string]string `mapstructure:"prompts"`
}

// App struct
type App struct {
	Debug bool   `mapstructure:"debug"`
	Env   string `mapstructure:"env"`
	Port  string `mapstructure:"port"`
}

// Provider struct - OpenAI-compatible backend settings
type Provider struct {
	BaseURL     string  `mapstructure:"base_url"`
	APIKey      string  `mapstructure:"api_key"`
	LLMModel    string  `mapstructure:"llm_model"`
	ImageModel  string  `mapstructure:"image_model"`
	AudioModel  string  `mapstructure:"audio_model"`
	TTSModel    string  `mapstructure:"tts_model"`
	Timeout     int     `mapstructure:"timeout"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
	DoneGrace   int     `mapstructure:"done_grace"`
	Debug       bool    `mapstructure:"debug"`
}

// Database struct
type Database struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"database"`
	SSLMode  bool   `mapstructure:"sslmode"`
	Path     string `mapstructure:"path"`
}

// History struct
type History struct {
	Limit              int    `mapstructure:"limit"`
	MediaDir           string `mapstructure:"media_dir"`
	MediaRetentionDays int    `mapstructure:"media_retention_days"`
}

var (
	config   Config
	configMu sync.RWMutex
)

// InitViper func
func InitViper(path, env string) {
	getConfig(path, env)
}

// GetViper func
func GetViper() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	snapshot := config
	return &snapshot
}

func setDefaults() {
	viper.SetDefault("app.port", "9089")
	viper.SetDefault("provider.base_url", "https://api.openai.com/v1")
	viper.SetDefault("provider.tts_model", "tts-1-hd")
	viper.SetDefault("provider.timeout", 300)
	viper.SetDefault("provider.max_tokens", 4096)
	viper.SetDefault("provider.temperature", 0.6)
	viper.SetDefault("provider.done_grace", 2)
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.path", "ai-anywhere.db")
	viper.SetDefault("history.limit", 500)
	viper.SetDefault("history.media_dir", "media")
}

func getConfig(path, env string) {
	name := "config"
	if env != "" {
		name = "config." + env
	}
	viper.SetConfigName(name)
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()
	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || env == "" {
			panic(err)
		}
		logrus.Warnf("config file %s not found, falling back to config.yaml", name)
		viper.SetConfigName("config")
		if err = viper.ReadInConfig(); err != nil {
			panic(err)
		}
	}
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		logrus.Infoln("Config file has changed: ", e.Name)
		if err := unmarshal(); err != nil {
			logrus.Errorln(err)
		}
	})
	if err = unmarshal(); err != nil {
		logrus.Fatalln(err)
	}
}

func unmarshal() error {
	var next Config
	if err := viper.Unmarshal(&next); err != nil {
		return err
	}
	configMu.Lock()
	config = next
	configMu.Unlock()
	return nil
}

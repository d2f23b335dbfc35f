package store

import (
	"errors"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// DefaultKey is the slot the whole journal is written under.
	DefaultKey  = "moodmap_data"
	defaultPath = "~/.moodmap.db"
)

type Config interface {
	BasePath() string
	Key() string
	Intensity() int
	Verbose() bool
}

// LoadConfig reads .moodmap.yaml from MOODMAP_CONFIG_PATH or the working
// directory. Every key can be overridden with a MOODMAP_ environment variable.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", defaultPath)
	v.SetDefault("key", DefaultKey)
	v.SetDefault("intensity", 5)
	v.SetDefault("verbose", false)
	v.SetConfigName(".moodmap") // .yaml is implicit
	v.SetEnvPrefix("MOODMAP")
	v.AutomaticEnv()

	if override := os.Getenv("MOODMAP_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:         path,
		StorageKey:   v.GetString("key"),
		SliderValue:  v.GetInt("intensity"),
		Debug:        v.GetBool("verbose"),
		ConfigSource: v.ConfigFileUsed(),
	}, nil
}

type fileConfig struct {
	Path         string `json:"path"`
	StorageKey   string `json:"key"`
	SliderValue  int    `json:"intensity"`
	Debug        bool   `json:"verbose"`
	ConfigSource string `json:"-"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Key() string {
	if f.StorageKey == "" {
		return DefaultKey
	}
	return f.StorageKey
}

func (f *fileConfig) Intensity() int {
	return f.SliderValue
}

func (f *fileConfig) Verbose() bool {
	return f.Debug
}

// Source returns the config file that was read, or "" when only defaults and
// the environment were used.
func Source(cfg Config) string {
	if f, ok := cfg.(*fileConfig); ok {
		return f.ConfigSource
	}
	return ""
}

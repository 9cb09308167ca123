package main

import (
	"bytes"
	"os"

	"github.com/hhhapz/docmake/markdown"
	"github.com/hhhapz/docmake/pdfmake"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const defaultLimit = 3800

type configuration struct {
	Token       string            `mapstructure:"token"`
	Environment string            `mapstructure:"environment"`
	Style       string            `mapstructure:"style"`
	Extensions  []string          `mapstructure:"extensions"`
	Safe        bool              `mapstructure:"safe"`
	Aliases     map[string]string `mapstructure:"aliases"`
	Limit       int               `mapstructure:"limit"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix("docmake")
	v.AutomaticEnv()

	// keys without a default are not read from the environment
	v.SetDefault("token", "")
	v.SetDefault("environment", "production")
	v.SetDefault("style", "")
	v.SetDefault("safe", false)
	v.SetDefault("limit", defaultLimit)
	return v
}

// config reads path, or config.json in the working directory when path is
// empty. A missing config.json is not an error.
func config(path string) (configuration, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return configuration{}, errors.Wrap(err, "could not read config")
		}
	}
	return decodeConfig(v)
}

func configFromBytes(b []byte) (configuration, error) {
	v := newViper()
	if err := v.ReadConfig(bytes.NewReader(b)); err != nil {
		return configuration{}, errors.Wrap(err, "could not parse config")
	}
	return decodeConfig(v)
}

func decodeConfig(v *viper.Viper) (configuration, error) {
	var cfg configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return configuration{}, errors.Wrap(err, "could not decode config")
	}
	// the limit has to leave room for the code fence around the document
	if cfg.Limit <= fence {
		cfg.Limit = defaultLimit
	}
	return cfg, nil
}

func newConverter(cfg configuration) (pdfmake.Converter, error) {
	conv := pdfmake.Converter{
		Renderer: markdown.New(markdown.Options{
			Extensions: cfg.Extensions,
			Safe:       cfg.Safe,
		}),
	}
	if cfg.Style == "" {
		return conv, nil
	}

	f, err := os.Open(cfg.Style)
	if err != nil {
		return pdfmake.Converter{}, errors.Wrap(err, "could not open style")
	}
	defer f.Close()

	conv.Style, err = pdfmake.LoadStyle(f)
	if err != nil {
		return pdfmake.Converter{}, errors.Wrapf(err, "could not load style %s", cfg.Style)
	}
	return conv, nil
}

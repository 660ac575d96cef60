/*
Copyright 2024 The freqtrade-operator Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config loads the operator's own configuration: defaults, then an
// optional config file, then environment variables, in that precedence
// order, mirroring the figment-based builder the operator was distilled
// from (defaults -> with_file -> with_env).
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the environment variable prefix consulted for every
// configuration key, e.g. BOTS_CONTROLLER__DEFAULT_IMAGE_TAG.
const EnvPrefix = "BOTS"

// AppConfig is the operator's full configuration tree.
type AppConfig struct {
	Controller ControllerConfig `mapstructure:"controller"`
	Webhook    WebhookConfig    `mapstructure:"webhook"`
}

// ControllerConfig configures the controller subcommand.
type ControllerConfig struct {
	DefaultImageRepo string `mapstructure:"default_image_repo"`
	DefaultImageTag  string `mapstructure:"default_image_tag"`
}

// WebhookConfig configures the webhook subcommand.
type WebhookConfig struct {
	Host string    `mapstructure:"host"`
	Port int       `mapstructure:"port"`
	TLS  TLSConfig `mapstructure:"tls"`
}

// TLSConfig locates the webhook server's serving certificate.
type TLSConfig struct {
	CertFile string `mapstructure:"cert_file"`
	KeyFile  string `mapstructure:"key_file"`
}

func defaults() AppConfig {
	return AppConfig{
		Controller: ControllerConfig{
			DefaultImageRepo: "freqtradeorg/freqtrade",
			DefaultImageTag:  "stable",
		},
		Webhook: WebhookConfig{
			Host: "0.0.0.0",
			Port: 8443,
			TLS: TLSConfig{
				CertFile: "/etc/ssl/certs/tls.crt",
				KeyFile:  "/etc/ssl/certs/tls.key",
			},
		},
	}
}

// Load builds an AppConfig from defaults, an optional config file (selected
// by extension: .json, .yaml, or .yml), and BOTS_-prefixed, double
// underscore-nested environment variables, in ascending precedence.
func Load(filePath string) (*AppConfig, error) {
	def := defaults()

	v := viper.New()
	v.SetConfigType(extensionType(filePath))
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	v.AutomaticEnv()

	setDefaults(v, "controller", def.Controller)
	setDefaults(v, "webhook", def.Webhook)

	if filePath != "" {
		v.SetConfigFile(filePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %q: %w", filePath, err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	return &cfg, nil
}

func extensionType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

func setDefaults(v *viper.Viper, section string, cfg interface{}) {
	switch c := cfg.(type) {
	case ControllerConfig:
		v.SetDefault(section+".default_image_repo", c.DefaultImageRepo)
		v.SetDefault(section+".default_image_tag", c.DefaultImageTag)
	case WebhookConfig:
		v.SetDefault(section+".host", c.Host)
		v.SetDefault(section+".port", c.Port)
		v.SetDefault(section+".tls.cert_file", c.TLS.CertFile)
		v.SetDefault(section+".tls.key_file", c.TLS.KeyFile)
	}
}

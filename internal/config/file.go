// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFileEnv names the environment variable that points at an optional
// YAML configuration file.
const ConfigFileEnv = "NEWSWEB_CONFIG"

// FileConfig represents the structure of the optional YAML configuration
// file. Every field is a fallback; environment variables win.
type FileConfig struct {
	Server struct {
		Host string `yaml:"host"`
		Port string `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`
	CMS struct {
		ServiceDomain string `yaml:"service_domain"`
		BaseURL       string `yaml:"base_url"`
		APIKey        string `yaml:"api_key"`
		Timeout       string `yaml:"timeout"`
		Sanitize      string `yaml:"sanitize"`
		Format        string `yaml:"format"`
	} `yaml:"cms"`
	RateLimit struct {
		Limit      string `yaml:"limit"`
		Window     string `yaml:"window"`
		TrustProxy string `yaml:"trust_proxy"`
	} `yaml:"rate_limit"`
}

// LoadConfigFile loads the YAML file at path. An empty path or a missing
// file yields nil without error. A file that exists but cannot be parsed
// is an error.
func LoadConfigFile(path string) (*FileConfig, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, nil
}

// values flattens the file into the environment variable names Load reads.
func (f *FileConfig) values() map[string]string {
	if f == nil {
		return nil
	}
	return map[string]string{
		"APP_HOST":                f.Server.Host,
		"APP_PORT":                f.Server.Port,
		"APP_ENV":                 f.Server.Env,
		"MICROCMS_SERVICE_DOMAIN": f.CMS.ServiceDomain,
		"MICROCMS_BASE_URL":       f.CMS.BaseURL,
		"MICROCMS_API_KEY":        f.CMS.APIKey,
		"CMS_TIMEOUT":             f.CMS.Timeout,
		"CONTENT_SANITIZE":        f.CMS.Sanitize,
		"CONTENT_FORMAT":          f.CMS.Format,
		"RATE_LIMIT":              f.RateLimit.Limit,
		"RATE_WINDOW":             f.RateLimit.Window,
		"TRUST_PROXY":             f.RateLimit.TrustProxy,
	}
}

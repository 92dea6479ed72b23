package main

import (
	"io"

	yaml "gopkg.in/yaml.v2"
)

type OAuth2Config struct {
	ClientID     string `yaml:"clientId"`
	ClientSecret string `yaml:"clientSecret"`
	RefreshToken string `yaml:"refreshToken"`
}

type Config struct {
	Endpoint      string       `yaml:"endpoint"`
	AccessToken   string       `yaml:"accessToken"`
	OAuth2        OAuth2Config `yaml:"oauth2"`
	MaxConcurrent int64        `yaml:"maxConcurrent"`
	Entities      []string     `yaml:"entities"`
}

func (c *Config) UsesOAuth2() bool {
	return c.OAuth2.ClientID != "" && c.OAuth2.ClientSecret != ""
}

func LoadConfiguration(data io.Reader) (*Config, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, &cfg)

	return cfg, err
}

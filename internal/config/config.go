package config

import (
	"strings"
)

// Config is the CLI configuration, populated by viper from a config
// file and the HIPCHAT_* environment variables.
type Config struct {
	Token    string `mapstructure:"token"`     // one or more API tokens, comma separated
	Server   string `mapstructure:"server"`    // API host override
	Label    string `mapstructure:"label"`     // default sender label on room notifications
	LogLevel string `mapstructure:"log_level"` // console log level
	LogRoom  string `mapstructure:"log_room"`  // mirror warnings and errors to this room
}

// Tokens splits the configured token value into individual tokens,
// trimming whitespace and dropping empty entries.
func (c Config) Tokens() []string {
	if c.Token == "" {
		return []string{}
	}
	parts := strings.Split(c.Token, ",")
	tokens := []string{}
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

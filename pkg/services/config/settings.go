package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings are the file-backed defaults for a dashboard run. Command-line
// flags override any value set here.
type Settings struct {
	ExpectedHours float64 `mapstructure:"expected_hours"`
	Output        string  `mapstructure:"output"`
	Roster        string  `mapstructure:"roster"`
	SplitByTeam   bool    `mapstructure:"split_by_team"`
}

// LoadSettings reads a YAML settings file.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &s, nil
}

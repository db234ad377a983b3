package game

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// GameConfig carries the table stakes. The zero value is not usable; start
// from DefaultGameConfig and override from a YAML file where needed.
type GameConfig struct {
	SmallBlind    int64 `yaml:"smallBlind" json:"smallBlind"`
	BigBlind      int64 `yaml:"bigBlind" json:"bigBlind"`
	RaiseStep     int64 `yaml:"raiseStep" json:"raiseStep"`
	StartingChips int64 `yaml:"startingChips" json:"startingChips"`
}

// DefaultGameConfig returns the standard 10/20 table with a fixed raise
// step of 10 and a 1000 chip buy-in.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		SmallBlind:    10,
		BigBlind:      20,
		RaiseStep:     10,
		StartingChips: 1000,
	}
}

// ParseGameConfig reads a game config YAML file. Fields left out of the
// file keep their defaults.
func ParseGameConfig(configFile string) (GameConfig, error) {
	config := DefaultGameConfig()

	bytes, err := ioutil.ReadFile(configFile)
	if err != nil {
		return config, errors.Wrap(err, fmt.Sprintf("Error reading game config file [%s]", configFile))
	}

	err = yaml.Unmarshal(bytes, &config)
	if err != nil {
		return config, errors.Wrap(err, fmt.Sprintf("Error parsing game config YAML file [%s]", configFile))
	}

	return config, nil
}

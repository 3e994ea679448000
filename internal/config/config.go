// Package config provides helpers over Viper for resolving configuration
// values from flags, config files, and the environment.
package config

import (
	"os"

	"github.com/spf13/viper"
)

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	// Check OS env directly first
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	// If Viper doesn't have it but OS does, return OS value
	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// GetStringDefault returns the resolved value for key, or fallback when
// neither Viper nor the environment has it.
func GetStringDefault(key, fallback string) string {
	if v := GetString(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"os"
)

// Environment names the runtime mode the process was started in.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment resolves the runtime mode. CI systems export CI=true,
// which wins over ENV; an unset or unrecognized ENV means development.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}

	switch os.Getenv("ENV") {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

func IsDevelopment() bool {
	return GetEnvironment() == Development
}

func IsTest() bool {
	return GetEnvironment() == Test
}

// IsProduction gates the settings that must never fall back to
// development defaults, like the JWT secret.
func IsProduction() bool {
	return GetEnvironment() == Production
}

package config

import (
	"os"
	"strconv"

	"delistats/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Simulation SimulationConfig
	Inference  InferenceConfig
	Report     ReportConfig
}

// SimulationConfig holds the parameters of the simulated delivery-time sample
type SimulationConfig struct {
	PopulationMean   float64
	PopulationStdDev float64
	SampleSize       int
	Seed             int64
}

// InferenceConfig holds the parameters of the statistical inference
type InferenceConfig struct {
	ConfidenceLevel  float64
	HypothesizedMean float64
}

// ReportConfig holds output rendering settings
type ReportConfig struct {
	HistogramWidth int
	ExcelFile      string
	HTMLFile       string
}

// Load reads configuration from environment variables and validates it.
// Every knob has a default mirroring the reference delivery-time scenario,
// so an empty environment yields a runnable configuration.
func Load() (*Config, error) {
	config := &Config{
		Simulation: SimulationConfig{
			PopulationMean:   getEnvFloatOrDefault("POPULATION_MEAN", 3.5),
			PopulationStdDev: getEnvFloatOrDefault("POPULATION_STDDEV", 0.5),
			SampleSize:       getEnvIntOrDefault("SAMPLE_SIZE", 30),
			Seed:             getEnvInt64OrDefault("SEED", 42),
		},
		Inference: InferenceConfig{
			ConfidenceLevel:  getEnvFloatOrDefault("CONFIDENCE_LEVEL", 0.95),
			HypothesizedMean: getEnvFloatOrDefault("HYPOTHESIZED_MEAN", 3.5),
		},
		Report: ReportConfig{
			HistogramWidth: getEnvIntOrDefault("HISTOGRAM_WIDTH", 40),
			ExcelFile:      getEnvOrDefault("EXCEL_FILE", ""),
			HTMLFile:       getEnvOrDefault("HTML_FILE", ""),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Simulation.PopulationStdDev <= 0 {
		return errors.ConfigInvalid("POPULATION_STDDEV must be > 0")
	}
	if config.Simulation.SampleSize < 2 {
		return errors.ConfigInvalid("SAMPLE_SIZE must be >= 2")
	}
	if config.Inference.ConfidenceLevel <= 0 || config.Inference.ConfidenceLevel >= 1 {
		return errors.ConfigInvalid("CONFIDENCE_LEVEL must be in (0,1)")
	}
	if config.Report.HistogramWidth < 1 {
		return errors.ConfigInvalid("HISTOGRAM_WIDTH must be >= 1")
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

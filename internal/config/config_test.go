package config

import (
	"testing"

	"delistats/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error with empty environment: %v", err)
	}

	if cfg.Simulation.PopulationMean != 3.5 {
		t.Errorf("Expected default POPULATION_MEAN 3.5, got %f", cfg.Simulation.PopulationMean)
	}
	if cfg.Simulation.SampleSize != 30 {
		t.Errorf("Expected default SAMPLE_SIZE 30, got %d", cfg.Simulation.SampleSize)
	}
	if cfg.Simulation.Seed != 42 {
		t.Errorf("Expected default SEED 42, got %d", cfg.Simulation.Seed)
	}
	if cfg.Inference.ConfidenceLevel != 0.95 {
		t.Errorf("Expected default CONFIDENCE_LEVEL 0.95, got %f", cfg.Inference.ConfidenceLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("POPULATION_MEAN", "10.0")
	t.Setenv("POPULATION_STDDEV", "2.5")
	t.Setenv("SAMPLE_SIZE", "100")
	t.Setenv("SEED", "7")
	t.Setenv("CONFIDENCE_LEVEL", "0.99")
	t.Setenv("HYPOTHESIZED_MEAN", "9.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Simulation.PopulationMean != 10.0 {
		t.Errorf("Expected POPULATION_MEAN 10.0, got %f", cfg.Simulation.PopulationMean)
	}
	if cfg.Simulation.PopulationStdDev != 2.5 {
		t.Errorf("Expected POPULATION_STDDEV 2.5, got %f", cfg.Simulation.PopulationStdDev)
	}
	if cfg.Simulation.SampleSize != 100 {
		t.Errorf("Expected SAMPLE_SIZE 100, got %d", cfg.Simulation.SampleSize)
	}
	if cfg.Simulation.Seed != 7 {
		t.Errorf("Expected SEED 7, got %d", cfg.Simulation.Seed)
	}
	if cfg.Inference.HypothesizedMean != 9.5 {
		t.Errorf("Expected HYPOTHESIZED_MEAN 9.5, got %f", cfg.Inference.HypothesizedMean)
	}
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non-positive stddev", key: "POPULATION_STDDEV", value: "0"},
		{name: "sample size below 2", key: "SAMPLE_SIZE", value: "1"},
		{name: "confidence level at 1", key: "CONFIDENCE_LEVEL", value: "1.0"},
		{name: "confidence level at 0", key: "CONFIDENCE_LEVEL", value: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatalf("Expected error for %s=%s", tt.key, tt.value)
			}
			if errors.GetCode(err) != errors.CodeConfigInvalid {
				t.Errorf("Expected CONFIG_INVALID, got %s", errors.GetCode(err))
			}
		})
	}
}

package config

import (
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	Env     string        `yaml:"env"`     // Env is the current environment: local, development, production.
	Report  ReportConfig  `yaml:"report"`  // Report holds the report pipeline parameters
	Metrics MetricsConfig `yaml:"metrics"` // Metrics holds the metrics export settings
}

// ReportConfig struct holds the parameters of the report stages.
type ReportConfig struct {
	ExcludedName string          `yaml:"excluded_name"` // ExcludedName is removed from the roster, ignoring case.
	RaiseFactor  decimal.Decimal `yaml:"raise_factor"`  // RaiseFactor multiplies every salary in the bulk raise.
	MinimumWage  decimal.Decimal `yaml:"minimum_wage"`  // MinimumWage is the divisor of the minimum-wage multiples.
}

// MetricsConfig struct holds where the run metrics are exported to.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // Textfile is the .prom file path; empty disables the export.
}

const (
	defaultEnv          = "production"
	defaultExcludedName = "João"
	defaultRaiseFactor  = "1.10"
	defaultMinimumWage  = "1212.00"
)

// MustLoad loads the configuration and returns a Config struct. Every key is
// optional: a YAML file is read only when CONFIG_PATH is set, PLUTUS_* environment
// variables override it, and the defaults reproduce the standard report.
func MustLoad() *Config {
	vpr := viper.New()

	vpr.SetDefault("env", defaultEnv)
	vpr.SetDefault("report.excluded_name", defaultExcludedName)
	vpr.SetDefault("report.raise_factor", defaultRaiseFactor)
	vpr.SetDefault("report.minimum_wage", defaultMinimumWage)
	vpr.SetDefault("metrics.textfile", "")

	vpr.SetEnvPrefix("plutus")
	vpr.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vpr.AutomaticEnv()

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		// check if file exists
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			panic("config file does not exist: " + configPath)
		}

		vpr.SetConfigFile(configPath)
		if err := vpr.ReadInConfig(); err != nil {
			panic("config error: " + err.Error())
		}
	}

	raiseFactor, err := decimal.NewFromString(vpr.GetString("report.raise_factor"))
	if err != nil {
		panic("failed to parse raise factor from configuration")
	}

	minimumWage, err := decimal.NewFromString(vpr.GetString("report.minimum_wage"))
	if err != nil || !minimumWage.IsPositive() {
		panic("failed to parse minimum wage from configuration")
	}

	return &Config{
		Env: vpr.GetString("env"),
		Report: ReportConfig{
			ExcludedName: vpr.GetString("report.excluded_name"),
			RaiseFactor:  raiseFactor,
			MinimumWage:  minimumWage,
		},
		Metrics: MetricsConfig{
			Textfile: vpr.GetString("metrics.textfile"),
		},
	}
}

package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
	Engine EngineConfig `yaml:"engine" mapstructure:"engine"`
	Tables TablesConfig `yaml:"tables" mapstructure:"tables"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port        int      `yaml:"port" mapstructure:"port"`
	CORSOrigins []string `yaml:"cors_origins" mapstructure:"cors_origins"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// EngineConfig holds the default values the normalizer fills in for
// fields the caller leaves out, plus the fixed model factors.
type EngineConfig struct {
	BuildingType     string  `yaml:"building_type" mapstructure:"building_type"`
	BuildingTier     string  `yaml:"building_tier" mapstructure:"building_tier"`
	Climate          string  `yaml:"climate" mapstructure:"climate"`
	State            string  `yaml:"state" mapstructure:"state"`
	GSHeatPumpCOP    float64 `yaml:"gs_heat_pump_cop" mapstructure:"gs_heat_pump_cop"`
	BaselineCOP      float64 `yaml:"baseline_cop" mapstructure:"baseline_cop"`
	OversizeFactor   float64 `yaml:"oversize_factor" mapstructure:"oversize_factor"`
	SoilConductivity float64 `yaml:"soil_conductivity" mapstructure:"soil_conductivity"`
	DiversityFactor  float64 `yaml:"diversity_factor" mapstructure:"diversity_factor"`
	EmissionFactor   float64 `yaml:"emission_factor" mapstructure:"emission_factor"`
}

// TablesConfig points at an optional YAML file overriding the built-in
// tariff and cost tables.
type TablesConfig struct {
	OverridesFile string `yaml:"overrides_file" mapstructure:"overrides_file"`
}

// DefaultEngine returns the stock engine defaults (Indian composite-zone
// office building, COP 4 against a 3.0 baseline chiller).
func DefaultEngine() EngineConfig {
	return EngineConfig{
		BuildingType:     "Office",
		BuildingTier:     "Tier-2",
		Climate:          "Composite",
		State:            "National Average",
		GSHeatPumpCOP:    4.0,
		BaselineCOP:      3.0,
		OversizeFactor:   1.2,
		SoilConductivity: 2.0,
		DiversityFactor:  0.7,
		EmissionFactor:   0.82,
	}
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("GEOTABS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("tables.overrides_file", "")

	d := DefaultEngine()
	v.SetDefault("engine.building_type", d.BuildingType)
	v.SetDefault("engine.building_tier", d.BuildingTier)
	v.SetDefault("engine.climate", d.Climate)
	v.SetDefault("engine.state", d.State)
	v.SetDefault("engine.gs_heat_pump_cop", d.GSHeatPumpCOP)
	v.SetDefault("engine.baseline_cop", d.BaselineCOP)
	v.SetDefault("engine.oversize_factor", d.OversizeFactor)
	v.SetDefault("engine.soil_conductivity", d.SoilConductivity)
	v.SetDefault("engine.diversity_factor", d.DiversityFactor)
	v.SetDefault("engine.emission_factor", d.EmissionFactor)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

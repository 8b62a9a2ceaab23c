package server

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/pokerforge/gtoadvisor/gto"
)

// Config represents the complete advisory server configuration
type Config struct {
	Server  ServerSettings  `hcl:"server,block"`
	Advisor AdvisorSettings `hcl:"advisor,block"`
}

// ServerSettings contains server-level configuration
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// AdvisorSettings configures the decision engine served to clients
type AdvisorSettings struct {
	Seed            int64   `hcl:"seed,optional"`
	BlendRatio      float64 `hcl:"blend_ratio,optional"`
	Aggression      float64 `hcl:"aggression,optional"`
	BluffRate       float64 `hcl:"bluff_rate,optional"`
	ThresholdOffset float64 `hcl:"threshold_offset,optional"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerSettings{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
		},
		Advisor: AdvisorSettings{
			BlendRatio: gto.DefaultBlendRatio,
			Aggression: 1.0,
			BluffRate:  1.0,
		},
	}
}

// LoadConfig loads configuration from an HCL file. A missing file
// yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.Server.Address == "" {
		config.Server.Address = "localhost"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = "info"
	}
	if config.Advisor.BlendRatio == 0 {
		config.Advisor.BlendRatio = gto.DefaultBlendRatio
	}
	if config.Advisor.Aggression == 0 {
		config.Advisor.Aggression = 1.0
	}
	if config.Advisor.BluffRate == 0 {
		config.Advisor.BluffRate = 1.0
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Advisor.BlendRatio <= 0 || c.Advisor.BlendRatio > 1 {
		return fmt.Errorf("blend ratio must be in (0, 1]: %f", c.Advisor.BlendRatio)
	}
	if c.Advisor.Aggression <= 0 {
		return fmt.Errorf("aggression must be positive: %f", c.Advisor.Aggression)
	}
	if c.Advisor.BluffRate < 0 {
		return fmt.Errorf("bluff rate must not be negative: %f", c.Advisor.BluffRate)
	}
	return nil
}

// GetServerAddress returns the full listen address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// AdvisorConfig converts the settings into an engine configuration.
// Each connection gets its own seed offset so sessions don't share a
// random stream.
func (c *Config) AdvisorConfig(seedOffset int64) gto.Config {
	return gto.Config{
		Seed:       c.Advisor.Seed + seedOffset,
		BlendRatio: c.Advisor.BlendRatio,
		Profile: gto.Profile{
			AggressionMult:  c.Advisor.Aggression,
			BluffRate:       c.Advisor.BluffRate,
			ThresholdOffset: c.Advisor.ThresholdOffset,
		},
	}
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/nacpt/gasm"
)

// cliConfig is the shape cmd/gasm resolves from built-in viper defaults,
// optionally overridden by a --config file (gasm.yaml), in the order
// bisibesi-spec-recon's internal/config.Load layers viper defaults under a
// config file. Environment variables and command-line flags are not bound.
type cliConfig struct {
	Dataflow   bool   `mapstructure:"dataflow"`
	ApiVersion string `mapstructure:"api_version"`
	SkipFrames bool   `mapstructure:"skip_frames"`
	SkipDebug  bool   `mapstructure:"skip_debug"`
}

func loadConfig(configPath string) (*cliConfig, error) {
	v := viper.New()
	v.SetDefault("dataflow", false)
	v.SetDefault("api_version", "experimental")
	v.SetDefault("skip_frames", false)
	v.SetDefault("skip_debug", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg cliConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// resolveApiVersion maps the config's version name to a gasm.ApiVersion
// floor, in the same spirit as gasm.ApiVersion itself expanding spec.md's
// bare "at least 1.8 / experimental" floor into named constants.
func resolveApiVersion(name string) (gasm.ApiVersion, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "experimental":
		return gasm.ApiExperimental, nil
	case "current":
		return gasm.Api8, nil
	default:
		return 0, fmt.Errorf("unknown api_version %q, want \"current\" or \"experimental\"", name)
	}
}

package commands

import (
	"errors"
	"log/slog"
	"os"

	"tpb-scraper/lib/configutil"

	"github.com/spf13/pflag"
)

const configName = "tpb-scraper.json5"

type Config struct {
	Mirror           string `json:"mirror"`
	ApiUrl           string `json:"api_url"`
	UserAgent        string `json:"user_agent"`
	BypassCloudflare bool   `json:"bypass_cloudflare"`
	DumpHttp         string `json:"dump_http"`
}

// loadConfig resolves the config with the precedence flag > env > file.
// Fields left empty fall back to the clients' own defaults.
func loadConfig(flags *pflag.FlagSet) (Config, error) {
	err := configutil.LoadDotenv(".env")
	if err != nil {
		return Config{}, err
	}

	cfg, dir, err := configutil.ReadRecursively[Config](".", configName)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("no config file found, using defaults", "name", configName)
	} else if err != nil {
		return Config{}, err
	} else {
		slog.Debug("read config", "dir", dir)
	}

	configutil.EnvOverrides(map[string]*string{
		"TPB_MIRROR":  &cfg.Mirror,
		"TPB_API_URL": &cfg.ApiUrl,
	})

	for flag, target := range map[string]*string{
		"mirror":    &cfg.Mirror,
		"api-url":   &cfg.ApiUrl,
		"dump-http": &cfg.DumpHttp,
	} {
		if !flags.Changed(flag) {
			continue
		}
		*target, err = flags.GetString(flag)
		if err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

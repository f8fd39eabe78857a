package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// config holds the global settings after flags and PODWS_* environment
// variables were merged. Flags take precedence over the environment.
type config struct {
	Root     string
	Manifest string
	NoColor  bool
	Verbose  bool
}

var globalKeys = []string{"root", "manifest", "no-color", "verbose"}

func loadConfig(cmd *cobra.Command) (*config, error) {
	v := viper.New()
	v.SetEnvPrefix("PODWS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range globalKeys {
		flag := cmd.Flags().Lookup(key)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("binding --%s: %w", key, err)
		}
	}

	return &config{
		Root:     v.GetString("root"),
		Manifest: v.GetString("manifest"),
		NoColor:  v.GetBool("no-color"),
		Verbose:  v.GetBool("verbose"),
	}, nil
}

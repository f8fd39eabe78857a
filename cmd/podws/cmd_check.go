package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SplashZ/CocoaPods/internal/diagnostics"
	"github.com/SplashZ/CocoaPods/internal/manifest"
	"github.com/SplashZ/CocoaPods/internal/override"
	"github.com/SplashZ/CocoaPods/internal/ui"
	"github.com/SplashZ/CocoaPods/internal/workspace"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "List user build settings that override generated xcconfig values",
		RunE:  runCheck,
	}
	cmd.Flags().StringSlice("only", nil, "Check only these aggregate targets")
	cmd.Flags().StringSlice("skip", nil, "Skip these aggregate targets")
	cmd.Flags().Bool("json", false, "Output as JSON")
	cmd.Flags().Bool("strict", false, "Fail when any override is found")
	return cmd
}

type findingView struct {
	Target        string `json:"target"`
	UserTarget    string `json:"user_target"`
	Configuration string `json:"configuration"`
	Key           string `json:"key"`
	XCConfig      string `json:"xcconfig"`
	Message       string `json:"message"`
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	only, _ := cmd.Flags().GetStringSlice("only")
	skip, _ := cmd.Flags().GetStringSlice("skip")
	asJSON, _ := cmd.Flags().GetBool("json")
	strict, _ := cmd.Flags().GetBool("strict")

	ctx, err := workspace.Load(cfg.Root, cfg.Manifest)
	if err != nil {
		return err
	}

	targets := manifest.FilterTargets(ctx.Targets, only, skip)
	findings := override.NewDetector().Detect(targets)

	views := make([]findingView, 0, len(findings))
	for _, f := range findings {
		views = append(views, findingView{
			Target:        f.Target,
			UserTarget:    f.UserTarget,
			Configuration: f.Configuration,
			Key:           f.Key,
			XCConfig:      f.XCConfigPath,
			Message:       diagnostics.OverrideMessage(f),
		})
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(views); err != nil {
			return err
		}
	} else {
		tbl := ui.NewTable(out, "TARGET", "USER TARGET", "CONFIG", "KEY").Empty("No build setting overrides found.")
		for _, v := range views {
			tbl.Row(v.Target, v.UserTarget, v.Configuration, v.Key)
		}
		if err := tbl.Flush(); err != nil {
			return err
		}
		if cfg.Verbose {
			diagnostics.New(ui.NewConsole(cmd.ErrOrStderr(), cfg.NoColor)).Overrides(findings)
		}
	}

	if strict && len(findings) > 0 {
		return fmt.Errorf("%d build setting override(s) found", len(findings))
	}
	return nil
}

package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SplashZ/CocoaPods/internal/ui"
	"github.com/SplashZ/CocoaPods/internal/workspace"
	"github.com/SplashZ/CocoaPods/internal/xcworkspace"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the workspace references and the last integration",
		RunE:  runStatus,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type refStatus struct {
	Location string `json:"location"`
	Required bool   `json:"required"`
	Present  bool   `json:"present"`
}

type statusView struct {
	Workspace   string      `json:"workspace"`
	Exists      bool        `json:"exists"`
	References  []refStatus `json:"references"`
	LastRun     string      `json:"last_run,omitempty"`
	ToolVersion string      `json:"tool_version,omitempty"`
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	asJSON, _ := cmd.Flags().GetBool("json")

	ctx, err := workspace.Load(cfg.Root, cfg.Manifest)
	if err != nil {
		return err
	}
	view, err := collectStatus(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	state := "present"
	if !view.Exists {
		state = "not created"
	}
	_, _ = fmt.Fprintf(out, "Workspace: %s (%s)\n", view.Workspace, state)
	if view.LastRun != "" {
		_, _ = fmt.Fprintf(out, "Last integration: %s (podws %s)\n", view.LastRun, view.ToolVersion)
	}

	tbl := ui.NewTable(out, "REFERENCE", "REQUIRED", "STATE")
	for _, r := range view.References {
		s := "ok"
		if !r.Present {
			s = "missing"
		}
		tbl.Row(r.Location, r.Required, s)
	}
	return tbl.Flush()
}

func collectStatus(ctx *workspace.Context) (*statusView, error) {
	path, err := workspace.ResolvePath(ctx.ResolveInputs())
	if err != nil {
		return nil, err
	}
	required, err := workspace.RequiredRefs(path, ctx.GeneratedProject, ctx.UserProjects())
	if err != nil {
		return nil, err
	}

	view := &statusView{Workspace: path}
	if ctx.Record != nil {
		view.LastRun = ctx.Record.GeneratedAt
		view.ToolVersion = ctx.Record.ToolVersion
	}

	doc, err := xcworkspace.Load(path)
	switch {
	case errors.Is(err, xcworkspace.ErrNotFound):
		doc = xcworkspace.New()
	case err != nil:
		return nil, err
	default:
		view.Exists = true
	}

	requiredSet := make(map[xcworkspace.FileRef]bool, len(required))
	for _, r := range required {
		requiredSet[r] = true
	}
	for _, r := range doc.AllRefs() {
		view.References = append(view.References, refStatus{Location: r.Location(), Required: requiredSet[r], Present: true})
	}
	for _, r := range required {
		if !doc.Contains(r) {
			view.References = append(view.References, refStatus{Location: r.Location(), Required: true})
		}
	}
	return view, nil
}

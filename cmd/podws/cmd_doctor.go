package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/SplashZ/CocoaPods/internal/workspace"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the manifest, user projects and workspace location",
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	ok := true

	_, _ = fmt.Fprint(out, "Checking manifest... ")
	ctx, err := workspace.Load(cfg.Root, cfg.Manifest)
	if err != nil {
		_, _ = fmt.Fprintln(out, "FAILED")
		_, _ = fmt.Fprintf(out, "  %v\n", err)
		return fmt.Errorf("doctor checks failed")
	}
	_, _ = fmt.Fprintf(out, "OK (%d targets)\n", len(ctx.Targets))

	for _, p := range ctx.UserProjects() {
		rel, _ := filepath.Rel(ctx.Root, p)
		_, _ = fmt.Fprintf(out, "Checking user project %s... ", rel)
		if info, statErr := os.Stat(p); statErr != nil || !info.IsDir() {
			_, _ = fmt.Fprintln(out, "NOT FOUND")
			ok = false
			continue
		}
		_, _ = fmt.Fprintln(out, "OK")
	}

	_, _ = fmt.Fprint(out, "Checking workspace location... ")
	path, err := workspace.ResolvePath(ctx.ResolveInputs())
	if err != nil {
		_, _ = fmt.Fprintln(out, "FAILED")
		_, _ = fmt.Fprintf(out, "  %v\n", err)
		ok = false
	} else {
		_, _ = fmt.Fprintln(out, path)
	}

	if ctx.Manifest.AllEmpty() {
		_, _ = fmt.Fprintln(out, "Warning: no target declares dependencies")
	}

	checkUnreferencedProjects(cmd, ctx)

	if ok {
		_, _ = fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	}
	_, _ = fmt.Fprintln(out, "\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}

// checkUnreferencedProjects lists projects under the root that no target
// mentions. They are informational only.
func checkUnreferencedProjects(cmd *cobra.Command, ctx *workspace.Context) {
	found, err := workspace.DiscoverProjects(ctx.Root)
	if err != nil {
		return
	}
	used := make(map[string]bool)
	for _, p := range ctx.UserProjects() {
		used[p] = true
	}
	for _, rel := range found {
		if !used[filepath.Join(ctx.Root, rel)] {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Note: %s is not used by any target\n", rel)
		}
	}
}

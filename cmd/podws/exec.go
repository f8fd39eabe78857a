package main

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/SplashZ/CocoaPods/internal/manifest"
	"github.com/SplashZ/CocoaPods/internal/ui"
)

// commandIntegrator runs integrate_cmd once per target (no shell expansion).
// {target}, {definition} and {user_project} in the arguments are replaced.
type commandIntegrator struct {
	args   []string
	dir    string
	stdout io.Writer
	stderr io.Writer
}

func (c *commandIntegrator) IntegrateTarget(ctx context.Context, t manifest.Target) error {
	if len(c.args) == 0 {
		return fmt.Errorf("empty integrate_cmd")
	}
	args := expandArgs(c.args, c.dir, t)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...) //nolint:gosec // command comes from the user's manifest
	cmd.Dir = c.dir
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", args[0], err)
	}
	return nil
}

func expandArgs(args []string, root string, t manifest.Target) []string {
	project := t.UserProject
	if rel, err := filepath.Rel(root, project); err == nil && project != "" {
		project = rel
	}
	r := strings.NewReplacer(
		"{target}", t.Name,
		"{definition}", t.DefinitionName(),
		"{user_project}", project,
	)
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = r.Replace(a)
	}
	return out
}

// logIntegrator is used when no integrate_cmd is configured. It only notes
// which target would be wired up.
type logIntegrator struct {
	progress *ui.Progress
	verbose  bool
}

func (l *logIntegrator) IntegrateTarget(_ context.Context, t manifest.Target) error {
	if l.verbose {
		l.progress.Log("No integrate_cmd configured; %s left for the project integrator", t.Name)
	}
	return nil
}

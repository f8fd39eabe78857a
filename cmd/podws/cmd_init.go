package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/SplashZ/CocoaPods/internal/manifest"
	"github.com/SplashZ/CocoaPods/internal/workspace"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create podws.yaml interactively or from flags",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
	cmd.Flags().String("project", "", "User project relative to the root (inferred when omitted)")
	cmd.Flags().String("target", "", "Aggregate target name (default Pods-<project>)")
	cmd.Flags().String("workspace", "", "Workspace path to declare")
	cmd.Flags().StringSlice("dependency", nil, "Dependency of the target (repeatable)")
	cmd.Flags().Bool("force", false, "Overwrite an existing manifest")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	project, _ := cmd.Flags().GetString("project")
	target, _ := cmd.Flags().GetString("target")
	ws, _ := cmd.Flags().GetString("workspace")
	deps, _ := cmd.Flags().GetStringSlice("dependency")
	force, _ := cmd.Flags().GetBool("force")

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return fmt.Errorf("resolving root: %w", err)
	}
	manifestPath := filepath.Join(root, cfg.Manifest)
	if _, err := os.Stat(manifestPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", manifestPath)
	}

	var m *manifest.Manifest
	switch {
	case project != "":
		if err := validateProject(project); err != nil {
			return err
		}
		m = buildManifest(project, targetOrDefault(target, project), ws, deps)
	case term.IsTerminal(int(os.Stdin.Fd())):
		candidates, err := workspace.DiscoverProjects(root)
		if err != nil {
			return err
		}
		m, err = interactiveManifest(candidates)
		if err != nil {
			return fmt.Errorf("interactive setup: %w", err)
		}
	default:
		inferred, err := workspace.InferUserProject(root)
		if err != nil {
			return fmt.Errorf("%w (or pass --project)", err)
		}
		rel := filepath.Base(inferred)
		m = buildManifest(rel, targetOrDefault(target, rel), ws, deps)
	}

	if err := manifest.Save(manifestPath, m); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", manifestPath)
	return nil
}

func targetOrDefault(target, project string) string {
	if target != "" {
		return target
	}
	return defaultTargetName(project)
}

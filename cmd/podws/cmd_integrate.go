package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SplashZ/CocoaPods/internal/integration"
	"github.com/SplashZ/CocoaPods/internal/lock"
	"github.com/SplashZ/CocoaPods/internal/ui"
	"github.com/SplashZ/CocoaPods/internal/workspace"
)

func newIntegrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Add Pods to the workspace and integrate every non-empty target",
		RunE:  runIntegrate,
	}
	cmd.Flags().Bool("dry-run", false, "Report what would change without writing the workspace")
	cmd.Flags().Bool("no-record", false, "Do not write the integration record")
	return cmd
}

func runIntegrate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	noRecord, _ := cmd.Flags().GetBool("no-record")

	ctx, err := workspace.Load(cfg.Root, cfg.Manifest)
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	reporter := ui.NewConsole(errOut, cfg.NoColor)
	logger := ui.NewProgress(errOut, 0)

	var store workspace.Store = workspace.FileStore{}
	if dryRun {
		store = workspace.DryRunStore{Store: store, Log: logger.Log}
	}

	var integrator integration.TargetIntegrator = &logIntegrator{progress: logger, verbose: cfg.Verbose}
	if len(ctx.Manifest.IntegrateCmd) > 0 && !dryRun {
		integrator = &commandIntegrator{
			args:   ctx.Manifest.IntegrateCmd,
			dir:    ctx.Root,
			stdout: errOut,
			stderr: errOut,
		}
	}

	installer := integration.New(integration.Config{
		Workspace:  ctx,
		Store:      store,
		Reporter:   reporter,
		Integrator: integrator,
		Out:        errOut,
	})

	report, err := installer.Integrate(cmd.Context())
	if report == nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err == nil && !dryRun && !noRecord {
		if recErr := lock.Save(ctx.RecordPath, report.Record(version, time.Now())); recErr != nil {
			return recErr
		}
	}

	_, _ = fmt.Fprintf(out, "Workspace: %s\n", report.WorkspacePath)
	_, _ = fmt.Fprintf(out, "Integrated %d target(s), skipped %d empty, %d build setting override(s).\n",
		len(report.Integrated), len(report.Skipped), len(report.Findings))
	if len(report.Failed) > 0 {
		_, _ = fmt.Fprintf(out, "Failed to integrate %d target(s): %s\n", len(report.Failed), strings.Join(report.Failed, ", "))
	}
	if err != nil {
		return err
	}
	if dryRun {
		_, _ = fmt.Fprintln(out, "Dry run complete.")
		return nil
	}
	_, _ = fmt.Fprintln(out, "Integration complete.")
	return nil
}

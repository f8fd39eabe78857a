package integration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"time"

	"github.com/SplashZ/CocoaPods/internal/diagnostics"
	"github.com/SplashZ/CocoaPods/internal/lock"
	"github.com/SplashZ/CocoaPods/internal/manifest"
	"github.com/SplashZ/CocoaPods/internal/override"
	"github.com/SplashZ/CocoaPods/internal/ui"
	"github.com/SplashZ/CocoaPods/internal/workspace"
)

// TargetIntegrator wires one aggregate target into its user project.
type TargetIntegrator interface {
	IntegrateTarget(ctx context.Context, t manifest.Target) error
}

// TargetIntegratorFunc adapts a function to TargetIntegrator.
type TargetIntegratorFunc func(ctx context.Context, t manifest.Target) error

// IntegrateTarget calls f.
func (f TargetIntegratorFunc) IntegrateTarget(ctx context.Context, t manifest.Target) error {
	return f(ctx, t)
}

// Config holds the Installer's collaborators.
type Config struct {
	Workspace  *workspace.Context
	Store      workspace.Store  // defaults to workspace.FileStore
	Reporter   ui.Reporter      // required
	Integrator TargetIntegrator // required
	Detector   *override.Detector
	Out        io.Writer // progress lines; discarded when nil
}

// Installer runs the integration for one installation root. Callers must not
// run two Installers against the same root concurrently.
type Installer struct {
	ws          *workspace.Context
	reconciler  *workspace.Reconciler
	integrator  TargetIntegrator
	detector    *override.Detector
	diagnostics *diagnostics.Reporter
	out         io.Writer
}

// New returns an Installer.
func New(cfg Config) *Installer {
	store := cfg.Store
	if store == nil {
		store = workspace.FileStore{}
	}
	detector := cfg.Detector
	if detector == nil {
		detector = override.NewDetector()
	}
	out := cfg.Out
	if out == nil {
		out = io.Discard
	}
	return &Installer{
		ws:          cfg.Workspace,
		reconciler:  workspace.NewReconciler(store, cfg.Reporter),
		integrator:  cfg.Integrator,
		detector:    detector,
		diagnostics: diagnostics.New(cfg.Reporter),
		out:         out,
	}
}

// Report summarizes an integration.
type Report struct {
	WorkspacePath string
	Workspace     *workspace.Result
	Integrated    []string
	Skipped       []string
	Failed        []string
	Findings      []override.Finding
	EmptyManifest bool
}

// Integrate runs the integration. A non-nil Report is returned whenever the
// workspace step succeeded, even if some targets failed to integrate.
func (in *Installer) Integrate(ctx context.Context) (*Report, error) {
	path, err := workspace.ResolvePath(in.ws.ResolveInputs())
	if err != nil {
		return nil, err
	}

	res, err := in.reconciler.Reconcile(path, in.ws.GeneratedProject, in.ws.UserProjects())
	if err != nil {
		return nil, fmt.Errorf("updating workspace %s: %w", path, err)
	}
	report := &Report{WorkspacePath: path, Workspace: res}

	errs := in.integrateTargets(ctx, report)

	report.EmptyManifest = in.diagnostics.EmptyManifest(in.ws.Manifest)
	report.Findings = in.detector.Detect(in.ws.Targets)
	in.diagnostics.Overrides(report.Findings)

	return report, errors.Join(errs...)
}

func (in *Installer) integrateTargets(ctx context.Context, report *Report) []error {
	targets := SortedTargets(in.ws.Targets)

	var pending []manifest.Target
	for _, t := range targets {
		if t.IsEmpty() {
			report.Skipped = append(report.Skipped, t.Name)
			continue
		}
		pending = append(pending, t)
	}

	progress := ui.NewProgress(in.out, len(pending))
	var errs []error
	for _, t := range pending {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := in.integrator.IntegrateTarget(ctx, t); err != nil {
			report.Failed = append(report.Failed, t.Name)
			errs = append(errs, fmt.Errorf("integrating target %s: %w", t.Name, err))
			progress.Fail(t.Name, err)
			continue
		}
		report.Integrated = append(report.Integrated, t.Name)
		progress.Done(fmt.Sprintf("%s integrated into %s", t.Name, relProject(in.ws.Root, t.UserProject)))
	}
	return errs
}

// SortedTargets returns a copy of targets ordered by name.
func SortedTargets(targets []manifest.Target) []manifest.Target {
	out := make([]manifest.Target, len(targets))
	copy(out, targets)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Record converts the report into the integration record kept in the sandbox.
func (r *Report) Record(toolVersion string, at time.Time) *lock.Record {
	rec := &lock.Record{
		Version:      1,
		GeneratedAt:  at.Format(time.RFC3339),
		ToolVersion:  toolVersion,
		Workspace:    r.WorkspacePath,
		Integrated:   r.Integrated,
		Skipped:      r.Skipped,
		Overrides:    len(r.Findings),
		EmptyPodfile: r.EmptyManifest,
	}
	if r.Workspace != nil {
		rec.Created = r.Workspace.Created
		for _, ref := range r.Workspace.Added {
			rec.Added = append(rec.Added, ref.Location())
		}
	}
	return rec
}

func relProject(root, project string) string {
	if rel, err := filepath.Rel(root, project); err == nil {
		return rel
	}
	return project
}

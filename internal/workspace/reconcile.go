package workspace

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/SplashZ/CocoaPods/internal/ui"
	"github.com/SplashZ/CocoaPods/internal/xcworkspace"
)

// Store loads and saves workspace documents. Load returns an error wrapping
// xcworkspace.ErrNotFound when there is no document at path.
type Store interface {
	Load(path string) (*xcworkspace.Document, error)
	Save(doc *xcworkspace.Document, path string) error
}

// FileStore keeps documents as .xcworkspace bundles on disk.
type FileStore struct{}

func (FileStore) Load(path string) (*xcworkspace.Document, error) { return xcworkspace.Load(path) }

func (FileStore) Save(doc *xcworkspace.Document, path string) error {
	return xcworkspace.Save(doc, path)
}

// DryRunStore reads through to Store but only logs writes.
type DryRunStore struct {
	Store
	Log func(format string, args ...any)
}

func (s DryRunStore) Save(doc *xcworkspace.Document, path string) error {
	if s.Log != nil {
		s.Log("Would write %s (%d references)", path, len(doc.Refs()))
	}
	return nil
}

// Result describes what a reconciliation did.
type Result struct {
	Path    string
	Created bool
	Added   []xcworkspace.FileRef
	Written bool
}

// Reconciler merges required project references into a workspace document.
type Reconciler struct {
	store    Store
	reporter ui.Reporter
}

// NewReconciler returns a Reconciler persisting through store and sending
// the first-use notice to reporter.
func NewReconciler(store Store, reporter ui.Reporter) *Reconciler {
	return &Reconciler{store: store, reporter: reporter}
}

// Reconcile makes sure the document at path references the generated
// project and every user project. Existing references are never removed or
// reordered, and nothing is written when no reference is missing.
func (r *Reconciler) Reconcile(path, generated string, userProjects []string) (*Result, error) {
	required, err := RequiredRefs(path, generated, userProjects)
	if err != nil {
		return nil, err
	}
	res := &Result{Path: path}

	doc, err := r.store.Load(path)
	switch {
	case errors.Is(err, xcworkspace.ErrNotFound):
		doc = xcworkspace.New(required...)
		if err := r.store.Save(doc, path); err != nil {
			return nil, err
		}
		res.Created = true
		res.Written = true
		res.Added = doc.Refs()
		r.reporter.Report(fmt.Sprintf("Please close any current Xcode sessions and use `%s` for this project from now on.", filepath.Base(path)), nil)
		return res, nil
	case err != nil:
		return nil, err
	}

	res.Added = doc.Append(required...)
	if len(res.Added) == 0 {
		return res, nil
	}
	if err := r.store.Save(doc, path); err != nil {
		return nil, err
	}
	res.Written = true
	return res, nil
}

// RequiredRefs returns the references the workspace at path must contain:
// user projects sorted, then the generated project, each relative to the
// workspace's directory and without duplicates.
func RequiredRefs(path, generated string, userProjects []string) ([]xcworkspace.FileRef, error) {
	projects := distinct(userProjects)
	sort.Strings(projects)
	projects = append(projects, filepath.Clean(generated))

	dir := filepath.Dir(path)
	seen := make(map[xcworkspace.FileRef]bool, len(projects))
	refs := make([]xcworkspace.FileRef, 0, len(projects))
	for _, p := range projects {
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return nil, fmt.Errorf("locating %s relative to workspace: %w", p, err)
		}
		ref := xcworkspace.GroupRef(rel)
		if seen[ref] {
			continue
		}
		seen[ref] = true
		refs = append(refs, ref)
	}
	return refs, nil
}

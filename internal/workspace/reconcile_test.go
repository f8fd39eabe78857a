package workspace

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/SplashZ/CocoaPods/internal/ui"
	"github.com/SplashZ/CocoaPods/internal/xcworkspace"
)

// memStore keeps documents in memory and counts writes.
type memStore struct {
	docs  map[string]*xcworkspace.Document
	saves int
	errOn string
}

func newMemStore() *memStore {
	return &memStore{docs: make(map[string]*xcworkspace.Document)}
}

func (s *memStore) Load(path string) (*xcworkspace.Document, error) {
	d, ok := s.docs[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", xcworkspace.ErrNotFound, path)
	}
	// Hand out a copy so unsaved changes never leak into the store.
	return xcworkspace.Parse(encode(d))
}

func (s *memStore) Save(doc *xcworkspace.Document, path string) error {
	if s.errOn == path {
		return errors.New("disk full")
	}
	s.saves++
	copied, err := xcworkspace.Parse(encode(doc))
	if err != nil {
		return err
	}
	s.docs[path] = copied
	return nil
}

func encode(d *xcworkspace.Document) []byte {
	var b bytes.Buffer
	_ = d.Encode(&b)
	return b.Bytes()
}

const (
	wsPath    = "/p/App.xcworkspace"
	generated = "/p/Pods/Pods.xcodeproj"
)

func refs(paths ...string) []xcworkspace.FileRef {
	out := make([]xcworkspace.FileRef, len(paths))
	for i, p := range paths {
		out[i] = xcworkspace.GroupRef(p)
	}
	return out
}

func equalRefs(a, b []xcworkspace.FileRef) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestReconcile_createsDocument(t *testing.T) {
	store := newMemStore()
	var rec ui.Recorder
	r := NewReconciler(store, &rec)

	res, err := r.Reconcile(wsPath, generated, []string{"/p/Zeta.xcodeproj", "/p/App.xcodeproj"})
	if err != nil {
		t.Fatalf("Reconcile() error: %v", err)
	}
	if !res.Created || !res.Written {
		t.Errorf("result = %+v, want created and written", res)
	}
	want := refs("App.xcodeproj", "Zeta.xcodeproj", "Pods/Pods.xcodeproj")
	if got := store.docs[wsPath].Refs(); !equalRefs(got, want) {
		t.Errorf("refs = %v, want %v", got, want)
	}
	if len(rec.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(rec.Messages))
	}
	wantMsg := "Please close any current Xcode sessions and use `App.xcworkspace` for this project from now on."
	if rec.Messages[0].Text != wantMsg {
		t.Errorf("notice = %q, want %q", rec.Messages[0].Text, wantMsg)
	}
}

func TestReconcile_idempotent(t *testing.T) {
	store := newMemStore()
	var rec ui.Recorder
	r := NewReconciler(store, &rec)
	projects := []string{"/p/App.xcodeproj"}

	if _, err := r.Reconcile(wsPath, generated, projects); err != nil {
		t.Fatal(err)
	}
	before := string(encode(store.docs[wsPath]))

	res, err := r.Reconcile(wsPath, generated, projects)
	if err != nil {
		t.Fatal(err)
	}
	if res.Written || res.Created || len(res.Added) != 0 {
		t.Errorf("second run result = %+v, want no write", res)
	}
	if store.saves != 1 {
		t.Errorf("saves = %d, want 1", store.saves)
	}
	if after := string(encode(store.docs[wsPath])); after != before {
		t.Errorf("document changed on second run:\n%s\n---\n%s", before, after)
	}
	if len(rec.Messages) != 1 {
		t.Errorf("notice should be emitted once, got %d messages", len(rec.Messages))
	}
}

func TestReconcile_appendsMissingOnly(t *testing.T) {
	store := newMemStore()
	store.docs[wsPath] = xcworkspace.New(refs("Unrelated/Tool.xcodeproj", "Pods/Pods.xcodeproj", "Legacy.xcodeproj")...)
	var rec ui.Recorder
	r := NewReconciler(store, &rec)

	res, err := r.Reconcile(wsPath, generated, []string{"/p/Zeta.xcodeproj", "/p/App.xcodeproj"})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Written || res.Created {
		t.Errorf("result = %+v, want written, not created", res)
	}
	want := refs("Unrelated/Tool.xcodeproj", "Pods/Pods.xcodeproj", "Legacy.xcodeproj", "App.xcodeproj", "Zeta.xcodeproj")
	if got := store.docs[wsPath].Refs(); !equalRefs(got, want) {
		t.Errorf("refs = %v, want %v", got, want)
	}
	if !equalRefs(res.Added, refs("App.xcodeproj", "Zeta.xcodeproj")) {
		t.Errorf("added = %v", res.Added)
	}
	if len(rec.Messages) != 0 {
		t.Errorf("no notice expected for an existing workspace, got %v", rec.Messages)
	}
}

func TestReconcile_monotonic(t *testing.T) {
	existing := refs("B.xcodeproj", "A.xcodeproj", "Pods/Pods.xcodeproj")
	store := newMemStore()
	store.docs[wsPath] = xcworkspace.New(existing...)
	r := NewReconciler(store, &ui.Recorder{})

	if _, err := r.Reconcile(wsPath, generated, []string{"/p/C.xcodeproj"}); err != nil {
		t.Fatal(err)
	}
	got := store.docs[wsPath].Refs()
	if !equalRefs(got[:len(existing)], existing) {
		t.Errorf("existing refs reordered or removed: %v", got)
	}
}

func TestReconcile_normalizedComparison(t *testing.T) {
	store := newMemStore()
	store.docs[wsPath] = xcworkspace.New(
		xcworkspace.ParseLocation(`group:./App.xcodeproj`),
		xcworkspace.ParseLocation(`group:Pods\Pods.xcodeproj`),
	)
	r := NewReconciler(store, &ui.Recorder{})

	res, err := r.Reconcile(wsPath, "/p/Pods/../Pods/Pods.xcodeproj", []string{"/p/./App.xcodeproj"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Written {
		t.Errorf("differently spelled but equal paths should not cause a write, added %v", res.Added)
	}
}

func TestReconcile_projectInsideGroup(t *testing.T) {
	doc, err := xcworkspace.Parse([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<Workspace
   version = "1.0">
   <Group
      location = "container:"
      name = "Apps">
      <FileRef
         location = "group:App.xcodeproj">
      </FileRef>
   </Group>
   <FileRef
      location = "group:Pods/Pods.xcodeproj">
   </FileRef>
</Workspace>
`))
	if err != nil {
		t.Fatal(err)
	}
	store := newMemStore()
	store.docs[wsPath] = doc
	r := NewReconciler(store, &ui.Recorder{})

	res, err := r.Reconcile(wsPath, generated, []string{"/p/App.xcodeproj"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Written || len(res.Added) != 0 {
		t.Errorf("result = %+v, a grouped project must count as present", res)
	}
	if store.saves != 0 {
		t.Errorf("saves = %d, want 0", store.saves)
	}
}

func TestReconcile_keepsRepeatedRefs(t *testing.T) {
	doc, err := xcworkspace.Parse([]byte(`<Workspace version="1.0">
<FileRef location="group:Tool.xcodeproj"></FileRef>
<FileRef location="group:Tool.xcodeproj"></FileRef>
<FileRef location="group:Pods/Pods.xcodeproj"></FileRef>
</Workspace>`))
	if err != nil {
		t.Fatal(err)
	}
	store := newMemStore()
	store.docs[wsPath] = doc
	r := NewReconciler(store, &ui.Recorder{})

	res, err := r.Reconcile(wsPath, generated, []string{"/p/App.xcodeproj"})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Written || !equalRefs(res.Added, refs("App.xcodeproj")) {
		t.Fatalf("result = %+v, want App appended", res)
	}
	want := refs("Tool.xcodeproj", "Tool.xcodeproj", "Pods/Pods.xcodeproj", "App.xcodeproj")
	if got := store.docs[wsPath].Refs(); !equalRefs(got, want) {
		t.Errorf("refs = %v, want %v", got, want)
	}
}

func TestReconcile_saveError(t *testing.T) {
	store := newMemStore()
	store.errOn = wsPath
	var rec ui.Recorder
	r := NewReconciler(store, &rec)

	if _, err := r.Reconcile(wsPath, generated, []string{"/p/App.xcodeproj"}); err == nil {
		t.Fatal("expected save error")
	}
	if len(rec.Messages) != 0 {
		t.Error("notice must not be emitted when the document could not be written")
	}
}

func TestReconcile_fileStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "App.xcworkspace")
	r := NewReconciler(FileStore{}, &ui.Recorder{})
	projects := []string{filepath.Join(dir, "App.xcodeproj")}
	gen := filepath.Join(dir, "Pods", "Pods.xcodeproj")

	if _, err := r.Reconcile(path, gen, projects); err != nil {
		t.Fatal(err)
	}
	res, err := r.Reconcile(path, gen, projects)
	if err != nil {
		t.Fatal(err)
	}
	if res.Written {
		t.Error("second reconcile against the file store should not write")
	}
	doc, err := xcworkspace.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !equalRefs(doc.Refs(), refs("App.xcodeproj", "Pods/Pods.xcodeproj")) {
		t.Errorf("refs = %v", doc.Refs())
	}
}

func TestDryRunStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "App.xcworkspace")
	var logged []string
	store := DryRunStore{Store: FileStore{}, Log: func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	}}
	r := NewReconciler(store, &ui.Recorder{})

	res, err := r.Reconcile(path, filepath.Join(dir, "Pods", "Pods.xcodeproj"), []string{filepath.Join(dir, "App.xcodeproj")})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Created {
		t.Error("dry run should still report the document as created")
	}
	if _, err := xcworkspace.Load(path); !errors.Is(err, xcworkspace.ErrNotFound) {
		t.Errorf("dry run wrote the document: %v", err)
	}
	if len(logged) != 1 {
		t.Errorf("logged = %v, want one line", logged)
	}
}

func TestRequiredRefs(t *testing.T) {
	got, err := RequiredRefs("/p/ws/App.xcworkspace", "/p/Pods/Pods.xcodeproj",
		[]string{"/p/B.xcodeproj", "/p/A.xcodeproj", "/p/B.xcodeproj"})
	if err != nil {
		t.Fatal(err)
	}
	want := refs("../A.xcodeproj", "../B.xcodeproj", "../Pods/Pods.xcodeproj")
	if !equalRefs(got, want) {
		t.Errorf("RequiredRefs() = %v, want %v", got, want)
	}
}

func TestRequiredRefs_generatedAlsoUserProject(t *testing.T) {
	got, err := RequiredRefs(wsPath, generated, []string{generated})
	if err != nil {
		t.Fatal(err)
	}
	if !equalRefs(got, refs("Pods/Pods.xcodeproj")) {
		t.Errorf("RequiredRefs() = %v", got)
	}
}

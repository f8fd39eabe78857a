package main

import (
	"bytes"
	"context"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/SplashZ/CocoaPods/internal/manifest"
	"github.com/SplashZ/CocoaPods/internal/ui"
)

func TestExpandArgs(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "src", "shop")
	target := manifest.Target{
		Name:        "Pods-Shop",
		Definition:  "Shop",
		UserProject: filepath.Join(root, "ios", "Shop.xcodeproj"),
	}

	got := expandArgs([]string{"integrate", "--target={target}", "{definition}", "{user_project}", "plain"}, root, target)
	want := []string{"integrate", "--target=Pods-Shop", "Shop", filepath.Join("ios", "Shop.xcodeproj"), "plain"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expandArgs = %v, want %v", got, want)
	}
}

func TestExpandArgs_definitionFallsBackToName(t *testing.T) {
	got := expandArgs([]string{"{definition}"}, "/", manifest.Target{Name: "Pods-App"})
	if got[0] != "Pods-App" {
		t.Errorf("got %q, want %q", got[0], "Pods-App")
	}
}

func TestCommandIntegrator(t *testing.T) {
	var out bytes.Buffer
	c := &commandIntegrator{args: []string{"echo", "{target}"}, dir: t.TempDir(), stdout: &out, stderr: &out}

	if err := c.IntegrateTarget(context.Background(), manifest.Target{Name: "Pods-App"}); err != nil {
		t.Fatalf("IntegrateTarget: %v", err)
	}
	if strings.TrimSpace(out.String()) != "Pods-App" {
		t.Errorf("output = %q", out.String())
	}
}

func TestCommandIntegrator_failure(t *testing.T) {
	c := &commandIntegrator{args: []string{"false"}, dir: t.TempDir(), stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	if err := c.IntegrateTarget(context.Background(), manifest.Target{Name: "Pods-App"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestCommandIntegrator_empty(t *testing.T) {
	c := &commandIntegrator{dir: t.TempDir()}
	if err := c.IntegrateTarget(context.Background(), manifest.Target{Name: "Pods-App"}); err == nil {
		t.Fatal("expected error for empty integrate_cmd")
	}
}

func TestLogIntegrator(t *testing.T) {
	var out bytes.Buffer
	quiet := &logIntegrator{progress: ui.NewProgress(&out, 1)}
	if err := quiet.IntegrateTarget(context.Background(), manifest.Target{Name: "Pods-App"}); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("non-verbose integrator wrote %q", out.String())
	}

	loud := &logIntegrator{progress: ui.NewProgress(&out, 1), verbose: true}
	if err := loud.IntegrateTarget(context.Background(), manifest.Target{Name: "Pods-App"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Pods-App") {
		t.Errorf("verbose output = %q", out.String())
	}
}

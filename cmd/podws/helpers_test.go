package main

import (
	"bytes"
	"testing"

	"github.com/SplashZ/CocoaPods/internal/testutil"
)

const appManifest = `version: 1
targets:
  - name: Pods-App
    definition: App
    dependencies: [AFNetworking]
    user_project: App.xcodeproj
    user_targets:
      - name: App
        configurations:
          - name: Debug
            settings:
              OTHER_LDFLAGS: "-ObjC -all_load"
          - name: Release
            settings:
              OTHER_LDFLAGS: "$(inherited) -all_load"
    xcconfigs:
      Debug:
        path: Pods/Target Support Files/Pods-App/Pods-App.debug.xcconfig
        settings:
          OTHER_LDFLAGS: "-ObjC"
      Release:
        path: Pods/Target Support Files/Pods-App/Pods-App.release.xcconfig
        settings:
          OTHER_LDFLAGS: "-ObjC"
  - name: Pods-AppTests
    definition: AppTests
    user_project: App.xcodeproj
`

// setupInstallation creates a Podfile directory holding App.xcodeproj and
// the given manifest. Returns the directory.
func setupInstallation(t *testing.T, manifest string) string {
	t.Helper()
	dir := t.TempDir()
	testutil.CreateProject(t, dir, "App.xcodeproj")
	testutil.WriteManifest(t, dir, manifest)
	return dir
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

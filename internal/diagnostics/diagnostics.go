// Package diagnostics turns integration findings into user warnings.
package diagnostics

import (
	"fmt"
	"path/filepath"

	"github.com/SplashZ/CocoaPods/internal/manifest"
	"github.com/SplashZ/CocoaPods/internal/override"
	"github.com/SplashZ/CocoaPods/internal/ui"
)

// EmptyManifestMessage is reported when no target definition has dependencies.
const EmptyManifestMessage = "[!] The Podfile does not contain any dependencies."

// OverrideActions are the remedies offered for every override warning.
var OverrideActions = []string{
	"Use the `$(inherited)` flag, or",
	"Remove the build settings from the target.",
}

// Reporter emits warnings through a ui.Reporter.
type Reporter struct {
	out ui.Reporter
}

// New returns a Reporter writing to out.
func New(out ui.Reporter) *Reporter {
	return &Reporter{out: out}
}

// EmptyManifest warns once when every target is empty. It reports whether
// the warning was emitted.
func (r *Reporter) EmptyManifest(m *manifest.Manifest) bool {
	if !m.AllEmpty() {
		return false
	}
	r.out.Report(EmptyManifestMessage, nil)
	return true
}

// Overrides emits one warning per finding.
func (r *Reporter) Overrides(findings []override.Finding) {
	for _, f := range findings {
		r.out.Report(OverrideMessage(f), append([]string(nil), OverrideActions...))
	}
}

// OverrideMessage formats the warning for a single finding. The xcconfig is
// named relative to the user project's directory.
func OverrideMessage(f override.Finding) string {
	return fmt.Sprintf("The `%s [%s]` target overrides the `%s` build setting defined in `%s`. "+
		"This can lead to problems with the CocoaPods installation",
		f.UserTarget, f.Configuration, f.Key, xcconfigDisplayPath(f))
}

func xcconfigDisplayPath(f override.Finding) string {
	if f.UserProject == "" || !filepath.IsAbs(f.XCConfigPath) {
		return filepath.ToSlash(f.XCConfigPath)
	}
	rel, err := filepath.Rel(filepath.Dir(f.UserProject), f.XCConfigPath)
	if err != nil {
		return filepath.ToSlash(f.XCConfigPath)
	}
	return filepath.ToSlash(rel)
}

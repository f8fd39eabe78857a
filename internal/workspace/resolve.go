package workspace

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/SplashZ/CocoaPods/internal/xcworkspace"
)

// ErrAmbiguousWorkspace is returned when no workspace was declared and the
// user projects do not identify a single one.
var ErrAmbiguousWorkspace = errors.New("Could not automatically select an Xcode workspace. " + //nolint:staticcheck // user-facing message, wording is fixed
	"Specify one in your Podfile like so:\n\n    workspace 'path/to/Workspace.xcworkspace'\n")

// Inputs are what the workspace location is derived from.
type Inputs struct {
	Declared         string   // workspace path from the Podfile, may be empty
	ManifestDir      string   // directory containing the Podfile
	InstallationRoot string   // where an inferred workspace is placed
	UserProjects     []string // absolute user project paths
}

// ResolvePath returns the absolute path of the workspace document.
//
// A declared path wins and is taken relative to the manifest directory.
// Otherwise the workspace is named after the only user project and placed in
// the installation root. With zero or several user projects it fails with
// ErrAmbiguousWorkspace rather than guessing.
func ResolvePath(in Inputs) (string, error) {
	if in.Declared != "" {
		p := filepath.Clean(in.Declared)
		if filepath.Ext(p) != xcworkspace.Extension {
			p += xcworkspace.Extension
		}
		if !filepath.IsAbs(p) {
			p = filepath.Join(in.ManifestDir, p)
		}
		return filepath.Abs(p)
	}

	projects := distinct(in.UserProjects)
	if len(projects) != 1 {
		return "", ErrAmbiguousWorkspace
	}
	base := filepath.Base(projects[0])
	name := strings.TrimSuffix(base, filepath.Ext(base)) + xcworkspace.Extension
	return filepath.Abs(filepath.Join(in.InstallationRoot, name))
}

func distinct(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	var out []string
	for _, p := range paths {
		p = filepath.Clean(p)
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

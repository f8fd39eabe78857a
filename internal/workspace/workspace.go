package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/SplashZ/CocoaPods/internal/lock"
	"github.com/SplashZ/CocoaPods/internal/manifest"
	"github.com/SplashZ/CocoaPods/internal/xcconfig"
)

// DefaultManifest is the manifest file name looked up in the root directory.
const DefaultManifest = "podws.yaml"

// Context holds the resolved paths and loaded config for an installation.
type Context struct {
	Root             string // directory containing the manifest (the Podfile directory)
	ManifestPath     string
	InstallationRoot string
	SandboxDir       string
	GeneratedProject string
	RecordPath       string
	Manifest         *manifest.Manifest
	// Targets are copies of Manifest.Targets with absolute user project and
	// xcconfig paths and xcconfig settings loaded.
	Targets []manifest.Target
	Record  *lock.Record // may be nil
}

// Load resolves installation paths and loads the manifest found in root.
func Load(root, manifestName string) (*Context, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root: %w", err)
	}
	if manifestName == "" {
		manifestName = DefaultManifest
	}
	manifestPath := filepath.Join(root, manifestName)

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}

	installRoot := root
	if m.InstallationRoot != "" {
		installRoot = absUnder(root, m.InstallationRoot)
	}
	sandbox := filepath.Join(installRoot, m.EffectiveSandbox())

	ctx := &Context{
		Root:             root,
		ManifestPath:     manifestPath,
		InstallationRoot: installRoot,
		SandboxDir:       sandbox,
		GeneratedProject: filepath.Join(sandbox, "Pods.xcodeproj"),
		RecordPath:       filepath.Join(sandbox, lock.FileName),
		Manifest:         m,
	}

	for _, t := range m.Targets {
		resolved, err := ctx.resolveTarget(t)
		if err != nil {
			return nil, err
		}
		ctx.Targets = append(ctx.Targets, resolved)
	}

	if _, statErr := os.Stat(ctx.RecordPath); statErr == nil {
		rec, err := lock.Load(ctx.RecordPath)
		if err != nil {
			return nil, err
		}
		ctx.Record = rec
	}

	return ctx, nil
}

func (c *Context) resolveTarget(t manifest.Target) (manifest.Target, error) {
	if t.UserProject == "" {
		inferred, err := InferUserProject(c.Root)
		if err != nil {
			return t, fmt.Errorf("target %s: %w", t.Name, err)
		}
		t.UserProject = inferred
	} else {
		t.UserProject = absUnder(c.Root, t.UserProject)
	}

	if len(t.XCConfigs) > 0 {
		configs := make(map[string]manifest.XCConfig, len(t.XCConfigs))
		for name, xc := range t.XCConfigs {
			xc.Path = absUnder(c.InstallationRoot, xc.Path)
			if xc.Settings.Len() == 0 {
				s, err := xcconfig.Load(xc.Path)
				if err != nil {
					return t, fmt.Errorf("target %s: %s xcconfig: %w", t.Name, name, err)
				}
				xc.Settings = s
			}
			configs[name] = xc
		}
		t.XCConfigs = configs
	}
	return t, nil
}

// UserProjects returns the deduplicated absolute paths of every user project
// referenced by a target, empty targets included.
func (c *Context) UserProjects() []string {
	seen := make(map[string]bool)
	var paths []string
	for _, t := range c.Targets {
		if t.UserProject == "" || seen[t.UserProject] {
			continue
		}
		seen[t.UserProject] = true
		paths = append(paths, t.UserProject)
	}
	sort.Strings(paths)
	return paths
}

// ResolveInputs returns the Path Resolver inputs for this installation.
func (c *Context) ResolveInputs() Inputs {
	return Inputs{
		Declared:         c.Manifest.Workspace,
		ManifestDir:      c.Root,
		InstallationRoot: c.InstallationRoot,
		UserProjects:     c.UserProjects(),
	}
}

// InferUserProject returns the only .xcodeproj directly inside dir.
func InferUserProject(dir string) (string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), "*.xcodeproj")
	if err != nil {
		return "", fmt.Errorf("looking for user project: %w", err)
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no user project found in %s; set user_project", dir)
	case 1:
		return filepath.Join(dir, filepath.FromSlash(matches[0])), nil
	default:
		sort.Strings(matches)
		return "", fmt.Errorf("more than one user project found in %s (%v); set user_project", dir, matches)
	}
}

// DiscoverProjects lists every .xcodeproj below dir, skipping the sandbox
// and build output.
func DiscoverProjects(dir string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), "**/*.xcodeproj")
	if err != nil {
		return nil, fmt.Errorf("discovering projects: %w", err)
	}
	var out []string
	for _, m := range matches {
		if ok, _ := doublestar.Match("{Pods,build,DerivedData}/**", m); ok {
			continue
		}
		if ok, _ := doublestar.Match("**/*.xcodeproj/**", m); ok {
			continue
		}
		out = append(out, filepath.FromSlash(m))
	}
	sort.Strings(out)
	return out, nil
}

func absUnder(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}

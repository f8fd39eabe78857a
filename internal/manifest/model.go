package manifest

import "github.com/SplashZ/CocoaPods/internal/xcconfig"

// Manifest represents podws.yaml: the aggregate targets produced by
// dependency resolution plus the workspace settings declared in the Podfile.
type Manifest struct {
	Version          int      `yaml:"version"`
	Workspace        string   `yaml:"workspace,omitempty"`
	InstallationRoot string   `yaml:"installation_root,omitempty"`
	Sandbox          string   `yaml:"sandbox,omitempty"`
	IntegrateCmd     []string `yaml:"integrate_cmd,omitempty"`
	Targets          []Target `yaml:"targets"`
}

// Target is a generated aggregate target: the umbrella for one target
// definition's resolved dependencies.
type Target struct {
	Name         string              `yaml:"name"`
	Definition   string              `yaml:"definition,omitempty"`
	Dependencies []string            `yaml:"dependencies,omitempty"`
	UserProject  string              `yaml:"user_project,omitempty"`
	UserTargets  []UserTarget        `yaml:"user_targets,omitempty"`
	XCConfigs    map[string]XCConfig `yaml:"xcconfigs,omitempty"`
}

// XCConfig points at the generated config for one build configuration.
// Settings are read from Path when not given inline.
type XCConfig struct {
	Path     string            `yaml:"path"`
	Settings xcconfig.Settings `yaml:"settings,omitempty"`
}

// UserTarget is a native target inside the user's project.
type UserTarget struct {
	Name           string               `yaml:"name"`
	Configurations []BuildConfiguration `yaml:"configurations,omitempty"`
}

// BuildConfiguration is a named set of build settings owned by the developer.
type BuildConfiguration struct {
	Name     string            `yaml:"name"`
	Settings map[string]string `yaml:"settings,omitempty"`
}

// IsEmpty reports whether the originating target definition declares no
// dependencies.
func (t *Target) IsEmpty() bool {
	return len(t.Dependencies) == 0
}

// DefinitionName returns the Podfile target definition this target was
// generated from, defaulting to the target name.
func (t *Target) DefinitionName() string {
	if t.Definition != "" {
		return t.Definition
	}
	return t.Name
}

// EffectiveSandbox returns the sandbox directory, defaulting to "Pods".
func (m *Manifest) EffectiveSandbox() string {
	if m.Sandbox != "" {
		return m.Sandbox
	}
	return "Pods"
}

// AllEmpty reports whether every target definition is empty.
// A manifest without targets counts as empty.
func (m *Manifest) AllEmpty() bool {
	for i := range m.Targets {
		if !m.Targets[i].IsEmpty() {
			return false
		}
	}
	return true
}

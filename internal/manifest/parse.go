package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Save validates and writes a manifest to disk.
func Save(path string, m *Manifest) error {
	if err := validate(m); err != nil {
		return err
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // manifest file needs to be readable
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// Load reads and validates a podws.yaml file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the manifest location
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates podws.yaml content.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest YAML: %w", err)
	}
	if err := validate(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func validate(m *Manifest) error {
	if m.Version != 1 {
		return fmt.Errorf("unsupported manifest version: %d (expected 1)", m.Version)
	}
	if m.Sandbox != "" {
		if err := validateRelative(m.Sandbox, "sandbox"); err != nil {
			return err
		}
	}
	if len(m.IntegrateCmd) > 0 && strings.TrimSpace(m.IntegrateCmd[0]) == "" {
		return fmt.Errorf("manifest: integrate_cmd[0] must name a program")
	}

	seen := make(map[string]bool, len(m.Targets))
	for i, t := range m.Targets {
		if err := validateTarget(i, t, seen); err != nil {
			return err
		}
		seen[t.Name] = true
	}
	return nil
}

func validateTarget(i int, t Target, seen map[string]bool) error {
	if t.Name == "" {
		return fmt.Errorf("manifest: targets[%d].name is required", i)
	}
	if seen[t.Name] {
		return fmt.Errorf("manifest: duplicate target name %q", t.Name)
	}
	if t.UserProject != "" && filepath.Ext(t.UserProject) != ".xcodeproj" {
		return fmt.Errorf("manifest: targets[%d] (%s).user_project must be an .xcodeproj: %s", i, t.Name, t.UserProject)
	}
	userTargets := make(map[string]bool, len(t.UserTargets))
	for j, ut := range t.UserTargets {
		if ut.Name == "" {
			return fmt.Errorf("manifest: targets[%d] (%s).user_targets[%d].name is required", i, t.Name, j)
		}
		if userTargets[ut.Name] {
			return fmt.Errorf("manifest: targets[%d] (%s): duplicate user target %q", i, t.Name, ut.Name)
		}
		userTargets[ut.Name] = true
		for k, bc := range ut.Configurations {
			if bc.Name == "" {
				return fmt.Errorf("manifest: targets[%d] (%s).user_targets[%d].configurations[%d].name is required", i, t.Name, j, k)
			}
		}
	}
	for name, xc := range t.XCConfigs {
		if xc.Path == "" {
			return fmt.Errorf("manifest: targets[%d] (%s).xcconfigs[%s].path is required", i, t.Name, name)
		}
	}
	return nil
}

// validateRelative ensures a path is relative and does not escape the
// installation root.
func validateRelative(p, label string) error {
	if filepath.IsAbs(p) {
		return fmt.Errorf("manifest: %s: absolute path is not allowed: %s", label, p)
	}
	cleaned := filepath.Clean(p)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("manifest: %s: path must not escape the installation root: %s", label, p)
	}
	return nil
}

// FilterTargets returns targets matching --only / --skip flags.
func FilterTargets(targets []Target, only, skip []string) []Target {
	if len(only) == 0 && len(skip) == 0 {
		return targets
	}
	onlySet := toSet(only)
	skipSet := toSet(skip)

	var result []Target
	for _, t := range targets {
		if len(onlySet) > 0 && !onlySet[t.Name] {
			continue
		}
		if skipSet[t.Name] {
			continue
		}
		result = append(result, t)
	}
	return result
}

func toSet(ss []string) map[string]bool {
	m := make(map[string]bool, len(ss))
	for _, s := range ss {
		m[s] = true
	}
	return m
}

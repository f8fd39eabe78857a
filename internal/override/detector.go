// Package override finds build settings a user target defines in a way that
// silently replaces the value generated in the aggregate target's xcconfig.
package override

import (
	"sort"
	"strings"

	"github.com/SplashZ/CocoaPods/internal/manifest"
)

// Finding is one user build setting shadowing a generated one.
type Finding struct {
	Target        string // aggregate target
	UserTarget    string
	Configuration string
	Key           string
	XCConfigPath  string
	UserProject   string
}

// Options configures a Detector.
type Options struct {
	// IgnoredKeys are never reported. Xcode forces a per-target value for
	// them regardless of inheritance.
	IgnoredKeys []string
	// InheritanceTokens mark a value that composes with the xcconfig value.
	InheritanceTokens []string
}

// DefaultOptions returns the keys and tokens Xcode projects need.
func DefaultOptions() Options {
	return Options{
		IgnoredKeys:       []string{"CODE_SIGN_IDENTITY"},
		InheritanceTokens: []string{"$(inherited)", "${inherited}"},
	}
}

// Detector compares generated xcconfig settings against user build
// configurations. It holds no mutable state.
type Detector struct {
	ignored map[string]bool
	tokens  []string
}

// NewDetector returns a Detector using DefaultOptions.
func NewDetector() *Detector {
	return NewDetectorWithOptions(DefaultOptions())
}

// NewDetectorWithOptions returns a Detector with the given exceptions.
func NewDetectorWithOptions(opts Options) *Detector {
	d := &Detector{
		ignored: make(map[string]bool, len(opts.IgnoredKeys)),
		tokens:  append([]string(nil), opts.InheritanceTokens...),
	}
	for _, k := range opts.IgnoredKeys {
		d.ignored[k] = true
	}
	return d
}

// Detect returns the findings for targets, ordered by aggregate target name,
// then user target and configuration order, then xcconfig key order.
func (d *Detector) Detect(targets []manifest.Target) []Finding {
	sorted := make([]manifest.Target, len(targets))
	copy(sorted, targets)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var findings []Finding
	for _, t := range sorted {
		for _, ut := range t.UserTargets {
			for _, bc := range ut.Configurations {
				xc, ok := t.XCConfigs[bc.Name]
				if !ok {
					continue
				}
				for _, key := range xc.Settings.Keys() {
					if d.ignored[key] {
						continue
					}
					value, defined := bc.Settings[key]
					if !defined || d.inherits(value) {
						continue
					}
					findings = append(findings, Finding{
						Target:        t.Name,
						UserTarget:    ut.Name,
						Configuration: bc.Name,
						Key:           key,
						XCConfigPath:  xc.Path,
						UserProject:   t.UserProject,
					})
				}
			}
		}
	}
	return findings
}

func (d *Detector) inherits(value string) bool {
	for _, tok := range d.tokens {
		if strings.Contains(value, tok) {
			return true
		}
	}
	return false
}

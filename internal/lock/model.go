package lock

// FileName is the record's file name inside the sandbox directory.
const FileName = ".podws.lock.yaml"

// Record represents .podws.lock.yaml.
type Record struct {
	Version      int      `yaml:"version"`
	GeneratedAt  string   `yaml:"generated_at"`
	ToolVersion  string   `yaml:"tool_version"`
	Workspace    string   `yaml:"workspace"`
	Created      bool     `yaml:"created,omitempty"`
	Added        []string `yaml:"added,omitempty"`
	Integrated   []string `yaml:"integrated,omitempty"`
	Skipped      []string `yaml:"skipped,omitempty"`
	Overrides    int      `yaml:"overrides"`
	EmptyPodfile bool     `yaml:"empty_podfile,omitempty"`
}

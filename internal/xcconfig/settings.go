package xcconfig

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Settings is an ordered mapping of build-setting key to value.
type Settings struct {
	keys   []string
	values map[string]string
}

// NewSettings builds Settings from alternating key/value arguments.
func NewSettings(kv ...string) Settings {
	var s Settings
	for i := 0; i+1 < len(kv); i += 2 {
		s.Set(kv[i], kv[i+1])
	}
	return s
}

// Set assigns a value. A new key is appended; an existing key keeps its position.
func (s *Settings) Set(key, value string) {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Get returns the value for key.
func (s Settings) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (s Settings) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len returns the number of settings.
func (s Settings) Len() int { return len(s.keys) }

// UnmarshalYAML decodes a YAML mapping while keeping key order.
func (s *Settings) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: build settings must be a mapping", node.Line)
	}
	*s = Settings{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: build setting %q must be a string", v.Line, k.Value)
		}
		s.Set(k.Value, v.Value)
	}
	return nil
}

// MarshalYAML encodes the settings as a mapping in key order.
func (s Settings) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range s.keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s.values[k]},
		)
	}
	return node, nil
}

// IsZero reports whether there are no settings. yaml.v3 uses it for omitempty.
func (s Settings) IsZero() bool { return len(s.keys) == 0 }

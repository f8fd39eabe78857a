package xcconfig

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads and parses an .xcconfig file.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the integration manifest
	if err != nil {
		return Settings{}, fmt.Errorf("reading xcconfig: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse reads `KEY = VALUE` lines. Blank lines, `//` comments and
// `#include` directives are skipped.
func Parse(r io.Reader) (Settings, error) {
	var s Settings
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#include") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return Settings{}, fmt.Errorf("xcconfig line %d: expected KEY = VALUE: %q", n, line)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return Settings{}, fmt.Errorf("xcconfig line %d: empty key", n)
		}
		value = strings.TrimSuffix(strings.TrimSpace(value), ";")
		s.Set(key, strings.TrimSpace(value))
	}
	if err := sc.Err(); err != nil {
		return Settings{}, fmt.Errorf("scanning xcconfig: %w", err)
	}
	return s, nil
}

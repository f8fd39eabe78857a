package xcworkspace

import (
	"path"
	"strings"
)

// Reference kinds understood by Xcode.
const (
	KindGroup     = "group"
	KindContainer = "container"
	KindAbsolute  = "absolute"
	KindSelf      = "self"
)

// FileRef is a project reference inside a workspace document.
// Two refs are the same reference iff Kind and Path are equal; Path is
// always normalized with NormalizePath.
type FileRef struct {
	Kind string
	Path string
}

// NewRef returns a reference with a normalized path.
func NewRef(kind, p string) FileRef {
	return FileRef{Kind: kind, Path: NormalizePath(p)}
}

// GroupRef returns a group-relative reference, the kind used for projects
// next to the workspace.
func GroupRef(p string) FileRef {
	return NewRef(KindGroup, p)
}

// ParseLocation parses a location attribute such as "group:App.xcodeproj".
// A location without a kind prefix is treated as group-relative.
func ParseLocation(loc string) FileRef {
	kind, p, ok := strings.Cut(loc, ":")
	if !ok {
		return GroupRef(loc)
	}
	return NewRef(kind, p)
}

// Location returns the serialized location attribute.
func (r FileRef) Location() string {
	return r.Kind + ":" + r.Path
}

func (r FileRef) String() string { return r.Location() }

// NormalizePath converts p to the form used for reference identity:
// slash separators, cleaned, without a leading "./". Case is preserved.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}
	p = strings.ReplaceAll(p, `\`, "/")
	return path.Clean(p)
}

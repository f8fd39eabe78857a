package xcworkspace

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// Extension is the file extension of workspace documents.
const Extension = ".xcworkspace"

// DataFile is the file inside the workspace bundle that holds the references.
const DataFile = "contents.xcworkspacedata"

// ErrNotFound is returned by Load when no document exists at the path.
var ErrNotFound = errors.New("workspace document not found")

// Document is an ordered list of workspace entries.
type Document struct {
	entries []entry
}

// entry is either a top-level FileRef or an element kept verbatim.
type entry struct {
	ref FileRef
	raw *rawElement
}

type rawElement struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Inner   []byte     `xml:",innerxml"`

	// refs nested in a Group, resolved against the group locations.
	refs []FileRef
}

type xmlChildren struct {
	Elements []rawElement `xml:",any"`
}

type xmlWorkspace struct {
	XMLName  xml.Name     `xml:"Workspace"`
	Version  string       `xml:"version,attr"`
	Elements []rawElement `xml:",any"`
}

// New returns a document holding refs, skipping duplicates.
func New(refs ...FileRef) *Document {
	d := &Document{}
	d.Append(refs...)
	return d
}

// Refs returns the top-level file references in document order, repeated
// ones included.
func (d *Document) Refs() []FileRef {
	var refs []FileRef
	for _, e := range d.entries {
		if e.raw == nil {
			refs = append(refs, e.ref)
		}
	}
	return refs
}

// AllRefs returns every distinct reference in document order, including
// the ones nested in groups.
func (d *Document) AllRefs() []FileRef {
	seen := make(map[FileRef]bool)
	var refs []FileRef
	add := func(r FileRef) {
		if !seen[r] {
			seen[r] = true
			refs = append(refs, r)
		}
	}
	for _, e := range d.entries {
		if e.raw == nil {
			add(e.ref)
			continue
		}
		for _, r := range e.raw.refs {
			add(r)
		}
	}
	return refs
}

// Contains reports whether ref is referenced anywhere in the document.
func (d *Document) Contains(ref FileRef) bool {
	for _, e := range d.entries {
		if e.raw == nil {
			if e.ref == ref {
				return true
			}
			continue
		}
		for _, r := range e.raw.refs {
			if r == ref {
				return true
			}
		}
	}
	return false
}

// Append adds refs that are not yet present, in order, and returns the
// ones actually added.
func (d *Document) Append(refs ...FileRef) []FileRef {
	var added []FileRef
	for _, r := range refs {
		if d.Contains(r) {
			continue
		}
		d.entries = append(d.entries, entry{ref: r})
		added = append(added, r)
	}
	return added
}

// Load reads the document of the workspace bundle at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(filepath.Join(path, DataFile)) //nolint:gosec // path is the resolved workspace location
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading workspace: %w", err)
	}
	return Parse(data)
}

// Parse decodes contents.xcworkspacedata content. Top-level FileRefs are
// kept as written, repeated ones included; other elements are kept verbatim.
func Parse(data []byte) (*Document, error) {
	var ws xmlWorkspace
	if err := xml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("parsing workspace XML: %w", err)
	}
	d := &Document{}
	for i := range ws.Elements {
		el := ws.Elements[i]
		switch el.XMLName.Local {
		case "FileRef":
			d.entries = append(d.entries, entry{ref: ParseLocation(attr(el.Attrs, "location"))})
		case "Group":
			refs, err := groupRefs(GroupRef(""), el)
			if err != nil {
				return nil, err
			}
			el.refs = refs
			d.entries = append(d.entries, entry{raw: &el})
		default:
			d.entries = append(d.entries, entry{raw: &el})
		}
	}
	return d, nil
}

// groupRefs returns the FileRefs below the group el at any depth.
func groupRefs(parent FileRef, el rawElement) ([]FileRef, error) {
	base := resolveIn(parent, ParseLocation(attr(el.Attrs, "location")))

	wrapped := make([]byte, 0, len(el.Inner)+len("<Group></Group>"))
	wrapped = append(wrapped, "<Group>"...)
	wrapped = append(wrapped, el.Inner...)
	wrapped = append(wrapped, "</Group>"...)
	var children xmlChildren
	if err := xml.Unmarshal(wrapped, &children); err != nil {
		return nil, fmt.Errorf("parsing workspace group %q: %w", attr(el.Attrs, "name"), err)
	}

	var refs []FileRef
	for _, c := range children.Elements {
		switch c.XMLName.Local {
		case "FileRef":
			refs = append(refs, resolveIn(base, ParseLocation(attr(c.Attrs, "location"))))
		case "Group":
			nested, err := groupRefs(base, c)
			if err != nil {
				return nil, err
			}
			refs = append(refs, nested...)
		}
	}
	return refs, nil
}

// resolveIn makes a group-relative location relative to the workspace
// container by prefixing the enclosing group's path. Other kinds already
// name their base and are returned as is.
func resolveIn(parent, ref FileRef) FileRef {
	if ref.Kind != KindGroup {
		return ref
	}
	kind := KindGroup
	if parent.Kind == KindAbsolute {
		kind = KindAbsolute
	}
	return NewRef(kind, path.Join(parent.Path, ref.Path))
}

// Save writes the document into the workspace bundle at path, creating the
// bundle directory if needed.
func Save(d *Document, path string) error {
	if err := os.MkdirAll(path, 0755); err != nil { //nolint:gosec // workspace bundle must be readable by Xcode
		return fmt.Errorf("creating workspace directory: %w", err)
	}
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(path, DataFile), buf.Bytes(), 0644); err != nil { //nolint:gosec // workspace data must be readable by Xcode
		return fmt.Errorf("writing workspace: %w", err)
	}
	return nil
}

// Encode writes the document in the layout Xcode itself produces.
func (d *Document) Encode(w io.Writer) error {
	var b bytes.Buffer
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<Workspace\n   version = \"1.0\">\n")
	for _, e := range d.entries {
		if e.raw != nil {
			writeRaw(&b, e.raw)
			continue
		}
		b.WriteString("   <FileRef\n      location = \"")
		escape(&b, e.ref.Location())
		b.WriteString("\">\n   </FileRef>\n")
	}
	b.WriteString("</Workspace>\n")
	if _, err := w.Write(b.Bytes()); err != nil {
		return fmt.Errorf("encoding workspace: %w", err)
	}
	return nil
}

func writeRaw(b *bytes.Buffer, el *rawElement) {
	b.WriteString("   <" + el.XMLName.Local)
	for _, a := range el.Attrs {
		b.WriteString("\n      " + a.Name.Local + " = \"")
		escape(b, a.Value)
		b.WriteString("\"")
	}
	b.WriteString(">")
	b.Write(el.Inner)
	b.WriteString("</" + el.XMLName.Local + ">\n")
}

func escape(b *bytes.Buffer, s string) {
	_ = xml.EscapeText(b, []byte(s))
}

func attr(attrs []xml.Attr, name string) string {
	for _, a := range attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

package manifest

import (
	"github.com/tidwall/gjson"
)

// Dependency sections of a package.json.
const (
	SectionDependencies    = "dependencies"
	SectionDevDependencies = "devDependencies"
)

// Manifest is a parsed package.json.
type Manifest struct {
	Path string
	root gjson.Result
}

// Parse wraps already-validated JSON. Use Reader.Read for files.
func Parse(path string, data []byte) (*Manifest, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Path: path, Err: errInvalidJSON}
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, &ParseError{Path: path, Err: errNotObject}
	}
	return &Manifest{Path: path, root: root}, nil
}

// Has reports whether key is present at the top level, whatever its value.
func (m *Manifest) Has(key string) bool {
	_, ok := m.field(key)
	return ok
}

// IsNull reports whether key is present with a JSON null value.
func (m *Manifest) IsNull(key string) bool {
	v, ok := m.field(key)
	return ok && v.Type == gjson.Null
}

// Version returns the "version" field. ok is false when the field is
// absent or null.
func (m *Manifest) Version() (version string, ok bool) {
	v, present := m.field("version")
	if !present || v.Type == gjson.Null {
		return "", false
	}
	return v.String(), true
}

// DependencyNames returns the keys of section in declaration order.
// A missing or non-object section yields nil. A key repeated inside the
// section is reported once, at its first position.
func (m *Manifest) DependencyNames(section string) []string {
	sec, ok := m.field(section)
	if !ok || !sec.IsObject() {
		return nil
	}

	var names []string
	seen := make(map[string]struct{})
	sec.ForEach(func(key, _ gjson.Result) bool {
		if _, dup := seen[key.Str]; !dup {
			seen[key.Str] = struct{}{}
			names = append(names, key.Str)
		}
		return true
	})
	return names
}

// field scans the top-level object directly so keys containing gjson path
// syntax are matched literally. The last duplicate wins.
func (m *Manifest) field(key string) (gjson.Result, bool) {
	var (
		found gjson.Result
		ok    bool
	)
	m.root.ForEach(func(k, v gjson.Result) bool {
		if k.Str == key {
			found, ok = v, true
		}
		return true
	})
	return found, ok
}

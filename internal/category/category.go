// Package category holds the file-sorting domain model: named extension
// categories, the ordered working configuration, custom extensions, and
// preset snapshots, together with the mutation rules the front ends apply.
package category

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// FallbackCategory receives every file whose extension matches no category.
const FallbackCategory = "Others"

// Category is a named bucket of file extensions. Files whose extension is in
// Extensions are routed into a folder named Name.
type Category struct {
	Name       string
	Extensions []string
}

// Config is an ordered list of categories. The order is significant: when an
// extension appears in more than one category, classification picks the
// earliest one. Config marshals to and from a JSON object whose key order
// matches the list order.
type Config []Category

// Clone returns a deep copy of the configuration.
func (c Config) Clone() Config {
	out := make(Config, len(c))
	for i, cat := range c {
		out[i] = Category{Name: cat.Name, Extensions: slices.Clone(cat.Extensions)}
	}
	return out
}

// Names returns the category names in configuration order.
func (c Config) Names() []string {
	names := make([]string, len(c))
	for i, cat := range c {
		names[i] = cat.Name
	}
	return names
}

// Get returns the extension list of the named category.
func (c Config) Get(name string) ([]string, bool) {
	for _, cat := range c {
		if cat.Name == name {
			return cat.Extensions, true
		}
	}
	return nil, false
}

// Classify returns the name of the first category whose extension list
// contains ext, or FallbackCategory when none does. The empty extension
// never matches.
func (c Config) Classify(ext string) string {
	if ext != "" {
		for _, cat := range c {
			if slices.Contains(cat.Extensions, ext) {
				return cat.Name
			}
		}
	}
	return FallbackCategory
}

// Add creates an empty category under the trimmed name, or resets an existing
// category of that name to an empty extension list without moving it. Empty
// and whitespace-only names are ignored.
func (c *Config) Add(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for i := range *c {
		if (*c)[i].Name == name {
			(*c)[i].Extensions = []string{}
			return true
		}
	}
	*c = append(*c, Category{Name: name, Extensions: []string{}})
	return true
}

// Remove deletes the named category. Removing an absent name is a no-op.
func (c *Config) Remove(name string) bool {
	for i := range *c {
		if (*c)[i].Name == name {
			*c = slices.Delete(*c, i, i+1)
			return true
		}
	}
	return false
}

// SetType resets the named category's extensions to the default set for the
// chosen type group, discarding any manual edits. customs is consulted only
// for the AllGroup choice. Unknown categories and unknown groups are no-ops.
func (c *Config) SetType(name, group string, customs []string) bool {
	exts, ok := GroupExtensions(group, customs)
	if !ok {
		return false
	}
	for i := range *c {
		if (*c)[i].Name == name {
			(*c)[i].Extensions = exts
			return true
		}
	}
	return false
}

// Toggle flips an extension's membership in the named category only. The
// extension is normalized first; an empty result or an unknown category is a
// no-op.
func (c *Config) Toggle(name, ext string) bool {
	ext = NormalizeExt(ext)
	if ext == "" {
		return false
	}
	for i := range *c {
		if (*c)[i].Name != name {
			continue
		}
		exts := (*c)[i].Extensions
		if j := slices.Index(exts, ext); j >= 0 {
			(*c)[i].Extensions = slices.Delete(exts, j, j+1)
		} else {
			(*c)[i].Extensions = append(exts, ext)
		}
		return true
	}
	return false
}

// MarshalJSON writes the configuration as a JSON object in list order.
func (c Config) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cat := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(cat.Name)
		if err != nil {
			return nil, err
		}
		exts := cat.Extensions
		if exts == nil {
			exts = []string{}
		}
		list, err := json.Marshal(exts)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(list)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object into the configuration, preserving key
// order. A repeated key keeps its first position and its last value.
func (c *Config) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("categories: expected object, got %v", tok)
	}
	out := make(Config, 0, 8)
	seen := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("categories: expected key, got %v", keyTok)
		}
		var exts []string
		if err := dec.Decode(&exts); err != nil {
			return fmt.Errorf("category %q: %w", name, err)
		}
		if exts == nil {
			exts = []string{}
		}
		if i, dup := seen[name]; dup {
			out[i].Extensions = exts
			continue
		}
		seen[name] = len(out)
		out = append(out, Category{Name: name, Extensions: exts})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*c = out
	return nil
}

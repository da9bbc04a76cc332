package utils

import (
	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// LoadTOMLFile decodes a TOML file into v. Fields absent from the file
// keep their current values.
func LoadTOMLFile(path string, v any) error {
	if _, err := toml.DecodeFile(path, v); err != nil {
		log.Warnf("TOML error in %s: %v. Recovering what still decodes...", path, err)
		return err
	}
	return nil
}

// Sections is a TOML document decoded without a target struct, keyed by
// table name. Values of the wrong type stay in the map instead of failing
// the whole decode.
type Sections map[string]Section

// Section is one TOML table.
type Section map[string]any

// LoadSections decodes the tables of a TOML file loosely. Keys outside a
// table are dropped.
func LoadSections(path string) (Sections, error) {
	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, err
	}
	out := make(Sections, len(raw))
	for name, v := range raw {
		if table, ok := v.(map[string]any); ok {
			out[name] = table
		}
	}
	return out, nil
}

// String sets *dst when key holds a string.
func (s Section) String(key string, dst *string) {
	if v, ok := s[key].(string); ok {
		*dst = v
		return
	}
	s.skip(key, "string")
}

// Int sets *dst when key holds an integer.
func (s Section) Int(key string, dst *int) {
	if v, ok := s[key].(int64); ok {
		*dst = int(v)
		return
	}
	s.skip(key, "integer")
}

// Bool sets *dst when key holds a boolean.
func (s Section) Bool(key string, dst *bool) {
	if v, ok := s[key].(bool); ok {
		*dst = v
		return
	}
	s.skip(key, "boolean")
}

func (s Section) skip(key, want string) {
	if v, present := s[key]; present {
		log.Warnf("Config key %q should be a %s, got %T. Keeping default.", key, want, v)
	}
}

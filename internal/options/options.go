// Package options reads the module selection written by iot_install.
package options

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// FileName is the settings file written by iot_install into the local dir.
const FileName = "installation_options.json"

// ErrNotFound is returned when the settings file does not exist.
var ErrNotFound = errors.New("installation options not found")

const schemaURL = "https://iotempower.local/installation_options.schema.json"

// Flags are strings, never booleans or numbers: "1" enables a module.
const schemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": {"type": "string"}
}`

var schema = jsonschema.MustCompileString(schemaURL, schemaJSON)

// Entry is one module flag in file order.
type Entry struct {
	Module string
	Value  string
}

// Enabled reports whether the entry's module was selected.
func (e Entry) Enabled() bool {
	return IsEnabled(e.Value)
}

// IsEnabled reports whether a flag value selects its module.
// Only "1" counts; "true", "yes" and "01" do not.
func IsEnabled(value string) bool {
	return strings.ToLower(value) == "1"
}

// Options is the parsed settings file. Entries keep the order of the JSON object.
type Options struct {
	entries []Entry
	index   map[string]int
}

// New builds Options from entries, keeping the first position of repeated
// modules and the last value, like a JSON object decoder would.
func New(entries ...Entry) *Options {
	o := &Options{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		o.set(e.Module, e.Value)
	}
	return o
}

func (o *Options) set(module, value string) {
	if i, ok := o.index[module]; ok {
		o.entries[i].Value = value
		return
	}
	o.index[module] = len(o.entries)
	o.entries = append(o.entries, Entry{Module: module, Value: value})
}

// Entries returns the module flags in file order.
func (o *Options) Entries() []Entry {
	out := make([]Entry, len(o.entries))
	copy(out, o.entries)
	return out
}

// Len returns the number of modules in the file.
func (o *Options) Len() int {
	return len(o.entries)
}

// Get returns the raw flag for module.
func (o *Options) Get(module string) (string, bool) {
	i, ok := o.index[module]
	if !ok {
		return "", false
	}
	return o.entries[i].Value, true
}

// EnabledModules returns the selected modules in file order.
func (o *Options) EnabledModules() []string {
	var mods []string
	for _, e := range o.entries {
		if e.Enabled() {
			mods = append(mods, e.Module)
		}
	}
	return mods
}

// Path returns the settings file location under baseDir.
func Path(baseDir string) string {
	return filepath.Join(baseDir, FileName)
}

// Load reads and parses the settings file under baseDir.
func Load(baseDir string) (*Options, error) {
	path := Path(baseDir)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("could not find %s to load the settings, it should be generated by iot_install: %w", path, ErrNotFound)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	opts, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return opts, nil
}

// Parse decodes a settings document.
func Parse(data []byte) (*Options, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid installation options: %w", err)
	}

	// encoding/json maps lose key order, so walk the object token by token.
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	opts := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in installation options", tok)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("module %q: %w", key, err)
		}
		opts.set(key, value)
	}
	return opts, nil
}

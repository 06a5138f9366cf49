package util

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// FlatJSON is a JSON object of string keys and string values whose key
// order is kept.
type FlatJSON struct {
	Keys   []string
	values map[string]string
}

// NewFlatJSON returns an empty FlatJSON.
func NewFlatJSON() *FlatJSON {
	return &FlatJSON{values: make(map[string]string)}
}

// ParseFlatJSON decodes a flat JSON object. Values that are not strings
// are kept in their JSON text form. A duplicated key keeps its first
// position and its last value.
func ParseFlatJSON(data []byte) (*FlatJSON, error) {
	data = []byte(StripBOM(string(data)))
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	result := gjson.ParseBytes(data)
	if !result.IsObject() {
		return nil, fmt.Errorf("expected a JSON object, got %s", result.Type)
	}

	j := NewFlatJSON()
	result.ForEach(func(key, value gjson.Result) bool {
		j.Set(key.String(), value.String())
		return true
	})
	return j, nil
}

// Len returns the number of keys.
func (j *FlatJSON) Len() int {
	return len(j.Keys)
}

// Get returns the value of key.
func (j *FlatJSON) Get(key string) (string, bool) {
	v, ok := j.values[key]
	return v, ok
}

// Set assigns value to key, appending key if it is new.
func (j *FlatJSON) Set(key, value string) {
	if _, ok := j.values[key]; !ok {
		j.Keys = append(j.Keys, key)
	}
	j.values[key] = value
}

// Values returns the values in key order.
func (j *FlatJSON) Values() []string {
	values := make([]string, len(j.Keys))
	for i, key := range j.Keys {
		values[i] = j.values[key]
	}
	return values
}

// EmptyTemplate returns a copy with the same keys and empty values.
func (j *FlatJSON) EmptyTemplate() *FlatJSON {
	t := NewFlatJSON()
	for _, key := range j.Keys {
		t.Set(key, "")
	}
	return t
}

// Fill assigns values to the keys in order. Keys without a value get an
// empty string; extra values are dropped.
func (j *FlatJSON) Fill(values []string) PositionalStat {
	aligned, stat := AlignPositional(len(j.Keys), values)
	for i, key := range j.Keys {
		j.values[key] = aligned[i]
	}
	return stat
}

func jsonString(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// sjsonPathEscaper escapes the characters with a meaning in sjson paths.
var sjsonPathEscaper = strings.NewReplacer(
	`\`, `\\`,
	`.`, `\.`,
	`*`, `\*`,
	`?`, `\?`,
	`|`, `\|`,
	`#`, `\#`,
	`@`, `\@`,
	`:`, `\:`,
)

// keyPath is the sjson path of a top-level key. The leading colon makes
// numeric keys object keys instead of array indexes.
func keyPath(key string) string {
	return ":" + sjsonPathEscaper.Replace(key)
}

var flatJSONPrettyOptions = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// MarshalIndent encodes j with two-space indentation and the keys in order.
// Strings are not HTML escaped. There is no trailing newline.
func (j *FlatJSON) MarshalIndent() ([]byte, error) {
	data := []byte("{}")
	for _, key := range j.Keys {
		if key == "" {
			return nil, errors.New("empty keys are not supported")
		}
		v, err := jsonString(j.values[key])
		if err != nil {
			return nil, fmt.Errorf("encode value of %q: %w", key, err)
		}
		data, err = sjson.SetRawBytes(data, keyPath(key), []byte(v))
		if err != nil {
			return nil, fmt.Errorf("set %q: %w", key, err)
		}
	}
	return bytes.TrimSuffix(pretty.PrettyOptions(data, flatJSONPrettyOptions), []byte("\n")), nil
}

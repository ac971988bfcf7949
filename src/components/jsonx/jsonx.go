// Package jsonx recovers structured data from free-form model output.
// Generation backends frequently wrap their JSON in prose or code fences;
// these helpers try a direct parse first and then the widest brace or
// bracket span in the text.
package jsonx

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrNoJSON = errors.New("no JSON found in text")

// ExtractObject unmarshals the first JSON object found in raw into v.
func ExtractObject(raw string, v interface{}) error {
	return extract(raw, "{", "}", v)
}

// ExtractArray unmarshals the first JSON array found in raw into v.
func ExtractArray(raw string, v interface{}) error {
	return extract(raw, "[", "]", v)
}

func extract(raw, opener, closer string, v interface{}) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ErrNoJSON
	}

	if err := json.Unmarshal([]byte(raw), v); err == nil {
		return nil
	}

	start := strings.Index(raw, opener)
	end := strings.LastIndex(raw, closer)
	if start < 0 || end <= start {
		return ErrNoJSON
	}

	if err := json.Unmarshal([]byte(raw[start:end+1]), v); err != nil {
		return ErrNoJSON
	}
	return nil
}

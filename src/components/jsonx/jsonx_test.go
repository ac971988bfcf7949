package jsonx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type verdict struct {
	Verdict    string `json:"verdict"`
	Confidence int    `json:"confidence"`
}

func TestExtractObjectDirect(t *testing.T) {
	var v verdict
	err := ExtractObject(`{"verdict":"SUPPORTED","confidence":90}`, &v)
	assert.NoError(t, err)
	assert.Equal(t, "SUPPORTED", v.Verdict)
	assert.Equal(t, 90, v.Confidence)
}

func TestExtractObjectEmbeddedInProse(t *testing.T) {
	raw := "Sure! Here is the JSON you asked for:\n```json\n" +
		`{"verdict":"CONTRADICTED","confidence":75}` + "\n```\nLet me know if you need anything else."
	var v verdict
	err := ExtractObject(raw, &v)
	assert.NoError(t, err)
	assert.Equal(t, "CONTRADICTED", v.Verdict)
	assert.Equal(t, 75, v.Confidence)
}

func TestExtractObjectUnparsable(t *testing.T) {
	var v verdict
	assert.ErrorIs(t, ExtractObject("I could not determine a verdict.", &v), ErrNoJSON)
	assert.ErrorIs(t, ExtractObject("", &v), ErrNoJSON)
	assert.ErrorIs(t, ExtractObject("{broken json", &v), ErrNoJSON)
}

func TestExtractArray(t *testing.T) {
	var claims []string
	err := ExtractArray(`The claims are: ["a", "b"] as requested`, &claims)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, claims)
}

func TestExtractArrayDirect(t *testing.T) {
	var claims []string
	assert.NoError(t, ExtractArray(`["x"]`, &claims))
	assert.Equal(t, []string{"x"}, claims)
}

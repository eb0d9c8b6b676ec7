package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		typ  Type
		want interface{}
	}{
		{"boolean one", "1", TypeBoolean, true},
		{"boolean zero", "0", TypeBoolean, false},
		{"boolean empty", "", TypeBoolean, false},
		{"boolean any other string", "yes", TypeBoolean, true},
		{"json object", `{"a":1}`, TypeJSON, map[string]interface{}{"a": float64(1)}},
		{"malformed json", `{"a":`, TypeJSON, nil},
		{"text", "hello", TypeText, "hello"},
		{"textarea", "line\nline", TypeTextarea, "line\nline"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.raw, tt.typ))
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		typ   Type
		want  string
	}{
		{"true", true, TypeBoolean, "1"},
		{"false", false, TypeBoolean, "0"},
		{"string false", "false", TypeBoolean, "0"},
		{"nil boolean", nil, TypeBoolean, "0"},
		{"json list", []string{"a"}, TypeJSON, `["a"]`},
		{"number as text", 15, TypeText, "15"},
		{"nil text", nil, TypeText, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.value, tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGroupByName(t *testing.T) {
	settings := []*Setting{
		{Key: "phone", Group: "contact"},
		{Key: "site_name", Group: "general"},
		{Key: "email", Group: "contact"},
	}

	groups := GroupByName(settings)

	require.Len(t, groups, 2)
	assert.Equal(t, "contact", groups[0].Name)
	assert.Equal(t, "email", groups[0].Settings[0].Key)
	assert.Equal(t, "phone", groups[0].Settings[1].Key)
	assert.Equal(t, "general", groups[1].Name)
}

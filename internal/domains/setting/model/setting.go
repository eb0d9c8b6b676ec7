package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Type decides how a stored value is decoded
type Type string

const (
	TypeText     Type = "text"
	TypeTextarea Type = "textarea"
	TypeBoolean  Type = "boolean"
	TypeJSON     Type = "json"
)

const DefaultGroup = "general"

func (t Type) Valid() bool {
	switch t {
	case TypeText, TypeTextarea, TypeBoolean, TypeJSON:
		return true
	}
	return false
}

type Setting struct {
	ID          uuid.UUID `json:"id"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Type        Type      `json:"type"`
	Group       string    `json:"group"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Decoded returns the value in its declared type
func (s *Setting) Decoded() interface{} {
	return Decode(s.Value, s.Type)
}

// Decode turns a stored string into a typed value.
// booleans: "" and "0" are false, everything else true.
// json: malformed input decodes to nil.
func Decode(raw string, t Type) interface{} {
	switch t {
	case TypeBoolean:
		return raw != "" && raw != "0"
	case TypeJSON:
		var v interface{}
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil
		}
		return v
	default:
		return raw
	}
}

// Encode serializes value for storage according to t
func Encode(value interface{}, t Type) (string, error) {
	switch t {
	case TypeBoolean:
		if truthy(value) {
			return "1", nil
		}
		return "0", nil
	case TypeJSON:
		b, err := json.Marshal(value)
		if err != nil {
			return "", fmt.Errorf("encode json setting: %w", err)
		}
		return string(b), nil
	default:
		if value == nil {
			return "", nil
		}
		return fmt.Sprint(value), nil
	}
}

func truthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		return v != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	default:
		return true
	}
}

// Group is one block of the admin settings page
type Group struct {
	Name     string     `json:"name"`
	Settings []*Setting `json:"settings"`
}

// GroupByName buckets settings by group, groups and keys sorted by name
func GroupByName(settings []*Setting) []Group {
	byName := map[string][]*Setting{}
	for _, s := range settings {
		byName[s.Group] = append(byName[s.Group], s)
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]Group, 0, len(names))
	for _, name := range names {
		items := byName[name]
		sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })
		groups = append(groups, Group{Name: name, Settings: items})
	}
	return groups
}

// ValueMap is what public pages receive: key -> raw value
func ValueMap(settings []*Setting) map[string]string {
	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}
	return out
}

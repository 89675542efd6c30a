package types

import (
	"encoding/json"
	"reflect"
	"strings"
)

// MissingField returns the JSON name of the first field tagged
// presence:"required" that the raw JSON object does not carry. Empty string
// values count as present. It returns "" when every such field is present.
func MissingField(raw []byte, req any) (string, error) {
	t := reflect.TypeOf(req)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return "", nil
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return "", err
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Tag.Get("presence") != "required" {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" {
			name = f.Name
		}
		v, ok := keys[name]
		if !ok || string(v) == "null" {
			return name, nil
		}
	}
	return "", nil
}

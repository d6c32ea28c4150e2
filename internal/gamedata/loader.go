package gamedata

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Load decodes an embedded YAML table into T. Keys that T does not declare
// are rejected so a typo in a table fails loudly instead of zeroing a field.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("read %s: %w", filename, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("decode %s: %w", filename, err)
	}
	return result, nil
}

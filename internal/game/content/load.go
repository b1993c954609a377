// Package content loads static game definitions stored one per YAML file.
package content

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Def is a pointer to a definition type that can check its own invariants.
type Def[T any] interface {
	*T
	Validate() error
}

// LoadDir decodes and validates every *.yaml file in dir, in directory order.
// Subdirectories and files with other extensions are ignored.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all definitions (possibly empty, never nil) or the
// first read, parse or validation error annotated with op and the file path.
func LoadDir[T any, P Def[T]](dir, op string) ([]*T, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%s: cannot read directory %q: %w", op, dir, err)
	}

	out := []*T{}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: cannot read file %q: %w", op, path, err)
		}
		v, err := Decode[T, P](data)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid definition in %q: %w", op, path, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Decode parses a single definition from raw YAML bytes and validates it.
//
// Postcondition: Returns a validated *T or an error.
func Decode[T any, P Def[T]](data []byte) (*T, error) {
	v := new(T)
	if err := yaml.Unmarshal(data, v); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := P(v).Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

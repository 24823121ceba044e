package block

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Overrides carries caller-confirmed adjustments applied at serialization
// time. The analyzer output itself is never mutated.
type Overrides struct {
	Roles    map[string]Role   `yaml:"roles"`
	Aliases  map[string]string `yaml:"aliases"`
	Defaults map[string]string `yaml:"defaults"`
}

// ParseOverrides decodes an overrides document and validates role values.
func ParseOverrides(data []byte) (Overrides, error) {
	var raw struct {
		Roles    map[string]string `yaml:"roles"`
		Aliases  map[string]string `yaml:"aliases"`
		Defaults map[string]string `yaml:"defaults"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Overrides{}, fmt.Errorf("failed to parse overrides: %w", err)
	}

	ov := Overrides{
		Roles:    make(map[string]Role, len(raw.Roles)),
		Aliases:  raw.Aliases,
		Defaults: raw.Defaults,
	}
	for name, s := range raw.Roles {
		role, ok := ParseRole(s)
		if !ok {
			return Overrides{}, fmt.Errorf("overrides: unknown role %q for %q", s, name)
		}
		ov.Roles[name] = role
	}
	return ov, nil
}

// LoadOverrides reads and parses an overrides file.
func LoadOverrides(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, fmt.Errorf("failed to read overrides file: %w", err)
	}
	return ParseOverrides(data)
}

// Role returns the effective role for a declaration.
func (o Overrides) Role(d Declaration) Role {
	if r, ok := o.Roles[d.Name]; ok {
		return r
	}
	if d.Role != "" {
		return d.Role
	}
	return RoleVariable
}

// Alias returns the effective display name for a declaration.
func (o Overrides) Alias(d Declaration) string {
	if a, ok := o.Aliases[d.Name]; ok && a != "" {
		return a
	}
	return d.Name
}

// Default returns the effective default literal for a declaration.
func (o Overrides) Default(d Declaration) string {
	if v, ok := o.Defaults[d.Name]; ok {
		return v
	}
	return d.Default
}

package block

// Role classifies how a declaration is exposed on the block.
type Role string

const (
	RoleVariable  Role = "variable"
	RoleInput     Role = "input"
	RoleOutput    Role = "output"
	RoleParameter Role = "parameter"
)

// ParseRole converts a string to a Role. Returns false for unknown values.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleVariable, RoleInput, RoleOutput, RoleParameter:
		return Role(s), true
	}
	return "", false
}

// Type is the semantic type of a declaration.
type Type string

const (
	TypeInteger Type = "integer"
	TypeFloat   Type = "float"
	TypeBoolean Type = "boolean"
	TypeText    Type = "text"

	// TypeObject marks class-instance declarations. They are not modeled as
	// Declarations; the whole statement is carried verbatim instead.
	TypeObject Type = "object"
)

// Declaration is a top-level variable declaration extracted from the sketch.
type Declaration struct {
	Name    string `json:"name"`
	Type    Type   `json:"type"`
	Keyword string `json:"keyword"` // raw source type keyword, e.g. "uint8_t"
	Default string `json:"default,omitempty"`
	Role    Role   `json:"role"`
	Pos     int    `json:"pos"` // zero-based source line index
}

// Param is one parameter of a user-defined function.
type Param struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// Function is a user-defined function other than the lifecycle entry points.
type Function struct {
	Name       string  `json:"name"`
	ReturnType string  `json:"return_type"`
	RawParams  string  `json:"raw_params"`
	Params     []Param `json:"params,omitempty"`
	Body       string  `json:"body"`
	Excluded   bool    `json:"excluded"` // true only for setup/loop, which are never Function records
	Pos        int     `json:"pos"`
}

// Metadata is the user-supplied block identity.
type Metadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version"`
}

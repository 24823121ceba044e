package block

// keywordTypes maps recognized sketch type keywords to semantic types. The
// table is total over the supported primitive keywords; any keyword missing
// here is treated as a class name and the statement is carried verbatim.
var keywordTypes = map[string]Type{
	"int":           TypeInteger,
	"long":          TypeInteger,
	"unsigned long": TypeInteger,
	"byte":          TypeInteger,
	"uint8_t":       TypeInteger,
	"int16_t":       TypeInteger,
	"uint16_t":      TypeInteger,
	"int32_t":       TypeInteger,
	"uint32_t":      TypeInteger,
	"float":         TypeFloat,
	"double":        TypeFloat,
	"bool":          TypeBoolean,
	"boolean":       TypeBoolean,
	"char":          TypeText,
	"String":        TypeText,
}

// TypeForKeyword resolves a source type keyword to its semantic type.
// Returns TypeObject and false for unrecognized keywords.
func TypeForKeyword(keyword string) (Type, bool) {
	if t, ok := keywordTypes[keyword]; ok {
		return t, true
	}
	return TypeObject, false
}

// schemaClasses maps semantic types to SIXX data-type class names.
var schemaClasses = map[Type]string{
	TypeInteger: "IntegerDataType",
	TypeFloat:   "FloatDataType",
	TypeBoolean: "BooleanDataType",
	TypeText:    "StringDataType",
}

// SchemaClass returns the SIXX class name for a semantic type. Unknown types
// fall back to IntegerDataType, matching the converter's lenient posture.
func SchemaClass(t Type) string {
	if c, ok := schemaClasses[t]; ok {
		return c
	}
	return "IntegerDataType"
}

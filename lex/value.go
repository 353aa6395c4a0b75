package lex

// ValueType tags the syntactic shape of a parsed value slot. It mirrors
// ecjp_value_type_t from original_source/include/ecjp.h.
type ValueType int

const (
	Undefined ValueType = iota
	String
	Number
	Object
	Array
	Bool
	Null
	KeyValuePair
)

var valueTypeNames = [...]string{
	Undefined:    "undefined",
	String:       "string",
	Number:       "number",
	Object:       "object",
	Array:        "array",
	Bool:         "bool",
	Null:         "null",
	KeyValuePair: "key_value_pair",
}

// String implements fmt.Stringer. It replaces the original's process-wide
// ecjp_type[] lookup table with a pure, stateless mapping.
func (t ValueType) String() string {
	if int(t) >= 0 && int(t) < len(valueTypeNames) {
		return valueTypeNames[t]
	}
	return "unknown"
}

// StructKind describes the document root's container shape. It mirrors
// ecjp_struct_type_t.
type StructKind int

const (
	StructNone StructKind = iota
	StructObject
	StructArray
)

func (k StructKind) String() string {
	switch k {
	case StructObject:
		return "object"
	case StructArray:
		return "array"
	default:
		return "none"
	}
}

package lex

// Limits is the compile-time resource budget for a single parse. The
// default values are overridden per build by limits_pc.go, limits_mcu.go,
// or limits_default.go (exactly one is compiled in, selected by build
// tag), matching the PC/MCU/default profile split of
// original_source/include/ecjp_limit.h.
type Limits struct {
	MaxInputSize       int
	MaxParseStackDepth int
	MaxKeyLen          int
	MaxKeyValueLen     int
	MaxItemLen         int
	MaxArrayElemLen    int
	MaxNestedLevel     int
	MaxPrintColumns    int
}

// DefaultLimits returns the resource budget selected for this build.
func DefaultLimits() Limits {
	return defaultLimits
}

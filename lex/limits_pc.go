//go:build ecjp_pc

package lex

// Workstation profile: ECJP_RUN_ON_PC in original_source/include/ecjp_limit.h.
var defaultLimits = Limits{
	MaxInputSize:       5 * 1024 * 1024,
	MaxParseStackDepth: 2048,
	MaxKeyLen:          512,
	MaxKeyValueLen:     16 * 1024,
	MaxItemLen:         100 * 1024,
	MaxArrayElemLen:    100 * 1024,
	MaxNestedLevel:     1024,
	MaxPrintColumns:    80,
}

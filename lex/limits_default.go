//go:build !ecjp_pc && !ecjp_mcu

package lex

// Default profile, used when neither ecjp_pc nor ecjp_mcu is set, per
// original_source/include/ecjp_limit.h's "run with default" branch.
var defaultLimits = Limits{
	MaxInputSize:       8192,
	MaxParseStackDepth: 128,
	MaxKeyLen:          64,
	MaxKeyValueLen:     1024,
	MaxItemLen:         512,
	MaxArrayElemLen:    1024,
	MaxNestedLevel:     12,
	MaxPrintColumns:    80,
}

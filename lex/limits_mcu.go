//go:build ecjp_mcu

package lex

// Microcontroller profile: ECJP_RUN_ON_MCU in
// original_source/include/ecjp_limit.h.
var defaultLimits = Limits{
	MaxInputSize:       1024,
	MaxParseStackDepth: 64,
	MaxKeyLen:          32,
	MaxKeyValueLen:     128,
	MaxItemLen:         512,
	MaxArrayElemLen:    256,
	MaxNestedLevel:     8,
	MaxPrintColumns:    80,
}

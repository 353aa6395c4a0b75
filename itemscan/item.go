//go:build !ecjp_noitemlist

// Package itemscan implements spec.md §4.3: the scan-and-capture pipeline
// ("pipeline B"). Unlike slotscan, which records positions and leaves
// value bytes in place, itemscan copies each top-level item's raw text
// out of Source during the single scan pass, trading memory for a
// representation that survives Source being discarded or reused.
//
// Build with -tags ecjp_noitemlist to compile this package out entirely,
// mirroring spec.md §6's item-list feature flag.
package itemscan

import "github.com/aledsdavies/ecjp/lex"

// Item is one top-level slot of the root container: an element's raw text
// when the root is an array, or a "key":value pair's raw text (key
// through value, inclusive) when the root is an object. Type is the
// element's own value type for array items, or lex.KeyValuePair for
// object items, mirroring ecjp_item_elem_t.
type Item struct {
	Type  lex.ValueType
	Bytes []byte
}

// ItemList is an order-preserving list of top-level Items, replacing the
// original's manual linked list of item_elem_t nodes.
type ItemList []Item

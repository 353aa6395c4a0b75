//go:build !ecjp_noitemlist

package itemscan

import (
	"github.com/aledsdavies/ecjp/ecjperr"
	"github.com/aledsdavies/ecjp/lex"
)

// Load scans src once, capturing one Item per top-level slot of the root
// container, per spec.md §4.3. Syntax is fully validated regardless of
// how many items the root actually has.
func Load(src []byte, limits lex.Limits) (ItemList, lex.Result, error) {
	term := lex.EnsureTerminated(src)
	sink := newItemSink(term)
	scanner := lex.NewScanner(term, limits, sink)
	res, err := scanner.Scan()
	return sink.list, res, err
}

// ReadElement returns the index-th top-level Item of list, mirroring
// ecjp_item_read_element.
// It returns ecjperr.IndexOutOfBounds once index reaches the item count.
func ReadElement(list ItemList, index int) (Item, error) {
	if index < 0 || index >= len(list) {
		return Item{}, ecjperr.Newf(ecjperr.IndexOutOfBounds, "item index %d out of bounds (have %d)", index, len(list))
	}
	return list[index], nil
}

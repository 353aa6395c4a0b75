package lex

// Result is the summary a scan produces, mirroring ecjp_check_result_t:
// the first rejected byte's offset (-1 on success), the number of
// emitted slots, the document root's structural kind, and a rough
// estimate of scratch memory the scan used.
type Result struct {
	ErrPos      int
	NumElements int
	Struct      StructKind
	MemoryUsed  int
}

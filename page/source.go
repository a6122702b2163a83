package page

import "context"

// Source supplies pages to the traversal engine. Fetch must be safe to call
// repeatedly for the same pageNumber (implementations may cache or may
// decode fresh each time); Release signals the caller is done with a page
// returned by Fetch, letting a pooling Source recycle it.
//
// Implementations are not required to be safe for concurrent use; concurrent
// access to the same page tree is out of scope for this engine.
type Source interface {
	// Fetch decodes and returns the page identified by pageNumber.
	Fetch(ctx context.Context, pageNumber uint32) (*Page, error)

	// Release returns a page previously obtained from Fetch. Callers must
	// not use p after calling Release.
	Release(p *Page)

	// PageCount reports the total number of pages the source can serve, or
	// 0 if unknown. A 0 disables the traversal engine's page-count-derived
	// guardrail and its cycle-detection bitmap (see pagetree.PageTree).
	PageCount() uint32
}

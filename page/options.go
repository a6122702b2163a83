package page

import "github.com/mmcdole/esedb/diag"

// Options configures a FileSource: a single functional-knob struct passed
// to an Open constructor rather than an external config file format (there
// is nothing here a library needs to load from disk at startup).
type Options struct {
	// PageSize is the database's page size in bytes. Zero defaults to
	// format.DefaultPageSize (8 KiB), the size modern ESE databases use.
	PageSize int

	// DisableMmap forces FileSource to read the whole file into memory
	// instead of memory-mapping it, useful on platforms or filesystems
	// where mmap is unreliable.
	DisableMmap bool

	// Diagnostics receives non-fatal observations made while decoding
	// pages (unfamiliar tag-flag bits). Defaults to diag.Discard{} when nil.
	Diagnostics diag.Sink
}

func (o Options) pageSize() int {
	if o.PageSize > 0 {
		return o.PageSize
	}
	return defaultPageSize
}

func (o Options) sink() diag.Sink {
	if o.Diagnostics != nil {
		return o.Diagnostics
	}
	return diag.Discard{}
}

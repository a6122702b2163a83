package format

// PageIndex returns the zero-based page number containing absolute byte
// offset abs, given pageSize. Pages are fixed-size and page-aligned; the
// page size itself is a per-database parameter (commonly 4, 8, 16, or
// 32 KiB) supplied by the caller via page.Options, not a format constant,
// so this helper takes it explicitly.
func PageIndex(abs int64, pageSize int) uint32 {
	if pageSize <= 0 {
		return 0
	}
	return uint32(abs / int64(pageSize))
}

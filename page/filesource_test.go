package page

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmcdole/esedb/internal/format"
)

// buildPage assembles one page-sized buffer: fixed header, a body that
// callers fill in, and a trailing tag array pointing at each of tags'
// (offset, size, flags) as a TagEntrySize-byte entry, growing backward from
// the end of the page.
func buildPage(t *testing.T, pageSize int, flags, previous, next, fdpObjectID uint32, body []byte, tagSpecs [][3]int) []byte {
	t.Helper()
	buf := make([]byte, pageSize)
	format.PutU32(buf, format.PageHeaderFlagsOffset, flags)
	format.PutU32(buf, format.PageHeaderPreviousOffset, previous)
	format.PutU32(buf, format.PageHeaderNextOffset, next)
	format.PutU32(buf, format.PageHeaderFDPObjectIDOffset, fdpObjectID)
	format.PutU16(buf, format.PageHeaderTagCountOffset, uint16(len(tagSpecs)))
	copy(buf[format.PageHeaderSize:], body)

	arrayBytes := len(tagSpecs) * format.TagEntrySize
	arrayStart := pageSize - arrayBytes
	for i, spec := range tagSpecs {
		relOff, size, flagBits := spec[0], spec[1], spec[2]
		entryOff := arrayStart + i*format.TagEntrySize
		format.PutU16(buf, entryOff, uint16(relOff))
		sizeField := uint16(size) | uint16(flagBits)<<format.TagEntryFlagsShift
		format.PutU16(buf, entryOff+format.TagEntryOffsetSize, sizeField)
	}
	return buf
}

func TestFileSourceFetchRelease(t *testing.T) {
	const pageSize = 64
	body := []byte("hello-catalog-header-bytes-----")
	buf := buildPage(t, pageSize, uint32(FlagRoot), 0, 0, 9, body, [][3]int{{0, 8, 0}})

	dir := t.TempDir()
	path := filepath.Join(dir, "test.edb")
	if err := os.WriteFile(path, buf, 0o600); err != nil {
		t.Fatal(err)
	}

	src, err := Open(path, Options{PageSize: pageSize, DisableMmap: true})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer src.Close()

	if got := src.PageCount(); got != 1 {
		t.Fatalf("PageCount = %d, want 1", got)
	}

	p, err := src.Fetch(context.Background(), 0)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if !p.Flags.Has(FlagRoot) || p.FDPObjectID != 9 {
		t.Fatalf("unexpected decoded page %+v", p)
	}
	if len(p.Tags) != 1 || len(p.Tags[0].Data) != 8 {
		t.Fatalf("unexpected tags %+v", p.Tags)
	}
	src.Release(p)
}

func TestFileSourceOutOfBounds(t *testing.T) {
	const pageSize = 32
	buf := buildPage(t, pageSize, uint32(FlagRoot), 0, 0, 1, nil, nil)

	dir := t.TempDir()
	path := filepath.Join(dir, "test.edb")
	if err := os.WriteFile(path, buf, 0o600); err != nil {
		t.Fatal(err)
	}

	src, err := Open(path, Options{PageSize: pageSize, DisableMmap: true})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer src.Close()

	if _, err := src.Fetch(context.Background(), 5); err == nil {
		t.Fatal("expected an out-of-bounds fetch to fail")
	}
}

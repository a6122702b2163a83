package page

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/mmcdole/esedb/diag"
	"github.com/mmcdole/esedb/errs"
	"github.com/mmcdole/esedb/internal/format"
	"github.com/mmcdole/esedb/internal/mmio"
)

const defaultPageSize = format.DefaultPageSize

// FileSource is the default page.Source: it memory-maps (or, where
// unavailable, fully reads) an ESE database file and decodes pages on
// demand. It is strictly read-only: this engine never writes to the
// mapping.
type FileSource struct {
	data   []byte
	unmap  func() error
	opts   Options
	pool   sync.Pool
	pages  uint32
	closed bool
}

// Open memory-maps the file at path (falling back to a buffered read where
// mmap isn't available, or when opts.DisableMmap is set) and returns a
// FileSource ready to serve pages.
func Open(path string, opts Options) (*FileSource, error) {
	var data []byte
	var unmap func() error
	var err error
	if opts.DisableMmap {
		data, err = os.ReadFile(path)
		unmap = func() error { return nil }
	} else {
		data, unmap, err = mmio.Map(path)
	}
	if err != nil {
		return nil, errs.Wrap(errs.IOFailure, err, "open %s", path)
	}
	fs := &FileSource{
		data:  data,
		unmap: unmap,
		opts:  opts,
	}
	fs.pool.New = func() any { return new(Page) }
	fs.pages = format.PageIndex(int64(len(data)), opts.pageSize())
	return fs, nil
}

// Close unmaps the underlying file. Callers must not use any Page obtained
// from this source after calling Close.
func (fs *FileSource) Close() error {
	if fs.closed {
		return nil
	}
	fs.closed = true
	if fs.unmap != nil {
		return fs.unmap()
	}
	return nil
}

// PageCount implements Source.
func (fs *FileSource) PageCount() uint32 { return fs.pages }

// Fetch implements Source.
func (fs *FileSource) Fetch(ctx context.Context, pageNumber uint32) (*Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	size := fs.opts.pageSize()
	start := int(pageNumber) * size
	buf, ok := format.Slice(fs.data, start, size)
	if !ok {
		return nil, errs.New(errs.OutOfRange, "page %d out of bounds (size=%d, file=%d bytes)", pageNumber, size, len(fs.data))
	}

	tags, err := decodeTagArray(buf)
	if err != nil {
		return nil, errs.Wrap(errs.Unsupported, err, "page %d tag array", pageNumber)
	}

	p, err := Decode(pageNumber, buf, tags)
	if err != nil {
		return nil, errs.Wrap(errs.Unsupported, err, "page %d header", pageNumber)
	}

	for _, t := range p.Tags {
		if t.Flags&^0x07 != 0 {
			fs.opts.sink().Observe(diag.Diagnostic{
				Severity:   diag.SevWarning,
				Category:   diag.CategoryStructure,
				PageNumber: pageNumber,
				Message:    fmt.Sprintf("tagged value carries unfamiliar flag bits 0x%x", t.Flags),
			})
		}
	}

	return p, nil
}

// Release implements Source. FileSource's pages reference the mmap'd
// buffer directly and carry no pooled allocation to reclaim beyond the
// *Page struct itself, which is returned to an internal sync.Pool.
func (fs *FileSource) Release(p *Page) {
	if p == nil {
		return
	}
	*p = Page{}
	fs.pool.Put(p)
}

// decodeTagArray reads the page's tag array, stored at the end of the page
// growing backward, each entry TagEntrySize bytes: a uint16 byte offset
// (relative to the end of the fixed header) and a uint16 size/flags field.
func decodeTagArray(buf []byte) ([]TaggedValue, error) {
	if !format.Has(buf, format.PageHeaderTagCountOffset, 2) {
		return nil, format.ErrTruncated
	}
	count := int(format.ReadU16(buf, format.PageHeaderTagCountOffset))
	if count == 0 {
		return nil, nil
	}
	arrayBytes := count * format.TagEntrySize
	arrayStart := len(buf) - arrayBytes
	if arrayStart < format.PageHeaderSize {
		return nil, format.ErrBoundsCheck
	}

	tags := make([]TaggedValue, 0, count)
	for i := 0; i < count; i++ {
		entryOff := arrayStart + i*format.TagEntrySize
		entry, ok := format.Slice(buf, entryOff, format.TagEntrySize)
		if !ok {
			return nil, format.ErrBoundsCheck
		}
		relOff := int(format.ReadU16(entry, 0))
		sizeField := format.ReadU16(entry, format.TagEntryOffsetSize)
		size := int(sizeField & format.TagEntrySizeMask)
		flags := byte(sizeField >> format.TagEntryFlagsShift)

		dataStart := format.PageHeaderSize + relOff
		data, ok := format.Slice(buf, dataStart, size)
		if !ok {
			return nil, format.ErrBoundsCheck
		}
		tags = append(tags, TaggedValue{Flags: flags, Data: data})
	}
	return tags, nil
}

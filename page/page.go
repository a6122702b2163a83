// Package page decodes a single ESE database page: its fixed header, flag
// bitset, and tag array of TaggedValues. It knows nothing about catalogs,
// tables, or the page tree itself; those live in catalog and pagetree.
package page

import (
	"fmt"

	"github.com/mmcdole/esedb/internal/format"
)

// Flags is the page header's flag bitset.
type Flags uint32

const (
	FlagRoot            = Flags(format.FlagRoot)
	FlagLeaf            = Flags(format.FlagLeaf)
	FlagParent          = Flags(format.FlagParent)
	FlagSpaceTree       = Flags(format.FlagSpaceTree)
	FlagIndex           = Flags(format.FlagIndex)
	FlagLongValue       = Flags(format.FlagLongValue)
	FlagPrimary         = Flags(format.FlagPrimary)
	FlagNewRecordFormat = Flags(format.FlagNewRecordFormat)
)

// Has reports whether all bits in mask are set.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// Any reports whether any bit in mask is set.
func (f Flags) Any(mask Flags) bool { return f&mask != 0 }

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	names := []struct {
		bit  Flags
		name string
	}{
		{FlagRoot, "root"},
		{FlagLeaf, "leaf"},
		{FlagParent, "parent"},
		{FlagSpaceTree, "space-tree"},
		{FlagIndex, "index"},
		{FlagLongValue, "long-value"},
		{FlagPrimary, "primary"},
		{FlagNewRecordFormat, "new-record-format"},
	}
	s := ""
	for _, n := range names {
		if f.Has(n.bit) {
			if s != "" {
				s += "|"
			}
			s += n.name
		}
	}
	if s == "" {
		return fmt.Sprintf("0x%x", uint32(f))
	}
	return s
}

// TaggedValue is one entry of a page's tag array: a flag byte and a
// zero-copy slice into the owning Page's backing buffer.
type TaggedValue struct {
	Flags byte
	Data  []byte
}

// HasKeyType reports whether this value's first two bytes are a key-type
// field preceding the page_key_size field.
func (t TaggedValue) HasKeyType() bool {
	return t.Flags&format.TagFlagKeyType != 0
}

// Page is a single decoded ESE database page.
type Page struct {
	Number      uint32
	Flags       Flags
	Previous    uint32
	Next        uint32
	FDPObjectID uint32

	// Data is the full page buffer, header included, zero-copy where the
	// Source supports it (FileSource does; any Source may copy instead).
	Data []byte

	// Tags is the page's tag array, in on-disk order.
	Tags []TaggedValue
}

// Decode parses a single page's header from buf, which must be exactly one
// page in length, and attaches tags, the page's already-decoded tag array
// (FileSource decodes it from the tag count in the page header and the
// tag entries at the end of the page before calling Decode).
func Decode(number uint32, buf []byte, tags []TaggedValue) (*Page, error) {
	if !format.Has(buf, 0, format.PageHeaderSize) {
		return nil, format.ErrTruncated
	}
	p := &Page{
		Number:      number,
		Flags:       Flags(format.ReadU32(buf, format.PageHeaderFlagsOffset)),
		Previous:    format.ReadU32(buf, format.PageHeaderPreviousOffset),
		Next:        format.ReadU32(buf, format.PageHeaderNextOffset),
		FDPObjectID: format.ReadU32(buf, format.PageHeaderFDPObjectIDOffset),
		Data:        buf,
		Tags:        tags,
	}
	return p, nil
}

// RequireFlags checks f against a required bit and a supported mask,
// returning format.ErrFlagMismatch if either check fails.
func RequireFlags(f Flags, required, supported Flags) error {
	if !f.Has(required) {
		return fmt.Errorf("%w: missing required bits %s (have %s)", format.ErrFlagMismatch, required, f)
	}
	if f&^supported != 0 {
		return fmt.Errorf("%w: unsupported bits %s (have %s)", format.ErrFlagMismatch, f&^supported, f)
	}
	return nil
}

// Package pagetree implements the traversal engine: the mutually recursive
// walk over an ESE page tree's FDP root, parent, leaf, and space-tree
// pages, assembling either a catalog (table/column/index/long-value
// definitions) or a set of decoded data rows, depending on Mode.
//
// The engine is read-only and single-pass: it never mutates a page.Source
// and is not safe for concurrent use against the same PageTree.
package pagetree

import (
	"context"
	"fmt"

	"github.com/mmcdole/esedb/catalog"
	"github.com/mmcdole/esedb/diag"
	"github.com/mmcdole/esedb/errs"
	"github.com/mmcdole/esedb/internal/format"
	"github.com/mmcdole/esedb/page"
)

// Mode selects what a Read call assembles from the pages it visits.
type Mode int

const (
	// BuildCatalog walks a catalog table's page tree and assembles
	// TableDefinitions from the Table/Column/Index/LongValue records its
	// leaf pages carry.
	BuildCatalog Mode = iota + 1

	// ReadRows walks a plain table's page tree and decodes each leaf
	// entry as a DataDefinition against a previously bound schema
	//.
	ReadRows
)

func (m Mode) String() string {
	switch m {
	case BuildCatalog:
		return "build-catalog"
	case ReadRows:
		return "read-rows"
	default:
		return "unknown"
	}
}

// Options configures a PageTree at Initialise time.
type Options struct {
	// Diagnostics receives non-fatal observations (skipped child pages,
	// sibling-linkage mismatches, index/long-value entries, space-tree page
	// totals). Defaults to diag.Discard{}.
	Diagnostics diag.Sink

	// DisableCycleGuard turns off the visited-page bitmap even when the
	// page source reports a page count. Intended for tests that
	// deliberately construct cyclic fixtures to exercise the guard itself.
	DisableCycleGuard bool
}

// PageTree is the traversal engine for a single page source. Initialise
// once per open database; call Read for each root FDP page number to
// traverse (the catalog's own root, then each table's root in turn).
type PageTree struct {
	source  page.Source
	decoder catalog.Decoder
	diags   diag.Sink
	guard   *bitmap
	bound   int

	mode   Mode
	schema *catalog.TableDefinition

	tables      []*catalog.TableDefinition
	byFDPObject map[uint32]*catalog.TableDefinition
	rows        []catalog.DataDefinition

	pending *catalog.TableDefinition // table currently accumulating columns/indexes

	// lastLeafPage tracks the previous IS_LEAF child seen under the
	// current ParentWalk, for the sibling-linkage diagnostic checked while
	// walking a parent's children. Reset at the start of each ParentWalk's entry loop.
	lastLeafPage *page.Page
}

// Initialise constructs a PageTree bound to source and decoder. decoder
// must not be nil; pass catalog.DefaultDecoder{} for the module's
// built-in decoding.
func Initialise(source page.Source, decoder catalog.Decoder, opts Options) (*PageTree, error) {
	if source == nil {
		return nil, errs.New(errs.InvalidArgument, "nil page source")
	}
	if decoder == nil {
		return nil, errs.New(errs.InvalidArgument, "nil catalog decoder")
	}

	sink := opts.Diagnostics
	if sink == nil {
		sink = diag.Discard{}
	}

	pt := &PageTree{
		source:      source,
		decoder:     decoder,
		diags:       sink,
		byFDPObject: make(map[uint32]*catalog.TableDefinition),
	}

	if count := source.PageCount(); count > 0 {
		pt.bound = int(count)
		if !opts.DisableCycleGuard {
			pt.guard = newBitmap(count)
		}
	}
	if pt.bound == 0 {
		pt.bound = int(format.ChildGuardrailSentinel)
	}

	return pt, nil
}

// Release tears down the PageTree. It does not close the underlying
// page.Source, which the caller owns. Calling Release more than once, or
// on the zero value, is a no-op.
func (pt *PageTree) Release() {
	if pt == nil {
		return
	}
	pt.tables = nil
	pt.byFDPObject = nil
	pt.rows = nil
	pt.pending = nil
	pt.schema = nil
	pt.guard = nil
}

// Tables returns the TableDefinitions assembled by a BuildCatalog Read.
func (pt *PageTree) Tables() []*catalog.TableDefinition { return pt.tables }

// Rows returns the DataDefinitions assembled by a ReadRows Read.
func (pt *PageTree) Rows() []catalog.DataDefinition { return pt.rows }

// LookupTableByIdentifier returns the table definition owning fdpObjectID,
// if one was assembled by a prior BuildCatalog Read. A
// registry element reachable by this lookup that lacks its table catalog
// record would itself be a corruption error, but since entries are only
// ever created alongside their Table record (see buildCatalogEntry's
// catalog.KindTable case) that state cannot arise through this engine's
// own construction.
func (pt *PageTree) LookupTableByIdentifier(fdpObjectID uint32) (*catalog.TableDefinition, bool) {
	td, ok := pt.byFDPObject[fdpObjectID]
	return td, ok
}

// Read traverses the page tree rooted at rootFDPPageNumber in the given
// mode. For ReadRows, schema must be the table's own
// already-decoded TableDefinition (typically obtained from a prior
// BuildCatalog Read against the database's catalog table); it is ignored
// for BuildCatalog.
// Read does not itself require schema to be non-nil for ReadRows: the
// missing-schema condition is expected to surface as errs.MissingState
// from the row-reading branch at the first primary-data leaf entry
// encountered, not as an upfront argument error: a ReadRows traversal
// over an empty or catalog-only tree with no schema bound is not itself
// a fault until a row actually needs decoding.
func (pt *PageTree) Read(ctx context.Context, rootFDPPageNumber uint32, mode Mode, schema *catalog.TableDefinition) error {
	pt.mode = mode
	pt.schema = schema
	pt.pending = nil

	return pt.read(ctx, rootFDPPageNumber)
}

// read is the top-level dispatch: it fetches one page and routes it by
// flags. IS_LEAF is checked first: a root page that is also flagged
// IS_LEAF is a degenerate, single-page tree and is handed directly to
// leafWalk without any FDP-header or space-tree handling (its tag-array
// slot 0 is an ordinary leaf header, not an FDP header). Only a page
// carrying IS_ROOT without IS_LEAF is handed to fdpWalk. A page that is
// neither (an empty or malformed tree) is tolerated rather than treated
// as an error: the page is released and read returns nil.
func (pt *PageTree) read(ctx context.Context, pageNumber uint32) error {
	p, err := pt.source.Fetch(ctx, pageNumber)
	if err != nil {
		return errs.Wrap(errs.IOFailure, err, "fetch page %d", pageNumber)
	}
	defer pt.source.Release(p)

	switch {
	case p.Flags.Has(page.FlagLeaf):
		return pt.leafWalk(ctx, p, p.FDPObjectID)
	case p.Flags.Has(page.FlagRoot):
		return pt.fdpWalk(ctx, p)
	default:
		return nil
	}
}

func requireFlags(f page.Flags, required, supported uint32) error {
	return page.RequireFlags(f, page.Flags(required), page.Flags(supported))
}

func requireZeroSiblings(p *page.Page) error {
	if p.Previous != 0 || p.Next != 0 {
		return errs.New(errs.Unsupported, "page %d has nonzero sibling pointers (prev=%d next=%d)", p.Number, p.Previous, p.Next)
	}
	return nil
}

// fdpWalk decodes a root page's FDP header and dispatches its data tree.
// read hands a root flagged IS_LEAF to leafWalk instead, and
// SupportedFlagsRoot does not include IS_LEAF, so a root reaching here is
// IS_PARENT (the common case, pointing at child pages via its tag array)
// or carries neither bit, in which case only its space tree is walked.
func (pt *PageTree) fdpWalk(ctx context.Context, root *page.Page) error {
	if err := requireFlags(root.Flags, format.RequiredFlagsRoot, format.SupportedFlagsRoot); err != nil {
		return errs.Wrap(errs.Unsupported, err, "root page %d", root.Number)
	}
	if err := requireZeroSiblings(root); err != nil {
		return errs.Wrap(errs.Unsupported, err, "root page %d", root.Number)
	}
	if len(root.Tags) == 0 {
		return errs.New(errs.Unsupported, "root page %d has no FDP header", root.Number)
	}

	hdr := root.Tags[0].Data
	if !format.Has(hdr, 0, format.FDPHeaderMinSize) {
		return errs.New(errs.Unsupported, "root page %d FDP header truncated", root.Number)
	}
	extentSpace := format.ReadU32(hdr, format.FDPHeaderExtentSpaceOffset)
	spaceTreePageNumber := format.ReadU32(hdr, format.FDPHeaderSpaceTreePageOffset)

	// Open Question 2: the original's reject condition
	// (space_tree_page_number == 0 && space_tree_page_number >= 0xFF000000)
	// can never be true as written (0 is never >= 0xFF000000); treated as
	// the evidently intended `||`.
	if extentSpace > 0 {
		if spaceTreePageNumber == 0 || spaceTreePageNumber >= format.SpaceTreeReservedRangeStart {
			return errs.New(errs.Unsupported, "root page %d: invalid space-tree page number %d", root.Number, spaceTreePageNumber)
		}
		// The owned-pages and available-pages trees are a fixed pair, the
		// second immediately following the first.
		for _, stPage := range [2]uint32{spaceTreePageNumber, spaceTreePageNumber + 1} {
			if err := pt.fetchAndWalkSpaceTree(ctx, stPage, root.FDPObjectID); err != nil {
				return err
			}
		}
	}

	body := root.Tags[1:]
	switch {
	case root.Flags.Has(page.FlagLeaf):
		return pt.leafEntries(ctx, root.Number, root.FDPObjectID, root.Flags, body)
	case root.Flags.Has(page.FlagParent):
		return pt.parentWalk(ctx, root.FDPObjectID, body)
	default:
		return nil
	}
}

// fetchAndWalkSpaceTree fetches a single space-tree page, checks its FDP
// object id against the owning root's, invokes spaceTreeWalk, and releases
// it.
func (pt *PageTree) fetchAndWalkSpaceTree(ctx context.Context, pageNumber, rootFDPObjectID uint32) error {
	p, err := pt.source.Fetch(ctx, pageNumber)
	if err != nil {
		return errs.Wrap(errs.IOFailure, err, "fetch space-tree page %d", pageNumber)
	}
	defer pt.source.Release(p)

	if p.FDPObjectID != rootFDPObjectID {
		return errs.New(errs.Unsupported, "space-tree page %d FDP object id %d does not match root %d", p.Number, p.FDPObjectID, rootFDPObjectID)
	}
	return pt.spaceTreeWalk(ctx, p, rootFDPObjectID)
}

// parentWalk extracts each child page number from a parent page's tag
// array and dispatches it to childWalk. Each tagged value's
// trailing ChildPageNumberSize bytes are the child page number; a leading
// key-type prefix (TagFlagKeyType) is skipped first. parentFDPObjectID is
// the FDP object id every descendant page must carry.
func (pt *PageTree) parentWalk(ctx context.Context, parentFDPObjectID uint32, entries []page.TaggedValue) error {
	prevLeaf := pt.lastLeafPage
	pt.lastLeafPage = nil
	defer func() { pt.lastLeafPage = prevLeaf }()

	for _, t := range entries {
		data := t.Data
		if t.HasKeyType() {
			if len(data) < format.KeyTypeFieldSize+format.KeySizeFieldSize {
				continue
			}
			keySize := int(format.ReadU16(data, format.KeyTypeFieldSize))
			prefix := format.KeyTypeFieldSize + format.KeySizeFieldSize + keySize
			if prefix > len(data) {
				return errs.New(errs.OutOfRange, "parent entry key size %d exceeds remaining %d bytes", keySize, len(data)-format.KeyTypeFieldSize-format.KeySizeFieldSize)
			}
			data = data[prefix:]
		} else {
			if len(data) < format.KeySizeFieldSize {
				continue
			}
			keySize := int(format.ReadU16(data, 0))
			prefix := format.KeySizeFieldSize + keySize
			if prefix > len(data) {
				return errs.New(errs.OutOfRange, "parent entry key size %d exceeds remaining %d bytes", keySize, len(data)-format.KeySizeFieldSize)
			}
			data = data[prefix:]
		}
		if len(data) < format.ChildPageNumberSize {
			continue
		}
		child := format.ReadU32(data, len(data)-format.ChildPageNumberSize)
		if err := pt.childWalk(ctx, parentFDPObjectID, child); err != nil {
			return err
		}
	}
	return nil
}

// childWalk validates and recurses into a single child page reached from a
// parent page. Open Question 1: the original's
// child_page_number >= 0x117F02 guardrail is replaced with a bound derived
// from page.Source.PageCount() (falling back to the historical constant
// only when the source can't report a count).
func (pt *PageTree) childWalk(ctx context.Context, parentFDPObjectID, childPageNumber uint32) error {
	if int(childPageNumber) >= pt.bound {
		pt.diags.Observe(diag.Diagnostic{
			Severity:   diag.SevWarning,
			Category:   diag.CategoryStructure,
			PageNumber: childPageNumber,
			Message:    "child page number exceeds guardrail bound, skipped",
		})
		return nil
	}
	if pt.guard != nil {
		if pt.guard.IsSet(childPageNumber) {
			return errs.New(errs.Unsupported, "cycle detected: page %d already visited", childPageNumber)
		}
		pt.guard.Set(childPageNumber)
	}

	p, err := pt.source.Fetch(ctx, childPageNumber)
	if err != nil {
		return errs.Wrap(errs.IOFailure, err, "fetch page %d", childPageNumber)
	}
	defer pt.source.Release(p)

	if p.FDPObjectID != parentFDPObjectID {
		return errs.New(errs.Unsupported, "page %d FDP object id %d does not match parent %d", p.Number, p.FDPObjectID, parentFDPObjectID)
	}

	switch {
	case p.Flags.Has(page.FlagLeaf):
		if err := requireFlags(p.Flags, format.RequiredFlagsLeaf, format.SupportedFlagsLeaf); err != nil {
			return errs.Wrap(errs.Unsupported, err, "leaf page %d", p.Number)
		}
		// Sibling linkage is a diagnostic, not fatal.
		if prev := pt.lastLeafPage; prev != nil {
			if p.Number != prev.Next || p.Previous != prev.Number {
				pt.diags.Observe(diag.Diagnostic{
					Severity:   diag.SevWarning,
					Category:   diag.CategoryStructure,
					PageNumber: p.Number,
					Message:    fmt.Sprintf("sibling linkage mismatch: page %d (prev=%d) follows page %d (next=%d)", p.Number, p.Previous, prev.Number, prev.Next),
				})
			}
		}
		// Keep a copy of the linkage fields only: p is released on return.
		pt.lastLeafPage = &page.Page{Number: p.Number, Previous: p.Previous, Next: p.Next}
		return pt.leafEntries(ctx, p.Number, p.FDPObjectID, p.Flags, p.Tags)
	case p.Flags.Has(page.FlagParent):
		if err := requireFlags(p.Flags, format.RequiredFlagsParent, format.SupportedFlagsParent); err != nil {
			return errs.Wrap(errs.Unsupported, err, "parent page %d", p.Number)
		}
		if err := requireZeroSiblings(p); err != nil {
			return errs.Wrap(errs.Unsupported, err, "parent page %d", p.Number)
		}
		if len(p.Tags) == 0 {
			return errs.New(errs.Unsupported, "parent page %d has no header value", p.Number)
		}
		return pt.parentWalk(ctx, p.FDPObjectID, p.Tags[1:])
	default:
		// Neither IS_LEAF nor IS_PARENT: the original walks this case with
		// no trailing else, freeing the child and continuing rather than
		// aborting the traversal (libesedb_page_tree.c's child dispatch).
		pt.diags.Observe(diag.Diagnostic{
			Severity:   diag.SevWarning,
			Category:   diag.CategoryStructure,
			PageNumber: p.Number,
			Message:    fmt.Sprintf("child page is neither leaf nor parent (flags %s), skipped", p.Flags),
		})
		return nil
	}
}

// leafWalk dispatches a page fetched directly by read (a root page that is
// also a leaf) to leafEntries.
func (pt *PageTree) leafWalk(ctx context.Context, p *page.Page, fdpObjectID uint32) error {
	if err := requireFlags(p.Flags, format.RequiredFlagsLeaf, format.SupportedFlagsLeaf); err != nil {
		return errs.Wrap(errs.Unsupported, err, "leaf page %d", p.Number)
	}
	return pt.leafEntries(ctx, p.Number, fdpObjectID, p.Flags, p.Tags)
}

// leafEntries is the leaf-entry dispatcher. all is the full tag array of
// a leaf page (or the remaining entries of an FDP/parent page already
// flagged IS_LEAF); value 0 is the leaf header and is skipped.
func (pt *PageTree) leafEntries(ctx context.Context, pageNumber, fdpObjectID uint32, pageFlags page.Flags, all []page.TaggedValue) error {
	if len(all) == 0 {
		return nil
	}

	for _, t := range all[1:] {
		data := t.Data
		if t.HasKeyType() {
			if len(data) < format.KeyTypeFieldSize+format.KeySizeFieldSize {
				return errs.New(errs.OutOfRange, "leaf value on page %d truncated before key-type/size", pageNumber)
			}
			keySize := int(format.ReadU16(data, format.KeyTypeFieldSize))
			remaining := len(data) - format.KeyTypeFieldSize - format.KeySizeFieldSize
			if keySize > remaining {
				return errs.New(errs.OutOfRange, "leaf value on page %d key size %d exceeds remaining %d", pageNumber, keySize, remaining)
			}
			data = data[format.KeyTypeFieldSize+format.KeySizeFieldSize+keySize:]
		} else {
			if len(data) < format.KeySizeFieldSize {
				return errs.New(errs.OutOfRange, "leaf value on page %d truncated before key size", pageNumber)
			}
			keySize := int(format.ReadU16(data, 0))
			remaining := len(data) - format.KeySizeFieldSize
			if keySize > remaining {
				return errs.New(errs.OutOfRange, "leaf value on page %d key size %d exceeds remaining %d", pageNumber, keySize, remaining)
			}
			data = data[format.KeySizeFieldSize+keySize:]
		}

		if err := pt.leafValue(ctx, pageNumber, fdpObjectID, pageFlags, data); err != nil {
			return err
		}
	}
	return nil
}

// leafValue handles a single leaf entry once its key prefix has been
// stripped: branch on the owning page's flags to either emit a raw
// index/long-value payload to observability, or dispatch to the
// catalog-building or row-reading branch.
func (pt *PageTree) leafValue(ctx context.Context, pageNumber, fdpObjectID uint32, pageFlags page.Flags, data []byte) error {
	switch {
	case pageFlags.Has(page.FlagIndex):
		pt.diags.Observe(diag.Diagnostic{
			Severity:   diag.SevInfo,
			Category:   diag.CategoryCatalog,
			PageNumber: pageNumber,
			Message:    fmt.Sprintf("index entry (%d bytes), index-key decoding out of scope", len(data)),
		})
		return nil
	case pageFlags.Has(page.FlagLongValue):
		pt.diags.Observe(diag.Diagnostic{
			Severity:   diag.SevInfo,
			Category:   diag.CategoryCatalog,
			PageNumber: pageNumber,
			Message:    fmt.Sprintf("long-value payload (%d bytes), segment chaining out of scope", len(data)),
		})
		return nil
	default:
		if pt.mode == BuildCatalog {
			return pt.buildCatalogEntry(fdpObjectID, data)
		}
		return pt.readRow(fdpObjectID, data)
	}
}

// buildCatalogEntry decodes one catalog leaf payload and folds it into
// the table/column/index/long-value registry.
func (pt *PageTree) buildCatalogEntry(_ uint32, data []byte) error {
	cat, err := pt.decoder.DecodeCatalogDefinition(data)
	if err != nil {
		return errs.Wrap(errs.Unsupported, err, "decode catalog definition")
	}

	current := pt.pending
	if cat.Kind != catalog.KindTable {
		if current == nil || current.Table.FDPObjectID != cat.FDPObjectID {
			found, ok := pt.LookupTableByIdentifier(cat.FDPObjectID)
			if !ok {
				return errs.New(errs.GetFailure, "no table definition for FDP object id %d", cat.FDPObjectID)
			}
			current = found
			pt.pending = found
		}
	}

	switch cat.Kind {
	case catalog.KindTable:
		td := &catalog.TableDefinition{Table: cat}
		pt.tables = append(pt.tables, td)
		pt.byFDPObject[cat.FDPObjectID] = td
		pt.pending = td
	case catalog.KindColumn:
		current.Columns = append(current.Columns, cat)
	case catalog.KindIndex:
		current.Indexes = append(current.Indexes, cat)
	case catalog.KindLongValue:
		lv := cat
		current.LongValue = &lv
	default:
		return errs.New(errs.Unsupported, "unsupported catalog kind %s", cat.Kind)
	}
	return nil
}

// readRow decodes one data leaf payload into a row against the bound schema.
func (pt *PageTree) readRow(fdpObjectID uint32, data []byte) error {
	if pt.schema == nil {
		return errs.New(errs.MissingState, "no bound schema for row decode")
	}
	dd, err := pt.decoder.DecodeDataDefinition(pt.schema.Columns, data)
	if err != nil {
		return errs.Wrap(errs.Unsupported, err, "decode data definition")
	}
	dd.TableFDPObjectID = fdpObjectID
	pt.rows = append(pt.rows, dd)
	return nil
}

// spaceTreeWalk validates and scans a space-tree page: an IS_PARENT
// space-tree page recurses the same way childWalk recurses a data-tree
// parent, confined to space-tree leaf accounting.
func (pt *PageTree) spaceTreeWalk(ctx context.Context, p *page.Page, fdpObjectID uint32) error {
	if err := requireFlags(p.Flags, format.RequiredFlagsSpaceTree, format.SupportedFlagsSpaceTree); err != nil {
		return errs.Wrap(errs.Unsupported, err, "space-tree page %d", p.Number)
	}
	if err := requireZeroSiblings(p); err != nil {
		return errs.Wrap(errs.Unsupported, err, "space-tree page %d", p.Number)
	}

	entries := p.Tags
	if len(entries) > 0 {
		hdr := entries[0].Data
		if len(hdr) != 0 {
			if len(hdr) != format.SpaceTreeHeaderSize {
				return errs.New(errs.Unsupported, "space-tree page %d header size %d (want 0 or %d)", p.Number, len(hdr), format.SpaceTreeHeaderSize)
			}
			for _, b := range hdr {
				if b != 0 {
					return errs.New(errs.Unsupported, "space-tree page %d header is non-zero", p.Number)
				}
			}
		}
		entries = entries[1:]
	}

	if !p.Flags.Has(page.FlagLeaf) {
		// IS_PARENT space-tree page: recurse into its children the same
		// way the data tree does, but each child is itself a space-tree
		// page (leaf or parent), never a catalog/data leaf.
		for _, t := range entries {
			data := t.Data
			if t.HasKeyType() {
				if len(data) < format.KeyTypeFieldSize+format.KeySizeFieldSize {
					continue
				}
				keySize := int(format.ReadU16(data, format.KeyTypeFieldSize))
				prefix := format.KeyTypeFieldSize + format.KeySizeFieldSize + keySize
				if prefix > len(data) {
					continue
				}
				data = data[prefix:]
			} else {
				if len(data) < format.KeySizeFieldSize {
					continue
				}
				keySize := int(format.ReadU16(data, 0))
				prefix := format.KeySizeFieldSize + keySize
				if prefix > len(data) {
					continue
				}
				data = data[prefix:]
			}
			if len(data) < format.ChildPageNumberSize {
				continue
			}
			child := format.ReadU32(data, len(data)-format.ChildPageNumberSize)
			if int(child) >= pt.bound {
				continue
			}
			if err := pt.fetchAndWalkSpaceTree(ctx, child, fdpObjectID); err != nil {
				return err
			}
		}
		return nil
	}

	var unaccountedTotal uint32
	for _, t := range entries {
		if t.Flags&format.TagFlagReservedMask != 0 {
			return errs.New(errs.Unsupported, "space-tree leaf entry on page %d carries reserved flag bits", p.Number)
		}
		if len(t.Data) != format.SpaceTreeLeafFixedSize {
			return errs.New(errs.Unsupported, "space-tree leaf entry on page %d has size %d (want %d)", p.Number, len(t.Data), format.SpaceTreeLeafFixedSize)
		}
		keySize := int(format.ReadU16(t.Data, format.SpaceTreeLeafKeySizeOffset))
		if keySize != format.SpaceTreeLeafKeySize {
			return errs.New(errs.Unsupported, "space-tree leaf entry on page %d key size %d (want %d)", p.Number, keySize, format.SpaceTreeLeafKeySize)
		}
		if t.Flags&format.SpaceTreeLeafFlagUnaccounted == 0 {
			unaccountedTotal += format.ReadU32(t.Data, format.SpaceTreeLeafAmountPagesOffset)
		}
	}
	if unaccountedTotal > 0 {
		pt.diags.Observe(diag.Diagnostic{
			Severity:   diag.SevInfo,
			Category:   diag.CategoryStructure,
			PageNumber: p.Number,
			Message:    fmt.Sprintf("space-tree leaf accounts for %d pages", unaccountedTotal),
		})
	}
	return nil
}

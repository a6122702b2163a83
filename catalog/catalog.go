// Package catalog decodes the table/column/index/long-value definition
// records a page tree's catalog table carries, and the plain data rows of
// any other table. It has no knowledge of page layout or traversal order;
// pagetree.PageTree hands it raw tagged-value payloads and stitches the
// results into the definition registry.
package catalog

import "github.com/mmcdole/esedb/internal/format"

// Kind discriminates what a catalog Definition describes.
type Kind = format.CatalogKind

const (
	KindTable     = format.CatalogKindTable
	KindColumn    = format.CatalogKindColumn
	KindIndex     = format.CatalogKindIndex
	KindLongValue = format.CatalogKindLongValue
)

// Definition is one decoded catalog record.
type Definition struct {
	Kind        Kind
	FDPObjectID uint32
	Identifier  string
	Payload     []byte
}

// TableDefinition groups a table's catalog record with its columns,
// indexes, and optional long-value record, as assembled by the traversal
// engine while walking the catalog's leaf entries.
type TableDefinition struct {
	Table     Definition
	Columns   []Definition
	Indexes   []Definition
	LongValue *Definition
}

// DataDefinition is an opaque decoded row belonging to some table, keyed by
// that table's FDP object id. Column-typed field access is deferred to a
// higher layer this repo does not implement.
type DataDefinition struct {
	TableFDPObjectID uint32
	Payload          []byte
}

// Decoder turns raw leaf payload bytes into catalog and data records. The
// traversal engine is built against this interface, not DefaultDecoder
// directly, so callers can substitute their own decoding (e.g. to interpret
// column types otherwise left opaque) without touching pagetree.
type Decoder interface {
	// DecodeCatalogDefinition decodes a single catalog-table record.
	DecodeCatalogDefinition(data []byte) (Definition, error)

	// DecodeDataDefinition decodes a plain-table row. columns is the
	// owning table's already-decoded column definitions, supplied for
	// decoders that want to interpret the payload against them;
	// DefaultDecoder ignores it and returns the payload opaquely. The
	// caller (pagetree) fills in DataDefinition.TableFDPObjectID, since
	// the decoder itself has no notion of which table it's being called
	// for.
	DecodeDataDefinition(columns []Definition, data []byte) (DataDefinition, error)
}

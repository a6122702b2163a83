package catalog

import (
	"github.com/mmcdole/esedb/errs"
	"github.com/mmcdole/esedb/internal/format"
)

// DefaultDecoder is the concrete Decoder the module ships so it is runnable
// end-to-end without a caller supplying their own. It decodes the fixed
// catalog-record header (kind, owning FDP object id, identifier) and
// leaves everything else as an opaque payload slice.
type DefaultDecoder struct{}

var _ Decoder = DefaultDecoder{}

// DecodeCatalogDefinition implements Decoder.
func (DefaultDecoder) DecodeCatalogDefinition(data []byte) (Definition, error) {
	if !format.Has(data, 0, format.CatalogRecordMinSize) {
		return Definition{}, errs.New(errs.Unsupported, "catalog record truncated (%d bytes)", len(data))
	}

	kind := Kind(data[format.CatalogRecordKindOffset])
	switch kind {
	case KindTable, KindColumn, KindIndex, KindLongValue:
	default:
		return Definition{}, errs.New(errs.Unsupported, "unrecognised catalog record kind %d", kind)
	}

	fdpObjectID := format.ReadU32(data, format.CatalogRecordFDPObjectIDOffset)
	hdr := format.ReadU16(data, format.CatalogRecordIdentifierHdrOffset)
	nameLen := int(hdr & format.CatalogIdentifierLengthMask)

	nameBytes, ok := format.Slice(data, format.CatalogRecordIdentifierOffset, nameLen)
	if !ok {
		return Definition{}, errs.New(errs.Unsupported, "catalog record identifier out of bounds")
	}
	name, err := decodeIdentifier(hdr, nameBytes)
	if err != nil {
		return Definition{}, errs.Wrap(errs.Unsupported, err, "decode catalog identifier")
	}

	payloadStart := format.CatalogRecordIdentifierOffset + nameLen
	var payload []byte
	if payloadStart < len(data) {
		payload = data[payloadStart:]
	}

	return Definition{
		Kind:        kind,
		FDPObjectID: fdpObjectID,
		Identifier:  name,
		Payload:     payload,
	}, nil
}

// DecodeDataDefinition implements Decoder. Column-typed field access is
// out of scope, so the payload is returned unparsed; columns is accepted
// for decoders that choose to use it but is otherwise unused here.
func (DefaultDecoder) DecodeDataDefinition(columns []Definition, data []byte) (DataDefinition, error) {
	return DataDefinition{Payload: data}, nil
}

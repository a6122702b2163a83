package catalog

import (
	"testing"
	"unicode/utf16"

	"github.com/mmcdole/esedb/internal/format"
)

func encodeANSIRecord(kind Kind, fdpObjectID uint32, name string) []byte {
	buf := make([]byte, format.CatalogRecordMinSize+len(name))
	buf[format.CatalogRecordKindOffset] = byte(kind)
	format.PutU32(buf, format.CatalogRecordFDPObjectIDOffset, fdpObjectID)
	format.PutU16(buf, format.CatalogRecordIdentifierHdrOffset, uint16(len(name)))
	copy(buf[format.CatalogRecordIdentifierOffset:], name)
	return buf
}

func encodeUnicodeRecord(kind Kind, fdpObjectID uint32, name string) []byte {
	u16 := utf16.Encode([]rune(name))
	nameBytes := make([]byte, len(u16)*2)
	for i, u := range u16 {
		format.PutU16(nameBytes, i*2, u)
	}
	buf := make([]byte, format.CatalogRecordMinSize+len(nameBytes))
	buf[format.CatalogRecordKindOffset] = byte(kind)
	format.PutU32(buf, format.CatalogRecordFDPObjectIDOffset, fdpObjectID)
	hdr := uint16(len(nameBytes)) | format.CatalogIdentifierUnicodeFlag
	format.PutU16(buf, format.CatalogRecordIdentifierHdrOffset, hdr)
	copy(buf[format.CatalogRecordIdentifierOffset:], nameBytes)
	return buf
}

func TestDecodeCatalogDefinitionANSI(t *testing.T) {
	data := encodeANSIRecord(KindTable, 2, "Orders")
	def, err := DefaultDecoder{}.DecodeCatalogDefinition(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if def.Kind != KindTable || def.FDPObjectID != 2 || def.Identifier != "Orders" {
		t.Fatalf("unexpected definition %+v", def)
	}
}

func TestDecodeCatalogDefinitionUnicode(t *testing.T) {
	data := encodeUnicodeRecord(KindColumn, 5, "ColumnName")
	def, err := DefaultDecoder{}.DecodeCatalogDefinition(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if def.Identifier != "ColumnName" {
		t.Fatalf("identifier = %q, want ColumnName", def.Identifier)
	}
}

func TestDecodeCatalogDefinitionTruncated(t *testing.T) {
	if _, err := DefaultDecoder{}.DecodeCatalogDefinition(make([]byte, 2)); err == nil {
		t.Fatal("expected an error decoding a truncated catalog record")
	}
}

func TestDecodeCatalogDefinitionUnknownKind(t *testing.T) {
	data := encodeANSIRecord(Kind(0xFE), 2, "x")
	if _, err := DefaultDecoder{}.DecodeCatalogDefinition(data); err == nil {
		t.Fatal("expected an error decoding an unrecognised catalog kind")
	}
}

func TestDecodeCatalogDefinitionPayload(t *testing.T) {
	data := encodeANSIRecord(KindColumn, 2, "Qty")
	data = append(data, 0x01, 0x02, 0x03)
	def, err := DefaultDecoder{}.DecodeCatalogDefinition(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(def.Payload) != 3 {
		t.Fatalf("payload = %v, want 3 trailing bytes", def.Payload)
	}
}

func TestDecodeDataDefinitionOpaque(t *testing.T) {
	payload := []byte{0xAA, 0xBB}
	dd, err := DefaultDecoder{}.DecodeDataDefinition(nil, payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(dd.Payload) != 2 {
		t.Fatalf("unexpected payload %v", dd.Payload)
	}
}

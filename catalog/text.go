package catalog

import (
	"fmt"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"

	"github.com/mmcdole/esedb/internal/format"
)

// decodeANSI decodes a Windows-1252 byte string, the codepage ESE's ANSI
// catalog identifiers and JET_coltypText columns without an explicit
// Unicode flag use. Pure-ASCII input (the overwhelming common case) is
// returned as-is without invoking the decoder.
func decodeANSI(data []byte) (string, error) {
	for _, b := range data {
		if b > 0x7F {
			decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
			if err != nil {
				return "", fmt.Errorf("catalog: windows-1252 decode: %w", err)
			}
			return string(decoded), nil
		}
	}
	return string(data), nil
}

// decodeUTF16LE decodes a UTF-16LE byte string, the encoding
// JET_coltypLongText/Unicode catalog identifiers use.
func decodeUTF16LE(data []byte) (string, error) {
	if len(data)%2 != 0 {
		return "", fmt.Errorf("catalog: UTF-16LE identifier has odd length %d", len(data))
	}
	u16 := make([]uint16, len(data)/2)
	for i := range u16 {
		u16[i] = format.ReadU16(data, i*2)
	}
	return string(utf16.Decode(u16)), nil
}

// decodeIdentifier decodes a catalog record's identifier field per the
// encoding flag packed into its header (internal/format consts.go).
func decodeIdentifier(header uint16, data []byte) (string, error) {
	if header&format.CatalogIdentifierUnicodeFlag != 0 {
		return decodeUTF16LE(data)
	}
	return decodeANSI(data)
}

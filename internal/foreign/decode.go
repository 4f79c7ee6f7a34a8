package foreign

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// DecodeLegacyText converts a Windows-1252-encoded byte buffer to UTF-8.
// Such buffers show up as the raw payload of a DATA object when a binding
// hands the runtime a pointer to text it read from a legacy source rather
// than a string the runtime itself allocated.
func DecodeLegacyText(data []byte) (string, error) {
	if isASCII(data) {
		return string(data), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode windows-1252 payload: %w", err)
	}
	return string(decoded), nil
}

func isASCII(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

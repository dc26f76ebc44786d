package ntfs

import "unicode/utf16"

// invalidName is substituted for any UTF-16LE name that fails to decode,
// per the contract that malformed names never fail a parse.
const invalidName = "INVALID_NAME"

// decodeUTF16LE decodes a UTF-16LE byte sequence to a string. A malformed
// sequence (unpaired surrogate, odd length) yields invalidName instead of
// an error.
func decodeUTF16LE(b []byte) string {
	if len(b)%2 != 0 {
		return invalidName
	}

	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = uint16(b[i*2]) | uint16(b[i*2+1])<<8
	}

	for _, u := range units {
		if u >= 0xD800 && u <= 0xDFFF {
			// Lone surrogate halves are only valid when properly paired;
			// utf16.Decode silently substitutes U+FFFD for those it
			// can't pair, which would hide corruption. Verify pairing
			// ourselves before trusting the decode.
			if !hasValidSurrogatePairing(units) {
				return invalidName
			}
			break
		}
	}

	return string(utf16.Decode(units))
}

func hasValidSurrogatePairing(units []uint16) bool {
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u >= 0xD800 && u <= 0xDBFF: // high surrogate
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] > 0xDFFF {
				return false
			}
			i++
		case u >= 0xDC00 && u <= 0xDFFF: // unpaired low surrogate
			return false
		}
	}
	return true
}

// extensionOf returns the substring of name after the last '.', or "" if
// name has no '.'.
func extensionOf(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[i+1:]
		}
	}
	return ""
}

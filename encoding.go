package oaepbox

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// TextEncoding selects how message text maps to plaintext bytes.
type TextEncoding int

const (
	// UTF8 encodes text as UTF-8. Invalid UTF-8 is rejected in both directions.
	UTF8 TextEncoding = iota
	// Latin1 maps each character to one byte (ISO-8859-1). This matches the
	// charCodeAt/fromCharCode conversion used by older JavaScript callers for
	// characters up to U+00FF; other characters are rejected.
	Latin1
)

// String returns the canonical name of the encoding.
func (e TextEncoding) String() string {
	switch e {
	case UTF8:
		return "utf8"
	case Latin1:
		return "latin1"
	default:
		return fmt.Sprintf("TextEncoding(%d)", int(e))
	}
}

// ParseTextEncoding parses an encoding name as accepted by String and a few
// common aliases.
func ParseTextEncoding(name string) (TextEncoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf8", "utf-8":
		return UTF8, nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return Latin1, nil
	default:
		return 0, fmt.Errorf("unknown text encoding %q", name)
	}
}

func (e TextEncoding) encode(text string) ([]byte, error) {
	switch e {
	case UTF8:
		out, _, err := transform.Bytes(encoding.UTF8Validator, []byte(text))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidText, err)
		}
		return out, nil
	case Latin1:
		out, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("%w: latin1: %v", ErrInvalidText, err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unknown encoding %s", ErrInvalidText, e)
	}
}

func (e TextEncoding) decode(data []byte) (string, error) {
	switch e {
	case UTF8:
		out, _, err := transform.Bytes(encoding.UTF8Validator, data)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidText, err)
		}
		return string(out), nil
	case Latin1:
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("%w: latin1: %v", ErrInvalidText, err)
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("%w: unknown encoding %s", ErrInvalidText, e)
	}
}

package oaepbox

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Ciphertext is the raw RSA-OAEP output. Its JSON form is an array of byte
// values, e.g. [12,200,7,...].
type Ciphertext []byte

// ParseCiphertext decodes the JSON form of a ciphertext.
func ParseCiphertext(s string) (Ciphertext, error) {
	var c Ciphertext
	if err := json.Unmarshal([]byte(s), &c); err != nil {
		if errors.Is(err, ErrMalformedCiphertext) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedCiphertext, err)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: null", ErrMalformedCiphertext)
	}
	return c, nil
}

// String returns the JSON form of the ciphertext.
func (c Ciphertext) String() string {
	out, _ := c.MarshalJSON()
	return string(out)
}

// MarshalJSON implements json.Marshaler. Unlike a plain []byte, which
// encoding/json writes as base64, the bytes are written as numbers.
func (c Ciphertext) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(c)*4 + 2)
	buf.WriteByte('[')
	for i, b := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Itoa(int(b)))
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler. Besides the array form it
// accepts the object form {"0":12,"1":200,...} that JSON.stringify produces
// for a Uint8Array.
func (c *Ciphertext) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		*c = nil
		return nil
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: empty input", ErrMalformedCiphertext)
	}

	switch data[0] {
	case '[':
		var values []int
		if err := json.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedCiphertext, err)
		}
		out := make(Ciphertext, len(values))
		for i, v := range values {
			if v < 0 || v > 255 {
				return fmt.Errorf("%w: value %d at index %d is not a byte", ErrMalformedCiphertext, v, i)
			}
			out[i] = byte(v)
		}
		*c = out
		return nil

	case '{':
		var values map[string]int
		if err := json.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedCiphertext, err)
		}
		out := make(Ciphertext, len(values))
		for i := range out {
			v, ok := values[strconv.Itoa(i)]
			if !ok {
				return fmt.Errorf("%w: missing index %d", ErrMalformedCiphertext, i)
			}
			if v < 0 || v > 255 {
				return fmt.Errorf("%w: value %d at index %d is not a byte", ErrMalformedCiphertext, v, i)
			}
			out[i] = byte(v)
		}
		*c = out
		return nil

	default:
		return fmt.Errorf("%w: expected an array of bytes", ErrMalformedCiphertext)
	}
}

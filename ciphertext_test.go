package oaepbox

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestCiphertext_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   Ciphertext
		want string
	}{
		{"nil", nil, "[]"},
		{"empty", Ciphertext{}, "[]"},
		{"bytes", Ciphertext{0, 1, 127, 128, 255}, "[0,1,127,128,255]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("json.Marshal() error = %v", err)
			}
			if string(out) != tt.want {
				t.Errorf("json.Marshal() = %s, want %s", out, tt.want)
			}
			if tt.in.String() != tt.want {
				t.Errorf("String() = %s, want %s", tt.in.String(), tt.want)
			}
		})
	}
}

func TestParseCiphertext(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Ciphertext
	}{
		{"array", "[0,1,255]", Ciphertext{0, 1, 255}},
		{"array with spaces", " [ 12 , 200 ] ", Ciphertext{12, 200}},
		{"empty array", "[]", Ciphertext{}},
		{"typed array object", `{"0":12,"1":200,"2":7}`, Ciphertext{12, 200, 7}},
		{"typed array object unordered", `{"2":7,"0":12,"1":200}`, Ciphertext{12, 200, 7}},
		{"empty object", "{}", Ciphertext{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCiphertext(tt.in)
			if err != nil {
				t.Fatalf("ParseCiphertext() error = %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("ParseCiphertext() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseCiphertext_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"null",
		"   ",
		"not json",
		`"AAEC"`,
		"42",
		"[256]",
		"[-1]",
		"[1.5]",
		`["1"]`,
		`{"0":1,"2":3}`,
		`{"a":1}`,
		`{"0":300}`,
		"[1,2",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := ParseCiphertext(in)
			if !errors.Is(err, ErrMalformedCiphertext) {
				t.Errorf("ParseCiphertext(%q) expected ErrMalformedCiphertext, got %v", in, err)
			}
		})
	}
}

func TestCiphertext_InStruct(t *testing.T) {
	type envelope struct {
		Data Ciphertext `json:"data"`
	}

	out, err := json.Marshal(envelope{Data: Ciphertext{1, 2}})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"data":[1,2]}` {
		t.Errorf("json.Marshal() = %s", out)
	}

	var env envelope
	if err := json.Unmarshal([]byte(`{"data":{"0":9}}`), &env); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if !bytes.Equal(env.Data, []byte{9}) {
		t.Errorf("Data = %v, want [9]", env.Data)
	}
}

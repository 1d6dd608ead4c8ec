package naming

import (
	"errors"
	"testing"
)

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"TestU8", "test_u8"},
		{"TestVec", "test_vec"},
		{"OrderID", "order_id"},
		{"customerName", "customer_name"},
		{"XMLParser", "xml_parser"},
		{"getHTTPResponse", "get_http_response"},
		{"already_snake", "already_snake"},
		{"Named", "named"},
		{"ID", "id"},
		{"A", "a"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := SnakeCase(tt.input)
			if result != tt.expected {
				t.Errorf("SnakeCase(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("flow_infoV6-Addr")
	expected := []string{"flow", "info", "V6", "Addr"}

	if len(tokens) != len(expected) {
		t.Fatalf("Tokenize = %v, want %v", tokens, expected)
	}

	for i := range expected {
		if tokens[i] != expected[i] {
			t.Fatalf("Tokenize = %v, want %v", tokens, expected)
		}
	}
}

func TestIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		invalid  bool
	}{
		{input: "name", expected: "name"},
		{input: "type", expected: "r#type"},
		{input: "in", expected: "r#in"},
		{input: "match", expected: "r#match"},
		{input: "yield", expected: "r#yield"},
		{input: "r#ref", expected: "r#ref"},
		{input: "größe", expected: "größe"},
		{input: "_private", expected: "_private"},
		{input: "self", invalid: true},
		{input: "Self", invalid: true},
		{input: "super", invalid: true},
		{input: "crate", invalid: true},
		{input: "_", invalid: true},
		{input: "", invalid: true},
		{input: "9lives", invalid: true},
		{input: "two words", invalid: true},
		{input: "r#name", invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := Ident(tt.input)
			if tt.invalid {
				if !errors.Is(err, ErrInvalidIdent) {
					t.Errorf("Ident(%q) error = %v, want ErrInvalidIdent", tt.input, err)
				}

				return
			}

			if err != nil || result != tt.expected {
				t.Errorf("Ident(%q) = %q, %v, want %q", tt.input, result, err, tt.expected)
			}
		})
	}
}

func TestFieldIdent(t *testing.T) {
	cases := map[[2]string]string{
		{"Type", ""}:      "r#type",
		{"LoopCount", ""}: "loop_count",
		{"Kind", "use"}:   "r#use",
		{"Kind", "kind2"}: "kind2",
	}

	for in, want := range cases {
		got, err := FieldIdent(in[0], in[1])
		if err != nil || got != want {
			t.Errorf("FieldIdent(%q, %q) = %q, %v, want %q", in[0], in[1], got, err, want)
		}
	}

	if _, err := FieldIdent("Self", ""); !errors.Is(err, ErrInvalidIdent) {
		t.Errorf("FieldIdent(Self) error = %v, want ErrInvalidIdent", err)
	}
}

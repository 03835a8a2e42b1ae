package parse

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/CallanHP/oci-gen-ai-tool-decorators/tool"
)

// TestDecodeArguments_Valid decodes a well-formed argument object and keeps
// numbers as json.Number so later coercion decides their final type.
func TestDecodeArguments_Valid(t *testing.T) {
	args, err := DecodeArguments(`{"a": 2, "name": "test", "flag": true}`, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if args["a"] != json.Number("2") {
		t.Errorf("a: got %#v, want json.Number(\"2\")", args["a"])
	}
	if args["name"] != "test" {
		t.Errorf("name: got %#v, want \"test\"", args["name"])
	}
	if args["flag"] != true {
		t.Errorf("flag: got %#v, want true", args["flag"])
	}
}

// TestDecodeArguments_Empty treats an empty or blank string as no arguments.
func TestDecodeArguments_Empty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n"} {
		args, err := DecodeArguments(raw, false)
		if err != nil {
			t.Fatalf("raw %q: unexpected error: %v", raw, err)
		}
		if len(args) != 0 {
			t.Errorf("raw %q: expected empty map, got %v", raw, args)
		}
	}
}

// TestDecodeArguments_Malformed verifies the failure without repair and the
// recovery with repair for the kinds of JSON models actually emit.
func TestDecodeArguments_Malformed(t *testing.T) {
	t.Run("no repair → error", func(t *testing.T) {
		if _, err := DecodeArguments(`{'a': 2}`, false); err == nil {
			t.Fatal("expected an error for single-quoted keys")
		}
	})

	t.Run("repair recovers single quotes", func(t *testing.T) {
		args, err := DecodeArguments(`{'a': 2, 'name': 'test'}`, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if args["name"] != "test" {
			t.Errorf("name: got %#v, want \"test\"", args["name"])
		}
	})

	t.Run("repair recovers trailing comma", func(t *testing.T) {
		args, err := DecodeArguments(`{"a": 2,}`, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if args["a"] != json.Number("2") {
			t.Errorf("a: got %#v, want json.Number(\"2\")", args["a"])
		}
	})

	t.Run("non-object stays an error even with repair", func(t *testing.T) {
		if _, err := DecodeArguments(`[1, 2, 3]`, true); err == nil {
			t.Fatal("expected an error for a JSON array payload")
		}
	})
}

// TestCoerce_Scalars tables the per-kind tightening of loose wire values.
func TestCoerce_Scalars(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		kind    tool.Kind
		want    any
		wantErr bool
	}{
		{"string passthrough", "hello", tool.KindString, "hello", false},
		{"number to string", json.Number("7"), tool.KindString, "7", false},
		{"float64 to string", 2.5, tool.KindString, "2.5", false},
		{"bool to string", true, tool.KindString, "true", false},
		{"list to string fails", []any{1}, tool.KindString, nil, true},

		{"number to integer", json.Number("42"), tool.KindInteger, int64(42), false},
		{"integral float to integer", 3.0, tool.KindInteger, int64(3), false},
		{"fractional float to integer fails", 3.5, tool.KindInteger, nil, true},
		{"numeric string to integer", "42", tool.KindInteger, int64(42), false},
		{"integral float string to integer", "42.0", tool.KindInteger, int64(42), false},
		{"word to integer fails", "many", tool.KindInteger, nil, true},

		{"number to float", json.Number("2.5"), tool.KindFloat, 2.5, false},
		{"float64 passthrough", 2.5, tool.KindFloat, 2.5, false},
		{"int to float", 3, tool.KindFloat, 3.0, false},
		{"numeric string to float", "2.5", tool.KindFloat, 2.5, false},
		{"word to float fails", "pi", tool.KindFloat, nil, true},

		{"bool passthrough", true, tool.KindBoolean, true, false},
		{"string to bool", "true", tool.KindBoolean, true, false},
		{"string false to bool", "false", tool.KindBoolean, false, false},
		{"number to bool fails", json.Number("1"), tool.KindBoolean, nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Coerce(tc.value, tc.kind, 0)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %#v, want %#v", got, tc.want)
			}
		})
	}
}

// TestCoerce_Lists covers element-wise coercion, double-encoded lists, and
// item failures naming the offending index.
func TestCoerce_Lists(t *testing.T) {
	t.Run("element-wise coercion", func(t *testing.T) {
		got, err := Coerce([]any{json.Number("1"), "2", 3.0}, tool.KindList, tool.KindInteger)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []any{int64(1), int64(2), int64(3)}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %#v, want %#v", got, want)
		}
	})

	t.Run("double-encoded list string", func(t *testing.T) {
		got, err := Coerce(`["a", "b"]`, tool.KindList, tool.KindString)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []any{"a", "b"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %#v, want %#v", got, want)
		}
	})

	t.Run("item failure names the index", func(t *testing.T) {
		_, err := Coerce([]any{json.Number("1"), "not a number"}, tool.KindList, tool.KindInteger)
		if err == nil {
			t.Fatal("expected an error")
		}
		if !strings.Contains(err.Error(), "item 1") {
			t.Errorf("error %q does not name the failing item", err)
		}
	})

	t.Run("scalar is not a list", func(t *testing.T) {
		if _, err := Coerce(json.Number("5"), tool.KindList, tool.KindInteger); err == nil {
			t.Fatal("expected an error")
		}
	})
}

// TestDescribeValue bounds the rendering of large wire values.
func TestDescribeValue(t *testing.T) {
	if got := DescribeValue(nil); got != "null" {
		t.Errorf("nil: got %q", got)
	}
	if got := DescribeValue("abc"); got != `string "abc"` {
		t.Errorf("string: got %q", got)
	}
	long := strings.Repeat("x", 500)
	if got := DescribeValue(long); len(got) > 120 {
		t.Errorf("long value not truncated: %d chars", len(got))
	}
}

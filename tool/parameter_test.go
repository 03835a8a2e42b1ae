package tool

import (
	"errors"
	"strings"
	"testing"
)

// TestKind_String covers the closed kind set and the invalid zero value.
func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindString, "string"},
		{KindInteger, "integer"},
		{KindFloat, "float"},
		{KindBoolean, "boolean"},
		{KindList, "list"},
		{Kind(0), "invalid"},
		{Kind(42), "invalid"},
	}

	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String(): got %q, want %q", tc.kind, got, tc.want)
		}
	}
}

// TestParameter_Validate exercises the registry invariants: names are
// non-empty, kinds come from the closed set, and ItemType is present if and
// only if the parameter is a list.
func TestParameter_Validate(t *testing.T) {
	tests := []struct {
		name    string
		param   Parameter
		wantErr string // empty means valid
	}{
		{"valid string", Parameter{Name: "q", Type: KindString}, ""},
		{"valid list of integers", Parameter{Name: "ids", Type: KindList, ItemType: KindInteger}, ""},
		{"empty name", Parameter{Type: KindString}, "name cannot be empty"},
		{"unknown kind", Parameter{Name: "q", Type: Kind(99)}, "unknown parameter type"},
		{"list without item type", Parameter{Name: "ids", Type: KindList}, "requires an item type"},
		{"list of lists", Parameter{Name: "grid", Type: KindList, ItemType: KindList}, "invalid list item type"},
		{"item type on scalar", Parameter{Name: "q", Type: KindString, ItemType: KindString}, "only valid on list parameters"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.param.validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

// TestAddParameter_ListWithoutItemType pins the builder-time failure the
// dispatchers rely on: a list parameter must always carry its element kind.
func TestAddParameter_ListWithoutItemType(t *testing.T) {
	tl, err := New(addNumbers, "Adds two numbers.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = tl.AddParameter(Parameter{Name: "values", Type: KindList, Required: true})
	var cerr *ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if cerr.Parameter != "values" {
		t.Errorf("Parameter: got %q, want %q", cerr.Parameter, "values")
	}
	if cerr.Tool != "addNumbers" {
		t.Errorf("Tool: got %q, want %q", cerr.Tool, "addNumbers")
	}
}

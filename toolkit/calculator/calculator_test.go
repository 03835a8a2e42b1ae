package calculator

import (
	"context"
	"math"
	"testing"

	"github.com/CallanHP/oci-gen-ai-tool-decorators/formats/cohere"
	"github.com/CallanHP/oci-gen-ai-tool-decorators/formats/generic"
)

// TestCalculator_Operations drives every operation through Invoke.
func TestCalculator_Operations(t *testing.T) {
	calc, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		op       string
		a, b     float64
		expected float64
	}{
		{"add keyword", "add", 3, 4, 7},
		{"plus symbol", "+", 3, 4, 7},
		{"sub keyword", "sub", 10, 3, 7},
		{"mul keyword", "mul", 3, 4, 12},
		{"div keyword", "div", 10, 4, 2.5},
		{"negative operands", "add", -1, -2, -3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := calc.Invoke(context.Background(), map[string]any{"a": tc.a, "b": tc.b, "op": tc.op})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tc.expected {
				t.Errorf("got %v, want %v", out, tc.expected)
			}
		})
	}

	t.Run("division by zero follows IEEE 754", func(t *testing.T) {
		out, err := calc.Invoke(context.Background(), map[string]any{"a": 1.0, "b": 0.0, "op": "div"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !math.IsInf(out.(float64), 1) {
			t.Errorf("got %v, want +Inf", out)
		}
	})

	t.Run("unknown operation is an error", func(t *testing.T) {
		if _, err := calc.Invoke(context.Background(), map[string]any{"a": 1.0, "b": 2.0, "op": "pow"}); err == nil {
			t.Fatal("expected an error")
		}
	})
}

// TestCalculator_CohereRoundTrip dispatches a Cohere tool call end to end,
// with string operands exercising the coercion step.
func TestCalculator_CohereRoundTrip(t *testing.T) {
	calc, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	call := cohere.NewToolCall("calculator", map[string]any{"a": "6", "b": 7.0, "op": "mul"})
	result, err := cohere.Dispatch(context.Background(), calc, call)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outputs[0]["result"] != 42.0 {
		t.Errorf("result: got %#v, want 42.0", result.Outputs[0]["result"])
	}
}

// TestCalculator_GenericRoundTrip dispatches a generic function call end to
// end and checks the labeled text content.
func TestCalculator_GenericRoundTrip(t *testing.T) {
	calc, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	call, err := generic.NewFunctionCall("calculator", map[string]any{"a": 10, "b": 4, "op": "sub"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg, err := generic.Dispatch(context.Background(), calc, call)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Content[0].Text != `{"result":6}` {
		t.Errorf("text: got %q, want %q", msg.Content[0].Text, `{"result":6}`)
	}
}

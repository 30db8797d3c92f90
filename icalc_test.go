package icalc

import "testing"

func TestEvaluate(t *testing.T) {
	result, err := Evaluate("! x &L= &L{1,2}; (x₀ + x₁)")
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if got := Print(result); got != "3" {
		t.Errorf("Evaluate result = %q, want 3", got)
	}
}

func TestEvaluateParseError(t *testing.T) {
	if _, err := Evaluate("(1 +"); err == nil {
		t.Fatal("expected a parse error")
	}
}

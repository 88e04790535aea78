package objects

import (
	"testing"
)

// assertHeader verifies commit header fields match expected name/value pairs in order.
func assertHeader(t *testing.T, commit *Commit, expected [][2]string) {
	t.Helper()

	if len(commit.Header) != len(expected) {
		t.Fatalf("Expected %d header fields, got %d: %v", len(expected), len(commit.Header), commit.Header)
	}

	for i, want := range expected {
		field := commit.Header[i]
		if string(field.Name) != want[0] {
			t.Errorf("Header %d name mismatch: expected [%s], got [%s]", i, want[0], field.Name)
		}
		if string(field.Value) != want[1] {
			t.Errorf("Header %d value mismatch: expected [%q], got [%q]", i, want[1], field.Value)
		}
	}
}

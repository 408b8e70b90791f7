package model

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"depth":     KindDepth,
		"Swaps":     KindSwaps,
		" earning ": KindEarnings,
		"rune-pool": KindRunePool,
	}
	for in, want := range cases {
		got, err := ParseKind(in)
		if err != nil {
			t.Fatalf("ParseKind(%q): unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseKind(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := ParseKind("volume"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestParseKindsDefaultsAndDedup(t *testing.T) {
	got, err := ParseKinds(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, AllKinds) {
		t.Fatalf("kinds mismatch: %v != %v", got, AllKinds)
	}

	got, err = ParseKinds([]string{"swaps", "swap", "depth"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Kind{KindSwaps, KindDepth}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("kinds mismatch: %v != %v", got, want)
	}
}

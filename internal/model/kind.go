package model

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies one of the four interval record kinds.
type Kind string

const (
	KindDepth    Kind = "depth"
	KindSwaps    Kind = "swaps"
	KindEarnings Kind = "earnings"
	KindRunePool Kind = "runepool"
)

// ErrUnknownKind is returned by ParseKind for unsupported names.
var ErrUnknownKind = errors.New("unknown interval kind")

// AllKinds lists kinds in ingestion order.
var AllKinds = []Kind{KindDepth, KindSwaps, KindEarnings, KindRunePool}

// ParseKind maps a user supplied name to a Kind. Matching is case-insensitive.
func ParseKind(input string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "depth", "depths":
		return KindDepth, nil
	case "swaps", "swap":
		return KindSwaps, nil
	case "earnings", "earning":
		return KindEarnings, nil
	case "runepool", "rune_pool", "rune-pool":
		return KindRunePool, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, input)
	}
}

// ParseKinds parses a list of kind names. An empty list selects all kinds.
func ParseKinds(inputs []string) ([]Kind, error) {
	if len(inputs) == 0 {
		return append([]Kind(nil), AllKinds...), nil
	}
	kinds := make([]Kind, 0, len(inputs))
	seen := make(map[Kind]struct{}, len(inputs))
	for _, in := range inputs {
		k, err := ParseKind(in)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func (k Kind) String() string {
	return string(k)
}

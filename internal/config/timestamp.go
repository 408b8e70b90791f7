package config

import (
	"strconv"
	"strings"
	"time"
)

// now is replaced in tests.
var now = time.Now

// ParseTimestamp parses a timestamp value: unix seconds, RFC3339, or "now".
// An empty value yields 0.
func ParseTimestamp(input string) (int64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}
	if strings.EqualFold(input, "now") {
		return now().Unix(), nil
	}

	if isNumeric(input) {
		return strconv.ParseInt(input, 10, 64)
	}

	tm, err := time.Parse(time.RFC3339, input)
	if err != nil {
		return 0, err
	}
	return tm.Unix(), nil
}

func isNumeric(input string) bool {
	for _, r := range input {
		if r < '0' || r > '9' {
			return false
		}
	}
	return input != ""
}

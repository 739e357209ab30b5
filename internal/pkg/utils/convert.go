// Package utils contains small helpers shared across handlers and commands.
package utils

import "strconv"

// ConvertToInt parses s as a base-10 integer, returning 0 when parsing fails.
func ConvertToInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// ConvertToInt64 parses s as a base-10 64-bit integer, returning 0 when parsing fails.
func ConvertToInt64(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

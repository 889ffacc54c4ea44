package utils

import "strings"

// TrimToNil trims s and maps nil or blank input to nil.
func TrimToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

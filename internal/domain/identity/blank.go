package identity

import "strings"

// NormalizeBlank maps nil, empty and whitespace-only values to nil, so that "" is never
// stored as something different from "not provided". Other values come back trimmed.
func NormalizeBlank(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

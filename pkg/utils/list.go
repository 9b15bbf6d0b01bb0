package utils

import "strings"

// SplitList splits a comma separated form value, trimming every entry and
// dropping the empty ones. The result is never nil.
func SplitList(value string) []string {
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

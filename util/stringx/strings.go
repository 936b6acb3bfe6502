package stringx

import "strings"

// ContainsAny reports whether any of subs is within s.
//
// Unlike strings.ContainsAny, which matches single runes,
// every item of subs is matched as a whole substring.
func ContainsAny(s string, subs ...string) bool {
	for i := range subs {
		if strings.Contains(s, subs[i]) {
			return true
		}
	}
	return false
}

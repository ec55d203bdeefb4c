package str

import "strings"

// UpperASCII uppercases ASCII letters and leaves all other bytes
// untouched.
func UpperASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// JoinNonBlank joins the non-empty parts with single spaces.
func JoinNonBlank(parts []string) string {
	res := parts[:0]
	for _, p := range parts {
		if p != "" {
			res = append(res, p)
		}
	}
	return strings.Join(res, " ")
}

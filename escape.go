package xrm

import "strings"

// DecodeValue converts the textual form of a resource value into its
// in-memory form by resolving escape sequences:
//
//	\n    newline
//	\\    backslash
//	"\ "  literal space
//	\NNN  byte with octal value NNN (exactly three digits)
//
// Any other backslash sequence keeps the escaped character verbatim.
func DecodeValue(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		if i+1 >= len(s) {
			// trailing backslash, kept as-is
			sb.WriteByte(c)
			break
		}

		next := s[i+1]
		switch {
		case next == 'n':
			sb.WriteByte('\n')
			i++
		case next == '\\':
			sb.WriteByte('\\')
			i++
		case next == ' ':
			sb.WriteByte(' ')
			i++
		case isOctal(next) && i+3 < len(s) && isOctal(s[i+2]) && isOctal(s[i+3]):
			sb.WriteByte((next-'0')<<6 | (s[i+2]-'0')<<3 | (s[i+3] - '0'))
			i += 3
		default:
			sb.WriteByte(next)
			i++
		}
	}
	return sb.String()
}

// EncodeValue converts an in-memory value into its textual form. A
// leading space is written as "\ " so it survives the whitespace
// stripping after the separator; backslashes and newlines are escaped.
// All other bytes pass through unchanged.
func EncodeValue(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ' && i == 0:
			sb.WriteString("\\ ")
		case c == '\\':
			sb.WriteString("\\\\")
		case c == '\n':
			sb.WriteString("\\n")
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}

// Where: cli/internal/launch/expand.go
// What: Environment variable expansion for resolved template text.
// Why: os.ExpandEnv erases unset references and ignores %VAR% syntax.
package launch

import "strings"

// ExpandEnv expands %VAR%, $VAR, and ${VAR} references in text using the
// supplied lookup. References to unset variables stay verbatim, which keeps
// unrecognized %...% token text intact through the final pass.
func ExpandEnv(text string, lookup func(string) (string, bool)) string {
	var out strings.Builder
	out.Grow(len(text))

	for i := 0; i < len(text); {
		switch text[i] {
		case '%':
			if end := strings.IndexByte(text[i+1:], '%'); end > 0 {
				name := text[i+1 : i+1+end]
				if isBatchName(name) {
					if value, ok := lookup(name); ok {
						out.WriteString(value)
						i += end + 2
						continue
					}
				}
			}
			out.WriteByte('%')
			i++
		case '$':
			if i+1 < len(text) && text[i+1] == '{' {
				if end := strings.IndexByte(text[i+2:], '}'); end > 0 {
					name := text[i+2 : i+2+end]
					if isPosixName(name) {
						if value, ok := lookup(name); ok {
							out.WriteString(value)
							i += end + 3
							continue
						}
					}
				}
			} else {
				j := i + 1
				for j < len(text) && isPosixNameByte(text[j], j == i+1) {
					j++
				}
				if j > i+1 {
					if value, ok := lookup(text[i+1 : j]); ok {
						out.WriteString(value)
						i = j
						continue
					}
				}
			}
			out.WriteByte('$')
			i++
		default:
			out.WriteByte(text[i])
			i++
		}
	}
	return out.String()
}

// isBatchName accepts the cmd.exe flavor of variable names, including
// names like ProgramFiles(x86).
func isBatchName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '(' || c == ')':
		default:
			return false
		}
	}
	return true
}

func isPosixName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isPosixNameByte(name[i], i == 0) {
			return false
		}
	}
	return true
}

func isPosixNameByte(c byte, first bool) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		return true
	case c >= '0' && c <= '9':
		return !first
	default:
		return false
	}
}

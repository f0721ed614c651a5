package hud

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// UnknownKey is substituted for template references that name a key absent
// from both the slot values and the value dictionary. Formatting never
// fails on a missing key.
const UnknownKey = "<UNKNOWN>"

// FormatTemplate renders a field's literal template against its four slot
// values and the value dictionary.
//
// The template syntax uses brace references:
//
//	{0}..{3}        positional slot values
//	{a}..{d}        the same four slots by name
//	{key}           named lookup in the value dictionary
//	{key:spec}      with a format spec: [+][0][width][.prec][d|f|g|s]
//	{{ and }}       literal braces
//
// References to keys absent from both sources render as UnknownKey.
// After substitution, environment-variable references ($NAME or ${NAME})
// are expanded; references to unset variables are left untouched.
func FormatTemplate(tmpl string, slots [4]Value, vals Values) string {
	var out strings.Builder
	out.Grow(len(tmpl))

	for i := 0; i < len(tmpl); {
		c := tmpl[i]
		switch {
		case c == '{' && i+1 < len(tmpl) && tmpl[i+1] == '{':
			out.WriteByte('{')
			i += 2
		case c == '}' && i+1 < len(tmpl) && tmpl[i+1] == '}':
			out.WriteByte('}')
			i += 2
		case c == '{':
			end := strings.IndexByte(tmpl[i:], '}')
			if end < 0 {
				// Unterminated reference, keep it literal.
				out.WriteString(tmpl[i:])
				i = len(tmpl)
				break
			}
			ref := tmpl[i+1 : i+end]
			out.WriteString(substitute(ref, slots, vals))
			i += end + 1
		default:
			out.WriteByte(c)
			i++
		}
	}

	return expandEnv(out.String())
}

// substitute resolves one {ref} occurrence, ref being "key" or "key:spec".
func substitute(ref string, slots [4]Value, vals Values) string {
	key := ref
	spec := ""
	if colon := strings.IndexByte(ref, ':'); colon >= 0 {
		key = ref[:colon]
		spec = ref[colon+1:]
	}

	v, ok := lookupKey(key, slots, vals)
	if !ok || v.IsAbsent() {
		Logger().Warn("hud: template key not found", "key", key)
		return UnknownKey
	}
	return applySpec(v, spec)
}

func lookupKey(key string, slots [4]Value, vals Values) (Value, bool) {
	switch key {
	case "0", "a":
		return slots[0], true
	case "1", "b":
		return slots[1], true
	case "2", "c":
		return slots[2], true
	case "3", "d":
		return slots[3], true
	}
	v, ok := vals[key]
	return v, ok
}

// applySpec renders a value under a format spec of the form
// [+][0][width][.prec][type]. Unrecognized specs fall back to the plain
// rendering rather than failing.
func applySpec(v Value, spec string) string {
	if spec == "" {
		return v.String()
	}

	rest := spec
	plus := false
	zero := false
	if strings.HasPrefix(rest, "+") {
		plus = true
		rest = rest[1:]
	}
	if strings.HasPrefix(rest, "0") {
		zero = true
		rest = rest[1:]
	}
	width := 0
	for len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9' {
		width = width*10 + int(rest[0]-'0')
		rest = rest[1:]
	}
	prec := -1
	if strings.HasPrefix(rest, ".") {
		rest = rest[1:]
		prec = 0
		for len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9' {
			prec = prec*10 + int(rest[0]-'0')
			rest = rest[1:]
		}
	}
	typ := byte(0)
	if len(rest) == 1 {
		typ = rest[0]
	} else if len(rest) > 1 {
		return v.String()
	}

	var verb strings.Builder
	verb.WriteByte('%')
	if plus {
		verb.WriteByte('+')
	}
	if zero {
		verb.WriteByte('0')
	}
	if width > 0 {
		verb.WriteString(strconv.Itoa(width))
	}

	switch typ {
	case 'd':
		n, ok := v.AsInt()
		if !ok {
			return v.String()
		}
		verb.WriteByte('d')
		return fmt.Sprintf(verb.String(), n)
	case 'f':
		f, ok := v.AsFloat()
		if !ok {
			return v.String()
		}
		if prec < 0 {
			prec = 6
		}
		verb.WriteString(".")
		verb.WriteString(strconv.Itoa(prec))
		verb.WriteByte('f')
		return fmt.Sprintf(verb.String(), f)
	case 'g':
		f, ok := v.AsFloat()
		if !ok {
			return v.String()
		}
		if prec >= 0 {
			verb.WriteString(".")
			verb.WriteString(strconv.Itoa(prec))
		}
		verb.WriteByte('g')
		return fmt.Sprintf(verb.String(), f)
	case 's', 0:
		if prec >= 0 {
			if f, ok := v.AsFloat(); ok {
				verb.WriteString(".")
				verb.WriteString(strconv.Itoa(prec))
				verb.WriteByte('f')
				return fmt.Sprintf(verb.String(), f)
			}
		}
		verb.WriteByte('s')
		return fmt.Sprintf(verb.String(), v.String())
	default:
		return v.String()
	}
}

// expandEnv substitutes $NAME and ${NAME} with environment variables.
// Unlike os.Expand, references to unset variables stay literal, so a
// template can show the reference itself when the variable is missing.
func expandEnv(s string) string {
	if !strings.ContainsRune(s, '$') {
		return s
	}

	var out strings.Builder
	out.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != '$' {
			out.WriteByte(s[i])
			i++
			continue
		}

		// ${NAME} form.
		if i+1 < len(s) && s[i+1] == '{' {
			end := strings.IndexByte(s[i+2:], '}')
			if end < 0 {
				out.WriteString(s[i:])
				break
			}
			name := s[i+2 : i+2+end]
			if val, ok := os.LookupEnv(name); ok {
				out.WriteString(val)
			} else {
				out.WriteString(s[i : i+2+end+1])
			}
			i += 2 + end + 1
			continue
		}

		// $NAME form.
		j := i + 1
		for j < len(s) && isEnvNameByte(s[j]) {
			j++
		}
		if j == i+1 {
			out.WriteByte('$')
			i++
			continue
		}
		name := s[i+1 : j]
		if val, ok := os.LookupEnv(name); ok {
			out.WriteString(val)
		} else {
			out.WriteString(s[i:j])
		}
		i = j
	}

	return out.String()
}

func isEnvNameByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

// template.go - message template parsing and interpolation.
//
// A template is scanned exactly once, when its kind is defined. The result is
// a list of segments (literal text or a placeholder name) so that building an
// instance is a single pass with no re-scanning.
//
// Placeholder syntax:
//   - `$` followed by a maximal run of [A-Za-z0-9_] whose first character is a
//     letter or underscore.
//   - A `$` not followed by a valid identifier start is literal text.
package xgxkind

import (
	"fmt"
	"strconv"
	"strings"
)

type segment struct {
	lit  string
	name string // placeholder name; empty for literal segments
}

type template struct {
	raw   string
	segs  []segment
	names []string // unique placeholder names, first-occurrence order
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// isIdent reports whether s is a non-empty identifier.
func isIdent(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentChar(s[i]) {
			return false
		}
	}
	return true
}

func parseTemplate(raw string) template {
	t := template{raw: raw}
	seen := make(map[string]struct{})
	start := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] != '$' || i+1 >= len(raw) || !isIdentStart(raw[i+1]) {
			continue
		}
		j := i + 2
		for j < len(raw) && isIdentChar(raw[j]) {
			j++
		}
		if start < i {
			t.segs = append(t.segs, segment{lit: raw[start:i]})
		}
		name := raw[i+1 : j]
		t.segs = append(t.segs, segment{name: name})
		if _, dup := seen[name]; !dup {
			seen[name] = struct{}{}
			t.names = append(t.names, name)
		}
		start = j
		i = j - 1
	}
	if start < len(raw) {
		t.segs = append(t.segs, segment{lit: raw[start:]})
	}
	return t
}

// Placeholders returns the unique placeholder names in tmpl, in order of
// first occurrence.
func Placeholders(tmpl string) []string {
	names := parseTemplate(tmpl).names
	if names == nil {
		return []string{}
	}
	return names
}

// render interpolates the template. Placeholders with no supplied value keep
// their literal `$name` text.
func (t template) render(args Args) string {
	if len(t.names) == 0 {
		return t.raw
	}
	var sb strings.Builder
	sb.Grow(len(t.raw) + 16)
	for _, s := range t.segs {
		if s.name == "" {
			sb.WriteString(s.lit)
			continue
		}
		v, ok := args[s.name]
		if !ok {
			sb.WriteByte('$')
			sb.WriteString(s.name)
			continue
		}
		sb.WriteString(formatValue(v))
	}
	return sb.String()
}

// formatValue returns the string form of a field value. Strings and numbers
// are the expected inputs; anything else goes through fmt.
func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

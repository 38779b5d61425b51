package rule

import (
	"fmt"
	"strings"
)

// Directive is one parsed annotation: a name and its argument list.
// Bare directives (default, only_in_self) have a nil argument list;
// list directives (only_in, not_in, attr_for) carry their arguments
// with surrounding quotes stripped.
type Directive struct {
	Name string
	Args []string
}

// ParseDirective parses one raw annotation string into a Directive.
// Accepted shapes are `name` and `name(arg, ...)`. It does not check the
// directive name against the recognized set; callers do.
func ParseDirective(raw string) (Directive, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Directive{}, fmt.Errorf("empty annotation")
	}

	open := strings.IndexByte(s, '(')
	if open < 0 {
		if !isIdent(s) {
			return Directive{}, fmt.Errorf("annotation %q is not a directive name", raw)
		}

		return Directive{Name: s}, nil
	}

	name := strings.TrimSpace(s[:open])
	if !isIdent(name) {
		return Directive{}, fmt.Errorf("annotation %q is not a directive name", raw)
	}

	if !strings.HasSuffix(s, ")") {
		return Directive{}, fmt.Errorf("annotation %q has an unclosed argument list", raw)
	}

	args, err := SplitArgs(s[open+1 : len(s)-1])
	if err != nil {
		return Directive{}, fmt.Errorf("annotation %q: %w", raw, err)
	}

	if len(args) == 0 {
		return Directive{}, fmt.Errorf("annotation %q has an empty argument list", raw)
	}

	return Directive{Name: name, Args: args}, nil
}

// SplitArgs splits a comma-separated argument list, honoring double-quoted
// segments so a quoted decoration may itself contain commas. Surrounding
// quotes are stripped from each argument. An empty segment between commas
// (or a trailing comma) is an error rather than a silently dropped argument.
func SplitArgs(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var (
		args     []string
		current  strings.Builder
		inQuotes bool
	)

	flush := func() error {
		arg := strings.TrimSpace(current.String())
		arg = strings.Trim(arg, `"`)
		current.Reset()

		if arg == "" {
			return fmt.Errorf("empty argument in list %q", s)
		}

		args = append(args, arg)

		return nil
	}

	for _, c := range s {
		switch {
		case c == '"':
			inQuotes = !inQuotes
			current.WriteRune(c)
		case c == ',' && !inQuotes:
			if err := flush(); err != nil {
				return nil, err
			}
		default:
			current.WriteRune(c)
		}
	}

	if inQuotes {
		return nil, fmt.Errorf("unterminated quote in argument list %q", s)
	}

	if err := flush(); err != nil {
		return nil, err
	}

	return args, nil
}

// SplitList splits a comma-separated list of raw annotations at top level,
// leaving parenthesized and quoted segments intact. Used by the Go-source
// front end, where several directives share one comment line:
// "only_in(A, B), default" -> ["only_in(A, B)", "default"].
func SplitList(s string) []string {
	var (
		out      []string
		current  strings.Builder
		depth    int
		inQuotes bool
	)

	flush := func() {
		if item := strings.TrimSpace(current.String()); item != "" {
			out = append(out, item)
		}
		current.Reset()
	}

	for _, c := range s {
		switch {
		case c == '"':
			inQuotes = !inQuotes
			current.WriteRune(c)
		case c == '(' && !inQuotes:
			depth++
			current.WriteRune(c)
		case c == ')' && !inQuotes:
			depth--
			current.WriteRune(c)
		case c == ',' && depth == 0 && !inQuotes:
			flush()
		default:
			current.WriteRune(c)
		}
	}
	flush()

	return out
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, c := range s {
		switch {
		case c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}

	return true
}

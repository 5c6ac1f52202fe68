package dom

import "strings"

// The selector engine covers what the widget toolkit queries for:
// universal, tag, #id, .class, [attr] with the CSS attribute operators,
// :not(...) over a compound, compounds of all of those, and
// comma-separated lists. Combinators (descendant, >, +, ~) are not
// supported; callers scope queries by calling QuerySelectorAll on the
// relevant subtree root instead.

// selectorList is a parsed, comma-separated selector list.
type selectorList []compoundSelector

// compoundSelector is a sequence of simple selectors that must all match
// the same element, e.g. `button.menu[aria-expanded="true"]`.
type compoundSelector struct {
	tag     string // lowercase tag name, or "" / "*" for any
	id      string
	classes []string
	attrs   []attrSelector
	not     []compoundSelector
}

// attrSelector is a single attribute test.
type attrSelector struct {
	name  string
	op    string // "", "=", "~=", "|=", "^=", "$=", "*="
	value string
}

// parseSelectorList parses a comma-separated selector list.
func parseSelectorList(selector string) (selectorList, error) {
	var list selectorList
	for _, part := range splitTopLevel(selector, ',') {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, ErrSyntax("empty selector")
		}
		cs, err := parseCompound(part)
		if err != nil {
			return nil, err
		}
		list = append(list, cs)
	}
	if len(list) == 0 {
		return nil, ErrSyntax("empty selector")
	}
	return list, nil
}

// splitTopLevel splits s on sep, ignoring separators inside brackets,
// parentheses and quotes.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	var quote byte
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '[' || c == '(':
			depth++
		case c == ']' || c == ')':
			depth--
		case c == sep && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}

func parseCompound(s string) (compoundSelector, error) {
	var cs compoundSelector

	if strings.ContainsAny(s, " \t>+~") {
		return cs, ErrSyntax("combinators are not supported: " + s)
	}

	// Leading tag name or universal selector.
	i := 0
	for i < len(s) && s[i] != '.' && s[i] != '#' && s[i] != '[' && s[i] != ':' {
		i++
	}
	if i > 0 {
		tag := s[:i]
		if tag != "*" {
			cs.tag = strings.ToLower(tag)
		}
		s = s[i:]
	}

	for len(s) > 0 {
		switch s[0] {
		case '.':
			name, rest := takeName(s[1:])
			if name == "" {
				return cs, ErrSyntax("missing class name")
			}
			cs.classes = append(cs.classes, name)
			s = rest
		case '#':
			name, rest := takeName(s[1:])
			if name == "" {
				return cs, ErrSyntax("missing id")
			}
			cs.id = name
			s = rest
		case '[':
			end := strings.IndexByte(s, ']')
			if end < 0 {
				return cs, ErrSyntax("unterminated attribute selector")
			}
			attr, err := parseAttrSelector(s[1:end])
			if err != nil {
				return cs, err
			}
			cs.attrs = append(cs.attrs, attr)
			s = s[end+1:]
		case ':':
			if !strings.HasPrefix(s, ":not(") {
				return cs, ErrSyntax("unsupported pseudo-class: " + s)
			}
			end := matchParen(s, len(":not(")-1)
			if end < 0 {
				return cs, ErrSyntax("unterminated :not()")
			}
			inner, err := parseCompound(strings.TrimSpace(s[len(":not("):end]))
			if err != nil {
				return cs, err
			}
			cs.not = append(cs.not, inner)
			s = s[end+1:]
		default:
			return cs, ErrSyntax("unexpected character in selector: " + s)
		}
	}
	return cs, nil
}

// takeName consumes an identifier and returns it with the remainder.
func takeName(s string) (string, string) {
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '.' || c == '#' || c == '[' || c == ':' {
			break
		}
		i++
	}
	return s[:i], s[i:]
}

// matchParen returns the index of the ')' closing the '(' at open.
func matchParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func parseAttrSelector(s string) (attrSelector, error) {
	s = strings.TrimSpace(s)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '=' {
			return attrSelector{
				name:  strings.ToLower(strings.TrimSpace(s[:i])),
				op:    "=",
				value: trimQuotes(s[i+1:]),
			}, nil
		}
		if (c == '~' || c == '|' || c == '^' || c == '$' || c == '*') && i+1 < len(s) && s[i+1] == '=' {
			return attrSelector{
				name:  strings.ToLower(strings.TrimSpace(s[:i])),
				op:    string(c) + "=",
				value: trimQuotes(s[i+2:]),
			}, nil
		}
	}
	if s == "" {
		return attrSelector{}, ErrSyntax("empty attribute selector")
	}
	return attrSelector{name: strings.ToLower(s)}, nil
}

func trimQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func (list selectorList) matches(e *Element) bool {
	for _, cs := range list {
		if cs.matches(e) {
			return true
		}
	}
	return false
}

func (cs compoundSelector) matches(e *Element) bool {
	if cs.tag != "" && e.LocalName() != cs.tag {
		return false
	}
	if cs.id != "" && e.Id() != cs.id {
		return false
	}
	for _, class := range cs.classes {
		if !hasClass(e, class) {
			return false
		}
	}
	for _, attr := range cs.attrs {
		if !attr.matches(e) {
			return false
		}
	}
	for _, inner := range cs.not {
		if inner.matches(e) {
			return false
		}
	}
	return true
}

func hasClass(e *Element, class string) bool {
	for _, word := range strings.Fields(e.GetAttribute("class")) {
		if word == class {
			return true
		}
	}
	return false
}

func (a attrSelector) matches(e *Element) bool {
	if !e.HasAttribute(a.name) {
		return false
	}
	if a.op == "" {
		return true
	}
	value := e.GetAttribute(a.name)
	switch a.op {
	case "=":
		return value == a.value
	case "~=":
		for _, word := range strings.Fields(value) {
			if word == a.value {
				return true
			}
		}
		return false
	case "|=":
		return value == a.value || strings.HasPrefix(value, a.value+"-")
	case "^=":
		return a.value != "" && strings.HasPrefix(value, a.value)
	case "$=":
		return a.value != "" && strings.HasSuffix(value, a.value)
	case "*=":
		return a.value != "" && strings.Contains(value, a.value)
	}
	return false
}

// Package stylesheet checks rendered component classes against the class
// selectors a set of CSS files actually defines.
package stylesheet

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"golang.org/x/net/html"
)

// Sheet is the set of class names defined by one or more stylesheets.
type Sheet struct {
	classes map[string]struct{}
}

// New returns an empty sheet.
func New() *Sheet {
	return &Sheet{classes: make(map[string]struct{})}
}

// Parse returns the classes used in selectors of content.
func Parse(content string) *Sheet {
	s := New()
	s.add(content)
	return s
}

// Load parses every file in paths into one sheet.
func Load(paths ...string) (*Sheet, error) {
	s := New()
	for _, path := range paths {
		// #nosec G304 - path comes from trusted configuration
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read stylesheet: %w", err)
		}
		s.add(string(content))
	}
	return s, nil
}

// block kinds on the brace stack
const (
	blockRules = iota // @media, @layer, @supports: contains rules
	blockDecls        // a rule body: contains declarations
)

func (s *Sheet) add(content string) {
	lexer := css.NewLexer(parse.NewInputString(content))

	var stack []int
	atRule := false
	inDecls := func() bool {
		return len(stack) > 0 && stack[len(stack)-1] == blockDecls
	}

	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken:
			// ErrorToken at EOF is normal
			return
		case css.AtKeywordToken:
			atRule = true
		case css.SemicolonToken:
			atRule = false
		case css.LeftBraceToken:
			if atRule {
				stack = append(stack, blockRules)
			} else {
				stack = append(stack, blockDecls)
			}
			atRule = false
		case css.RightBraceToken:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case css.DelimToken:
			if atRule || inDecls() || len(text) == 0 || text[0] != '.' {
				continue
			}
			next, name := lexer.Next()
			if next == css.IdentToken {
				s.classes[unescape(string(name))] = struct{}{}
			}
		}
	}
}

// unescape drops CSS escapes, so .md\:flex yields "md:flex".
func unescape(name string) string {
	if !strings.Contains(name, `\`) {
		return name
	}
	var sb strings.Builder
	escaped := false
	for _, r := range name {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		sb.WriteRune(r)
	}
	return sb.String()
}

// Merge adds every class of other to s.
func (s *Sheet) Merge(other *Sheet) {
	for name := range other.classes {
		s.classes[name] = struct{}{}
	}
}

// Has reports whether the sheet defines class.
func (s *Sheet) Has(class string) bool {
	_, ok := s.classes[class]
	return ok
}

// Len returns the number of distinct classes.
func (s *Sheet) Len() int {
	return len(s.classes)
}

// Classes returns every class, sorted.
func (s *Sheet) Classes() []string {
	out := make([]string, 0, len(s.classes))
	for name := range s.classes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Missing returns the classes not defined by the sheet, deduplicated and
// in first-seen order.
func (s *Sheet) Missing(classes []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, class := range classes {
		if seen[class] || s.Has(class) {
			continue
		}
		seen[class] = true
		out = append(out, class)
	}
	return out
}

// ClassesInHTML returns every class token used in class attributes of the
// HTML read from r, in document order and deduplicated.
func ClassesInHTML(r io.Reader) ([]string, error) {
	z := html.NewTokenizer(r)
	var out []string
	seen := make(map[string]bool)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return out, nil
			}
			return nil, z.Err()
		case html.StartTagToken, html.SelfClosingTagToken:
			for {
				key, val, more := z.TagAttr()
				if string(key) == "class" {
					for _, class := range strings.Fields(string(val)) {
						if !seen[class] {
							seen[class] = true
							out = append(out, class)
						}
					}
				}
				if !more {
					break
				}
			}
		}
	}
}

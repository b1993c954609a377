package grammar

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/cory-johannsen/laststand/internal/gameerr"
)

// Dict maps placeholder keys to their bound values.
type Dict map[string]string

// Merge returns a copy of d with extra's bindings layered on top.
func (d Dict) Merge(extra Dict) Dict {
	out := make(Dict, len(d)+len(extra))
	for k, v := range d {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

var (
	// square markers inflect against the subject: strike[s], launch[es].
	squares = regexp.MustCompile(`\[(.*?)(?:\|(.+?))?\]`)
	// angle markers inflect against the object: tr<ies|y>, <is|are>.
	angles = regexp.MustCompile(`<(.*?)(?:\|(.+?))?>`)
	// placeholders are %(key)s.
	placeholders = regexp.MustCompile(`%\(([a-zA-Z0-9_]+)\)s`)
)

// Expand renders template. Square markers resolve against subjectPlural,
// angle markers against objectPlural: a plural slot emits the text after the
// pipe (or nothing), a singular slot emits the text before it. Every %(key)s
// must be bound in dict.
//
// Postcondition: Returns the rendered string, or a TemplateError naming every
// unbound key.
func Expand(template string, subjectPlural, objectPlural bool, dict Dict) (string, error) {
	s := inflect(template, squares, subjectPlural)
	s = inflect(s, angles, objectPlural)

	if missing := unbound(s, dict); len(missing) > 0 {
		return "", gameerr.New(gameerr.CodeTemplate,
			fmt.Sprintf("grammar: unbound placeholder(s) %s in %q", strings.Join(missing, ", "), template))
	}
	return placeholders.ReplaceAllStringFunc(s, func(m string) string {
		return dict[placeholders.FindStringSubmatch(m)[1]]
	}), nil
}

func inflect(s string, re *regexp.Regexp, plural bool) string {
	return re.ReplaceAllStringFunc(s, func(m string) string {
		sub := re.FindStringSubmatch(m)
		if plural {
			return sub[2]
		}
		return sub[1]
	})
}

func unbound(s string, dict Dict) []string {
	seen := make(map[string]bool)
	var missing []string
	for _, sub := range placeholders.FindAllStringSubmatch(s, -1) {
		key := sub[1]
		if _, ok := dict[key]; ok || seen[key] {
			continue
		}
		seen[key] = true
		missing = append(missing, fmt.Sprintf("%q", key))
	}
	sort.Strings(missing)
	return missing
}

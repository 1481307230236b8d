package community

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nxkit/nxreport/internal/versions"
)

// Rule decides whether a package name is excluded from detection.
type Rule interface {
	Match(name string) bool
	String() string
}

// Exact matches one package name.
type Exact string

func (e Exact) Match(name string) bool { return string(e) == name }
func (e Exact) String() string         { return string(e) }

// Pattern matches names by an unanchored regular expression.
type Pattern struct {
	re *regexp.Regexp
}

// NewPattern compiles expr into a Pattern rule.
func NewPattern(expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("invalid ignore pattern %q: %w", expr, err)
	}
	return Pattern{re: re}, nil
}

// MustPattern is NewPattern for compile-time constants.
func MustPattern(expr string) Pattern {
	p, err := NewPattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Pattern) Match(name string) bool { return p.re.MatchString(name) }
func (p Pattern) String() string         { return "/" + p.re.String() + "/" }

// ParseRule turns a config entry into a Rule. Entries wrapped in slashes
// ("/^@internal\//") are patterns; anything else is an exact name.
func ParseRule(entry string) (Rule, error) {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return nil, fmt.Errorf("empty ignore entry")
	}
	if len(entry) >= 2 && strings.HasPrefix(entry, "/") && strings.HasSuffix(entry, "/") {
		return NewPattern(entry[1 : len(entry)-1])
	}
	return Exact(entry), nil
}

// RuleSet is an ordered list of rules; a name is ignored if any rule matches.
type RuleSet []Rule

// Match reports whether any rule matches name, stopping at the first hit.
func (rs RuleSet) Match(name string) bool {
	for _, r := range rs {
		if r.Match(name) {
			return true
		}
	}
	return false
}

// DefaultRules returns the watch list plus the fixed ecosystem exclusions.
// "@angular/*" is a regular expression, not a glob: it matches any name
// containing "@angular".
func DefaultRules() RuleSet {
	rules := make(RuleSet, 0, len(versions.WatchList)+3)
	for _, p := range versions.WatchList {
		rules = append(rules, Exact(p))
	}
	return append(rules,
		Exact("@schematics/angular"),
		MustPattern("@angular/*"),
		Exact("@nestjs/schematics"),
	)
}

// WithExtra returns DefaultRules followed by rules parsed from entries.
func WithExtra(entries []string) (RuleSet, error) {
	rules := DefaultRules()
	for _, e := range entries {
		r, err := ParseRule(e)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

package community

import (
	"testing"

	"github.com/nxkit/nxreport/internal/versions"
)

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name string
		want bool
	}{
		{"typescript", true},
		{"rxjs", true},
		{"nx", true},
		{"@nrwl/workspace", true},
		{"@schematics/angular", true},
		{"@nestjs/schematics", true},
		{"@angular/core", true},
		{"@angular/cli", true},
		{"@angular-eslint/schematics", true}, // unanchored "@angular/*" also matches "@angular"
		{"not-@angular/thing", true},
		{"angular", false},
		{"@nrwl/unknown", false},
		{"nx-plugin-foo", false},
		{"@nestjs/core", false},
		{"typescript-eslint", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rules.Match(tt.name); got != tt.want {
				t.Errorf("DefaultRules().Match(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestDefaultRules_ContainsWatchList(t *testing.T) {
	rules := DefaultRules()
	for _, p := range versions.WatchList {
		if !rules.Match(p) {
			t.Errorf("watch-list package %q is not ignored", p)
		}
	}
}

func TestParseRule(t *testing.T) {
	tests := []struct {
		entry     string
		wantErr   bool
		wantExact bool
		matches   string
		misses    string
	}{
		{entry: "my-internal-lib", wantExact: true, matches: "my-internal-lib", misses: "my-internal-lib-2"},
		{entry: "  padded  ", wantExact: true, matches: "padded", misses: " padded "},
		{entry: `/^@acme\//`, matches: "@acme/tools", misses: "x@acme/tools"},
		{entry: "/", wantExact: true, matches: "/", misses: "a"},
		{entry: "", wantErr: true},
		{entry: "/([/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.entry, func(t *testing.T) {
			r, err := ParseRule(tt.entry)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRule(%q) error = %v, wantErr %v", tt.entry, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if _, isExact := r.(Exact); isExact != tt.wantExact {
				t.Errorf("ParseRule(%q) exact = %v, want %v", tt.entry, isExact, tt.wantExact)
			}
			if !r.Match(tt.matches) {
				t.Errorf("%s should match %q", r, tt.matches)
			}
			if r.Match(tt.misses) {
				t.Errorf("%s should not match %q", r, tt.misses)
			}
		})
	}
}

func TestWithExtra(t *testing.T) {
	rules, err := WithExtra([]string{"lodash", "/^@acme\\//"})
	if err != nil {
		t.Fatalf("WithExtra() error = %v", err)
	}
	if len(rules) != len(DefaultRules())+2 {
		t.Errorf("expected %d rules, got %d", len(DefaultRules())+2, len(rules))
	}
	for _, name := range []string{"lodash", "@acme/plugin", "typescript"} {
		if !rules.Match(name) {
			t.Errorf("expected %q to be ignored", name)
		}
	}

	if _, err := WithExtra([]string{"/(/"}); err == nil {
		t.Error("expected error for bad pattern")
	}
}

func TestPattern_String(t *testing.T) {
	if got := MustPattern("@angular/*").String(); got != "/@angular/*/" {
		t.Errorf("String() = %q", got)
	}
}

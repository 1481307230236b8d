package config

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		cfg          Config
		wantProblems int
	}{
		{"empty", Config{}, 0},
		{"valid", Config{Format: "json", PackageManager: "npm", Ignore: []string{"a", "/^b/"}}, 0},
		{"bad format", Config{Format: "yaml"}, 1},
		{"bad package manager", Config{PackageManager: "bun"}, 1},
		{"empty ignore entry", Config{Ignore: []string{"  "}}, 1},
		{"bad pattern", Config{Ignore: []string{"/([/"}}, 1},
		{"slash entries parse like detection rules", Config{Ignore: []string{"/", "//", " lodash "}}, 0},
		{"everything wrong", Config{Format: "x", PackageManager: "y", Ignore: []string{"", "/(/"}}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantProblems == 0 {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if len(valErr.Problems) != tt.wantProblems {
				t.Errorf("got %d problems %q, want %d", len(valErr.Problems), valErr.Problems, tt.wantProblems)
			}
		})
	}
}

func TestValidateRoot(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{path: "/srv/ws", want: "/srv/ws"},
		{path: "/srv/a..b", want: "/srv/a..b"},
		{path: "/srv/ws/", want: "/srv/ws"},
		{path: "/srv/x/../ws", want: "/srv/ws"},
		{path: "ws..old/apps", want: "ws..old/apps"},
		{path: "../ws", wantErr: true},
		{path: "../../etc", wantErr: true},
		{path: "..", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ValidateRoot(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateRoot(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ValidateRoot(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

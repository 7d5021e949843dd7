package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	old := Version
	Version = "v9.9.9"
	defer func() { Version = old }()

	s := String()
	if !strings.HasPrefix(s, "version: v9.9.9\n") {
		t.Errorf("String() = %q, want version prefix", s)
	}
	if !strings.Contains(s, "go: go") {
		t.Errorf("String() = %q, missing go version", s)
	}
}

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} ") || !strings.HasSuffix(tmpl, "\n") {
		t.Errorf("Template() = %q", tmpl)
	}
}

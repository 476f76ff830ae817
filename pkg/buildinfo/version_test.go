package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	old := Version
	Version = "v1.2.3"
	defer func() { Version = old }()

	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} version v1.2.3\n") {
		t.Errorf("Template() = %q", got)
	}
	if !strings.Contains(got, "commit: "+Commit) {
		t.Errorf("Template() missing commit: %q", got)
	}
}

func TestFields(t *testing.T) {
	fields := Fields()
	if len(fields)%2 != 0 {
		t.Fatalf("Fields() has odd length %d", len(fields))
	}
	if fields[0] != "version" || fields[1] != Version {
		t.Errorf("Fields() = %v, want version first", fields)
	}
}

package templates

import (
	"strings"
	"testing"
)

func TestListFiles(t *testing.T) {
	files, err := ListFiles("new")
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	want := map[string]bool{
		"new/go.mod.tmpl":    false,
		"new/weft.yaml.tmpl": false,
		"new/main.go.tmpl":   false,
	}
	for _, f := range files {
		if _, ok := want[f]; ok {
			want[f] = true
		}
	}
	for f, seen := range want {
		if !seen {
			t.Errorf("embedded file %s not listed", f)
		}
	}
}

func TestRender(t *testing.T) {
	out, err := Render("new/go.mod.tmpl", struct{ ModulePath string }{"example.com/app"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "module example.com/app") {
		t.Errorf("rendered output missing module path:\n%s", out)
	}
}

func TestRenderMissingTemplate(t *testing.T) {
	if _, err := Render("new/nope.tmpl", nil); err == nil {
		t.Error("expected an error for a missing template")
	}
}

package preset

import (
	"os"
	"path/filepath"
	"testing"

	"projctl/internal/devtool"
)

func TestLoadCatalogFrom_MissingFile(t *testing.T) {
	c, err := loadCatalogFrom(filepath.Join(t.TempDir(), "presets.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(c.Extra) != 0 || len(c.Hidden) != 0 {
		t.Fatalf("expected empty catalog, got %+v", c)
	}
}

func TestLoadCatalogFrom_NormalizesEntries(t *testing.T) {
	p := filepath.Join(t.TempDir(), "presets.yaml")
	raw := `
extra:
  - id: "  zed  "
    name: ""
    commandPath: " /usr/local/bin/zed "
    arguments: ["{path}"]
  - id: "broken"
    commandPath: ""
hidden:
  - " datagrip "
  - ""
`
	if err := os.WriteFile(p, []byte(raw), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	c, err := loadCatalogFrom(p)
	if err != nil {
		t.Fatalf("loadCatalogFrom error: %v", err)
	}
	if len(c.Extra) != 1 {
		t.Fatalf("entry without command path must be dropped: %+v", c.Extra)
	}
	e := c.Extra[0]
	if e.ID != "zed" || e.Name != "zed" || e.CommandPath != "/usr/local/bin/zed" {
		t.Fatalf("unexpected normalized entry: %+v", e)
	}
	if len(c.Hidden) != 1 || c.Hidden[0] != "datagrip" {
		t.Fatalf("unexpected hidden list: %v", c.Hidden)
	}
}

func TestCatalogApply(t *testing.T) {
	detected := []devtool.DevToolPreset{
		{ID: "vscode", Name: "VS Code", CommandPath: "/usr/bin/code"},
		{ID: "datagrip", Name: "DataGrip", CommandPath: "/usr/bin/datagrip"},
	}
	c := Catalog{
		Extra: []CatalogEntry{
			{ID: "zed", Name: "Zed", CommandPath: "/usr/bin/zed", Arguments: []string{"{path}"}},
			{ID: "vscode", Name: "dup", CommandPath: "/elsewhere/code"},
		},
		Hidden: []string{"datagrip"},
	}

	got := c.Apply(detected)
	if len(got) != 2 {
		t.Fatalf("expected hidden filtered and dup skipped, got %+v", got)
	}
	if got[0].ID != "vscode" || got[1].ID != "zed" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[0].CommandPath != "/usr/bin/code" {
		t.Fatalf("detected preset must win over extra with same id: %+v", got[0])
	}
}

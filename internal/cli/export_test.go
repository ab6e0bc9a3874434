package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestExportCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	c := New(os.Stderr, LogInfo)
	if err := c.exportCatalog(path); err != nil {
		t.Fatalf("exportCatalog() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	var entries []catalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected at least one catalog entry")
	}

	for _, e := range entries {
		if e.Label == "fire,  linear_kryw_0_100_c71" {
			if e.Name != "fire" {
				t.Errorf("Name = %q, want fire", e.Name)
			}
			if len(e.Aliases) != 2 {
				t.Errorf("Aliases = %v, want the long name and the alias", e.Aliases)
			}
			if len(e.Colors) == 0 {
				t.Error("expected control stops")
			}
			return
		}
	}
	t.Error("fire alias group missing from export")
}

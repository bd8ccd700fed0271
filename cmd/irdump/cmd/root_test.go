package cmd

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/shard/internal/printer"
)

func TestExampleModuleDump(t *testing.T) {
	out := printer.Print(exampleModule())
	snaps.MatchSnapshot(t, out)
}

func TestLoadConfigEmptyPathIsZeroValue(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Color {
		t.Errorf("cfg.Color = true, want false for empty path")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig("/nonexistent/irdump-config.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

package cli

import (
	"testing"

	"github.com/vvka-141/marsquake/pkg/catalog"
)

func TestCatalogPathArgs_None(t *testing.T) {
	if err := CatalogPathArgs(reportCmd, nil); err != nil {
		t.Errorf("Expected no error for zero args, got %v", err)
	}
}

func TestCatalogPathArgs_One(t *testing.T) {
	if err := CatalogPathArgs(reportCmd, []string{"events.xml"}); err != nil {
		t.Errorf("Expected no error for one arg, got %v", err)
	}
}

func TestCatalogPathArgs_TooMany(t *testing.T) {
	err := CatalogPathArgs(reportCmd, []string{"a.xml", "b.xml"})
	if err == nil {
		t.Fatal("Expected error for too many args")
	}
	if code := catalog.ExitCodeForError(err); code != catalog.ExitUsageError {
		t.Errorf("Expected exit code %d (usage), got %d for: %v",
			catalog.ExitUsageError, code, err)
	}
}

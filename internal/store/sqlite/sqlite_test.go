package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/youspace/youspace/internal/store"
	"github.com/youspace/youspace/internal/store/storetest"
)

func TestSQLiteConformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		s, err := New(filepath.Join(t.TempDir(), "youspace.db"))
		if err != nil {
			t.Fatalf("open sqlite: %v", err)
		}
		return s
	})
}

package db

import (
	"path/filepath"
	"testing"
)

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer d.Close()

	// Migrations should have created the messages table.
	var count int
	if err := d.QueryRow("SELECT COUNT(*) FROM contact_messages").Scan(&count); err != nil {
		t.Fatalf("querying contact_messages: %v", err)
	}
	if count != 0 {
		t.Errorf("fresh database should be empty, got %d rows", count)
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "folio.db")

	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer d.Close()

	if _, err := d.Exec("INSERT INTO contact_messages (id, name) VALUES ('a', 'test')"); err != nil {
		t.Errorf("insert: %v", err)
	}
}

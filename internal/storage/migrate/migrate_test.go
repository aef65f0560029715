package migrate

import (
	"context"
	"testing"

	"styr/internal/storage/sqlite"
)

func TestUpIsIdempotent(t *testing.T) {
	db, err := sqlite.OpenMemory(t.Name())
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := Up(ctx, db); err != nil {
			t.Fatalf("migrate run %d: %v", i+1, err)
		}
	}

	version, err := Version(ctx, db)
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if version != 1 {
		t.Fatalf("expected schema version 1, got %d", version)
	}

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&count); err != nil {
		t.Fatalf("query records table: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty records table, got %d rows", count)
	}
}

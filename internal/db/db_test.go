package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func TestDSN_ForeignKeysOnEveryConnection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pmide.db")

	database, err := sql.Open("sqlite3", DSN(path))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	database.SetMaxOpenConns(3)

	// Pin several connections at once so the pool has to hand out
	// distinct ones, then check the pragma on each.
	ctx := context.Background()
	var conns []*sql.Conn
	for i := 0; i < 3; i++ {
		conn, err := database.Conn(ctx)
		if err != nil {
			t.Fatalf("failed to get connection %d: %v", i, err)
		}
		conns = append(conns, conn)
	}
	defer func() {
		for _, conn := range conns {
			conn.Close()
		}
	}()

	for i, conn := range conns {
		var enabled int
		if err := conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled); err != nil {
			t.Fatalf("failed to read pragma on connection %d: %v", i, err)
		}
		if enabled != 1 {
			t.Errorf("expected foreign keys on for connection %d", i)
		}
	}
}

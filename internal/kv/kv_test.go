package kv

import (
	"context"
	"os"
	"testing"
)

func tempFile(t *testing.T) string {
	t.Helper()
	f, err := os.CreateTemp("", "folio-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() {
		os.Remove(f.Name())
		os.Remove(f.Name() + "-wal")
		os.Remove(f.Name() + "-shm")
	})
	return f.Name()
}

func testDB(t *testing.T, path string) *DB {
	t.Helper()
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGetMissing(t *testing.T) {
	db := testDB(t, tempFile(t))
	v, ok, err := db.Get(context.Background(), "nope")
	if err != nil || ok || v != nil {
		t.Errorf("Get = %q, %v, %v", v, ok, err)
	}
}

func TestPutOverwrites(t *testing.T) {
	db := testDB(t, tempFile(t))
	ctx := context.Background()
	if err := db.Put(ctx, "k", []byte("one")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := db.Put(ctx, "k", []byte("two")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	v, ok, err := db.Get(ctx, "k")
	if err != nil || !ok || string(v) != "two" {
		t.Errorf("Get = %q, %v, %v", v, ok, err)
	}
}

func TestSurvivesReopen(t *testing.T) {
	path := tempFile(t)
	ctx := context.Background()

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := db.Put(ctx, "blogLikes", []byte(`{"p1":3}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	db.Close()

	db2 := testDB(t, path)
	v, ok, err := db2.Get(ctx, "blogLikes")
	if err != nil || !ok || string(v) != `{"p1":3}` {
		t.Errorf("Get after reopen = %q, %v, %v", v, ok, err)
	}
}

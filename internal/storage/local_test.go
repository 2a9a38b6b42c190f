package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestLocal_PutGetRoundTrip(t *testing.T) {
	l := NewLocal(t.TempDir())
	ctx := context.Background()

	if err := l.Put(ctx, "a.tsv.gz", []byte("payload")); err != nil {
		t.Fatalf("put: %v", err)
	}
	data, err := l.Get(ctx, "a.tsv.gz")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("got %q, want payload", data)
	}
}

func TestLocal_PutOverwrites(t *testing.T) {
	l := NewLocal(t.TempDir())
	ctx := context.Background()

	if err := l.Put(ctx, "a.tsv", []byte("old")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := l.Put(ctx, "a.tsv", []byte("new")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	data, err := l.Get(ctx, "a.tsv")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(data) != "new" {
		t.Fatalf("got %q, want new", data)
	}
}

func TestLocal_GetMissingIsNotFound(t *testing.T) {
	l := NewLocal(t.TempDir())

	_, err := l.Get(context.Background(), "nope.tsv")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLocal_ExistsMissingIsFalseNotError(t *testing.T) {
	l := NewLocal(t.TempDir())

	ok, err := l.Exists(context.Background(), "nope.tsv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("missing file reported as existing")
	}
}

func TestLocal_DeleteMissingIsNoOp(t *testing.T) {
	l := NewLocal(t.TempDir())

	if err := l.Delete(context.Background(), "nope.tsv"); err != nil {
		t.Fatalf("deleting a missing file should succeed, got %v", err)
	}
}

func TestLocal_ListNeverCreatedRootIsEmpty(t *testing.T) {
	l := NewLocal(filepath.Join(t.TempDir(), "does-not-exist"))

	objects, err := l.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(objects) != 0 {
		t.Fatalf("objects = %v, want empty", objects)
	}
}

func TestLocal_ListSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir)
	ctx := context.Background()

	if err := l.Put(ctx, "a.tsv", []byte("aaa")); err != nil {
		t.Fatalf("put: %v", err)
	}
	nested := NewLocal(filepath.Join(dir, "nested"))
	if err := nested.Ensure(ctx); err != nil {
		t.Fatalf("create nested dir: %v", err)
	}

	objects, err := l.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(objects) != 1 {
		t.Fatalf("objects = %v, want the single file", objects)
	}
	if objects[0].Name != "a.tsv" || objects[0].Size != 3 {
		t.Fatalf("object = %+v", objects[0])
	}
	if objects[0].LastModified.IsZero() {
		t.Fatal("LastModified not set")
	}
}

func TestLocal_EnsureIsIdempotent(t *testing.T) {
	l := NewLocal(filepath.Join(t.TempDir(), "deep", "nested", "dir"))
	ctx := context.Background()

	if err := l.Ensure(ctx); err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	if err := l.Ensure(ctx); err != nil {
		t.Fatalf("second ensure: %v", err)
	}
}

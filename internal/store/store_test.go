package store

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/gofiber/storage/memory/v2"
)

func TestKVStoragePrefix(t *testing.T) {
	backend := memory.New()
	kv := NewKVStorage(backend, "session:")

	if err := kv.Set("abc", []byte("hello"), 0); err != nil {
		t.Fatal(err)
	}

	raw, err := backend.Get("session:abc")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(raw, []byte("hello")) {
		t.Errorf("backend value = %q, want %q", raw, "hello")
	}

	val, err := kv.Get("abc")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(val, []byte("hello")) {
		t.Errorf("Get() = %q, want %q", val, "hello")
	}

	if err := kv.Delete("abc"); err != nil {
		t.Fatal(err)
	}
	if raw, _ := backend.Get("session:abc"); raw != nil {
		t.Errorf("key not deleted, got %q", raw)
	}
}

func TestKVStorageKeepsSharedBackend(t *testing.T) {
	backend := memory.New()
	kv := NewKVStorage(backend, "session:")

	if err := backend.Set("other:key", []byte("keep"), 0); err != nil {
		t.Fatal(err)
	}
	if err := kv.Set("abc", []byte("hello"), 0); err != nil {
		t.Fatal(err)
	}

	if err := kv.Reset(); !errors.Is(err, ErrResetNotSupported) {
		t.Errorf("Reset() error = %v, want %v", err, ErrResetNotSupported)
	}
	if err := kv.Close(); err != nil {
		t.Fatal(err)
	}

	for key, want := range map[string]string{"other:key": "keep", "session:abc": "hello"} {
		val, err := backend.Get(key)
		if err != nil {
			t.Fatal(err)
		}
		if string(val) != want {
			t.Errorf("backend %q = %q, want %q", key, val, want)
		}
	}
}

func TestNewStorageMemory(t *testing.T) {
	storage, err := NewStorage("", time.Second)
	if err != nil {
		t.Fatal(err)
	}
	defer storage.Close()

	if _, ok := storage.(*memory.Storage); !ok {
		t.Errorf("storage type = %T, want *memory.Storage", storage)
	}
}

func TestNewStorageInvalidRedisURL(t *testing.T) {
	if _, err := NewStorage("http://localhost:6379", time.Second); err == nil {
		t.Fatal("expected error for non-redis url")
	}
}

package store

import (
	"errors"
	"testing"
)

func TestUserStoreCreateAndGet(t *testing.T) {
	s := NewUserStore()

	created, err := s.Create("a@example.com", "alice", "hash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated user ID")
	}

	got, err := s.GetByUsername("alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != created {
		t.Fatalf("expected %+v, got %+v", created, got)
	}
	if s.Count() != 1 {
		t.Fatalf("expected 1 user, got %d", s.Count())
	}
}

func TestUserStoreDuplicateUsername(t *testing.T) {
	s := NewUserStore()

	if _, err := s.Create("a@example.com", "alice", "hash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Create("b@example.com", "alice", "hash2"); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestUserStoreUnknownUsername(t *testing.T) {
	s := NewUserStore()

	if _, err := s.GetByUsername("nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

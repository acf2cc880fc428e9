package redis

import (
	"context"
	"errors"
	"testing"

	"justice-play/internal/domain"
)

func TestProfileRepositoryRoundTrip(t *testing.T) {
	mr, client := newMiniredis(t)
	repo := NewProfileRepository(client)
	ctx := context.Background()

	if _, err := repo.Get(ctx, "u1"); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}

	profile := domain.NewUserProfile("u1", "Alice")
	profile.TotalPoints = 30
	profile.AgeTier = domain.AgeTierJunior
	profile.CompleteLevel(domain.AgeTierJunior, 1)
	if err := repo.Put(ctx, profile); err != nil {
		t.Fatalf("put: %v", err)
	}
	if !mr.Exists("profile:u1") {
		t.Fatalf("expected profile key")
	}

	got, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TotalPoints != 30 || got.AgeTier != domain.AgeTierJunior {
		t.Fatalf("unexpected profile %+v", got)
	}
	if !got.HasCompleted(domain.AgeTierJunior, 1) || got.HasCompleted(domain.AgeTierSenior, 1) {
		t.Fatalf("per-tier ledger not preserved: %+v", got.CompletedByTier)
	}
}

func TestProfileRepositorySessionMarker(t *testing.T) {
	mr, client := newMiniredis(t)
	repo := NewProfileRepository(client)
	ctx := context.Background()

	if err := repo.SetSessionActive(ctx, "u1", true); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if !mr.Exists("profile:u1:session") {
		t.Fatalf("expected session marker")
	}
	if err := repo.SetSessionActive(ctx, "u1", false); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if mr.Exists("profile:u1:session") {
		t.Fatalf("expected session marker to be cleared")
	}
}

func TestProfileRepositoryUnavailable(t *testing.T) {
	mr, client := newMiniredis(t)
	repo := NewProfileRepository(client)
	mr.Close()

	err := repo.Put(context.Background(), domain.NewUserProfile("u1", "Alice"))
	if err == nil {
		t.Fatalf("expected write error when redis is down")
	}
}

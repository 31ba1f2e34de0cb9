package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/initium-os/axiom-backend/internal/repos"
	"github.com/initium-os/axiom-backend/internal/types"
)

func newObjectiveService(t *testing.T) (ObjectiveService, uuid.UUID) {
	t.Helper()
	gdb := newTestDB(t)
	log := newTestLogger(t)
	return NewObjectiveService(gdb, log, repos.NewObjectiveRepo(gdb, log)), uuid.New()
}

func validInput() *types.ObjectiveInput {
	return &types.ObjectiveInput{
		Name:       "Run daily",
		Importance: 8,
		Horizon:    "long",
		Type:       "discipline",
	}
}

func TestObjectiveCreate(t *testing.T) {
	svc, userID := newObjectiveService(t)
	ctx := authedContext(userID)

	first, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if first.ID == uuid.Nil {
		t.Fatal("expected a generated id")
	}
	if first.UserID != userID {
		t.Fatalf("objective not owned by caller: %v", first.UserID)
	}
	if !first.IsActive {
		t.Fatal("new objectives must be active")
	}
	if first.Importance != 8 {
		t.Fatalf("unexpected importance: %d", first.Importance)
	}
	if first.CreatedAt.IsZero() || first.UpdatedAt.IsZero() {
		t.Fatal("timestamps must be set on create")
	}

	second, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if second.ID == first.ID {
		t.Fatal("ids must be distinct across creates")
	}
}

func TestObjectiveCreateValidation(t *testing.T) {
	svc, userID := newObjectiveService(t)
	ctx := authedContext(userID)

	cases := []struct {
		name   string
		mutate func(*types.ObjectiveInput)
	}{
		{name: "importance_zero", mutate: func(in *types.ObjectiveInput) { in.Importance = 0 }},
		{name: "importance_eleven", mutate: func(in *types.ObjectiveInput) { in.Importance = 11 }},
		{name: "importance_negative", mutate: func(in *types.ObjectiveInput) { in.Importance = -3 }},
		{name: "bad_horizon", mutate: func(in *types.ObjectiveInput) { in.Horizon = "eternal" }},
		{name: "bad_type", mutate: func(in *types.ObjectiveInput) { in.Type = "vibes" }},
		{name: "empty_name", mutate: func(in *types.ObjectiveInput) { in.Name = "   " }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(input)
			if _, err := svc.Create(ctx, input); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestObjectiveListFiltersInactive(t *testing.T) {
	svc, userID := newObjectiveService(t)
	ctx := authedContext(userID)

	kept, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	dropped, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := svc.Delete(ctx, dropped.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	active, err := svc.List(ctx, true)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(active) != 1 || active[0].ID != kept.ID {
		t.Fatalf("active_only list wrong: %+v", active)
	}
	for _, objective := range active {
		if !objective.IsActive {
			t.Fatal("active_only list returned an inactive objective")
		}
	}

	all, err := svc.List(ctx, false)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected both objectives with active_only=false, got %d", len(all))
	}
}

func TestObjectiveUpdateReplacesMutableFieldsOnly(t *testing.T) {
	svc, userID := newObjectiveService(t)
	ctx := authedContext(userID)

	created, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, &types.ObjectiveInput{
		Name:        "Run twice daily",
		Description: "morning and evening",
		Importance:  10,
		Horizon:     "medium",
		Type:        "growth",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.ID != created.ID || updated.UserID != created.UserID {
		t.Fatal("update must not change identity or ownership")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("update must not change created_at: %v vs %v", updated.CreatedAt, created.CreatedAt)
	}
	if updated.Name != "Run twice daily" || updated.Description != "morning and evening" ||
		updated.Importance != 10 || updated.Horizon != "medium" || updated.Type != "growth" {
		t.Fatalf("mutable fields not replaced: %+v", updated)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) && !updated.UpdatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("updated_at should move forward: %v vs %v", updated.UpdatedAt, created.UpdatedAt)
	}
}

func TestObjectiveUpdateMissing(t *testing.T) {
	svc, userID := newObjectiveService(t)
	if _, err := svc.Update(authedContext(userID), uuid.New(), validInput()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestObjectiveDeleteTwice(t *testing.T) {
	svc, userID := newObjectiveService(t)
	ctx := authedContext(userID)

	created, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("first Delete returned error: %v", err)
	}
	// Soft delete is not idempotent: a second delete reports NotFound.
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Delete should be NotFound, got %v", err)
	}

	// The row survives as inactive.
	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get after delete returned error: %v", err)
	}
	if got.IsActive {
		t.Fatal("deleted objective should be inactive, not gone")
	}
}

func TestObjectiveCrossUserIsolation(t *testing.T) {
	svc, ownerID := newObjectiveService(t)
	owner := authedContext(ownerID)
	stranger := authedContext(uuid.New())

	created, err := svc.Create(owner, validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.Get(stranger, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-user Get should be NotFound, got %v", err)
	}
	if _, err := svc.Update(stranger, created.ID, validInput()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-user Update should be NotFound, got %v", err)
	}
	if err := svc.Delete(stranger, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-user Delete should be NotFound, got %v", err)
	}

	if list, err := svc.List(stranger, false); err != nil || len(list) != 0 {
		t.Fatalf("cross-user List should be empty, got %v %v", list, err)
	}
}

func TestObjectiveRequiresAuthenticatedContext(t *testing.T) {
	svc, _ := newObjectiveService(t)
	if _, err := svc.Create(context.Background(), validInput()); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := svc.List(context.Background(), true); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

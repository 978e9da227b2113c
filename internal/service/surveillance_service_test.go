package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/dto"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/apperrors"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/calendar"
)

func newSurveillanceService() SurveillanceService {
	return NewSurveillanceService(newMockRepository(), zap.NewNop())
}

func surveillanceDraft(position *int) *dto.SurveillanceDraft {
	return &dto.SurveillanceDraft{
		Enseignant: "Dupont",
		Lieu:       "Cour",
		Jour:       calendar.Mardi,
		Position:   position,
		Semaine:    10,
		Annee:      2026,
	}
}

func intPtr(n int) *int { return &n }

func TestAddSurveillanceAssignsNextOrdre(t *testing.T) {
	svc := newSurveillanceService()
	ctx := context.Background()

	first, err := svc.AddSurveillance(ctx, surveillanceDraft(intPtr(2)))
	if err != nil {
		t.Fatalf("AddSurveillance: %v", err)
	}
	if first.Ordre != 1 {
		t.Errorf("first ordre = %d, want 1", first.Ordre)
	}

	second, err := svc.AddSurveillance(ctx, surveillanceDraft(intPtr(2)))
	if err != nil {
		t.Fatal(err)
	}
	if second.Ordre != 2 {
		t.Errorf("second ordre = %d, want 2", second.Ordre)
	}

	// A different anchor starts its own sequence.
	other, err := svc.AddSurveillance(ctx, surveillanceDraft(intPtr(-1)))
	if err != nil {
		t.Fatal(err)
	}
	if other.Ordre != 1 {
		t.Errorf("other-anchor ordre = %d, want 1", other.Ordre)
	}
	if other.Position != -1 {
		t.Errorf("position = %d, want -1", other.Position)
	}
}

func TestAddSurveillanceExplicitOrdreKept(t *testing.T) {
	svc := newSurveillanceService()

	draft := surveillanceDraft(intPtr(0))
	draft.Ordre = intPtr(7)
	sv, err := svc.AddSurveillance(context.Background(), draft)
	if err != nil {
		t.Fatal(err)
	}
	if sv.Ordre != 7 {
		t.Errorf("ordre = %d, want explicit 7", sv.Ordre)
	}
}

func TestAddSurveillanceRequiresAnchor(t *testing.T) {
	svc := newSurveillanceService()

	draft := surveillanceDraft(nil)
	_, err := svc.AddSurveillance(context.Background(), draft)
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error without uhr or position, got %v", err)
	}
}

func TestListSurveillancesSortedByOrdre(t *testing.T) {
	svc := newSurveillanceService()
	ctx := context.Background()

	// Insert out of order.
	for _, ordre := range []int{3, 1, 2} {
		draft := surveillanceDraft(intPtr(0))
		draft.Ordre = intPtr(ordre)
		if _, err := svc.AddSurveillance(ctx, draft); err != nil {
			t.Fatal(err)
		}
	}

	list, err := svc.ListSurveillances(ctx, &dto.SurveillanceFilter{Semaine: 10, Annee: 2026})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 {
		t.Fatalf("got %d entries, want 3", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Ordre > list[i].Ordre {
			t.Fatalf("listing not sorted by ordre: %d before %d", list[i-1].Ordre, list[i].Ordre)
		}
	}
}

func TestUpdateSurveillance(t *testing.T) {
	svc := newSurveillanceService()
	ctx := context.Background()

	sv, err := svc.AddSurveillance(ctx, surveillanceDraft(intPtr(1)))
	if err != nil {
		t.Fatal(err)
	}

	lieu := "Préau"
	updated, err := svc.UpdateSurveillance(ctx, &dto.SurveillancePatch{ID: sv.SurveillanceID, Lieu: &lieu})
	if err != nil {
		t.Fatalf("UpdateSurveillance: %v", err)
	}
	if updated.Lieu != "Préau" {
		t.Errorf("lieu = %q, want %q", updated.Lieu, "Préau")
	}
	if updated.Enseignant != sv.Enseignant {
		t.Error("untouched field changed")
	}
}

func TestDeleteSurveillanceUnknownID(t *testing.T) {
	svc := newSurveillanceService()

	err := svc.DeleteSurveillance(context.Background(), "missing")
	if !apperrors.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

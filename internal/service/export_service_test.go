package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/model"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/repository"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/apperrors"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/calendar"
)

func seedExportFixture(t *testing.T) (*repository.Repository, *model.Uhr, *model.Enseignant) {
	t.Helper()
	repo := newMockRepository()
	ctx := context.Background()

	uhr := &model.Uhr{Nummer: 1, Start: "07:45", Ende: "08:25"}
	if err := repo.Uhr.Create(ctx, uhr); err != nil {
		t.Fatal(err)
	}
	ens := &model.Enseignant{Nom: "Dupont", Prenom: "Marie"}
	if err := repo.Enseignant.Create(ctx, ens); err != nil {
		t.Fatal(err)
	}
	cours := &model.Cours{
		Classe:      "6A",
		Enseignants: model.EnseignantRefs{{ID: ens.EnseignantID, Nom: ens.Nom}},
		Matiere:     "Mathématiques",
		Salle:       "102",
		Jour:        calendar.Lundi,
		Heure:       uhr.Zeitslot(),
		UhrID:       uhr.UhrID,
		Semaine:     12,
		Annee:       2026,
	}
	if err := repo.Cours.Create(ctx, cours); err != nil {
		t.Fatal(err)
	}
	return repo, uhr, ens
}

func TestExportWeekXLSX(t *testing.T) {
	repo, _, _ := seedExportFixture(t)
	svc := NewExportService(repo, zap.NewNop())

	data, err := svc.ExportWeekXLSX(context.Background(), 12, 2026)
	if err != nil {
		t.Fatalf("ExportWeekXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reading workbook back: %v", err)
	}
	defer f.Close()

	sheet := "Semaine 12"
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		t.Fatalf("sheet %q missing, sheets = %v", sheet, f.GetSheetList())
	}

	day, err := f.GetCellValue(sheet, "B2")
	if err != nil {
		t.Fatal(err)
	}
	if day != calendar.Lundi {
		t.Errorf("B2 = %q, want %q", day, calendar.Lundi)
	}

	cell, err := f.GetCellValue(sheet, "B3")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"6A", "Mathématiques", "102", "Dupont"} {
		if !strings.Contains(cell, want) {
			t.Errorf("Monday cell %q misses %q", cell, want)
		}
	}
}

func TestExportWeekXLSXRejectsBadWeek(t *testing.T) {
	repo, _, _ := seedExportFixture(t)
	svc := NewExportService(repo, zap.NewNop())

	if _, err := svc.ExportWeekXLSX(context.Background(), 0, 2026); !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTeacherICS(t *testing.T) {
	repo, _, ens := seedExportFixture(t)
	svc := NewExportService(repo, zap.NewNop())

	feed, err := svc.TeacherICS(context.Background(), ens.EnseignantID, 12, 2026)
	if err != nil {
		t.Fatalf("TeacherICS: %v", err)
	}

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"BEGIN:VEVENT",
		"Mathématiques",
		"LOCATION:102",
		"END:VCALENDAR",
	} {
		if !strings.Contains(feed, want) {
			t.Errorf("feed misses %q", want)
		}
	}
}

func TestTeacherICSMarksCancelled(t *testing.T) {
	repo, uhr, ens := seedExportFixture(t)
	ctx := context.Background()

	cancelled := &model.Cours{
		Classe:      "6B",
		Enseignants: model.EnseignantRefs{{ID: ens.EnseignantID, Nom: ens.Nom}},
		Matiere:     "Histoire",
		Salle:       "201",
		Jour:        calendar.Mardi,
		UhrID:       uhr.UhrID,
		Semaine:     12,
		Annee:       2026,
		Annule:      true,
	}
	if err := repo.Cours.Create(ctx, cancelled); err != nil {
		t.Fatal(err)
	}

	svc := NewExportService(repo, zap.NewNop())
	feed, err := svc.TeacherICS(ctx, ens.EnseignantID, 12, 2026)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(feed, "STATUS:CANCELLED") {
		t.Error("cancelled course not marked in feed")
	}
}

func TestTeacherICSUnknownTeacher(t *testing.T) {
	repo, _, _ := seedExportFixture(t)
	svc := NewExportService(repo, zap.NewNop())

	if _, err := svc.TeacherICS(context.Background(), "missing", 12, 2026); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

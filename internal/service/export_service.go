package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/model"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/repository"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/apperrors"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/calendar"
)

// ExportService renders a planning week as an Excel grid and exposes a
// per-teacher iCalendar feed for external calendar clients.
type ExportService interface {
	ExportWeekXLSX(ctx context.Context, semaine, annee int) ([]byte, error)
	TeacherICS(ctx context.Context, enseignantID string, semaine, annee int) (string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ExportWeekXLSX renders one week of the planning as a spreadsheet:
// one row per time slot ordered by nummer, one column per day, the
// course lines of each cell joined by newlines. Cancelled courses are
// marked instead of hidden so the printout matches the on-screen grid.
func (s *exportService) ExportWeekXLSX(ctx context.Context, semaine, annee int) ([]byte, error) {
	if semaine < 1 || semaine > 53 {
		return nil, apperrors.NewValidation("semaine")
	}

	uhrs, err := s.repo.Uhr.List(ctx)
	if err != nil {
		return nil, err
	}
	cours, err := s.repo.Cours.ListByWeek(ctx, semaine, annee)
	if err != nil {
		return nil, err
	}

	// cell key: uhrID + jour
	cells := make(map[string][]model.Cours)
	for _, c := range cours {
		k := c.UhrID + "|" + c.Jour
		cells[k] = append(cells[k], c)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("Semaine %d", semaine)
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Semaine %d / %d", semaine, annee))
	for i, day := range calendar.Days {
		col, _ := excelize.ColumnNumberToName(i + 2)
		f.SetCellValue(sheet, col+"2", day)
	}
	f.SetColWidth(sheet, "A", "A", 16)
	lastCol, _ := excelize.ColumnNumberToName(len(calendar.Days) + 1)
	f.SetColWidth(sheet, "B", lastCol, 28)

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err == nil {
		f.SetCellStyle(sheet, "A2", lastCol+"2", header)
	}
	wrap, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})

	for row, u := range uhrs {
		r := row + 3
		f.SetCellValue(sheet, fmt.Sprintf("A%d", r), fmt.Sprintf("%d. %s", u.Nummer, u.Zeitslot()))
		for i, day := range calendar.Days {
			col, _ := excelize.ColumnNumberToName(i + 2)
			cell := col + fmt.Sprintf("%d", r)
			if wrap != 0 {
				f.SetCellStyle(sheet, cell, cell, wrap)
			}
			list := cells[u.UhrID+"|"+day]
			if len(list) == 0 {
				continue
			}
			var lines []string
			for _, c := range list {
				lines = append(lines, renderCoursLine(&c))
			}
			f.SetCellValue(sheet, cell, strings.Join(lines, "\n"))
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		s.logger.Error("échec de l'export Excel", zap.Error(err))
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderCoursLine(c *model.Cours) string {
	names := make([]string, 0, len(c.Enseignants))
	for _, e := range c.Enseignants {
		names = append(names, e.Nom)
	}
	line := fmt.Sprintf("%s · %s · %s (%s)", c.Classe, c.Matiere, c.Salle, strings.Join(names, ", "))
	if c.Annule {
		line = "[ANNULÉ] " + line
	} else if c.Remplace && c.RemplacementInfo != "" {
		line += " — " + c.RemplacementInfo
	}
	return line
}

// TeacherICS builds an iCalendar feed of one teacher's courses for a
// given week. Cancelled courses are emitted with STATUS:CANCELLED so
// calendar clients strike them through rather than dropping them.
func (s *exportService) TeacherICS(ctx context.Context, enseignantID string, semaine, annee int) (string, error) {
	ens, err := s.repo.Enseignant.GetByID(ctx, enseignantID)
	if err != nil {
		return "", wrapNotFound(err, "enseignant", enseignantID)
	}

	uhrs, err := s.repo.Uhr.List(ctx)
	if err != nil {
		return "", err
	}
	slots := make(map[string]*model.Uhr, len(uhrs))
	for i := range uhrs {
		slots[uhrs[i].UhrID] = &uhrs[i]
	}

	cours, err := s.repo.Cours.ListByWeek(ctx, semaine, annee)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Geco SchoolPlan//FR")
	cal.SetName(fmt.Sprintf("Cours de %s %s", ens.Prenom, ens.Nom))

	monday := calendar.MondayOfWeek(annee, semaine, time.Local)

	for _, c := range cours {
		if !coursHasEnseignant(&c, enseignantID) {
			continue
		}
		dayIdx := calendar.DayIndex(c.Jour)
		if dayIdx < 0 {
			continue
		}
		slot, ok := slots[c.UhrID]
		if !ok {
			continue
		}
		day := monday.AddDate(0, 0, dayIdx)
		start, okStart := atClock(day, slot.Start)
		end, okEnd := atClock(day, slot.Ende)
		if !okStart || !okEnd {
			continue
		}

		ev := cal.AddEvent(c.CoursID + "@geco-schoolplan")
		ev.SetDtStampTime(time.Now())
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(fmt.Sprintf("%s — %s", c.Matiere, c.Classe))
		ev.SetLocation(c.Salle)
		if c.Commentaire != "" {
			ev.SetDescription(c.Commentaire)
		}
		if c.Annule {
			ev.SetStatus(ics.ObjectStatusCancelled)
		}
	}

	return cal.Serialize(), nil
}

func coursHasEnseignant(c *model.Cours, enseignantID string) bool {
	for _, e := range c.Enseignants {
		if e.ID == enseignantID {
			return true
		}
	}
	return false
}

// atClock combines a date with a "HH:MM" clock string.
func atClock(day time.Time, clock string) (time.Time, bool) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), true
}

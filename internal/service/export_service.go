package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/lhochwald/unterweisung/internal/repository"
	"github.com/rs/zerolog/log"
)

// ExportFilename is the download name of the participant export.
const ExportFilename = "Sicherheitsunterweisung_Teilnehmer.csv"

// utf8BOM lets Excel detect the encoding when opening the export.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var exportHeader = []string{"Name", "Abteilung", "Datum", "Punkte", "Gesamt", "Bestanden"}

type ExportService interface {
	// ParticipantsCSV renders every participation record as a
	// semicolon-delimited CSV with a German header row.
	ParticipantsCSV() ([]byte, error)
}

type exportService struct {
	repo repository.ParticipationRepository
}

func NewExportService(repo repository.ParticipationRepository) ExportService {
	return &exportService{repo: repo}
}

func (s *exportService) ParticipantsCSV() ([]byte, error) {
	participations, err := s.repo.FindAllNewestFirst()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load participations for export")
		return nil, fmt.Errorf("loading participations: %w", err)
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("writing export header: %w", err)
	}
	for _, p := range participations {
		bestanden := "Nein"
		if p.Passed {
			bestanden = "Ja"
		}
		row := []string{p.Name, p.Department, p.Date, strconv.Itoa(p.Score), strconv.Itoa(p.Total), bestanden}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing export row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing export: %w", err)
	}
	return buf.Bytes(), nil
}

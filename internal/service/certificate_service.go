package service

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/lhochwald/unterweisung/config"
	"github.com/lhochwald/unterweisung/internal/model"
	"github.com/lhochwald/unterweisung/internal/repository"
	"github.com/rs/zerolog/log"
)

// DateLayout is the German date format used on certificates, in stored
// records and in filenames.
const DateLayout = "02.01.2006"

// Fixed certificate wording. The layout is a single A4 page with centered
// lines at absolute positions; nothing here ever wraps.
const (
	certHeading = "Zertifikat"
	certOrg     = "Landal Hochwald"
	certProgram = "Allgemeine Sicherheitsunterweisung 2026"
	certIntro   = "Hiermit wird bestätigt, dass"
	certLegal1  = "die Sicherheitsunterweisung gemäß § 12 Arbeitsschutzgesetz"
	certLegal2  = "vollständig absolviert und verstanden hat."
)

// IssuedCertificate is the result of a successful certificate issuance.
type IssuedCertificate struct {
	Filename string
	Path     string
	PDF      []byte
}

type CertificateService interface {
	// Issue renders the certificate PDF, stores a copy under the output
	// directory and persists the participation record. A repeated issuance
	// for the same name on the same day overwrites the stored file.
	Issue(name, department string, result QuizResult) (*IssuedCertificate, error)
}

type certificateService struct {
	outputDir string
	logoPath  string
	repo      repository.ParticipationRepository
}

func NewCertificateService(cfg *config.Config, repo repository.ParticipationRepository) CertificateService {
	return &certificateService{
		outputDir: cfg.Certificate.OutputDir,
		logoPath:  cfg.Certificate.LogoPath,
		repo:      repo,
	}
}

func (s *certificateService) Issue(name, department string, result QuizResult) (*IssuedCertificate, error) {
	date := time.Now().Format(DateLayout)

	pdfBytes, err := s.render(name, department, date)
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("Failed to render certificate PDF")
		return nil, fmt.Errorf("rendering certificate: %w", err)
	}

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating certificate directory: %w", err)
	}

	filename := fmt.Sprintf("Zertifikat_%s_%s.pdf", strings.ReplaceAll(name, " ", "_"), date)
	path := filepath.Join(s.outputDir, filename)
	if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
		return nil, fmt.Errorf("storing certificate file: %w", err)
	}

	participation := &model.Participation{
		Name:            name,
		Department:      department,
		Date:            date,
		Score:           result.Score,
		Total:           result.Total,
		Passed:          result.Passed,
		CertificatePath: path,
	}
	if err := s.repo.Create(participation); err != nil {
		log.Error().Err(err).Str("name", name).Msg("Failed to persist participation record")
		return nil, fmt.Errorf("persisting participation: %w", err)
	}

	log.Info().Str("name", name).Str("path", path).Msg("Certificate issued")
	return &IssuedCertificate{Filename: filename, Path: path, PDF: pdfBytes}, nil
}

// render produces the single-page A4 certificate. Coordinates are points
// measured from the top edge; all lines are centered on the page width.
func (s *certificateService) render(name, department, date string) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	pageW, _ := pdf.GetPageSize()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	centered := func(y float64, text string) {
		pdf.SetXY(0, y)
		pdf.CellFormat(pageW, 20, tr(text), "", 0, "C", false, 0, "")
	}

	// Logo is optional: without the file the certificate is simply rendered
	// text-only.
	if _, err := os.Stat(s.logoPath); err == nil {
		pdf.ImageOptions(s.logoPath, pageW/2-150, 10, 300, 150, false, fpdf.ImageOptions{}, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 24)
	centered(200, certHeading)

	pdf.SetFont("Helvetica", "B", 18)
	centered(240, certOrg)

	pdf.SetFont("Helvetica", "B", 15)
	centered(265, certProgram)

	pdf.SetFont("Helvetica", "", 12)
	centered(320, certIntro)

	pdf.SetFont("Helvetica", "B", 15)
	centered(355, name)

	pdf.SetFont("Helvetica", "", 12)
	centered(385, "Abteilung: "+department)
	centered(430, certLegal1)
	centered(455, certLegal2)
	centered(510, "Datum: "+date)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

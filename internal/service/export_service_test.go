package service

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/lhochwald/unterweisung/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticipantsCSV(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Create(&model.Participation{
		Name: "Anna Schmidt", Department: "Technik", Date: "01.02.2026",
		Score: 5, Total: 5, Passed: true, CertificatePath: "zertifikate/a.pdf",
	}))
	require.NoError(t, repo.Create(&model.Participation{
		Name: "Jonas Weber", Department: "Rezeption", Date: "02.02.2026",
		Score: 2, Total: 5, Passed: false, CertificatePath: "zertifikate/b.pdf",
	}))

	svc := NewExportService(repo)
	data, err := svc.ParticipantsCSV()
	require.NoError(t, err)

	require.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}), "export must carry a UTF-8 BOM")

	r := csv.NewReader(bytes.NewReader(data[3:]))
	r.Comma = ';'
	rows, err := r.ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3, "header plus one row per record")
	assert.Equal(t, []string{"Name", "Abteilung", "Datum", "Punkte", "Gesamt", "Bestanden"}, rows[0])

	// Newest first: Jonas before Anna.
	assert.Equal(t, []string{"Jonas Weber", "Rezeption", "02.02.2026", "2", "5", "Nein"}, rows[1])
	assert.Equal(t, []string{"Anna Schmidt", "Technik", "01.02.2026", "5", "5", "Ja"}, rows[2])
}

func TestParticipantsCSVEmptyTable(t *testing.T) {
	svc := NewExportService(newTestRepo(t))

	data, err := svc.ParticipantsCSV()
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(data[3:]))
	r.Comma = ';'
	rows, err := r.ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1, "only the header")
}

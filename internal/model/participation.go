package model

// Participation is one persisted training run: who took part, how they
// scored and where their certificate ended up. Rows are append-only; there
// is no update or delete path anywhere in the application.
type Participation struct {
	ID              uint   `gorm:"primarykey" json:"id"`
	Name            string `json:"name"`
	Department      string `json:"department"`
	Date            string `json:"date"` // DD.MM.YYYY, server clock at issuance
	Score           int    `json:"score"`
	Total           int    `json:"total"`
	Passed          bool   `json:"passed"`
	CertificatePath string `json:"certificate_path"`
}

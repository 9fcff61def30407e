package repository

import (
	"github.com/lhochwald/unterweisung/internal/model"
	"gorm.io/gorm"
)

// ParticipationRepository persists completed training runs. The table is
// append-only: there is deliberately no update or delete.
type ParticipationRepository interface {
	Create(participation *model.Participation) error
	FindAllNewestFirst() ([]model.Participation, error)
}

type participationRepository struct {
	db *gorm.DB
}

func NewParticipationRepository(db *gorm.DB) ParticipationRepository {
	return &participationRepository{db: db}
}

func (r *participationRepository) Create(participation *model.Participation) error {
	return r.db.Create(participation).Error
}

func (r *participationRepository) FindAllNewestFirst() ([]model.Participation, error) {
	var participations []model.Participation
	if err := r.db.Order("id desc").Find(&participations).Error; err != nil {
		return nil, err
	}
	return participations, nil
}

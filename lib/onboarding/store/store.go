package onboardingstore

import (
	"context"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hr-onboarding-board/models/db"
)

type Provider interface {
	List(ctx context.Context) ([]dbmodels.Onboarding, error)
	Count() (int64, error)
	Create(rec dbmodels.Onboarding) (id string, err error)
	CreateCandidate(rec dbmodels.Candidate) (id string, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) List(ctx context.Context) ([]dbmodels.Onboarding, error) {
	var result []dbmodels.Onboarding
	err := i.db.WithContext(ctx).
		Model(&dbmodels.Onboarding{}).
		Preload("Candidate").
		Order("created_at desc").
		Find(&result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка онбордингов")
	}
	return result, nil
}

func (i impl) Count() (int64, error) {
	var rowCount int64
	err := i.db.Model(&dbmodels.Onboarding{}).Count(&rowCount).Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка подсчета онбордингов")
	}
	return rowCount, nil
}

func (i impl) Create(rec dbmodels.Onboarding) (id string, err error) {
	err = i.db.Omit("Candidate").Create(&rec).Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка добавления онбординга")
	}
	return rec.ID, nil
}

func (i impl) CreateCandidate(rec dbmodels.Candidate) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка добавления кандидата")
	}
	return rec.ID, nil
}

package dbmodels

import "github.com/lib/pq"

type Onboarding struct {
	BaseModel
	CandidateID *string    `gorm:"type:uuid;index"`
	Candidate   *Candidate `gorm:"foreignKey:CandidateID"`
	// свободная строка, приходит из HR-процессов как есть
	Status string `gorm:"type:varchar(255)"`
	// хранится строкой, может быть пустой или некорректной
	StartDate          *string        `gorm:"type:varchar(64)"`
	DocumentsCompleted bool           `gorm:"default:false"`
	PendingDocuments   pq.StringArray `gorm:"type:text[]"`
}

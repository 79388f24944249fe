package dbmodels

type Candidate struct {
	BaseModel
	Name string `gorm:"type:varchar(255)"`
}

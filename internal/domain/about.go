package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// About is the bio section of the site. Like Story it is a singleton.
type About struct {
	ID        uuid.UUID                   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Bio       string                      `json:"bio" gorm:"not null"`
	Skills    datatypes.JSONSlice[string] `json:"skills" gorm:"type:jsonb"`
	ImageURL  string                      `json:"image"`
	CreatedAt time.Time                   `json:"createdAt"`
	UpdatedAt time.Time                   `json:"updatedAt"`
}

func (About) TableName() string {
	return "about"
}

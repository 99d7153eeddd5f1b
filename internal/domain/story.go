package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Highlight struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Value string `json:"value"`
	Color string `json:"color"`
	Glow  string `json:"glow"`
}

type Chapter struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
	Order int      `json:"order"`
}

// Story is a singleton: at most one row exists.
type Story struct {
	ID             uuid.UUID                      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Highlights     datatypes.JSONSlice[Highlight] `json:"highlights" gorm:"type:jsonb"`
	Chapters       datatypes.JSONSlice[Chapter]   `json:"chapters" gorm:"type:jsonb"`
	SignatureQuote string                         `json:"signatureQuote"`
	SignatureTags  datatypes.JSONSlice[string]    `json:"signatureTags" gorm:"type:jsonb"`
	CreatedAt      time.Time                      `json:"createdAt"`
	UpdatedAt      time.Time                      `json:"updatedAt"`
}

func (Story) TableName() string {
	return "stories"
}

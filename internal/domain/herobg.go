package domain

import (
	"time"

	"github.com/google/uuid"
)

type HeroBgImage struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ImageURL  string    `json:"imageUrl" gorm:"not null"`
	Label     string    `json:"label"`
	RemoteID  string    `json:"remoteId"` // object key on the remote host, empty for local files
	Active    bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (HeroBgImage) TableName() string {
	return "hero_bg_images"
}

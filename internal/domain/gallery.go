package domain

import (
	"time"

	"github.com/google/uuid"
)

// Camera metadata used when a gallery upload omits it.
const (
	DefaultISO      = "ISO 100"
	DefaultShutter  = "1/250s"
	DefaultAperture = "f/2.8"
)

type GalleryImage struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title     string    `json:"title" gorm:"not null"`
	Category  string    `json:"category" gorm:"not null"`
	ISO       string    `json:"iso" gorm:"column:iso;not null"`
	Shutter   string    `json:"shutter" gorm:"not null"`
	Aperture  string    `json:"aperture" gorm:"not null"`
	ImageURL  string    `json:"imageUrl" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}

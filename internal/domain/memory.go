package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MemoryCategory string

const (
	MemoryCategoryTravel    MemoryCategory = "Travel"
	MemoryCategoryNature    MemoryCategory = "Nature"
	MemoryCategoryFriends   MemoryCategory = "Friends"
	MemoryCategoryFamily    MemoryCategory = "Family"
	MemoryCategoryMoments   MemoryCategory = "Moments"
	MemoryCategoryAdventure MemoryCategory = "Adventure"
)

var MemoryCategories = []MemoryCategory{
	MemoryCategoryTravel,
	MemoryCategoryNature,
	MemoryCategoryFriends,
	MemoryCategoryFamily,
	MemoryCategoryMoments,
	MemoryCategoryAdventure,
}

func (c MemoryCategory) IsValid() bool {
	for _, v := range MemoryCategories {
		if v == c {
			return true
		}
	}
	return false
}

type Memory struct {
	ID        uuid.UUID                   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title     string                      `json:"title" gorm:"not null"`
	Location  string                      `json:"location" gorm:"not null"`
	Date      string                      `json:"date" gorm:"not null"` // free text, e.g. "Summer 2024"
	Category  MemoryCategory              `json:"category" gorm:"type:varchar(32);not null"`
	Quote     string                      `json:"quote" gorm:"not null"`
	ImageURL  string                      `json:"imageUrl" gorm:"not null"`
	Gallery   datatypes.JSONSlice[string] `json:"gallery" gorm:"type:jsonb"`
	CreatedAt time.Time                   `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time                   `json:"updatedAt"`
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

type ThoughtCategory string

const (
	ThoughtCategoryMindset     ThoughtCategory = "Mindset"
	ThoughtCategoryPhilosophy  ThoughtCategory = "Philosophy"
	ThoughtCategoryDesign      ThoughtCategory = "Design"
	ThoughtCategoryGrowth      ThoughtCategory = "Growth"
	ThoughtCategoryLife        ThoughtCategory = "Life"
	ThoughtCategoryEngineering ThoughtCategory = "Engineering"
)

var ThoughtCategories = []ThoughtCategory{
	ThoughtCategoryMindset,
	ThoughtCategoryPhilosophy,
	ThoughtCategoryDesign,
	ThoughtCategoryGrowth,
	ThoughtCategoryLife,
	ThoughtCategoryEngineering,
}

func (c ThoughtCategory) IsValid() bool {
	for _, v := range ThoughtCategories {
		if v == c {
			return true
		}
	}
	return false
}

// ThoughtGradients is the palette a thought card draws from when no gradient
// is supplied.
var ThoughtGradients = []string{
	"from-violet-600 to-indigo-600",
	"from-pink-500 to-purple-500",
	"from-blue-500 to-cyan-500",
	"from-amber-500 to-orange-500",
	"from-emerald-500 to-teal-500",
	"from-rose-500 to-red-500",
}

// ThoughtDateLayout formats the server-assigned publish date.
const ThoughtDateLayout = "Jan 2, 2006"

type Thought struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title     string          `json:"title" gorm:"not null"`
	Excerpt   string          `json:"excerpt" gorm:"not null"`
	Content   string          `json:"content" gorm:"type:text;not null"`
	Category  ThoughtCategory `json:"category" gorm:"type:varchar(32);not null"`
	ReadTime  string          `json:"readTime" gorm:"not null"`
	Date      string          `json:"date" gorm:"not null"`
	Gradient  string          `json:"gradient" gorm:"not null"`
	CreatedAt time.Time       `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

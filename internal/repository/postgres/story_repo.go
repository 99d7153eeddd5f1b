package postgres

import (
	"context"

	"github.com/dheerajjx/portfolio/internal/domain"
	"gorm.io/gorm"
)

type storyRepository struct {
	db   *gorm.DB
	docs documents[domain.Story]
}

func NewStoryRepository(db *gorm.DB) *storyRepository {
	return &storyRepository{db: db, docs: documents[domain.Story]{db: db, kind: "story"}}
}

// Get returns the oldest story row; there is normally exactly one.
func (r *storyRepository) Get(ctx context.Context) (*domain.Story, error) {
	var story domain.Story
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&story).Error
	if err != nil {
		return nil, r.docs.translate(err, "singleton")
	}
	return &story, nil
}

func (r *storyRepository) Create(ctx context.Context, story *domain.Story) error {
	return r.docs.create(ctx, story)
}

func (r *storyRepository) Update(ctx context.Context, story *domain.Story) error {
	return r.docs.update(ctx, story)
}

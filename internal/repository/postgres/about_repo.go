package postgres

import (
	"context"

	"github.com/dheerajjx/portfolio/internal/domain"
	"gorm.io/gorm"
)

type aboutRepository struct {
	db   *gorm.DB
	docs documents[domain.About]
}

func NewAboutRepository(db *gorm.DB) *aboutRepository {
	return &aboutRepository{db: db, docs: documents[domain.About]{db: db, kind: "about"}}
}

func (r *aboutRepository) Get(ctx context.Context) (*domain.About, error) {
	var about domain.About
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&about).Error
	if err != nil {
		return nil, r.docs.translate(err, "singleton")
	}
	return &about, nil
}

func (r *aboutRepository) Create(ctx context.Context, about *domain.About) error {
	return r.docs.create(ctx, about)
}

func (r *aboutRepository) Update(ctx context.Context, about *domain.About) error {
	return r.docs.update(ctx, about)
}

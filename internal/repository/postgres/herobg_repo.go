package postgres

import (
	"context"

	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type heroBgRepository struct {
	docs documents[domain.HeroBgImage]
}

func NewHeroBgRepository(db *gorm.DB) *heroBgRepository {
	return &heroBgRepository{docs: documents[domain.HeroBgImage]{db: db, kind: "hero background"}}
}

func (r *heroBgRepository) Create(ctx context.Context, image *domain.HeroBgImage) error {
	return r.docs.create(ctx, image)
}

func (r *heroBgRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.HeroBgImage, error) {
	return r.docs.getByID(ctx, id)
}

func (r *heroBgRepository) List(ctx context.Context) ([]*domain.HeroBgImage, error) {
	return r.docs.list(ctx)
}

func (r *heroBgRepository) ListActive(ctx context.Context) ([]*domain.HeroBgImage, error) {
	return r.docs.list(ctx, "active = ?", true)
}

func (r *heroBgRepository) Update(ctx context.Context, image *domain.HeroBgImage) error {
	return r.docs.update(ctx, image)
}

func (r *heroBgRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.docs.delete(ctx, id)
}

func (r *heroBgRepository) Count(ctx context.Context) (int64, error) {
	return r.docs.count(ctx)
}

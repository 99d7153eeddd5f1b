package postgres

import (
	"context"

	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type thoughtRepository struct {
	docs documents[domain.Thought]
}

func NewThoughtRepository(db *gorm.DB) *thoughtRepository {
	return &thoughtRepository{docs: documents[domain.Thought]{db: db, kind: "thought"}}
}

func (r *thoughtRepository) Create(ctx context.Context, thought *domain.Thought) error {
	return r.docs.create(ctx, thought)
}

func (r *thoughtRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Thought, error) {
	return r.docs.getByID(ctx, id)
}

func (r *thoughtRepository) List(ctx context.Context) ([]*domain.Thought, error) {
	return r.docs.list(ctx)
}

func (r *thoughtRepository) Update(ctx context.Context, thought *domain.Thought) error {
	return r.docs.update(ctx, thought)
}

func (r *thoughtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.docs.delete(ctx, id)
}

func (r *thoughtRepository) Count(ctx context.Context) (int64, error) {
	return r.docs.count(ctx)
}

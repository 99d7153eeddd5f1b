package postgres

import (
	"context"

	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type memoryRepository struct {
	docs documents[domain.Memory]
}

func NewMemoryRepository(db *gorm.DB) *memoryRepository {
	return &memoryRepository{docs: documents[domain.Memory]{db: db, kind: "memory"}}
}

func (r *memoryRepository) Create(ctx context.Context, memory *domain.Memory) error {
	return r.docs.create(ctx, memory)
}

func (r *memoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Memory, error) {
	return r.docs.getByID(ctx, id)
}

func (r *memoryRepository) List(ctx context.Context) ([]*domain.Memory, error) {
	return r.docs.list(ctx)
}

func (r *memoryRepository) Update(ctx context.Context, memory *domain.Memory) error {
	return r.docs.update(ctx, memory)
}

func (r *memoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.docs.delete(ctx, id)
}

func (r *memoryRepository) Count(ctx context.Context) (int64, error) {
	return r.docs.count(ctx)
}

package postgres

import (
	"context"

	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type galleryRepository struct {
	docs documents[domain.GalleryImage]
}

func NewGalleryRepository(db *gorm.DB) *galleryRepository {
	return &galleryRepository{docs: documents[domain.GalleryImage]{db: db, kind: "gallery image"}}
}

func (r *galleryRepository) Create(ctx context.Context, image *domain.GalleryImage) error {
	return r.docs.create(ctx, image)
}

func (r *galleryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.GalleryImage, error) {
	return r.docs.getByID(ctx, id)
}

func (r *galleryRepository) List(ctx context.Context) ([]*domain.GalleryImage, error) {
	return r.docs.list(ctx)
}

func (r *galleryRepository) Update(ctx context.Context, image *domain.GalleryImage) error {
	return r.docs.update(ctx, image)
}

func (r *galleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.docs.delete(ctx, id)
}

func (r *galleryRepository) Count(ctx context.Context) (int64, error) {
	return r.docs.count(ctx)
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// documents holds the CRUD shared by every content table. Lists are
// newest-first by creation time.
type documents[T any] struct {
	db   *gorm.DB
	kind string
}

func (d documents[T]) create(ctx context.Context, doc *T) error {
	return d.db.WithContext(ctx).Create(doc).Error
}

func (d documents[T]) getByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var doc T
	err := d.db.WithContext(ctx).First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, d.translate(err, id.String())
	}
	return &doc, nil
}

func (d documents[T]) list(ctx context.Context, where ...any) ([]*T, error) {
	docs := make([]*T, 0)
	q := d.db.WithContext(ctx).Order("created_at DESC")
	if len(where) > 0 {
		q = q.Where(where[0], where[1:]...)
	}
	if err := q.Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (d documents[T]) update(ctx context.Context, doc *T) error {
	return d.db.WithContext(ctx).Save(doc).Error
}

func (d documents[T]) delete(ctx context.Context, id uuid.UUID) error {
	res := d.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s %s: %w", d.kind, id, domain.ErrNotFound)
	}
	return nil
}

func (d documents[T]) count(ctx context.Context) (int64, error) {
	var n int64
	err := d.db.WithContext(ctx).Model(new(T)).Count(&n).Error
	return n, err
}

func (d documents[T]) translate(err error, key string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %s: %w", d.kind, key, domain.ErrNotFound)
	}
	return err
}

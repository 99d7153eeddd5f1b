package repository

import (
	"context"

	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/google/uuid"
)

// Implementations return domain.ErrNotFound (possibly wrapped) for unknown
// ids or emails.

type AdminRepository interface {
	Create(ctx context.Context, account *domain.AdminAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AdminAccount, error)
	GetByEmail(ctx context.Context, email string) (*domain.AdminAccount, error)
	Update(ctx context.Context, account *domain.AdminAccount) error
	// RecordFailedAttempt bumps the wrong-code counter and returns the new count.
	RecordFailedAttempt(ctx context.Context, id uuid.UUID) (int, error)
}

type MemoryRepository interface {
	Create(ctx context.Context, memory *domain.Memory) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Memory, error)
	List(ctx context.Context) ([]*domain.Memory, error)
	Update(ctx context.Context, memory *domain.Memory) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type ThoughtRepository interface {
	Create(ctx context.Context, thought *domain.Thought) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Thought, error)
	List(ctx context.Context) ([]*domain.Thought, error)
	Update(ctx context.Context, thought *domain.Thought) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type GalleryRepository interface {
	Create(ctx context.Context, image *domain.GalleryImage) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GalleryImage, error)
	List(ctx context.Context) ([]*domain.GalleryImage, error)
	Update(ctx context.Context, image *domain.GalleryImage) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type HeroBgRepository interface {
	Create(ctx context.Context, image *domain.HeroBgImage) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.HeroBgImage, error)
	List(ctx context.Context) ([]*domain.HeroBgImage, error)
	ListActive(ctx context.Context) ([]*domain.HeroBgImage, error)
	Update(ctx context.Context, image *domain.HeroBgImage) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type StoryRepository interface {
	// Get returns the singleton story or domain.ErrNotFound.
	Get(ctx context.Context) (*domain.Story, error)
	Create(ctx context.Context, story *domain.Story) error
	Update(ctx context.Context, story *domain.Story) error
}

type AboutRepository interface {
	// Get returns the singleton about document or domain.ErrNotFound.
	Get(ctx context.Context) (*domain.About, error)
	Create(ctx context.Context, about *domain.About) error
	Update(ctx context.Context, about *domain.About) error
}

type Repositories struct {
	Admin   AdminRepository
	Memory  MemoryRepository
	Thought ThoughtRepository
	Gallery GalleryRepository
	HeroBg  HeroBgRepository
	Story   StoryRepository
	About   AboutRepository
}

package service

import (
	"context"
	"fmt"

	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/dheerajjx/portfolio/internal/media"
	"github.com/dheerajjx/portfolio/internal/repository"
	"github.com/google/uuid"
)

type HeroBgInput struct {
	Label  *string
	Active *bool
	Image  *media.LocalFile
}

type HeroBgService struct {
	heroBgRepo repository.HeroBgRepository
	media      MediaStore
	events     Publisher
}

func NewHeroBgService(heroBgRepo repository.HeroBgRepository, media MediaStore, events Publisher) *HeroBgService {
	return &HeroBgService{
		heroBgRepo: heroBgRepo,
		media:      media,
		events:     events,
	}
}

// ListActive returns the rotation pool, newest first.
func (s *HeroBgService) ListActive(ctx context.Context) ([]*domain.HeroBgImage, error) {
	return s.heroBgRepo.ListActive(ctx)
}

// ListAll includes inactive images for the dashboard.
func (s *HeroBgService) ListAll(ctx context.Context) ([]*domain.HeroBgImage, error) {
	return s.heroBgRepo.List(ctx)
}

func (s *HeroBgService) Create(ctx context.Context, input HeroBgInput) (*domain.HeroBgImage, error) {
	if input.Image == nil {
		return nil, domain.MissingFields("image")
	}

	asset := s.media.Ingest(ctx, heroBgFolder, *input.Image)

	image := &domain.HeroBgImage{
		ID:       uuid.New(),
		ImageURL: asset.URL,
		Label:    value(input.Label),
		RemoteID: asset.RemoteID,
		Active:   true,
	}
	if err := s.heroBgRepo.Create(ctx, image); err != nil {
		return nil, fmt.Errorf("create hero background: %w", err)
	}
	if input.Active != nil && !*input.Active {
		// The column default would override a false value on insert.
		image.Active = false
		if err := s.heroBgRepo.Update(ctx, image); err != nil {
			return nil, fmt.Errorf("create hero background: %w", err)
		}
	}

	s.events.Publish(domain.EventHeroBgCreated, image)
	return image, nil
}

// Update changes the label or active flag. A new image replaces the stored
// one and the previous remote asset is removed.
func (s *HeroBgService) Update(ctx context.Context, id uuid.UUID, input HeroBgInput) (*domain.HeroBgImage, error) {
	image, err := s.heroBgRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merge(&image.Label, input.Label)
	if input.Active != nil {
		image.Active = *input.Active
	}

	var replaced string
	if input.Image != nil {
		asset := s.media.Ingest(ctx, heroBgFolder, *input.Image)
		replaced = image.RemoteID
		image.ImageURL = asset.URL
		image.RemoteID = asset.RemoteID
	}

	if err := s.heroBgRepo.Update(ctx, image); err != nil {
		return nil, fmt.Errorf("update hero background: %w", err)
	}
	if replaced != "" {
		s.media.Remove(ctx, replaced)
	}

	s.events.Publish(domain.EventHeroBgUpdated, image)
	return image, nil
}

// Delete removes the image. Cleanup of the remote asset is best-effort and
// never fails the delete.
func (s *HeroBgService) Delete(ctx context.Context, id uuid.UUID) error {
	image, err := s.heroBgRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.heroBgRepo.Delete(ctx, id); err != nil {
		return err
	}
	if image.RemoteID != "" {
		s.media.Remove(ctx, image.RemoteID)
	}

	s.events.Publish(domain.EventHeroBgDeleted, domain.DeletedPayload{ID: id.String()})
	return nil
}

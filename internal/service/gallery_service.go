package service

import (
	"context"
	"fmt"

	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/dheerajjx/portfolio/internal/media"
	"github.com/dheerajjx/portfolio/internal/repository"
	"github.com/google/uuid"
)

type GalleryInput struct {
	Title    *string
	Category *string
	ISO      *string
	Shutter  *string
	Aperture *string
	Image    *media.LocalFile
}

type GalleryService struct {
	galleryRepo repository.GalleryRepository
	media       MediaStore
	events      Publisher
}

func NewGalleryService(galleryRepo repository.GalleryRepository, media MediaStore, events Publisher) *GalleryService {
	return &GalleryService{
		galleryRepo: galleryRepo,
		media:       media,
		events:      events,
	}
}

func (s *GalleryService) List(ctx context.Context) ([]*domain.GalleryImage, error) {
	return s.galleryRepo.List(ctx)
}

func (s *GalleryService) Create(ctx context.Context, input GalleryInput) (*domain.GalleryImage, error) {
	missing := requireFields(field{"title", input.Title}, field{"category", input.Category})
	if input.Image == nil {
		missing = append(missing, "image")
	}
	if err := domain.MissingFields(missing...); err != nil {
		return nil, err
	}

	asset := s.media.Ingest(ctx, galleryFolder, *input.Image)

	image := &domain.GalleryImage{
		ID:       uuid.New(),
		Title:    value(input.Title),
		Category: value(input.Category),
		ISO:      valueOr(input.ISO, domain.DefaultISO),
		Shutter:  valueOr(input.Shutter, domain.DefaultShutter),
		Aperture: valueOr(input.Aperture, domain.DefaultAperture),
		ImageURL: asset.URL,
	}
	if err := s.galleryRepo.Create(ctx, image); err != nil {
		return nil, fmt.Errorf("create gallery image: %w", err)
	}

	s.events.Publish(domain.EventGalleryCreated, image)
	return image, nil
}

// Update merges supplied fields. Blank camera fields reset to their defaults.
func (s *GalleryService) Update(ctx context.Context, id uuid.UUID, input GalleryInput) (*domain.GalleryImage, error) {
	image, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.MissingFields(suppliedBlank(field{"title", input.Title}, field{"category", input.Category})...); err != nil {
		return nil, err
	}

	merge(&image.Title, input.Title)
	merge(&image.Category, input.Category)
	if input.ISO != nil {
		image.ISO = valueOr(input.ISO, domain.DefaultISO)
	}
	if input.Shutter != nil {
		image.Shutter = valueOr(input.Shutter, domain.DefaultShutter)
	}
	if input.Aperture != nil {
		image.Aperture = valueOr(input.Aperture, domain.DefaultAperture)
	}
	if input.Image != nil {
		image.ImageURL = s.media.Ingest(ctx, galleryFolder, *input.Image).URL
	}

	if err := s.galleryRepo.Update(ctx, image); err != nil {
		return nil, fmt.Errorf("update gallery image: %w", err)
	}

	s.events.Publish(domain.EventGalleryUpdated, image)
	return image, nil
}

func (s *GalleryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.galleryRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.events.Publish(domain.EventGalleryDeleted, domain.DeletedPayload{ID: id.String()})
	return nil
}

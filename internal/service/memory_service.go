package service

import (
	"context"
	"fmt"

	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/dheerajjx/portfolio/internal/media"
	"github.com/dheerajjx/portfolio/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MemoryInput carries the fields of a create or update request. Nil fields
// were not supplied.
type MemoryInput struct {
	Title    *string
	Location *string
	Date     *string
	Category *string
	Quote    *string
	Image    *media.LocalFile
	Gallery  []media.LocalFile
}

func (in MemoryInput) fields() []field {
	return []field{
		{"title", in.Title},
		{"location", in.Location},
		{"date", in.Date},
		{"category", in.Category},
		{"quote", in.Quote},
	}
}

type MemoryService struct {
	memoryRepo repository.MemoryRepository
	media      MediaStore
	events     Publisher
}

func NewMemoryService(memoryRepo repository.MemoryRepository, media MediaStore, events Publisher) *MemoryService {
	return &MemoryService{
		memoryRepo: memoryRepo,
		media:      media,
		events:     events,
	}
}

func (s *MemoryService) List(ctx context.Context) ([]*domain.Memory, error) {
	return s.memoryRepo.List(ctx)
}

func (s *MemoryService) Get(ctx context.Context, id uuid.UUID) (*domain.Memory, error) {
	return s.memoryRepo.GetByID(ctx, id)
}

func (s *MemoryService) Create(ctx context.Context, input MemoryInput) (*domain.Memory, error) {
	missing := requireFields(input.fields()...)
	if input.Image == nil {
		missing = append(missing, "image")
	}
	if err := domain.MissingFields(missing...); err != nil {
		return nil, err
	}
	category := domain.MemoryCategory(value(input.Category))
	if !category.IsValid() {
		return nil, domain.Invalid(fmt.Sprintf("unknown memory category %q", category))
	}

	cover := s.media.Ingest(ctx, memoryFolder, *input.Image)
	gallery := media.URLs(s.media.IngestAll(ctx, memoryFolder, input.Gallery))

	memory := &domain.Memory{
		ID:       uuid.New(),
		Title:    value(input.Title),
		Location: value(input.Location),
		Date:     value(input.Date),
		Category: category,
		Quote:    value(input.Quote),
		ImageURL: cover.URL,
		Gallery:  datatypes.NewJSONSlice(gallery),
	}
	if err := s.memoryRepo.Create(ctx, memory); err != nil {
		return nil, fmt.Errorf("create memory: %w", err)
	}

	s.events.Publish(domain.EventMemoryCreated, memory)
	return memory, nil
}

// Update merges the supplied fields over the stored memory. A new image
// replaces the cover; new gallery files replace the gallery list.
func (s *MemoryService) Update(ctx context.Context, id uuid.UUID, input MemoryInput) (*domain.Memory, error) {
	memory, err := s.memoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.MissingFields(suppliedBlank(input.fields()...)...); err != nil {
		return nil, err
	}
	if input.Category != nil {
		category := domain.MemoryCategory(value(input.Category))
		if !category.IsValid() {
			return nil, domain.Invalid(fmt.Sprintf("unknown memory category %q", category))
		}
		memory.Category = category
	}

	merge(&memory.Title, input.Title)
	merge(&memory.Location, input.Location)
	merge(&memory.Date, input.Date)
	merge(&memory.Quote, input.Quote)

	if input.Image != nil {
		memory.ImageURL = s.media.Ingest(ctx, memoryFolder, *input.Image).URL
	}
	if len(input.Gallery) > 0 {
		memory.Gallery = datatypes.NewJSONSlice(media.URLs(s.media.IngestAll(ctx, memoryFolder, input.Gallery)))
	}

	if err := s.memoryRepo.Update(ctx, memory); err != nil {
		return nil, fmt.Errorf("update memory: %w", err)
	}

	s.events.Publish(domain.EventMemoryUpdated, memory)
	return memory, nil
}

func (s *MemoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.memoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.events.Publish(domain.EventMemoryDeleted, domain.DeletedPayload{ID: id.String()})
	return nil
}

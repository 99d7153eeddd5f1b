package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/dheerajjx/portfolio/internal/repository"
	"github.com/google/uuid"
)

type ThoughtInput struct {
	Title    *string
	Excerpt  *string
	Content  *string
	Category *string
	ReadTime *string
	Gradient *string
}

func (in ThoughtInput) fields() []field {
	return []field{
		{"title", in.Title},
		{"excerpt", in.Excerpt},
		{"content", in.Content},
		{"category", in.Category},
		{"readTime", in.ReadTime},
	}
}

type ThoughtService struct {
	thoughtRepo repository.ThoughtRepository
	events      Publisher
	now         func() time.Time
}

func NewThoughtService(thoughtRepo repository.ThoughtRepository, events Publisher) *ThoughtService {
	return &ThoughtService{
		thoughtRepo: thoughtRepo,
		events:      events,
		now:         time.Now,
	}
}

func (s *ThoughtService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *ThoughtService) List(ctx context.Context) ([]*domain.Thought, error) {
	return s.thoughtRepo.List(ctx)
}

// Create stores a new essay. The publish date is assigned here and a gradient
// is drawn from the palette when none is given.
func (s *ThoughtService) Create(ctx context.Context, input ThoughtInput) (*domain.Thought, error) {
	if err := domain.MissingFields(requireFields(input.fields()...)...); err != nil {
		return nil, err
	}
	category := domain.ThoughtCategory(value(input.Category))
	if !category.IsValid() {
		return nil, domain.Invalid(fmt.Sprintf("unknown thought category %q", category))
	}

	thought := &domain.Thought{
		ID:       uuid.New(),
		Title:    value(input.Title),
		Excerpt:  value(input.Excerpt),
		Content:  value(input.Content),
		Category: category,
		ReadTime: value(input.ReadTime),
		Date:     s.now().Format(domain.ThoughtDateLayout),
		Gradient: valueOr(input.Gradient, randomGradient()),
	}
	if err := s.thoughtRepo.Create(ctx, thought); err != nil {
		return nil, fmt.Errorf("create thought: %w", err)
	}

	s.events.Publish(domain.EventThoughtCreated, thought)
	return thought, nil
}

func (s *ThoughtService) Update(ctx context.Context, id uuid.UUID, input ThoughtInput) (*domain.Thought, error) {
	thought, err := s.thoughtRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.MissingFields(suppliedBlank(input.fields()...)...); err != nil {
		return nil, err
	}
	if input.Category != nil {
		category := domain.ThoughtCategory(value(input.Category))
		if !category.IsValid() {
			return nil, domain.Invalid(fmt.Sprintf("unknown thought category %q", category))
		}
		thought.Category = category
	}

	merge(&thought.Title, input.Title)
	merge(&thought.Excerpt, input.Excerpt)
	merge(&thought.Content, input.Content)
	merge(&thought.ReadTime, input.ReadTime)
	if value(input.Gradient) != "" {
		thought.Gradient = value(input.Gradient)
	}

	if err := s.thoughtRepo.Update(ctx, thought); err != nil {
		return nil, fmt.Errorf("update thought: %w", err)
	}

	s.events.Publish(domain.EventThoughtUpdated, thought)
	return thought, nil
}

func (s *ThoughtService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.thoughtRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.events.Publish(domain.EventThoughtDeleted, domain.DeletedPayload{ID: id.String()})
	return nil
}

func randomGradient() string {
	return domain.ThoughtGradients[rand.IntN(len(domain.ThoughtGradients))]
}

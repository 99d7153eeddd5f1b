package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/dheerajjx/portfolio/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StoryInput holds the replaceable parts of the story. A nil field is left
// untouched.
type StoryInput struct {
	Highlights     *[]domain.Highlight `json:"highlights"`
	Chapters       *[]domain.Chapter   `json:"chapters"`
	SignatureQuote *string             `json:"signatureQuote"`
	SignatureTags  *[]string           `json:"signatureTags"`
}

type StoryService struct {
	storyRepo repository.StoryRepository
	events    Publisher
}

func NewStoryService(storyRepo repository.StoryRepository, events Publisher) *StoryService {
	return &StoryService{
		storyRepo: storyRepo,
		events:    events,
	}
}

// Get returns the story, seeding and persisting the defaults on first read.
func (s *StoryService) Get(ctx context.Context) (*domain.Story, error) {
	story, err := s.storyRepo.Get(ctx)
	if err == nil {
		return story, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	story = defaultStory()
	story.ID = uuid.New()
	if err := s.storyRepo.Create(ctx, story); err != nil {
		return nil, fmt.Errorf("seed story: %w", err)
	}
	return story, nil
}

// Replace overwrites each supplied part. With no stored story the defaults
// are used for whatever is not supplied.
func (s *StoryService) Replace(ctx context.Context, input StoryInput) (*domain.Story, error) {
	story, err := s.storyRepo.Get(ctx)
	created := false
	if errors.Is(err, domain.ErrNotFound) {
		story = defaultStory()
		story.ID = uuid.New()
		created = true
	} else if err != nil {
		return nil, err
	}

	if input.Highlights != nil {
		story.Highlights = datatypes.NewJSONSlice(nonNil(*input.Highlights))
	}
	if input.Chapters != nil {
		chapters := nonNil(*input.Chapters)
		sort.SliceStable(chapters, func(i, j int) bool { return chapters[i].Order < chapters[j].Order })
		for n := range chapters {
			chapters[n].Lines = nonNil(chapters[n].Lines)
		}
		story.Chapters = datatypes.NewJSONSlice(chapters)
	}
	if input.SignatureQuote != nil {
		story.SignatureQuote = *input.SignatureQuote
	}
	if input.SignatureTags != nil {
		story.SignatureTags = datatypes.NewJSONSlice(nonNil(*input.SignatureTags))
	}

	if created {
		err = s.storyRepo.Create(ctx, story)
	} else {
		err = s.storyRepo.Update(ctx, story)
	}
	if err != nil {
		return nil, fmt.Errorf("save story: %w", err)
	}

	s.events.Publish(domain.EventStoryUpdated, story)
	return story, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

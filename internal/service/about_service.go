package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/dheerajjx/portfolio/internal/media"
	"github.com/dheerajjx/portfolio/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AboutInput holds the editable parts of the about section. A nil field is
// left untouched.
type AboutInput struct {
	Bio    *string
	Skills *[]string
	Image  *media.LocalFile
}

type AboutService struct {
	aboutRepo repository.AboutRepository
	media     MediaStore
	events    Publisher
}

func NewAboutService(aboutRepo repository.AboutRepository, media MediaStore, events Publisher) *AboutService {
	return &AboutService{
		aboutRepo: aboutRepo,
		media:     media,
		events:    events,
	}
}

// Get returns domain.ErrNotFound until the about section is first saved.
func (s *AboutService) Get(ctx context.Context) (*domain.About, error) {
	return s.aboutRepo.Get(ctx)
}

// Update merges the supplied parts, creating the document on first save. A
// bio is required to create it and may never be blanked.
func (s *AboutService) Update(ctx context.Context, input AboutInput) (*domain.About, error) {
	about, err := s.aboutRepo.Get(ctx)
	created := false
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if err := domain.MissingFields(requireFields(field{"bio", input.Bio})...); err != nil {
			return nil, err
		}
		about = &domain.About{ID: uuid.New(), Skills: datatypes.NewJSONSlice([]string{})}
		created = true
	case err != nil:
		return nil, err
	default:
		if err := domain.MissingFields(suppliedBlank(field{"bio", input.Bio})...); err != nil {
			return nil, err
		}
	}

	merge(&about.Bio, input.Bio)
	if input.Skills != nil {
		about.Skills = datatypes.NewJSONSlice(cleanSkills(*input.Skills))
	}
	if input.Image != nil {
		about.ImageURL = s.media.Ingest(ctx, aboutFolder, *input.Image).URL
	}

	if created {
		err = s.aboutRepo.Create(ctx, about)
	} else {
		err = s.aboutRepo.Update(ctx, about)
	}
	if err != nil {
		return nil, fmt.Errorf("save about: %w", err)
	}

	s.events.Publish(domain.EventAboutUpdated, about)
	return about, nil
}

func cleanSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		if skill = strings.TrimSpace(skill); skill != "" {
			out = append(out, skill)
		}
	}
	return out
}

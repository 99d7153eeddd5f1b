package service

import (
	"context"
	"strings"

	"github.com/dheerajjx/portfolio/internal/config"
	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/dheerajjx/portfolio/internal/logging"
	"github.com/dheerajjx/portfolio/internal/mail"
	"github.com/dheerajjx/portfolio/internal/media"
	"github.com/dheerajjx/portfolio/internal/repository"
)

// Mailer delivers a composed message.
type Mailer interface {
	Send(ctx context.Context, msg mail.Message) error
}

// MediaStore resolves uploaded files to URLs. Ingest always returns a usable
// URL; Remove is best-effort.
type MediaStore interface {
	Ingest(ctx context.Context, folder string, file media.LocalFile) media.Asset
	IngestAll(ctx context.Context, folder string, files []media.LocalFile) []media.Asset
	Remove(ctx context.Context, remoteID string)
}

// Publisher fans content changes out to live clients.
type Publisher interface {
	Publish(event domain.EventType, payload any)
}

type nopPublisher struct{}

func (nopPublisher) Publish(domain.EventType, any) {}

// Remote folders per collection.
const (
	memoryFolder  = "memories_portfolio"
	galleryFolder = "gallery_portfolio"
	heroBgFolder  = "hero_backgrounds"
	aboutFolder   = "about_portfolio"
)

type Dependencies struct {
	Mailer Mailer
	Media  MediaStore
	Events Publisher
	Logger logging.Logger
}

type Services struct {
	Auth     *AuthService
	Memory   *MemoryService
	Thought  *ThoughtService
	Gallery  *GalleryService
	HeroBg   *HeroBgService
	Story    *StoryService
	About    *AboutService
	Rotation *RotationService
}

func NewServices(repos *repository.Repositories, deps Dependencies, cfg *config.Config) *Services {
	if deps.Events == nil {
		deps.Events = nopPublisher{}
	}
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}
	return &Services{
		Auth:     NewAuthService(repos.Admin, deps.Mailer, cfg, deps.Logger),
		Memory:   NewMemoryService(repos.Memory, deps.Media, deps.Events),
		Thought:  NewThoughtService(repos.Thought, deps.Events),
		Gallery:  NewGalleryService(repos.Gallery, deps.Media, deps.Events),
		HeroBg:   NewHeroBgService(repos.HeroBg, deps.Media, deps.Events),
		Story:    NewStoryService(repos.Story, deps.Events),
		About:    NewAboutService(repos.About, deps.Media, deps.Events),
		Rotation: NewRotationService(repos.HeroBg),
	}
}

// field pairs a request field name with its optional value.
type field struct {
	name  string
	value *string
}

// requireFields reports every field that is absent or blank.
func requireFields(fields ...field) []string {
	var missing []string
	for _, f := range fields {
		if f.value == nil || strings.TrimSpace(*f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// suppliedBlank reports fields that were sent but are blank. Updates may omit
// a required field but may not clear it.
func suppliedBlank(fields ...field) []string {
	var blank []string
	for _, f := range fields {
		if f.value != nil && strings.TrimSpace(*f.value) == "" {
			blank = append(blank, f.name)
		}
	}
	return blank
}

func merge(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func valueOr(s *string, fallback string) string {
	if v := value(s); v != "" {
		return v
	}
	return fallback
}

package service_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/dheerajjx/portfolio/internal/logging"
	"github.com/dheerajjx/portfolio/internal/media"
	"github.com/dheerajjx/portfolio/internal/repository"
	"github.com/dheerajjx/portfolio/internal/repository/postgres"
	"github.com/dheerajjx/portfolio/internal/service"
	"github.com/dheerajjx/portfolio/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedEvent struct {
	Type    domain.EventType
	Payload any
}

type eventRecorder struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (r *eventRecorder) Publish(event domain.EventType, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{event, payload})
}

func (r *eventRecorder) types() []domain.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func (r *eventRecorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

type contentFixture struct {
	db        *testutil.TestDB
	repos     *repository.Repositories
	services  *service.Services
	host      *testutil.FakeHost
	events    *eventRecorder
	uploadDir string
	publicURL string
}

func newContentFixture(t *testing.T) *contentFixture {
	t.Helper()

	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	host := testutil.NewFakeHost()
	events := &eventRecorder{}

	ingestor := media.NewIngestor(host, media.Options{PublicURL: cfg.PublicURL, Timeout: time.Second}, logging.Discard())
	services := service.NewServices(repos, service.Dependencies{
		Mailer: testutil.NewRecordingMailer(),
		Media:  ingestor,
		Events: events,
		Logger: logging.Discard(),
	}, cfg)

	return &contentFixture{
		db:        testDB,
		repos:     repos,
		services:  services,
		host:      host,
		events:    events,
		uploadDir: t.TempDir(),
		publicURL: cfg.PublicURL,
	}
}

func (f *contentFixture) reset(t *testing.T) {
	f.db.Truncate(t)
	f.host.Reset()
	f.events.reset()
}

func (f *contentFixture) file(t *testing.T, name string) *media.LocalFile {
	t.Helper()
	path := filepath.Join(f.uploadDir, name)
	require.NoError(t, os.WriteFile(path, testutil.PNGBytes(t), 0o644))
	return &media.LocalFile{Path: path, Filename: name, ContentType: "image/png"}
}

func ptr[T any](v T) *T {
	return &v
}

func TestMemoryService_Create(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	valid := func() service.MemoryInput {
		return service.MemoryInput{
			Title:    ptr("Spiti"),
			Location: ptr("Himachal"),
			Date:     ptr("June 2024"),
			Category: ptr("Adventure"),
			Quote:    ptr("Thin air, clear mind"),
		}
	}

	t.Run("without image fails and persists nothing", func(t *testing.T) {
		f.reset(t)

		_, err := f.services.Memory.Create(ctx, valid())

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"image"}, verr.Missing)
		assert.Equal(t, int64(0), f.db.Count(t, &domain.Memory{}))
		assert.Empty(t, f.events.types())
	})

	t.Run("names every missing field", func(t *testing.T) {
		f.reset(t)

		input := service.MemoryInput{Title: ptr("Spiti"), Quote: ptr("  ")}
		_, err := f.services.Memory.Create(ctx, input)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"location", "date", "category", "quote", "image"}, verr.Missing)
	})

	t.Run("unknown category", func(t *testing.T) {
		f.reset(t)

		input := valid()
		input.Category = ptr("Food")
		input.Image = f.file(t, "cover.png")
		_, err := f.services.Memory.Create(ctx, input)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("uploads cover and gallery in order", func(t *testing.T) {
		f.reset(t)

		input := valid()
		input.Image = f.file(t, "cover.png")
		input.Gallery = []media.LocalFile{*f.file(t, "a.png"), *f.file(t, "b.png")}

		memory, err := f.services.Memory.Create(ctx, input)
		require.NoError(t, err)

		assert.Equal(t, "https://images.example.com/memories_portfolio/cover.png", memory.ImageURL)
		assert.Equal(t, []string{
			"https://images.example.com/memories_portfolio/a.png",
			"https://images.example.com/memories_portfolio/b.png",
		}, []string(memory.Gallery))
		assert.Equal(t, domain.MemoryCategoryAdventure, memory.Category)
		assert.Equal(t, []domain.EventType{domain.EventMemoryCreated}, f.events.types())

		stored, err := f.repos.Memory.GetByID(ctx, memory.ID)
		require.NoError(t, err)
		assert.Equal(t, memory.Gallery, stored.Gallery)
	})

	t.Run("host failure falls back to a local url", func(t *testing.T) {
		f.reset(t)
		f.host.SetFailing(true)

		input := valid()
		input.Image = f.file(t, "offline.png")
		memory, err := f.services.Memory.Create(ctx, input)
		require.NoError(t, err)

		testutil.AssertLocalUploadURL(t, f.publicURL, memory.ImageURL)
		assert.True(t, strings.HasSuffix(memory.ImageURL, "/offline.png"))
		assert.NotNil(t, memory.Gallery)
		assert.Empty(t, memory.Gallery)
	})
}

func TestMemoryService_Update(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	t.Run("merges supplied fields and keeps the image", func(t *testing.T) {
		f.reset(t)
		existing := testutil.NewMemoryBuilder().WithTitle("Old").Build(t, f.db.DB)

		memory, err := f.services.Memory.Update(ctx, existing.ID, service.MemoryInput{Title: ptr("New")})
		require.NoError(t, err)

		assert.Equal(t, "New", memory.Title)
		assert.Equal(t, existing.Location, memory.Location)
		assert.Equal(t, existing.ImageURL, memory.ImageURL)
		assert.Equal(t, []domain.EventType{domain.EventMemoryUpdated}, f.events.types())
	})

	t.Run("new image replaces the url", func(t *testing.T) {
		f.reset(t)
		existing := testutil.NewMemoryBuilder().Build(t, f.db.DB)

		memory, err := f.services.Memory.Update(ctx, existing.ID, service.MemoryInput{Image: f.file(t, "fresh.png")})
		require.NoError(t, err)
		assert.Equal(t, "https://images.example.com/memories_portfolio/fresh.png", memory.ImageURL)
	})

	t.Run("blank required field is rejected", func(t *testing.T) {
		f.reset(t)
		existing := testutil.NewMemoryBuilder().Build(t, f.db.DB)

		_, err := f.services.Memory.Update(ctx, existing.ID, service.MemoryInput{Title: ptr("")})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown id", func(t *testing.T) {
		f.reset(t)

		_, err := f.services.Memory.Update(ctx, uuid.New(), service.MemoryInput{Title: ptr("x")})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestContentServices_DeleteUnknownID(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()
	f.reset(t)

	testutil.NewMemoryBuilder().Build(t, f.db.DB)
	testutil.NewThoughtBuilder().Build(t, f.db.DB)
	testutil.NewGalleryBuilder().Build(t, f.db.DB)
	testutil.NewHeroBgBuilder().Build(t, f.db.DB)

	tests := []struct {
		name   string
		delete func(uuid.UUID) error
		model  any
	}{
		{"memory", func(id uuid.UUID) error { return f.services.Memory.Delete(ctx, id) }, &domain.Memory{}},
		{"thought", func(id uuid.UUID) error { return f.services.Thought.Delete(ctx, id) }, &domain.Thought{}},
		{"gallery", func(id uuid.UUID) error { return f.services.Gallery.Delete(ctx, id) }, &domain.GalleryImage{}},
		{"hero background", func(id uuid.UUID) error { return f.services.HeroBg.Delete(ctx, id) }, &domain.HeroBgImage{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.delete(uuid.New())
			assert.ErrorIs(t, err, domain.ErrNotFound)
			assert.Equal(t, int64(1), f.db.Count(t, tt.model))
		})
	}
	assert.Empty(t, f.events.types())
}

func TestThoughtService(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()
	f.services.Thought.SetClock(func() time.Time { return time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC) })

	input := func() service.ThoughtInput {
		return service.ThoughtInput{
			Title:    ptr("On patience"),
			Excerpt:  ptr("Slow is smooth"),
			Content:  ptr("Long form body"),
			Category: ptr("Mindset"),
			ReadTime: ptr("4 min read"),
		}
	}

	t.Run("assigns date and gradient", func(t *testing.T) {
		f.reset(t)

		thought, err := f.services.Thought.Create(ctx, input())
		require.NoError(t, err)

		assert.Equal(t, "Oct 14, 2026", thought.Date)
		assert.Contains(t, domain.ThoughtGradients, thought.Gradient)
	})

	t.Run("keeps a supplied gradient", func(t *testing.T) {
		f.reset(t)

		in := input()
		in.Gradient = ptr("from-black to-white")
		thought, err := f.services.Thought.Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "from-black to-white", thought.Gradient)
	})

	t.Run("missing fields", func(t *testing.T) {
		f.reset(t)

		_, err := f.services.Thought.Create(ctx, service.ThoughtInput{Title: ptr("x")})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"excerpt", "content", "category", "readTime"}, verr.Missing)
	})

	t.Run("update keeps the publish date", func(t *testing.T) {
		f.reset(t)
		existing := testutil.NewThoughtBuilder().Build(t, f.db.DB)

		thought, err := f.services.Thought.Update(ctx, existing.ID, service.ThoughtInput{Content: ptr("Rewritten")})
		require.NoError(t, err)
		assert.Equal(t, "Rewritten", thought.Content)
		assert.Equal(t, existing.Date, thought.Date)
		assert.Equal(t, existing.Gradient, thought.Gradient)
	})
}

func TestGalleryService_Create(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	t.Run("defaults camera metadata", func(t *testing.T) {
		f.reset(t)

		image, err := f.services.Gallery.Create(ctx, service.GalleryInput{
			Title:    ptr("Dusk"),
			Category: ptr("Street"),
			Image:    f.file(t, "dusk.png"),
		})
		require.NoError(t, err)

		assert.Equal(t, "ISO 100", image.ISO)
		assert.Equal(t, "1/250s", image.Shutter)
		assert.Equal(t, "f/2.8", image.Aperture)
		assert.Equal(t, []string{"gallery_portfolio/dusk.png"}, f.host.Uploads())
	})

	t.Run("requires title category and image", func(t *testing.T) {
		f.reset(t)

		_, err := f.services.Gallery.Create(ctx, service.GalleryInput{})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"title", "category", "image"}, verr.Missing)
	})
}

func TestHeroBgService(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	t.Run("create stores the remote id", func(t *testing.T) {
		f.reset(t)

		image, err := f.services.HeroBg.Create(ctx, service.HeroBgInput{Label: ptr("Beach"), Image: f.file(t, "beach.png")})
		require.NoError(t, err)

		assert.Equal(t, "hero_backgrounds/beach.png", image.RemoteID)
		assert.True(t, image.Active)
	})

	t.Run("create requires an image", func(t *testing.T) {
		f.reset(t)

		_, err := f.services.HeroBg.Create(ctx, service.HeroBgInput{Label: ptr("Beach")})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("create inactive", func(t *testing.T) {
		f.reset(t)

		image, err := f.services.HeroBg.Create(ctx, service.HeroBgInput{Active: ptr(false), Image: f.file(t, "night.png")})
		require.NoError(t, err)

		stored, err := f.repos.HeroBg.GetByID(ctx, image.ID)
		require.NoError(t, err)
		assert.False(t, stored.Active)
	})

	t.Run("list only returns active images", func(t *testing.T) {
		f.reset(t)
		active := testutil.NewHeroBgBuilder().Build(t, f.db.DB)
		testutil.NewHeroBgBuilder().Inactive().Build(t, f.db.DB)

		images, err := f.services.HeroBg.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, images, 1)
		assert.Equal(t, active.ID, images[0].ID)

		all, err := f.services.HeroBg.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("delete removes the remote asset", func(t *testing.T) {
		f.reset(t)
		image := testutil.NewHeroBgBuilder().WithRemoteID("hero_backgrounds/x.jpg").Build(t, f.db.DB)

		require.NoError(t, f.services.HeroBg.Delete(ctx, image.ID))
		assert.Equal(t, []string{"hero_backgrounds/x.jpg"}, f.host.Deleted())
		assert.Equal(t, int64(0), f.db.Count(t, &domain.HeroBgImage{}))
	})

	t.Run("delete succeeds when remote cleanup fails", func(t *testing.T) {
		f.reset(t)
		f.host.SetDeleteFailing(true)
		image := testutil.NewHeroBgBuilder().WithRemoteID("hero_backgrounds/y.jpg").Build(t, f.db.DB)

		require.NoError(t, f.services.HeroBg.Delete(ctx, image.ID))
		assert.Equal(t, int64(0), f.db.Count(t, &domain.HeroBgImage{}))
	})

	t.Run("replacing the image drops the old asset", func(t *testing.T) {
		f.reset(t)
		image := testutil.NewHeroBgBuilder().WithRemoteID("hero_backgrounds/old.jpg").Build(t, f.db.DB)

		updated, err := f.services.HeroBg.Update(ctx, image.ID, service.HeroBgInput{Image: f.file(t, "new.png"), Active: ptr(false)})
		require.NoError(t, err)

		assert.Equal(t, "hero_backgrounds/new.png", updated.RemoteID)
		assert.False(t, updated.Active)
		assert.Equal(t, []string{"hero_backgrounds/old.jpg"}, f.host.Deleted())
	})
}

func TestStoryService(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	t.Run("get seeds once", func(t *testing.T) {
		f.reset(t)

		first, err := f.services.Story.Get(ctx)
		require.NoError(t, err)
		assert.Len(t, first.Highlights, 4)
		assert.Len(t, first.Chapters, 7)
		assert.Equal(t, []string{"Still Building", "Still Rising", "Still Becoming"}, []string(first.SignatureTags))

		second, err := f.services.Story.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, int64(1), f.db.Count(t, &domain.Story{}))
	})

	t.Run("replace without a story merges over defaults", func(t *testing.T) {
		f.reset(t)

		story, err := f.services.Story.Replace(ctx, service.StoryInput{SignatureQuote: ptr("Keep going")})
		require.NoError(t, err)

		assert.Equal(t, "Keep going", story.SignatureQuote)
		assert.Len(t, story.Chapters, 7)
		assert.Equal(t, int64(1), f.db.Count(t, &domain.Story{}))
	})

	t.Run("replace only overwrites supplied parts", func(t *testing.T) {
		f.reset(t)
		seeded, err := f.services.Story.Get(ctx)
		require.NoError(t, err)

		chapters := []domain.Chapter{
			{Title: "Second", Order: 2, Lines: []string{"b"}},
			{Title: "First", Order: 1},
		}
		story, err := f.services.Story.Replace(ctx, service.StoryInput{
			Chapters:      &chapters,
			SignatureTags: &[]string{},
		})
		require.NoError(t, err)

		assert.Equal(t, seeded.ID, story.ID)
		require.Len(t, story.Chapters, 2)
		assert.Equal(t, "First", story.Chapters[0].Title)
		assert.NotNil(t, story.Chapters[0].Lines)
		assert.Empty(t, story.SignatureTags)
		assert.Equal(t, seeded.SignatureQuote, story.SignatureQuote)
		assert.Equal(t, seeded.Highlights, story.Highlights)
		assert.Equal(t, []domain.EventType{domain.EventStoryUpdated}, f.events.types())

		stored, err := f.repos.Story.Get(ctx)
		require.NoError(t, err)
		assert.Len(t, stored.Chapters, 2)
	})
}

func TestAboutService(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	t.Run("missing until first saved", func(t *testing.T) {
		f.reset(t)

		_, err := f.services.About.Get(ctx)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("first save requires a bio", func(t *testing.T) {
		f.reset(t)

		_, err := f.services.About.Update(ctx, service.AboutInput{Skills: &[]string{"Go"}})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"bio"}, verr.Missing)
		assert.Equal(t, int64(0), f.db.Count(t, &domain.About{}))
	})

	t.Run("create then merge", func(t *testing.T) {
		f.reset(t)

		created, err := f.services.About.Update(ctx, service.AboutInput{
			Bio:    ptr("  Engineer and photographer  "),
			Skills: &[]string{"Go", " ", "Photography "},
			Image:  f.file(t, "me.png"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Engineer and photographer", created.Bio)
		assert.Equal(t, []string{"Go", "Photography"}, []string(created.Skills))
		assert.Equal(t, []string{"about_portfolio/me.png"}, f.host.Uploads())

		updated, err := f.services.About.Update(ctx, service.AboutInput{Skills: &[]string{}})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, created.Bio, updated.Bio)
		assert.Equal(t, created.ImageURL, updated.ImageURL)
		assert.Empty(t, updated.Skills)
		assert.Equal(t, int64(1), f.db.Count(t, &domain.About{}))
		assert.Equal(t, []domain.EventType{domain.EventAboutUpdated, domain.EventAboutUpdated}, f.events.types())
	})

	t.Run("bio cannot be blanked", func(t *testing.T) {
		f.reset(t)
		_, err := f.services.About.Update(ctx, service.AboutInput{Bio: ptr("Hello")})
		require.NoError(t, err)

		_, err = f.services.About.Update(ctx, service.AboutInput{Bio: ptr(" ")})
		assert.ErrorIs(t, err, domain.ErrValidation)

		stored, err := f.services.About.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Hello", stored.Bio)
	})
}

func TestRotationService_CurrentHero(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	t.Run("no active image", func(t *testing.T) {
		f.reset(t)
		testutil.NewHeroBgBuilder().Inactive().Build(t, f.db.DB)

		_, err := f.services.Rotation.CurrentHero(ctx)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("picks by time slot", func(t *testing.T) {
		f.reset(t)
		base := time.Now().Add(-time.Hour)
		for i := 0; i < 3; i++ {
			testutil.NewHeroBgBuilder().CreatedAt(base.Add(time.Duration(i) * time.Minute)).Build(t, f.db.DB)
		}
		pool, err := f.repos.HeroBg.ListActive(ctx)
		require.NoError(t, err)

		at := time.Date(2026, 1, 1, 5, 0, 0, 0, time.UTC) // yearDay 1, slot 1
		f.services.Rotation.SetClock(func() time.Time { return at })

		image, err := f.services.Rotation.CurrentHero(ctx)
		require.NoError(t, err)
		assert.Equal(t, pool[(1*6+1)%3].ID, image.ID)
	})
}

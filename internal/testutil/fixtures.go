package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"
	"time"

	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MemoryBuilder creates test memories with a builder pattern
type MemoryBuilder struct {
	title     string
	category  domain.MemoryCategory
	createdAt time.Time
}

// NewMemoryBuilder creates a new MemoryBuilder with default values
func NewMemoryBuilder() *MemoryBuilder {
	return &MemoryBuilder{
		title:     fmt.Sprintf("memory_%s", uuid.New().String()[:8]),
		category:  domain.MemoryCategoryTravel,
		createdAt: time.Now(),
	}
}

func (b *MemoryBuilder) WithTitle(title string) *MemoryBuilder {
	b.title = title
	return b
}

// CreatedAt pins the creation time so ordering can be asserted.
func (b *MemoryBuilder) CreatedAt(at time.Time) *MemoryBuilder {
	b.createdAt = at
	return b
}

// Build creates the memory in the database
func (b *MemoryBuilder) Build(t *testing.T, db *gorm.DB) *domain.Memory {
	t.Helper()

	memory := &domain.Memory{
		ID:        uuid.New(),
		Title:     b.title,
		Location:  "Manali",
		Date:      "Summer 2024",
		Category:  b.category,
		Quote:     "Mountains are calling",
		ImageURL:  "https://images.example.com/memories_portfolio/cover.jpg",
		Gallery:   datatypes.NewJSONSlice([]string{}),
		CreatedAt: b.createdAt,
		UpdatedAt: b.createdAt,
	}

	if err := db.Create(memory).Error; err != nil {
		t.Fatalf("failed to create memory: %v", err)
	}

	return memory
}

// ThoughtBuilder creates test thoughts with a builder pattern
type ThoughtBuilder struct {
	title     string
	createdAt time.Time
}

func NewThoughtBuilder() *ThoughtBuilder {
	return &ThoughtBuilder{
		title:     fmt.Sprintf("thought_%s", uuid.New().String()[:8]),
		createdAt: time.Now(),
	}
}

func (b *ThoughtBuilder) WithTitle(title string) *ThoughtBuilder {
	b.title = title
	return b
}

func (b *ThoughtBuilder) CreatedAt(at time.Time) *ThoughtBuilder {
	b.createdAt = at
	return b
}

func (b *ThoughtBuilder) Build(t *testing.T, db *gorm.DB) *domain.Thought {
	t.Helper()

	thought := &domain.Thought{
		ID:        uuid.New(),
		Title:     b.title,
		Excerpt:   "A short excerpt",
		Content:   "The full essay body.",
		Category:  domain.ThoughtCategoryGrowth,
		ReadTime:  "3 min read",
		Date:      b.createdAt.Format(domain.ThoughtDateLayout),
		Gradient:  domain.ThoughtGradients[0],
		CreatedAt: b.createdAt,
		UpdatedAt: b.createdAt,
	}

	if err := db.Create(thought).Error; err != nil {
		t.Fatalf("failed to create thought: %v", err)
	}

	return thought
}

// GalleryBuilder creates test gallery images with a builder pattern
type GalleryBuilder struct {
	title     string
	createdAt time.Time
}

func NewGalleryBuilder() *GalleryBuilder {
	return &GalleryBuilder{
		title:     fmt.Sprintf("photo_%s", uuid.New().String()[:8]),
		createdAt: time.Now(),
	}
}

func (b *GalleryBuilder) CreatedAt(at time.Time) *GalleryBuilder {
	b.createdAt = at
	return b
}

func (b *GalleryBuilder) Build(t *testing.T, db *gorm.DB) *domain.GalleryImage {
	t.Helper()

	image := &domain.GalleryImage{
		ID:        uuid.New(),
		Title:     b.title,
		Category:  "Street",
		ISO:       domain.DefaultISO,
		Shutter:   domain.DefaultShutter,
		Aperture:  domain.DefaultAperture,
		ImageURL:  "https://images.example.com/gallery_portfolio/photo.jpg",
		CreatedAt: b.createdAt,
		UpdatedAt: b.createdAt,
	}

	if err := db.Create(image).Error; err != nil {
		t.Fatalf("failed to create gallery image: %v", err)
	}

	return image
}

// HeroBgBuilder creates test hero backgrounds with a builder pattern
type HeroBgBuilder struct {
	label     string
	remoteID  string
	active    bool
	createdAt time.Time
}

func NewHeroBgBuilder() *HeroBgBuilder {
	return &HeroBgBuilder{
		label:     fmt.Sprintf("hero_%s", uuid.New().String()[:8]),
		active:    true,
		createdAt: time.Now(),
	}
}

func (b *HeroBgBuilder) WithRemoteID(remoteID string) *HeroBgBuilder {
	b.remoteID = remoteID
	return b
}

func (b *HeroBgBuilder) Inactive() *HeroBgBuilder {
	b.active = false
	return b
}

func (b *HeroBgBuilder) CreatedAt(at time.Time) *HeroBgBuilder {
	b.createdAt = at
	return b
}

func (b *HeroBgBuilder) Build(t *testing.T, db *gorm.DB) *domain.HeroBgImage {
	t.Helper()

	image := &domain.HeroBgImage{
		ID:        uuid.New(),
		ImageURL:  "https://images.example.com/hero_backgrounds/" + b.label + ".jpg",
		Label:     b.label,
		RemoteID:  b.remoteID,
		Active:    true,
		CreatedAt: b.createdAt,
		UpdatedAt: b.createdAt,
	}

	if err := db.Create(image).Error; err != nil {
		t.Fatalf("failed to create hero background: %v", err)
	}
	// The column default turns a false insert into true.
	if !b.active {
		if err := db.Model(image).Update("active", false).Error; err != nil {
			t.Fatalf("failed to deactivate hero background: %v", err)
		}
		image.Active = false
	}

	return image
}

// Authenticate runs the OTP login against the server and returns the token.
func Authenticate(t *testing.T, ts *TestServer, email string) string {
	t.Helper()

	resp := PostJSON(t, ts.APIURL("/auth/send-otp"), map[string]string{"email": email})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("send-otp returned %d", resp.StatusCode)
	}

	code := ts.Mailer.LastCode(email)
	if code == "" {
		t.Fatalf("no code was mailed to %s", email)
	}

	resp = PostJSON(t, ts.APIURL("/auth/verify-otp"), map[string]string{"email": email, "otp": code})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("verify-otp returned %d", resp.StatusCode)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode verify-otp response: %v", err)
	}
	return result.Token
}

// PostJSON sends body as JSON without credentials.
func PostJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(CreateAuthenticatedRequest(t, http.MethodPost, url, body, ""))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

// CreateAuthenticatedRequest creates an HTTP request with auth header
func CreateAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}

// Upload is one file part of a multipart request.
type Upload struct {
	Field    string
	Filename string
}

// CreateMultipartRequest builds a multipart request. Every upload carries a
// small PNG.
func CreateMultipartRequest(t *testing.T, method, url string, fields map[string]string, uploads []Upload, token string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			t.Fatalf("failed to write field: %v", err)
		}
	}
	for _, u := range uploads {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, u.Field, u.Filename))
		header.Set("Content-Type", "image/png")
		part, err := w.CreatePart(header)
		if err != nil {
			t.Fatalf("failed to create part: %v", err)
		}
		part.Write(PNGBytes(t))
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, &buf)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// PNGBytes returns a tiny encoded image.
func PNGBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 80, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

package testutil

import (
	"context"
	"errors"
	"regexp"
	"sync"

	"github.com/dheerajjx/portfolio/internal/mail"
	"github.com/dheerajjx/portfolio/internal/media"
)

var codePattern = regexp.MustCompile(`\b\d{6}\b`)

// RecordingMailer keeps every message instead of sending it.
type RecordingMailer struct {
	mu       sync.Mutex
	messages []mail.Message
	fail     error
}

func NewRecordingMailer() *RecordingMailer {
	return &RecordingMailer{}
}

func (m *RecordingMailer) Send(ctx context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.messages = append(m.messages, msg)
	return nil
}

// FailWith makes subsequent sends return err. Pass nil to recover.
func (m *RecordingMailer) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = err
}

func (m *RecordingMailer) Messages() []mail.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mail.Message(nil), m.messages...)
}

// LastCode extracts the one-time code from the newest message to email.
func (m *RecordingMailer) LastCode(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.messages) - 1; i >= 0; i-- {
		if m.messages[i].To == email {
			return codePattern.FindString(m.messages[i].Text)
		}
	}
	return ""
}

func (m *RecordingMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = nil
	m.fail = nil
}

// ErrHostDown is returned by FakeHost while it is failing.
var ErrHostDown = errors.New("image host unavailable")

// FakeHost is an in-memory remote image host.
type FakeHost struct {
	mu       sync.Mutex
	failing  bool
	uploads  []string
	deleted  []string
	failDrop bool
}

func NewFakeHost() *FakeHost {
	return &FakeHost{}
}

func (h *FakeHost) Upload(ctx context.Context, folder string, file media.LocalFile) (media.Asset, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.failing {
		return media.Asset{}, ErrHostDown
	}
	key := folder + "/" + file.Filename
	h.uploads = append(h.uploads, key)
	return media.Asset{URL: "https://images.example.com/" + key, RemoteID: key}, nil
}

func (h *FakeHost) Delete(ctx context.Context, remoteID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.failDrop {
		return ErrHostDown
	}
	h.deleted = append(h.deleted, remoteID)
	return nil
}

// SetFailing toggles upload failures.
func (h *FakeHost) SetFailing(failing bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failing = failing
}

// SetDeleteFailing toggles delete failures.
func (h *FakeHost) SetDeleteFailing(failing bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failDrop = failing
}

func (h *FakeHost) Uploads() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.uploads...)
}

func (h *FakeHost) Deleted() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.deleted...)
}

func (h *FakeHost) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failing = false
	h.failDrop = false
	h.uploads = nil
	h.deleted = nil
}

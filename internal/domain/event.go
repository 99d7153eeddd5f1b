package domain

// EventType names a content change pushed to live clients.
type EventType string

const (
	EventMemoryCreated EventType = "MEMORY_CREATED"
	EventMemoryUpdated EventType = "MEMORY_UPDATED"
	EventMemoryDeleted EventType = "MEMORY_DELETED"

	EventThoughtCreated EventType = "THOUGHT_CREATED"
	EventThoughtUpdated EventType = "THOUGHT_UPDATED"
	EventThoughtDeleted EventType = "THOUGHT_DELETED"

	EventGalleryCreated EventType = "GALLERY_CREATED"
	EventGalleryUpdated EventType = "GALLERY_UPDATED"
	EventGalleryDeleted EventType = "GALLERY_DELETED"

	EventHeroBgCreated EventType = "HEROBG_CREATED"
	EventHeroBgUpdated EventType = "HEROBG_UPDATED"
	EventHeroBgDeleted EventType = "HEROBG_DELETED"

	EventStoryUpdated EventType = "STORY_UPDATED"
	EventAboutUpdated EventType = "ABOUT_UPDATED"
)

// DeletedPayload is broadcast when a document is removed.
type DeletedPayload struct {
	ID string `json:"id"`
}

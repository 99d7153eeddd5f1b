package service

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/dheerajjx/portfolio/internal/repository"
)

// heroSlotHours is how long one hero background stays current.
const heroSlotHours = 4

type Philosophy struct {
	Day    int    `json:"day"`
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

//go:embed philosophies.json
var philosophiesJSON []byte

var philosophies = mustLoadPhilosophies()

func mustLoadPhilosophies() []Philosophy {
	var list []Philosophy
	if err := json.Unmarshal(philosophiesJSON, &list); err != nil {
		panic(fmt.Sprintf("philosophies.json: %v", err))
	}
	if len(list) == 0 {
		panic("philosophies.json: empty")
	}
	return list
}

// PhilosophyForDay picks the quote for a day of the month. Day 1 is the first
// entry; days past the end of the list wrap around.
func PhilosophyForDay(day int) Philosophy {
	n := len(philosophies)
	idx := ((day-1)%n + n) % n
	p := philosophies[idx]
	p.Day = day
	return p
}

// HeroSlotIndex maps a moment to a position in a pool of size n. The index
// advances every four hours and is stable within a slot.
func HeroSlotIndex(t time.Time, n int) int {
	if n <= 0 {
		return -1
	}
	slotsPerDay := 24 / heroSlotHours
	slot := t.YearDay()*slotsPerDay + t.Hour()/heroSlotHours
	return slot % n
}

type RotationService struct {
	heroBgRepo repository.HeroBgRepository
	now        func() time.Time
}

func NewRotationService(heroBgRepo repository.HeroBgRepository) *RotationService {
	return &RotationService{
		heroBgRepo: heroBgRepo,
		now:        time.Now,
	}
}

func (s *RotationService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *RotationService) Today() Philosophy {
	return PhilosophyForDay(s.now().Day())
}

// CurrentHero returns the active background for the current slot.
func (s *RotationService) CurrentHero(ctx context.Context) (*domain.HeroBgImage, error) {
	images, err := s.heroBgRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("active hero background: %w", domain.ErrNotFound)
	}
	return images[HeroSlotIndex(s.now(), len(images))], nil
}

package postgres

import (
	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/dheerajjx/portfolio/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every table the server owns, in migration order.
var Models = []any{
	&domain.AdminAccount{},
	&domain.Memory{},
	&domain.Thought{},
	&domain.GalleryImage{},
	&domain.HeroBgImage{},
	&domain.Story{},
	&domain.About{},
}

func NewConnection(databaseURL string, verbose bool) (*gorm.DB, error) {
	level := logger.Warn
	if verbose {
		level = logger.Info
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(Models...); err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Admin:   NewAdminRepository(db),
		Memory:  NewMemoryRepository(db),
		Thought: NewThoughtRepository(db),
		Gallery: NewGalleryRepository(db),
		HeroBg:  NewHeroBgRepository(db),
		Story:   NewStoryRepository(db),
		About:   NewAboutRepository(db),
	}
}

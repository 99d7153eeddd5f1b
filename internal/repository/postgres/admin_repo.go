package postgres

import (
	"context"
	"fmt"

	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type adminRepository struct {
	db   *gorm.DB
	docs documents[domain.AdminAccount]
}

func NewAdminRepository(db *gorm.DB) *adminRepository {
	return &adminRepository{db: db, docs: documents[domain.AdminAccount]{db: db, kind: "admin account"}}
}

func (r *adminRepository) Create(ctx context.Context, account *domain.AdminAccount) error {
	return r.docs.create(ctx, account)
}

func (r *adminRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AdminAccount, error) {
	return r.docs.getByID(ctx, id)
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminAccount, error) {
	var account domain.AdminAccount
	err := r.db.WithContext(ctx).First(&account, "email = ?", email).Error
	if err != nil {
		return nil, r.docs.translate(err, email)
	}
	return &account, nil
}

// Update writes every column, so a cleared code is persisted as NULL.
func (r *adminRepository) Update(ctx context.Context, account *domain.AdminAccount) error {
	return r.docs.update(ctx, account)
}

// RecordFailedAttempt increments in the database so concurrent guesses are all
// counted.
func (r *adminRepository) RecordFailedAttempt(ctx context.Context, id uuid.UUID) (int, error) {
	var attempts int
	res := r.db.WithContext(ctx).
		Raw("UPDATE admin_accounts SET otp_attempts = otp_attempts + 1 WHERE id = ? RETURNING otp_attempts", id).
		Scan(&attempts)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, fmt.Errorf("admin account %s: %w", id, domain.ErrNotFound)
	}
	return attempts, nil
}

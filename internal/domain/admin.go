package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdminAccount is the single administrative identity. Login is OTP-only; the
// password hash is a placeholder kept for schema compatibility.
type AdminAccount struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	OTP          *string    `json:"-" gorm:"column:otp"`
	OTPExpiry    *time.Time `json:"-" gorm:"column:otp_expiry"`
	OTPAttempts  int        `json:"-" gorm:"column:otp_attempts;not null;default:0"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// SetCode stores a freshly issued code, replacing any previous one.
func (a *AdminAccount) SetCode(code string, expiry time.Time) {
	a.OTP = &code
	a.OTPExpiry = &expiry
	a.OTPAttempts = 0
}

// ClearCode consumes or revokes the current code.
func (a *AdminAccount) ClearCode() {
	a.OTP = nil
	a.OTPExpiry = nil
	a.OTPAttempts = 0
}

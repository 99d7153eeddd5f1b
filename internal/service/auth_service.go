package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"html/template"
	"math/big"
	"strings"
	"time"

	"github.com/dheerajjx/portfolio/internal/config"
	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/dheerajjx/portfolio/internal/logging"
	"github.com/dheerajjx/portfolio/internal/mail"
	"github.com/dheerajjx/portfolio/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const otpDigits = 6

// maxOTPAttempts wrong guesses revoke the outstanding code.
const maxOTPAttempts = 5

type AuthService struct {
	adminRepo repository.AdminRepository
	mailer    Mailer
	cfg       *config.Config
	logger    logging.Logger
	now       func() time.Time
}

func NewAuthService(adminRepo repository.AdminRepository, mailer Mailer, cfg *config.Config, logger logging.Logger) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		mailer:    mailer,
		cfg:       cfg,
		logger:    logger.With("component", "auth"),
		now:       time.Now,
	}
}

// SetClock replaces the time source used for code expiry and token claims.
func (s *AuthService) SetClock(now func() time.Time) {
	s.now = now
}

type AuthResult struct {
	Account *domain.AdminAccount
	Token   string
}

// RequestCode issues a fresh one-time code for email and mails it. Any
// previously issued code stops working. The account is created on first use.
func (s *AuthService) RequestCode(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return domain.MissingFields("email")
	}

	account, err := s.adminRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		account, err = s.provision(ctx, email)
	}
	if err != nil {
		return fmt.Errorf("load admin account: %w", err)
	}

	code, err := generateCode()
	if err != nil {
		return err
	}
	account.SetCode(code, s.now().Add(s.cfg.OTPTTL))
	if err := s.adminRepo.Update(ctx, account); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}

	msg, err := otpMessage(email, code, s.cfg.OTPTTL)
	if err != nil {
		return err
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		// An undelivered code must not stay valid.
		account.ClearCode()
		if clearErr := s.adminRepo.Update(ctx, account); clearErr != nil {
			s.logger.Error(ctx, "failed to clear undelivered otp", "email", email, "error", clearErr)
		}
		s.logger.Error(ctx, "otp email delivery failed", "email", email, "error", err)
		return fmt.Errorf("%w: %w", domain.ErrEmailDelivery, err)
	}

	s.logger.Info(ctx, "otp issued", "accountId", account.ID)
	return nil
}

// VerifyCode consumes the outstanding code for email and issues a session
// token. A mismatch leaves the code in place until maxOTPAttempts wrong
// guesses revoke it; an expired code stays stored until the next request
// replaces it.
func (s *AuthService) VerifyCode(ctx context.Context, email, code string) (*AuthResult, error) {
	email = normalizeEmail(email)
	code = strings.TrimSpace(code)

	var missing []string
	if email == "" {
		missing = append(missing, "email")
	}
	if code == "" {
		missing = append(missing, "otp")
	}
	if err := domain.MissingFields(missing...); err != nil {
		return nil, err
	}

	account, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if account.OTP == nil || account.OTPAttempts >= maxOTPAttempts {
		return nil, domain.ErrInvalidOTP
	}
	if subtle.ConstantTimeCompare([]byte(*account.OTP), []byte(code)) != 1 {
		s.recordFailure(ctx, account)
		return nil, domain.ErrInvalidOTP
	}
	if account.OTPExpiry == nil || !s.now().Before(*account.OTPExpiry) {
		return nil, domain.ErrOTPExpired
	}

	account.ClearCode()
	if err := s.adminRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("consume otp: %w", err)
	}

	token, err := s.generateToken(account)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "admin signed in", "accountId", account.ID)
	return &AuthResult{Account: account, Token: token}, nil
}

// recordFailure counts a wrong guess and revokes the code once the limit is hit.
func (s *AuthService) recordFailure(ctx context.Context, account *domain.AdminAccount) {
	attempts, err := s.adminRepo.RecordFailedAttempt(ctx, account.ID)
	if err != nil {
		s.logger.Error(ctx, "failed to record otp attempt", "accountId", account.ID, "error", err)
		return
	}
	if attempts < maxOTPAttempts {
		return
	}

	account.ClearCode()
	if err := s.adminRepo.Update(ctx, account); err != nil {
		s.logger.Error(ctx, "failed to revoke otp", "accountId", account.ID, "error", err)
		return
	}
	s.logger.Warn(ctx, "otp revoked after repeated failures", "accountId", account.ID, "attempts", attempts)
}

func (s *AuthService) GetAccount(ctx context.Context, id uuid.UUID) (*domain.AdminAccount, error) {
	return s.adminRepo.GetByID(ctx, id)
}

func (s *AuthService) provision(ctx context.Context, email string) (*domain.AdminAccount, error) {
	placeholder := make([]byte, 32)
	if _, err := rand.Read(placeholder); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(placeholder)), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.AdminAccount{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.adminRepo.Create(ctx, account); err != nil {
		// A concurrent request may have created it first.
		if existing, getErr := s.adminRepo.GetByEmail(ctx, email); getErr == nil {
			return existing, nil
		}
		return nil, err
	}

	s.logger.Info(ctx, "admin account provisioned", "accountId", account.ID)
	return account, nil
}

func (s *AuthService) generateToken(account *domain.AdminAccount) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   account.ID.String(),
		"email": account.Email,
		"exp":   now.Add(s.cfg.JWTExpiration()).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) ValidateToken(tokenString string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, errors.New("invalid token")
}

// generateCode returns a uniformly random decimal code with leading zeros.
func generateCode() (string, error) {
	limit := big.NewInt(1_000_000)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var otpHTML = template.Must(template.New("otp").Parse(`<div style="font-family:sans-serif;max-width:480px;margin:auto">
  <h2>Admin login</h2>
  <p>Use this code to sign in to the dashboard:</p>
  <p style="font-size:32px;letter-spacing:8px;font-weight:bold">{{.Code}}</p>
  <p>It expires in {{.Minutes}} minutes. If you did not request it, ignore this email.</p>
</div>`))

func otpMessage(to, code string, ttl time.Duration) (mail.Message, error) {
	minutes := int(ttl.Minutes())
	var html strings.Builder
	if err := otpHTML.Execute(&html, struct {
		Code    string
		Minutes int
	}{code, minutes}); err != nil {
		return mail.Message{}, err
	}
	return mail.Message{
		To:      to,
		Subject: "Your admin login code",
		Text:    fmt.Sprintf("Your login code is %s. It expires in %d minutes.", code, minutes),
		HTML:    html.String(),
	}, nil
}

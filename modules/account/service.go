package account

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/fundkit/pkg/mailer"
	"github.com/dmitrymomot/fundkit/pkg/validate"
)

// Service runs the signup flow: validate every field, then perform the
// single account write with the canonical forms.
type Service struct {
	storage Storage
	mail    mailer.Sender
	log     *slog.Logger
}

func NewService(storage Storage, mail mailer.Sender, log *slog.Logger) *Service {
	return &Service{storage: storage, mail: mail, log: log}
}

// Signup validates all fields and creates the account. If any verdict is
// invalid the whole operation is rejected with a FieldErrors value and
// nothing is persisted. The stored phone and state are the validators'
// normalized outputs, never re-derived from the raw input.
func (s *Service) Signup(ctx context.Context, params SignupParams) (*Account, error) {
	emailV := validateEmail(params.Email)
	phoneV := validate.Phone(params.Phone)
	stateV := validate.StateCode(params.State)
	passwordV := validate.Password(params.Password)

	errs := validate.FieldErrors{}
	errs.Put("email", emailV)
	errs.Put("phone", phoneV)
	errs.Put("state", stateV)
	errs.Put("password", passwordV)
	if !errs.IsEmpty() {
		return nil, errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	acct := Account{
		ID:           uuid.New(),
		Email:        emailV.Normalized,
		Phone:        phoneV.Normalized,
		State:        stateV.Normalized,
		PasswordHash: string(hash),
	}

	if err := s.storage.CreateAccount(ctx, acct); err != nil {
		return nil, err
	}

	s.sendWelcome(ctx, acct)
	return &acct, nil
}

// GetAccount returns the stored account, whose contact fields are
// always the canonical forms persisted at signup.
func (s *Service) GetAccount(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.storage.GetAccount(ctx, id)
}

// sendWelcome is best effort: the account exists either way, so a mail
// provider outage is logged, not surfaced to the caller.
func (s *Service) sendWelcome(ctx context.Context, acct Account) {
	err := s.mail.SendEmail(ctx, mailer.SendEmailParams{
		SendTo:   acct.Email,
		Subject:  "Welcome to FundKit",
		BodyHTML: fmt.Sprintf("<p>Your account is ready. We will reach you at %s.</p>", acct.Phone),
		Tag:      "welcome",
	})
	if err != nil {
		s.log.WarnContext(ctx, "failed to send welcome email",
			"account_id", acct.ID, "error", err)
	}
}

// validateEmail checks structural validity and normalizes to lowercase.
// Email is an identifier here, not a checksum standard, so the check
// lives with the flow rather than in the validation core.
func validateEmail(raw string) validate.Verdict {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return validate.Verdict{Code: validate.CodeRequired, Message: "email is required"}
	}

	invalid := validate.Verdict{Code: validate.CodeFormat, Message: "email must be a valid email address"}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return invalid
	}

	_, domain, found := strings.Cut(s, "@")
	if !found || !strings.Contains(domain, ".") ||
		strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return invalid
	}

	return validate.Verdict{Valid: true, Normalized: s}
}

package waitlist

import (
	"context"
	"fmt"
	"strings"

	"archcatalog-backend/internal/application/emails"
	"archcatalog-backend/internal/models"
	"archcatalog-backend/internal/pkg/validation"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultSource = "landing"

type Service struct {
	DB     *gorm.DB
	Emails emails.Sender // optional
}

// Join records an e-mail on the waitlist. created is false when the address was
// already present; that is not an error.
func (s *Service) Join(ctx context.Context, email, source string) (bool, error) {
	if s.DB == nil {
		return false, ErrNotConfigured
	}
	email = validation.NormalizeEmail(email)
	if !validation.IsValidEmail(email) {
		return false, ErrInvalidEmail
	}
	source = strings.TrimSpace(source)
	if source == "" {
		source = defaultSource
	}
	entry := &models.WaitlistEntry{Email: email, Source: source}
	res := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(entry)
	if res.Error != nil {
		return false, fmt.Errorf("Failed to join waitlist: %w", res.Error)
	}
	created := res.RowsAffected > 0
	if created && s.Emails != nil {
		if err := s.Emails.SendWaitlistConfirmation(ctx, email); err != nil {
			log.Warn().Err(err).Str("source", source).Msg("waitlist: confirmation email failed")
		}
	}
	return created, nil
}

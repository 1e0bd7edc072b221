package waitlist

import (
	"context"
	"errors"
	"testing"

	"archcatalog-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupWaitlistTest(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.WaitlistEntry{}))
	return &Service{DB: db}, db
}

func TestJoin_CreatesThenDedupes(t *testing.T) {
	svc, db := setupWaitlistTest(t)
	ctx := context.Background()

	created, err := svc.Join(ctx, "Ana@Example.com ", "")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.Join(ctx, "ana@example.com", "footer")
	require.NoError(t, err)
	assert.False(t, created)

	var entries []models.WaitlistEntry
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, "ana@example.com", entries[0].Email)
	assert.Equal(t, "landing", entries[0].Source)
}

func TestJoin_InvalidEmail(t *testing.T) {
	svc, _ := setupWaitlistTest(t)
	_, err := svc.Join(context.Background(), "not-an-email", "")
	assert.ErrorIs(t, err, ErrInvalidEmail)
	_, err = svc.Join(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestJoin_NoDatabase(t *testing.T) {
	svc := &Service{}
	_, err := svc.Join(context.Background(), "ana@example.com", "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) SendWaitlistConfirmation(ctx context.Context, toEmail string) error {
	f.sent = append(f.sent, toEmail)
	return f.err
}

func TestJoin_ConfirmsOnlyNewEntries(t *testing.T) {
	svc, _ := setupWaitlistTest(t)
	sender := &fakeSender{}
	svc.Emails = sender
	ctx := context.Background()

	_, err := svc.Join(ctx, "Ana@Example.com", "")
	require.NoError(t, err)
	_, err = svc.Join(ctx, "ana@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"ana@example.com"}, sender.sent)
}

func TestJoin_MailFailureDoesNotFailJoin(t *testing.T) {
	svc, _ := setupWaitlistTest(t)
	svc.Emails = &fakeSender{err: errors.New("brevo down")}

	created, err := svc.Join(context.Background(), "ana@example.com", "")
	require.NoError(t, err)
	assert.True(t, created)
}

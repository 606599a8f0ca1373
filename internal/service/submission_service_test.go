package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salgadostudio/booking-site/internal/auth"
	"github.com/salgadostudio/booking-site/internal/repository"
	"github.com/salgadostudio/booking-site/internal/service"
)

func newService(t *testing.T) *service.SubmissionService {
	t.Helper()
	repo := repository.NewSubmissionRepo(t.TempDir())
	require.NoError(t, repo.Init())
	return service.NewSubmissionService(repo)
}

func TestSubmitTrimsAndStores(t *testing.T) {
	svc := newService(t)

	sub, err := svc.Submit(map[string]string{
		"firstName": "  Ana ",
		"lastName":  "Reis",
		"email":     " a@b.com ",
		"birthDate": "1990-01-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana", sub.FirstName)
	assert.Equal(t, "Reis", sub.LastName)
	assert.Equal(t, "a@b.com", sub.Email)
	assert.Equal(t, "1990-01-01", sub.BirthDate)
	assert.Empty(t, sub.BirthPlace)
	assert.False(t, sub.LookedAt)
	assert.NotEmpty(t, sub.ID)
	assert.NotEmpty(t, sub.SubmittedAt)

	subs, err := svc.List()
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, sub.ID, subs[0].ID)
}

func TestSubmitRequiredFields(t *testing.T) {
	svc := newService(t)

	cases := map[string]map[string]string{
		"missing first name": {"lastName": "Reis", "email": "a@b.com"},
		"missing last name":  {"firstName": "Ana", "email": "a@b.com"},
		"missing email":      {"firstName": "Ana", "lastName": "Reis"},
		"whitespace only":    {"firstName": "  ", "lastName": "Reis", "email": "a@b.com"},
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Submit(payload)
			assert.ErrorIs(t, err, service.ErrValidation)

			subs, err := svc.List()
			require.NoError(t, err)
			assert.Empty(t, subs, "rejected payload must not touch the store")
		})
	}
}

func TestSubmitIDsUnique(t *testing.T) {
	svc := newService(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		sub, err := svc.Submit(map[string]string{
			"firstName": "Ana", "lastName": "Reis", "email": "a@b.com",
		})
		require.NoError(t, err)
		assert.False(t, seen[sub.ID], "duplicate id %q", sub.ID)
		seen[sub.ID] = true
	}
}

func TestSetLookedAtRoundTrip(t *testing.T) {
	svc := newService(t)
	sub, err := svc.Submit(map[string]string{
		"firstName": "Ana", "lastName": "Reis", "email": "a@b.com",
	})
	require.NoError(t, err)

	updated, err := svc.SetLookedAt(sub.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.LookedAt)

	updated, err = svc.SetLookedAt(sub.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.LookedAt)
}

func TestSetLookedAtNotFound(t *testing.T) {
	svc := newService(t)
	_, err := svc.SetLookedAt("missing", true)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteTwice(t *testing.T) {
	svc := newService(t)
	sub, err := svc.Submit(map[string]string{
		"firstName": "Ana", "lastName": "Reis", "email": "a@b.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(sub.ID))
	assert.ErrorIs(t, svc.Delete(sub.ID), repository.ErrNotFound)

	subs, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestAuthServiceLogin(t *testing.T) {
	sessions := auth.NewSessionStore(time.Hour)
	svc := service.NewAuthService("owner", "pw", "", "secret", sessions)

	result, err := svc.Login("owner", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.True(t, sessions.Valid(result.SessionID))

	_, err = svc.Login("owner", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, err = svc.Login("intruder", "pw")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	svc.Logout(result.SessionID)
	assert.False(t, sessions.Valid(result.SessionID))
}

func TestAuthServiceBcryptHash(t *testing.T) {
	sessions := auth.NewSessionStore(time.Hour)
	// bcrypt hash of "pw", cost 10.
	const hash = "$2b$10$M6dpOi5inBxUK3z8nKHVbuG4aby68.acVSOHELTxQQg847JkmYkrm"
	svc := service.NewAuthService("owner", "ignored-when-hash-set", hash, "secret", sessions)

	_, err := svc.Login("owner", "pw")
	require.NoError(t, err)

	_, err = svc.Login("owner", "ignored-when-hash-set")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

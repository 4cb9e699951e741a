package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	byEmail map[string]User
}

func newStubUserRepo() *stubUserRepo { return &stubUserRepo{byEmail: map[string]User{}} }

func (r *stubUserRepo) Create(_ context.Context, u User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return ErrUserAlreadyExists
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

type stubTokens struct{}

func (stubTokens) Generate(_ context.Context, u User) (string, error) {
	return "token-" + u.ID.String(), nil
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), stubTokens{})

	reg, err := svc.Register(context.Background(), "jane@example.com", "s3cret", "Jane Smith")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", reg.User.Email)
	assert.Equal(t, "Jane Smith", reg.User.FullName)
	assert.NotEmpty(t, reg.Token)
	assert.NotEqual(t, "s3cret", reg.User.PasswordHash)

	login, err := svc.Login(context.Background(), "jane@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), stubTokens{})

	_, err := svc.Register(context.Background(), "jane@example.com", "s3cret", "")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "jane@example.com", "other", "")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterRejectsBlankInput(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), stubTokens{})

	_, err := svc.Register(context.Background(), "  ", "s3cret", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Register(context.Background(), "jane@example.com", "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), stubTokens{})

	_, err := svc.Register(context.Background(), "jane@example.com", "s3cret", "")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "jane@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

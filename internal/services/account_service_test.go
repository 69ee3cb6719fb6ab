package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripwise/internal/models/db_models"
	"tripwise/internal/models/request_models"
	"tripwise/internal/repositories"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type memAccountRepo struct {
	accounts map[string]*db_models.Account
	fail     bool
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{accounts: map[string]*db_models.Account{}}
}

func (m *memAccountRepo) Insert(_ context.Context, account *db_models.Account) error {
	if m.fail {
		return errors.New("connection refused")
	}
	account.ID = uuid.New()
	m.accounts[account.Email] = account
	return nil
}

func (m *memAccountRepo) FindById(_ context.Context, id string) (*db_models.Account, error) {
	for _, a := range m.accounts {
		if a.ID.String() == id {
			return a, nil
		}
	}
	return nil, nil
}

func (m *memAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	if m.fail {
		return nil, errors.New("connection refused")
	}
	return m.accounts[email], nil
}

var _ repositories.AccountRepository = (*memAccountRepo)(nil)

func TestCreateAccount_ThenLogin(t *testing.T) {
	repo := newMemAccountRepo()
	svc := services.NewAccountService(repo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ada",
		Email:       "ada@example.com",
		Password:    "secret123",
	})
	require.NoError(t, err)

	login, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ada@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, "ada@example.com", login.Email)
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	repo := newMemAccountRepo()
	svc := services.NewAccountService(repo)

	req := request_models.SignUpRequest{DisplayName: "Ada", Email: "ada@example.com", Password: "secret123"}
	require.NoError(t, svc.CreateAccount(context.Background(), req))

	err := svc.CreateAccount(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMemAccountRepo()
	svc := services.NewAccountService(repo)

	require.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ada", Email: "ada@example.com", Password: "secret123",
	}))

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := services.NewAccountService(newMemAccountRepo())

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

package user_test

import (
	"RecipeHub/domain"
	"RecipeHub/entities"
	"RecipeHub/pkg/jwt"
	"RecipeHub/pkg/user"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[uuid.UUID]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[uuid.UUID]*entities.User)}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, u *entities.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func newService(repo *fakeUserRepository) user.UserService {
	return user.NewUserService(repo, jwt.NewJWTService())
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepository()
	service := newService(repo)

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.Equal(t, "alice", res.Username)
	require.Len(t, repo.users, 1)

	login, err := service.Login(context.Background(), domain.LoginRequest{
		Username: "alice",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)
}

func TestRegisterRejectsTakenIdentifiers(t *testing.T) {
	repo := newFakeUserRepository()
	service := newService(repo)

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), domain.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "secret123",
	})
	require.ErrorIs(t, err, domain.ErrUsernameTaken)

	_, err = service.Register(context.Background(), domain.RegisterRequest{
		Username: "bob",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeUserRepository()
	service := newService(repo)

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), domain.LoginRequest{Username: "alice", Password: "wrong"})
	require.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = service.Login(context.Background(), domain.LoginRequest{Username: "nobody", Password: "secret123"})
	require.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestMe(t *testing.T) {
	repo := newFakeUserRepository()
	service := newService(repo)

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	me, err := service.Me(context.Background(), res.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", me.Username)

	_, err = service.Me(context.Background(), "not-a-uuid")
	require.ErrorIs(t, err, domain.ErrParseUUID)

	_, err = service.Me(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balasagoth/mi-supermercado/internal/user/domain"
	"github.com/balasagoth/mi-supermercado/pkg/auth"
)

type memoryUserRepo struct {
	users  map[string]*domain.User
	nextID uint
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*domain.User)}
}

func (r *memoryUserRepo) Create(user *domain.User) error {
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return domain.ErrDuplicateUser
		}
	}
	r.nextID++
	user.ID = r.nextID
	r.users[user.Username] = user
	return nil
}

func (r *memoryUserRepo) FindByID(id uint) (*domain.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryUserRepo) FindByUsername(username string) (*domain.User, error) {
	if user, ok := r.users[username]; ok {
		return user, nil
	}
	return nil, domain.ErrNotFound
}

func (r *memoryUserRepo) FindByEmail(email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryUserRepo) Count() (int64, error) {
	return int64(len(r.users)), nil
}

func TestRegisterUser(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		handler := NewRegisterUserHandler(newMemoryUserRepo())
		tests := []struct {
			name string
			cmd  RegisterUserCommand
		}{
			{"missing username", RegisterUserCommand{Email: "a@b.c", Password: "secret1"}},
			{"missing email", RegisterUserCommand{Username: "ana", Password: "secret1"}},
			{"missing password", RegisterUserCommand{Username: "ana", Email: "a@b.c"}},
			{"short password", RegisterUserCommand{Username: "ana", Email: "a@b.c", Password: "12345"}},
			{"bad role", RegisterUserCommand{Username: "ana", Email: "a@b.c", Password: "secret1", Role: "root"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := handler.Handle(tt.cmd)
				assert.Error(t, err)
			})
		}
	})

	t.Run("creates active user with hashed password", func(t *testing.T) {
		repo := newMemoryUserRepo()
		handler := NewRegisterUserHandler(repo)

		user, err := handler.Handle(RegisterUserCommand{
			Username: "ana",
			Email:    "ana@example.com",
			Password: "secret1",
			FullName: "Ana García",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleUser, user.Role)
		assert.True(t, user.IsActive)
		assert.NotEqual(t, "secret1", user.Password)
		assert.True(t, auth.CheckPassword(user.Password, "secret1"))
	})

	t.Run("duplicate username", func(t *testing.T) {
		repo := newMemoryUserRepo()
		handler := NewRegisterUserHandler(repo)

		_, err := handler.Handle(RegisterUserCommand{Username: "ana", Email: "a@b.c", Password: "secret1"})
		require.NoError(t, err)

		_, err = handler.Handle(RegisterUserCommand{Username: "ana", Email: "other@b.c", Password: "secret1"})
		assert.ErrorIs(t, err, domain.ErrDuplicateUser)
	})
}

func TestLoginUser(t *testing.T) {
	repo := newMemoryUserRepo()
	register := NewRegisterUserHandler(repo)
	_, err := register.Handle(RegisterUserCommand{Username: "ana", Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	handler := NewLoginUserHandler(repo)

	t.Run("success returns token", func(t *testing.T) {
		resp, err := handler.Handle(LoginUserCommand{Username: "ana", Password: "secret1"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)

		claims, err := auth.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "ana", claims.Username)
		assert.Equal(t, resp.User.ID, claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := handler.Handle(LoginUserCommand{Username: "ana", Password: "wrong"})
		assert.ErrorIs(t, err, domain.ErrInvalidLogin)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := handler.Handle(LoginUserCommand{Username: "nobody", Password: "secret1"})
		assert.ErrorIs(t, err, domain.ErrInvalidLogin)
	})

	t.Run("empty credentials", func(t *testing.T) {
		_, err := handler.Handle(LoginUserCommand{})
		assert.ErrorIs(t, err, domain.ErrInvalidLogin)
	})

	t.Run("deactivated account", func(t *testing.T) {
		user, err := repo.FindByUsername("ana")
		require.NoError(t, err)
		user.IsActive = false
		defer func() { user.IsActive = true }()

		_, err = handler.Handle(LoginUserCommand{Username: "ana", Password: "secret1"})
		assert.ErrorIs(t, err, domain.ErrAccountLocked)
	})
}

package auth

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/hotel-aggregator/internal/apperror"
	"github.com/magabrotheeeer/hotel-aggregator/internal/lib/jwt"
	"github.com/magabrotheeeer/hotel-aggregator/internal/lib/password"
	"github.com/magabrotheeeer/hotel-aggregator/internal/models"
)

type UsersMock struct{ mock.Mock }

func (m *UsersMock) RegisterUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}
func (m *UsersMock) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newService(users *UsersMock) *Service {
	return New(users, jwt.NewMaker("test-secret", time.Hour), newNoopLogger())
}

func TestRegister(t *testing.T) {
	t.Run("успешная регистрация хранит только хэш", func(t *testing.T) {
		users := new(UsersMock)
		users.On("GetUserByUsername", mock.Anything, "newuser").Return(nil, nil).Once()
		users.On("RegisterUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
			return u.Username == "newuser" &&
				u.PasswordHash != "secret123" &&
				password.CompareHash(u.PasswordHash, "secret123") == nil
		})).Return("uid-1", nil).Once()
		svc := newService(users)

		uid, err := svc.Register(context.Background(), "newuser", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "uid-1", uid)
		users.AssertExpectations(t)
	})

	t.Run("повторная регистрация даёт AlreadyExists", func(t *testing.T) {
		users := new(UsersMock)
		users.On("GetUserByUsername", mock.Anything, "taken").
			Return(&models.User{UID: "uid-1", Username: "taken"}, nil).Once()
		svc := newService(users)

		_, err := svc.Register(context.Background(), "taken", "secret123")
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindAlreadyExists))
		assert.EqualError(t, err, "User Already Exists, try with unique usernames.")
		users.AssertNotCalled(t, "RegisterUser", mock.Anything, mock.Anything)
	})

	t.Run("нарушение уникальности в базе даёт AlreadyExists", func(t *testing.T) {
		users := new(UsersMock)
		users.On("GetUserByUsername", mock.Anything, "racer").Return(nil, nil).Once()
		users.On("RegisterUser", mock.Anything, mock.Anything).
			Return("", &pgconn.PgError{Code: pgerrcode.UniqueViolation}).Once()
		svc := newService(users)

		_, err := svc.Register(context.Background(), "racer", "secret123")
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindAlreadyExists))
	})

	t.Run("конкурентная регистрация одного username даёт один успех", func(t *testing.T) {
		users := new(UsersMock)
		var registered bool
		var mu sync.Mutex

		// второй вызов видит пользователя, сохранённого первым
		getCall := users.On("GetUserByUsername", mock.Anything, "concurrent")
		getCall.Run(func(_ mock.Arguments) {
			mu.Lock()
			defer mu.Unlock()
			if registered {
				getCall.ReturnArguments = mock.Arguments{&models.User{UID: "uid-1", Username: "concurrent"}, nil}
			} else {
				getCall.ReturnArguments = mock.Arguments{nil, nil}
			}
		})
		users.On("RegisterUser", mock.Anything, mock.Anything).
			Return("uid-1", nil).
			Run(func(_ mock.Arguments) {
				mu.Lock()
				registered = true
				mu.Unlock()
			})

		svc := newService(users)

		var wg sync.WaitGroup
		results := make(chan error, 2)
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.Register(context.Background(), "concurrent", "secret123")
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		var okCount, conflictCount int
		for err := range results {
			if err == nil {
				okCount++
			} else if apperror.IsKind(err, apperror.KindAlreadyExists) {
				conflictCount++
			}
		}
		assert.Equal(t, 1, okCount)
		assert.Equal(t, 1, conflictCount)
		users.AssertNumberOfCalls(t, "RegisterUser", 1)
	})

	t.Run("карта блокировок не растёт с числом username", func(t *testing.T) {
		users := new(UsersMock)
		users.On("GetUserByUsername", mock.Anything, mock.Anything).Return(nil, nil)
		users.On("RegisterUser", mock.Anything, mock.Anything).Return("uid-1", nil)
		svc := newService(users)

		for _, username := range []string{"first", "second", "third"} {
			_, err := svc.Register(context.Background(), username, "secret123")
			require.NoError(t, err)
		}

		svc.mu.Lock()
		defer svc.mu.Unlock()
		assert.Empty(t, svc.locks)
	})
}

func TestLogin(t *testing.T) {
	hash, err := password.GetHash("secret123")
	require.NoError(t, err)
	user := &models.User{UID: "uid-1", Username: "testuser", PasswordHash: hash}

	t.Run("успешный вход возвращает валидный токен", func(t *testing.T) {
		users := new(UsersMock)
		users.On("GetUserByUsername", mock.Anything, "testuser").Return(user, nil).Once()
		svc := newService(users)

		token, err := svc.Login(context.Background(), "testuser", "secret123")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		username, err := svc.ValidateToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, "testuser", username)
	})

	t.Run("неверный пароль", func(t *testing.T) {
		users := new(UsersMock)
		users.On("GetUserByUsername", mock.Anything, "testuser").Return(user, nil).Once()
		svc := newService(users)

		_, err := svc.Login(context.Background(), "testuser", "wrongpass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("несуществующий пользователь", func(t *testing.T) {
		users := new(UsersMock)
		users.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, nil).Once()
		svc := newService(users)

		_, err := svc.Login(context.Background(), "ghost", "secret123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestValidateToken(t *testing.T) {
	users := new(UsersMock)
	svc := newService(users)

	t.Run("валидный токен", func(t *testing.T) {
		token, err := svc.GenerateToken("testuser")
		require.NoError(t, err)

		username, err := svc.ValidateToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, "testuser", username)
	})

	t.Run("истёкший токен", func(t *testing.T) {
		expired := New(users, jwt.NewMaker("test-secret", -time.Minute), newNoopLogger())
		token, err := expired.GenerateToken("testuser")
		require.NoError(t, err)

		_, err = svc.ValidateToken(context.Background(), token)
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindTokenInvalid))
	})

	t.Run("мусор вместо токена", func(t *testing.T) {
		_, err := svc.ValidateToken(context.Background(), "not.a.token")
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindTokenInvalid))
	})

	t.Run("токен с чужой подписью", func(t *testing.T) {
		other := New(users, jwt.NewMaker("another-secret", time.Hour), newNoopLogger())
		token, err := other.GenerateToken("testuser")
		require.NoError(t, err)

		_, err = svc.ValidateToken(context.Background(), token)
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindTokenInvalid))
	})
}

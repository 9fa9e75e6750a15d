// Package auth содержит логику регистрации пользователей, выпуска и проверки токенов.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/magabrotheeeer/hotel-aggregator/internal/apperror"
	"github.com/magabrotheeeer/hotel-aggregator/internal/lib/jwt"
	"github.com/magabrotheeeer/hotel-aggregator/internal/lib/password"
	"github.com/magabrotheeeer/hotel-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/hotel-aggregator/internal/models"
)

// ErrInvalidCredentials возвращается, когда пользователь не найден
// или пароль не совпадает. Причина наружу не раскрывается.
var ErrInvalidCredentials = errors.New("invalid credentials")

// MsgUserAlreadyExists — текст ошибки при повторной регистрации username.
const MsgUserAlreadyExists = "User Already Exists, try with unique usernames."

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)
	// GetUserByUsername возвращает пользователя либо (nil, nil), если его нет.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// Service отвечает за регистрацию, вход и валидацию токенов.
//
// Проверка-затем-вставка при регистрации сериализуется взаимным исключением
// по username; нарушение уникальности в базе остаётся страховкой на случай
// конкурирующих экземпляров процесса.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
	log      *slog.Logger

	mu    sync.Mutex
	locks map[string]*usernameLock // взаимное исключение регистрации по username
}

// usernameLock считает держателей, чтобы запись в locks жила только
// на время конкурирующих регистраций одного username.
type usernameLock struct {
	mu   sync.Mutex
	refs int
}

// New создает новый Service.
func New(users UserRepository, jwtMaker jwt.Maker, log *slog.Logger) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
		log:      log,
		locks:    make(map[string]*usernameLock),
	}
}

func (s *Service) lockUsername(username string) *usernameLock {
	s.mu.Lock()
	l, ok := s.locks[username]
	if !ok {
		l = &usernameLock{}
		s.locks[username] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return l
}

func (s *Service) unlockUsername(username string, l *usernameLock) {
	l.mu.Unlock()

	s.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(s.locks, username)
	}
	s.mu.Unlock()
}

// Register создает нового пользователя, сохраняя пароль только в виде bcrypt-хэша.
//
// Повторная регистрация username даёт ошибку категории AlreadyExists —
// как при провале явной проверки, так и при нарушении уникальности в базе.
func (s *Service) Register(ctx context.Context, username, rawPassword string) (string, error) {
	lock := s.lockUsername(username)
	defer s.unlockUsername(username, lock)

	existing, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", apperror.AlreadyExists(MsgUserAlreadyExists)
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}

	uid, err := s.users.RegisterUser(ctx, models.User{
		Username:     username,
		PasswordHash: hashed,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return "", apperror.AlreadyExists(MsgUserAlreadyExists)
		}
		return "", err
	}

	s.log.Info("registered new user", slog.String("username", username))
	return uid, nil
}

// GenerateToken выпускает токен для username без повторной проверки пароля:
// проверка учётных данных происходит до этого вызова.
func (s *Service) GenerateToken(username string) (string, error) {
	return s.jwtMaker.GenerateToken(username)
}

// Login проверяет пароль пользователя и выпускает токен.
func (s *Service) Login(ctx context.Context, username, rawPassword string) (string, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.GenerateToken(user.Username)
}

// ValidateToken проверяет токен и возвращает имя пользователя (subject).
//
// Причина отказа (истёк, подделан, некорректен) различается только в логе;
// вызывающая сторона всегда получает категорию TokenInvalid.
func (s *Service) ValidateToken(_ context.Context, token string) (string, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		switch {
		case errors.Is(err, jwtlib.ErrTokenExpired):
			s.log.Info("rejected expired token")
		case errors.Is(err, jwtlib.ErrTokenSignatureInvalid):
			s.log.Warn("rejected token with invalid signature")
		default:
			s.log.Info("rejected malformed token", sl.Err(err))
		}
		return "", apperror.TokenInvalid("invalid or expired token", err)
	}
	return claims.Username, nil
}

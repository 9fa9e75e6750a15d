package hotel

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/hotel-aggregator/internal/apperror"
	"github.com/magabrotheeeer/hotel-aggregator/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateHotel(ctx context.Context, hotel models.Hotel) (int, error) {
	args := m.Called(ctx, hotel)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) GetHotelByID(ctx context.Context, id int) (*models.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hotel), args.Error(1)
}
func (m *RepoMock) ListHotels(ctx context.Context) ([]*models.Hotel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Hotel), args.Error(1)
}
func (m *RepoMock) UpdateHotel(ctx context.Context, hotel models.Hotel) (int, error) {
	args := m.Called(ctx, hotel)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) DeleteHotel(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(ctx context.Context, key string, result any) (bool, error) {
	args := m.Called(ctx, key, result)
	return args.Bool(0), args.Error(1)
}
func (m *CacheMock) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}
func (m *CacheMock) Invalidate(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type EventsMock struct{ mock.Mock }

func (m *EventsMock) Publish(entity, action string, entityID int) error {
	return m.Called(entity, action, entityID).Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newService(r *RepoMock, c *CacheMock, e *EventsMock) *Service {
	return New(r, c, e, newNoopLogger())
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name       string
		req        models.DummyHotel
		setupMocks func(r *RepoMock, c *CacheMock, e *EventsMock)
		wantErr    bool
		wantKind   apperror.Kind
	}{
		{
			name: "успешное создание",
			req:  models.DummyHotel{Name: "Grand Plaza", Location: "Moscow", StarRating: 5},
			setupMocks: func(r *RepoMock, c *CacheMock, e *EventsMock) {
				r.On("CreateHotel", mock.Anything, mock.MatchedBy(func(h models.Hotel) bool {
					return h.Name == "Grand Plaza" && h.ID == 0
				})).Return(42, nil).Once()
				c.On("Set", mock.Anything, "hotel:42", mock.Anything, time.Hour).Return(nil).Once()
				e.On("Publish", "hotel", "created", 42).Return(nil).Once()
			},
		},
		{
			name:       "пустое название не доходит до хранилища",
			req:        models.DummyHotel{Name: "", Location: "Moscow"},
			setupMocks: func(_ *RepoMock, _ *CacheMock, _ *EventsMock) {},
			wantErr:    true,
			wantKind:   apperror.KindInvalidData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, cache, events := new(RepoMock), new(CacheMock), new(EventsMock)
			tt.setupMocks(repo, cache, events)
			svc := newService(repo, cache, events)

			hotel, err := svc.Create(context.Background(), tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperror.IsKind(err, tt.wantKind))
				repo.AssertNotCalled(t, "CreateHotel", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 42, hotel.ID)
				assert.Equal(t, tt.req.Name, hotel.Name)
			}
			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
			events.AssertExpectations(t)
		})
	}
}

func TestService_GetByID(t *testing.T) {
	existing := models.Hotel{ID: 7, Name: "Grand Plaza"}

	t.Run("попадание в кеш не трогает хранилище", func(t *testing.T) {
		repo, cache, events := new(RepoMock), new(CacheMock), new(EventsMock)
		cache.On("Get", mock.Anything, "hotel:7", mock.Anything).
			Run(func(args mock.Arguments) {
				*args.Get(2).(*models.Hotel) = existing
			}).Return(true, nil).Once()
		svc := newService(repo, cache, events)

		got, err := svc.GetByID(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, existing, *got)
		repo.AssertNotCalled(t, "GetHotelByID", mock.Anything, mock.Anything)
	})

	t.Run("промах кеша читает хранилище и кеширует", func(t *testing.T) {
		repo, cache, events := new(RepoMock), new(CacheMock), new(EventsMock)
		cache.On("Get", mock.Anything, "hotel:7", mock.Anything).Return(false, nil).Once()
		repo.On("GetHotelByID", mock.Anything, 7).Return(&existing, nil).Once()
		cache.On("Set", mock.Anything, "hotel:7", existing, time.Hour).Return(nil).Once()
		svc := newService(repo, cache, events)

		got, err := svc.GetByID(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, existing, *got)
		cache.AssertExpectations(t)
	})

	t.Run("отсутствующий id даёт NotFound", func(t *testing.T) {
		repo, cache, events := new(RepoMock), new(CacheMock), new(EventsMock)
		cache.On("Get", mock.Anything, "hotel:99", mock.Anything).Return(false, nil).Once()
		repo.On("GetHotelByID", mock.Anything, 99).Return(nil, nil).Once()
		svc := newService(repo, cache, events)

		_, err := svc.GetByID(context.Background(), 99)
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
		assert.EqualError(t, err, "Hotel with id 99 not found")
	})
}

func TestService_Update(t *testing.T) {
	existing := models.Hotel{ID: 7, Name: "Grand Plaza", Location: "Moscow"}

	t.Run("успешная полная замена", func(t *testing.T) {
		repo, cache, events := new(RepoMock), new(CacheMock), new(EventsMock)
		repo.On("GetHotelByID", mock.Anything, 7).Return(&existing, nil).Once()
		repo.On("UpdateHotel", mock.Anything, mock.MatchedBy(func(h models.Hotel) bool {
			return h.ID == 7 && h.Name == "Renamed" && h.Location == ""
		})).Return(1, nil).Once()
		cache.On("Set", mock.Anything, "hotel:7", mock.Anything, time.Hour).Return(nil).Once()
		events.On("Publish", "hotel", "updated", 7).Return(nil).Once()
		svc := newService(repo, cache, events)

		got, err := svc.Update(context.Background(), 7, models.DummyHotel{Name: "Renamed"})
		require.NoError(t, err)
		assert.Equal(t, 7, got.ID)
		assert.Equal(t, "Renamed", got.Name)
		repo.AssertExpectations(t)
	})

	t.Run("отсутствующий id даёт NotFound без записи", func(t *testing.T) {
		repo, cache, events := new(RepoMock), new(CacheMock), new(EventsMock)
		repo.On("GetHotelByID", mock.Anything, 99).Return(nil, nil).Once()
		svc := newService(repo, cache, events)

		_, err := svc.Update(context.Background(), 99, models.DummyHotel{Name: "Renamed"})
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
		repo.AssertNotCalled(t, "UpdateHotel", mock.Anything, mock.Anything)
	})
}

func TestService_PartialUpdate(t *testing.T) {
	existing := models.Hotel{ID: 7, Name: "Grand Plaza", Location: "Moscow", StarRating: 5}

	t.Run("patch заменяет только присутствующие поля", func(t *testing.T) {
		repo, cache, events := new(RepoMock), new(CacheMock), new(EventsMock)
		repo.On("GetHotelByID", mock.Anything, 7).Return(&existing, nil).Once()
		repo.On("UpdateHotel", mock.Anything, mock.MatchedBy(func(h models.Hotel) bool {
			return h.ID == 7 && h.StarRating == 4 && h.Name == "Grand Plaza" && h.Location == "Moscow"
		})).Return(1, nil).Once()
		cache.On("Set", mock.Anything, "hotel:7", mock.Anything, time.Hour).Return(nil).Once()
		events.On("Publish", "hotel", "updated", 7).Return(nil).Once()
		svc := newService(repo, cache, events)

		got, err := svc.PartialUpdate(context.Background(), 7, models.HotelPatch{StarRating: models.Some(4)})
		require.NoError(t, err)
		assert.Equal(t, 4, got.StarRating)
		assert.Equal(t, "Grand Plaza", got.Name)
	})

	t.Run("пустой patch идемпотентен", func(t *testing.T) {
		repo, cache, events := new(RepoMock), new(CacheMock), new(EventsMock)
		repo.On("GetHotelByID", mock.Anything, 7).Return(&existing, nil).Once()
		repo.On("UpdateHotel", mock.Anything, existing).Return(1, nil).Once()
		cache.On("Set", mock.Anything, "hotel:7", existing, time.Hour).Return(nil).Once()
		events.On("Publish", "hotel", "updated", 7).Return(nil).Once()
		svc := newService(repo, cache, events)

		got, err := svc.PartialUpdate(context.Background(), 7, models.HotelPatch{})
		require.NoError(t, err)
		assert.Equal(t, existing, *got)
	})

	t.Run("невалидный patch не доходит до хранилища", func(t *testing.T) {
		repo, cache, events := new(RepoMock), new(CacheMock), new(EventsMock)
		repo.On("GetHotelByID", mock.Anything, 7).Return(&existing, nil).Once()
		svc := newService(repo, cache, events)

		_, err := svc.PartialUpdate(context.Background(), 7, models.HotelPatch{Name: models.Some("")})
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindInvalidData))
		assert.EqualError(t, err, "Hotel name must not be null or empty")
		repo.AssertNotCalled(t, "UpdateHotel", mock.Anything, mock.Anything)
	})

	t.Run("явный null в названии отклоняется без записи", func(t *testing.T) {
		stored := models.Hotel{ID: 7, Name: "Test Hotel"}
		repo, cache, events := new(RepoMock), new(CacheMock), new(EventsMock)
		repo.On("GetHotelByID", mock.Anything, 7).Return(&stored, nil).Once()
		svc := newService(repo, cache, events)

		_, err := svc.PartialUpdate(context.Background(), 7, models.HotelPatch{Name: models.Null[string]()})
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindInvalidData))
		assert.EqualError(t, err, "Hotel name must not be null or empty")
		repo.AssertNotCalled(t, "UpdateHotel", mock.Anything, mock.Anything)
		assert.Equal(t, "Test Hotel", stored.Name)
	})

	t.Run("ошибка хранилища при чтении пробрасывается", func(t *testing.T) {
		repo, cache, events := new(RepoMock), new(CacheMock), new(EventsMock)
		repo.On("GetHotelByID", mock.Anything, 7).Return(nil, errors.New("db error")).Once()
		svc := newService(repo, cache, events)

		_, err := svc.PartialUpdate(context.Background(), 7, models.HotelPatch{})
		assert.Error(t, err)
	})
}

func TestService_Delete(t *testing.T) {
	existing := models.Hotel{ID: 7, Name: "Grand Plaza"}

	t.Run("успешное удаление", func(t *testing.T) {
		repo, cache, events := new(RepoMock), new(CacheMock), new(EventsMock)
		repo.On("GetHotelByID", mock.Anything, 7).Return(&existing, nil).Once()
		repo.On("DeleteHotel", mock.Anything, 7).Return(1, nil).Once()
		cache.On("Invalidate", mock.Anything, "hotel:7").Return(nil).Once()
		events.On("Publish", "hotel", "deleted", 7).Return(nil).Once()
		svc := newService(repo, cache, events)

		require.NoError(t, svc.Delete(context.Background(), 7))
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
		events.AssertExpectations(t)
	})

	t.Run("отсутствующий id даёт NotFound", func(t *testing.T) {
		repo, cache, events := new(RepoMock), new(CacheMock), new(EventsMock)
		repo.On("GetHotelByID", mock.Anything, 99).Return(nil, nil).Once()
		svc := newService(repo, cache, events)

		err := svc.Delete(context.Background(), 99)
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
		repo.AssertNotCalled(t, "DeleteHotel", mock.Anything, mock.Anything)
	})
}

func TestService_List(t *testing.T) {
	repo, cache, events := new(RepoMock), new(CacheMock), new(EventsMock)
	hotels := []*models.Hotel{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	repo.On("ListHotels", mock.Anything).Return(hotels, nil).Once()
	svc := newService(repo, cache, events)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, hotels, got)
}

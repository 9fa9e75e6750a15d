// Package hotel содержит бизнес-логику реестра отелей.
//
// Сервис проверяет правила валидации до и после слияния, кеширует чтение
// по идентификатору и публикует события об изменениях. Любой неуспешный
// путь оставляет сохранённую сущность нетронутой.
package hotel

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/hotel-aggregator/internal/apperror"
	"github.com/magabrotheeeer/hotel-aggregator/internal/lib/merge"
	"github.com/magabrotheeeer/hotel-aggregator/internal/lib/rules"
	"github.com/magabrotheeeer/hotel-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/hotel-aggregator/internal/models"
)

// Repository определяет методы для работы с отелями в хранилище.
type Repository interface {
	// CreateHotel добавляет новый отель и возвращает его ID.
	CreateHotel(ctx context.Context, hotel models.Hotel) (int, error)
	// GetHotelByID возвращает отель по ID либо (nil, nil), если его нет.
	GetHotelByID(ctx context.Context, id int) (*models.Hotel, error)
	// ListHotels возвращает все отели в стабильном для хранилища порядке.
	ListHotels(ctx context.Context) ([]*models.Hotel, error)
	// UpdateHotel заменяет запись целиком, возвращает число обновлённых строк.
	UpdateHotel(ctx context.Context, hotel models.Hotel) (int, error)
	// DeleteHotel удаляет отель по ID, возвращает число удалённых строк.
	DeleteHotel(ctx context.Context, id int) (int, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// EventPublisher публикует события об изменении сущностей.
type EventPublisher interface {
	Publish(entity, action string, entityID int) error
}

// Service реализует операции реестра отелей.
type Service struct {
	repo   Repository
	cache  Cache
	events EventPublisher
	log    *slog.Logger
}

// New создает новый Service.
func New(repo Repository, cache Cache, events EventPublisher, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		events: events,
		log:    log,
	}
}

func cacheKey(id int) string {
	return fmt.Sprintf("hotel:%d", id)
}

// Create валидирует входные данные, сохраняет отель и возвращает его с ID.
func (s *Service) Create(ctx context.Context, req models.DummyHotel) (*models.Hotel, error) {
	hotel := req.Entity()
	if err := rules.HotelName(hotel.Name); err != nil {
		return nil, err
	}

	id, err := s.repo.CreateHotel(ctx, hotel)
	if err != nil {
		return nil, err
	}
	hotel.ID = id

	s.log.Info("created new hotel", slog.Int("id", id))
	s.storeInCache(ctx, hotel)
	s.publish("created", id)
	return &hotel, nil
}

// List возвращает все отели.
func (s *Service) List(ctx context.Context) ([]*models.Hotel, error) {
	return s.repo.ListHotels(ctx)
}

// GetByID возвращает отель по ID, используя кеш или хранилище.
// Отсутствующий ID даёт ошибку категории NotFound.
func (s *Service) GetByID(ctx context.Context, id int) (*models.Hotel, error) {
	var cached models.Hotel
	found, err := s.cache.Get(ctx, cacheKey(id), &cached)
	if err != nil {
		s.log.Warn("failed to read hotel from cache", slog.Int("id", id), sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	hotel, err := s.repo.GetHotelByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, apperror.NotFound("Hotel with id %d not found", id)
	}

	s.storeInCache(ctx, *hotel)
	return hotel, nil
}

// Update целиком заменяет отель с указанным ID значением req.
// Все обязательные поля req валидируются заново, как при создании.
func (s *Service) Update(ctx context.Context, id int, req models.DummyHotel) (*models.Hotel, error) {
	existing, err := s.repo.GetHotelByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Hotel with id %d not found", id)
	}

	hotel := req.Entity()
	if err := rules.HotelName(hotel.Name); err != nil {
		return nil, err
	}
	hotel.ID = id

	if _, err := s.repo.UpdateHotel(ctx, hotel); err != nil {
		return nil, err
	}

	s.log.Info("updated hotel", slog.Int("id", id))
	s.storeInCache(ctx, hotel)
	s.publish("updated", id)
	return &hotel, nil
}

// PartialUpdate применяет patch к существующему отелю.
//
// Слияние вычисляется на копии; правила валидации проверяются на результате
// слияния, и при нарушении сохранённый отель остаётся прежним. Пустой patch —
// идемпотентная операция, которая заново сохраняет текущее значение.
func (s *Service) PartialUpdate(ctx context.Context, id int, patch models.HotelPatch) (*models.Hotel, error) {
	existing, err := s.repo.GetHotelByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Hotel with id %d not found", id)
	}

	merged := merge.Hotel(*existing, patch)
	if err := rules.HotelName(merged.Name); err != nil {
		return nil, err
	}

	if _, err := s.repo.UpdateHotel(ctx, merged); err != nil {
		return nil, err
	}

	s.log.Info("partially updated hotel", slog.Int("id", id))
	s.storeInCache(ctx, merged)
	s.publish("updated", id)
	return &merged, nil
}

// Delete удаляет отель по ID. Отсутствующий ID даёт NotFound без записи в хранилище.
func (s *Service) Delete(ctx context.Context, id int) error {
	existing, err := s.repo.GetHotelByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("Hotel with id %d not found", id)
	}

	if _, err := s.repo.DeleteHotel(ctx, id); err != nil {
		return err
	}

	s.log.Info("deleted hotel", slog.Int("id", id))
	if err := s.cache.Invalidate(ctx, cacheKey(id)); err != nil {
		s.log.Warn("failed to invalidate hotel cache", slog.Int("id", id), sl.Err(err))
	}
	s.publish("deleted", id)
	return nil
}

func (s *Service) storeInCache(ctx context.Context, hotel models.Hotel) {
	if err := s.cache.Set(ctx, cacheKey(hotel.ID), hotel, time.Hour); err != nil {
		s.log.Warn("failed to cache hotel", slog.Int("id", hotel.ID), sl.Err(err))
	}
}

func (s *Service) publish(action string, id int) {
	if err := s.events.Publish("hotel", action, id); err != nil {
		s.log.Warn("failed to publish hotel event",
			slog.String("action", action), slog.Int("id", id), sl.Err(err))
	}
}

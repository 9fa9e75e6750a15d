// Package room содержит бизнес-логику реестра номеров.
//
// Помимо правил валидации номер связан с отелем: создание и любое обновление,
// затрагивающее hotel_id, требуют существования отеля. Проверка делегируется
// реестру отелей и выполняется до записи в хранилище.
package room

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

// Repository определяет методы для работы с номерами в хранилище.
type Repository interface {
	// CreateRoom добавляет новый номер и возвращает его ID.
	CreateRoom(ctx context.Context, room models.Room) (int, error)
	// GetRoomByID возвращает номер по ID либо (nil, nil), если его нет.
	GetRoomByID(ctx context.Context, id int) (*models.Room, error)
	// ListRooms возвращает все номера.
	ListRooms(ctx context.Context) ([]*models.Room, error)
	// ListRoomsByHotelID возвращает номера указанного отеля.
	ListRoomsByHotelID(ctx context.Context, hotelID int) ([]*models.Room, error)
	// UpdateRoom заменяет запись целиком, возвращает число обновлённых строк.
	UpdateRoom(ctx context.Context, room models.Room) (int, error)
	// DeleteRoom удаляет номер по ID, возвращает число удалённых строк.
	DeleteRoom(ctx context.Context, id int) (int, error)
}

// HotelProvider — проверка существования отеля, реализуется реестром отелей.
type HotelProvider interface {
	GetByID(ctx context.Context, id int) (*models.Hotel, error)
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

// Service реализует операции реестра номеров.
type Service struct {
	repo   Repository
	hotels HotelProvider
	cache  Cache
	events EventPublisher
	log    *slog.Logger
}

// New создает новый Service.
func New(repo Repository, hotels HotelProvider, cache Cache, events EventPublisher, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		hotels: hotels,
		cache:  cache,
		events: events,
		log:    log,
	}
}

func cacheKey(id int) string {
	return fmt.Sprintf("room:%d", id)
}

// Create валидирует входные данные, проверяет существование отеля,
// сохраняет номер и возвращает его с ID.
func (s *Service) Create(ctx context.Context, req models.DummyRoom) (*models.Room, error) {
	room := req.Entity()
	if err := rules.RoomPrice(room.Price); err != nil {
		return nil, err
	}
	if _, err := s.hotels.GetByID(ctx, room.HotelID); err != nil {
		return nil, err
	}

	id, err := s.repo.CreateRoom(ctx, room)
	if err != nil {
		return nil, err
	}
	room.ID = id

	s.log.Info("created new room", slog.Int("id", id), slog.Int("hotel_id", room.HotelID))
	s.storeInCache(ctx, room)
	s.publish("created", id)
	return &room, nil
}

// List возвращает все номера.
func (s *Service) List(ctx context.Context) ([]*models.Room, error) {
	return s.repo.ListRooms(ctx)
}

// ListByHotelID возвращает номера указанного отеля.
// Отсутствующий отель даёт NotFound.
func (s *Service) ListByHotelID(ctx context.Context, hotelID int) ([]*models.Room, error) {
	if _, err := s.hotels.GetByID(ctx, hotelID); err != nil {
		return nil, err
	}
	return s.repo.ListRoomsByHotelID(ctx, hotelID)
}

// GetByID возвращает номер по ID, используя кеш или хранилище.
func (s *Service) GetByID(ctx context.Context, id int) (*models.Room, error) {
	var cached models.Room
	found, err := s.cache.Get(ctx, cacheKey(id), &cached)
	if err != nil {
		s.log.Warn("failed to read room from cache", slog.Int("id", id), sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	room, err := s.repo.GetRoomByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperror.NotFound("Room with id %d not found!", id)
	}

	s.storeInCache(ctx, *room)
	return room, nil
}

// Update целиком заменяет номер с указанным ID значением req.
// Правила и проверка отеля применяются к req, как при создании.
func (s *Service) Update(ctx context.Context, id int, req models.DummyRoom) (*models.Room, error) {
	existing, err := s.repo.GetRoomByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Room with id %d not found!", id)
	}

	room := req.Entity()
	if err := rules.RoomPrice(room.Price); err != nil {
		return nil, err
	}
	if _, err := s.hotels.GetByID(ctx, room.HotelID); err != nil {
		return nil, err
	}
	room.ID = id

	if _, err := s.repo.UpdateRoom(ctx, room); err != nil {
		return nil, err
	}

	s.log.Info("updated room", slog.Int("id", id))
	s.storeInCache(ctx, room)
	s.publish("updated", id)
	return &room, nil
}

// PartialUpdate применяет patch к существующему номеру.
//
// Правила валидации и проверка отеля применяются к результату слияния:
// patch, делающий цену неположительной или переносящий номер в
// несуществующий отель, отклоняется без записи.
func (s *Service) PartialUpdate(ctx context.Context, id int, patch models.RoomPatch) (*models.Room, error) {
	existing, err := s.repo.GetRoomByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Room with id %d not found!", id)
	}
	// Явный null в hotel_id оставил бы номер без отеля.
	if patch.HotelID.Set && patch.HotelID.Null {
		return nil, apperror.InvalidData(rules.MsgInvalidRoomHotelID)
	}

	merged := merge.Room(*existing, patch)
	if err := rules.RoomPrice(merged.Price); err != nil {
		return nil, err
	}
	if _, err := s.hotels.GetByID(ctx, merged.HotelID); err != nil {
		return nil, err
	}

	if _, err := s.repo.UpdateRoom(ctx, merged); err != nil {
		return nil, err
	}

	s.log.Info("partially updated room", slog.Int("id", id))
	s.storeInCache(ctx, merged)
	s.publish("updated", id)
	return &merged, nil
}

// Delete удаляет номер по ID. Отсутствующий ID даёт NotFound без записи в хранилище.
func (s *Service) Delete(ctx context.Context, id int) error {
	existing, err := s.repo.GetRoomByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("Room with id %d not found!", id)
	}

	if _, err := s.repo.DeleteRoom(ctx, id); err != nil {
		return err
	}

	s.log.Info("deleted room", slog.Int("id", id))
	if err := s.cache.Invalidate(ctx, cacheKey(id)); err != nil {
		s.log.Warn("failed to invalidate room cache", slog.Int("id", id), sl.Err(err))
	}
	s.publish("deleted", id)
	return nil
}

func (s *Service) storeInCache(ctx context.Context, room models.Room) {
	if err := s.cache.Set(ctx, cacheKey(room.ID), room, time.Hour); err != nil {
		s.log.Warn("failed to cache room", slog.Int("id", room.ID), sl.Err(err))
	}
}

func (s *Service) publish(action string, id int) {
	if err := s.events.Publish("room", action, id); err != nil {
		s.log.Warn("failed to publish room event",
			slog.String("action", action), slog.Int("id", id), sl.Err(err))
	}
}

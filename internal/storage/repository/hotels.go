package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/hotel-aggregator/internal/models"
)

// CreateHotel сохраняет новый отель и возвращает назначенный ID.
func (s *Storage) CreateHotel(ctx context.Context, hotel models.Hotel) (int, error) {
	const op = "storage.CreateHotel"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO hotels (name, location, phone, email, star_rating,
			      description, room_count, facilities)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		hotel.Name, hotel.Location, hotel.Phone, hotel.Email, hotel.StarRating,
		hotel.Description, hotel.RoomCount, hotel.Facilities).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetHotelByID возвращает отель по ID либо (nil, nil), если записи нет.
func (s *Storage) GetHotelByID(ctx context.Context, id int) (*models.Hotel, error) {
	const op = "storage.GetHotelByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, location, phone, email, star_rating,
			      description, room_count, facilities
			  FROM hotels
			  WHERE id = $1`
	h := &models.Hotel{}
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&h.ID, &h.Name, &h.Location, &h.Phone, &h.Email,
		&h.StarRating, &h.Description, &h.RoomCount, &h.Facilities); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return h, nil
}

// ListHotels возвращает все отели в порядке возрастания ID.
func (s *Storage) ListHotels(ctx context.Context) ([]*models.Hotel, error) {
	const op = "storage.ListHotels"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, location, phone, email, star_rating,
			      description, room_count, facilities
			  FROM hotels
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Hotel
	for rows.Next() {
		var h models.Hotel
		if err = rows.Scan(&h.ID, &h.Name, &h.Location, &h.Phone, &h.Email,
			&h.StarRating, &h.Description, &h.RoomCount, &h.Facilities); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &h)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateHotel заменяет запись отеля целиком и возвращает число обновлённых строк.
func (s *Storage) UpdateHotel(ctx context.Context, hotel models.Hotel) (int, error) {
	const op = "storage.UpdateHotel"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE hotels
			  SET name = $2, location = $3, phone = $4, email = $5,
			      star_rating = $6, description = $7, room_count = $8, facilities = $9
			  WHERE id = $1`
	res, err := s.DB.ExecContext(ctx, query,
		hotel.ID, hotel.Name, hotel.Location, hotel.Phone, hotel.Email,
		hotel.StarRating, hotel.Description, hotel.RoomCount, hotel.Facilities)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(affected), nil
}

// DeleteHotel удаляет отель по ID и возвращает число удалённых строк.
func (s *Storage) DeleteHotel(ctx context.Context, id int) (int, error) {
	const op = "storage.DeleteHotel"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM hotels WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(affected), nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/hotel-aggregator/internal/models"
)

// CreateRoom сохраняет новый номер и возвращает назначенный ID.
func (s *Storage) CreateRoom(ctx context.Context, room models.Room) (int, error) {
	const op = "storage.CreateRoom"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO rooms (room_type, room_number, price, capacity,
			      available, facilities, hotel_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		room.RoomType, room.RoomNumber, room.Price, room.Capacity,
		room.Available, room.Facilities, room.HotelID).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetRoomByID возвращает номер по ID либо (nil, nil), если записи нет.
func (s *Storage) GetRoomByID(ctx context.Context, id int) (*models.Room, error) {
	const op = "storage.GetRoomByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, room_type, room_number, price, capacity,
			      available, facilities, hotel_id
			  FROM rooms
			  WHERE id = $1`
	r := &models.Room{}
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&r.ID, &r.RoomType, &r.RoomNumber, &r.Price, &r.Capacity,
		&r.Available, &r.Facilities, &r.HotelID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r, nil
}

// ListRooms возвращает все номера в порядке возрастания ID.
func (s *Storage) ListRooms(ctx context.Context) ([]*models.Room, error) {
	const op = "storage.ListRooms"
	return s.listRooms(ctx, op,
		`SELECT id, room_type, room_number, price, capacity,
		     available, facilities, hotel_id
		 FROM rooms
		 ORDER BY id`)
}

// ListRoomsByHotelID возвращает номера указанного отеля.
func (s *Storage) ListRoomsByHotelID(ctx context.Context, hotelID int) ([]*models.Room, error) {
	const op = "storage.ListRoomsByHotelID"
	return s.listRooms(ctx, op,
		`SELECT id, room_type, room_number, price, capacity,
		     available, facilities, hotel_id
		 FROM rooms
		 WHERE hotel_id = $1
		 ORDER BY id`, hotelID)
}

func (s *Storage) listRooms(ctx context.Context, op, query string, args ...any) ([]*models.Room, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Room
	for rows.Next() {
		var r models.Room
		if err = rows.Scan(&r.ID, &r.RoomType, &r.RoomNumber, &r.Price, &r.Capacity,
			&r.Available, &r.Facilities, &r.HotelID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateRoom заменяет запись номера целиком и возвращает число обновлённых строк.
func (s *Storage) UpdateRoom(ctx context.Context, room models.Room) (int, error) {
	const op = "storage.UpdateRoom"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE rooms
			  SET room_type = $2, room_number = $3, price = $4, capacity = $5,
			      available = $6, facilities = $7, hotel_id = $8
			  WHERE id = $1`
	res, err := s.DB.ExecContext(ctx, query,
		room.ID, room.RoomType, room.RoomNumber, room.Price, room.Capacity,
		room.Available, room.Facilities, room.HotelID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(affected), nil
}

// DeleteRoom удаляет номер по ID и возвращает число удалённых строк.
func (s *Storage) DeleteRoom(ctx context.Context, id int) (int, error) {
	const op = "storage.DeleteRoom"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(affected), nil
}

// Package merge реализует слияние частичного обновления с существующей сущностью.
//
// Слияние идёт по полям: присутствующее в patch поле заменяет значение
// существующей сущности, отсутствующее — копируется из неё, явный null
// сбрасывает поле в нулевое значение (намеренная очистка, а не пропуск).
// Идентификатор через patch не перезаписывается никогда. Результат — новое
// значение; сущность в хранилище не затрагивается, пока результат не пройдёт
// валидацию и не будет сохранён вызывающей стороной. Пустой patch даёт копию
// существующей сущности.
package merge

import (
	"github.com/magabrotheeeer/hotel-aggregator/internal/models"
)

// Hotel возвращает копию existing с полями, заменёнными из patch.
func Hotel(existing models.Hotel, patch models.HotelPatch) models.Hotel {
	merged := existing
	merged.Name = orElse(patch.Name, existing.Name)
	merged.Location = orElse(patch.Location, existing.Location)
	merged.Phone = orElse(patch.Phone, existing.Phone)
	merged.Email = orElse(patch.Email, existing.Email)
	merged.StarRating = orElse(patch.StarRating, existing.StarRating)
	merged.Description = orElse(patch.Description, existing.Description)
	merged.RoomCount = orElse(patch.RoomCount, existing.RoomCount)
	merged.Facilities = orElse(patch.Facilities, existing.Facilities)
	return merged
}

// Room возвращает копию existing с полями, заменёнными из patch.
// Смена HotelID допустима; существование нового отеля проверяет сервис.
func Room(existing models.Room, patch models.RoomPatch) models.Room {
	merged := existing
	merged.RoomType = orElse(patch.RoomType, existing.RoomType)
	merged.RoomNumber = orElse(patch.RoomNumber, existing.RoomNumber)
	merged.Price = orElse(patch.Price, existing.Price)
	merged.Capacity = orElse(patch.Capacity, existing.Capacity)
	merged.Available = orElse(patch.Available, existing.Available)
	merged.Facilities = orElse(patch.Facilities, existing.Facilities)
	merged.HotelID = orElse(patch.HotelID, existing.HotelID)
	return merged
}

func orElse[T any](o models.Optional[T], fallback T) T {
	if !o.Set {
		return fallback
	}
	if o.Null {
		var zero T
		return zero
	}
	return o.Value
}

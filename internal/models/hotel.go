// Package models содержит доменные структуры отелей, номеров и пользователей,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

// Hotel представляет собой основную модель отеля,
// используемую в бизнес-логике и хранилище.
// Идентификатор назначается хранилищем при создании и далее не меняется.
type Hotel struct {
	ID          int    `json:"id"`          // Идентификатор, назначается хранилищем
	Name        string `json:"name"`        // Название отеля, всегда непустое
	Location    string `json:"location"`    // Адрес или город
	Phone       string `json:"phone"`       // Контактный телефон
	Email       string `json:"email"`       // Контактная почта
	StarRating  int    `json:"star_rating"` // Количество звёзд
	Description string `json:"description"` // Описание
	RoomCount   int    `json:"room_count"`  // Количество номеров
	Facilities  string `json:"facilities"`  // Удобства, свободный текст
}

// DummyHotel используется для приёма данных из JSON-запроса
// при создании и полном обновлении, прежде чем конвертировать их в Hotel.
type DummyHotel struct {
	Name        string `json:"name" validate:"required"`
	Location    string `json:"location"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	StarRating  int    `json:"star_rating" validate:"omitempty,gte=0,lte=5"`
	Description string `json:"description"`
	RoomCount   int    `json:"room_count" validate:"omitempty,gte=0"`
	Facilities  string `json:"facilities"`
}

// HotelPatch описывает частичное обновление отеля.
// Отсутствующее поле не тронуто, явный null сбрасывает значение
// (для имени сброс отклоняется валидацией); идентификатор через patch не меняется.
type HotelPatch struct {
	Name        Optional[string] `json:"name,omitzero"`
	Location    Optional[string] `json:"location,omitzero"`
	Phone       Optional[string] `json:"phone,omitzero"`
	Email       Optional[string] `json:"email,omitzero"`
	StarRating  Optional[int]    `json:"star_rating,omitzero"`
	Description Optional[string] `json:"description,omitzero"`
	RoomCount   Optional[int]    `json:"room_count,omitzero"`
	Facilities  Optional[string] `json:"facilities,omitzero"`
}

// Entity конвертирует входные данные в доменную модель без идентификатора.
func (d DummyHotel) Entity() Hotel {
	return Hotel{
		Name:        d.Name,
		Location:    d.Location,
		Phone:       d.Phone,
		Email:       d.Email,
		StarRating:  d.StarRating,
		Description: d.Description,
		RoomCount:   d.RoomCount,
		Facilities:  d.Facilities,
	}
}

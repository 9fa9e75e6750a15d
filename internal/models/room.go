package models

// Room представляет номер отеля. Каждый номер принадлежит ровно одному отелю;
// HotelID должен ссылаться на существующий отель при создании и при любом
// обновлении, которое его меняет. Цена всегда строго положительна.
type Room struct {
	ID         int     `json:"id"`          // Идентификатор, назначается хранилищем
	RoomType   string  `json:"room_type"`   // Тип номера (Deluxe, Suite и т.д.)
	RoomNumber int     `json:"room_number"` // Номер внутри отеля
	Price      float64 `json:"price"`       // Цена за ночь, > 0
	Capacity   int     `json:"capacity"`    // Вместимость
	Available  bool    `json:"available"`   // Доступен ли для бронирования
	Facilities string  `json:"facilities"`  // Удобства, свободный текст
	HotelID    int     `json:"hotel_id"`    // Внешний ключ на отель
}

// DummyRoom используется для приёма данных из JSON-запроса
// при создании и полном обновлении номера.
type DummyRoom struct {
	RoomType   string  `json:"room_type"`
	RoomNumber int     `json:"room_number" validate:"omitempty,gte=0"`
	Price      float64 `json:"price" validate:"required"`
	Capacity   int     `json:"capacity" validate:"omitempty,gte=0"`
	Available  bool    `json:"available"`
	Facilities string  `json:"facilities"`
	HotelID    int     `json:"hotel_id" validate:"required"`
}

// RoomPatch описывает частичное обновление номера.
// Отсутствующее поле не тронуто, явный null сбрасывает значение
// (для цены и hotel_id сброс отклоняется); смена HotelID допустима,
// но требует существования нового отеля.
type RoomPatch struct {
	RoomType   Optional[string]  `json:"room_type,omitzero"`
	RoomNumber Optional[int]     `json:"room_number,omitzero"`
	Price      Optional[float64] `json:"price,omitzero"`
	Capacity   Optional[int]     `json:"capacity,omitzero"`
	Available  Optional[bool]    `json:"available,omitzero"`
	Facilities Optional[string]  `json:"facilities,omitzero"`
	HotelID    Optional[int]     `json:"hotel_id,omitzero"`
}

// Entity конвертирует входные данные в доменную модель без идентификатора.
func (d DummyRoom) Entity() Room {
	return Room{
		RoomType:   d.RoomType,
		RoomNumber: d.RoomNumber,
		Price:      d.Price,
		Capacity:   d.Capacity,
		Available:  d.Available,
		Facilities: d.Facilities,
		HotelID:    d.HotelID,
	}
}

// Package rules содержит чистые правила валидации полей доменных сущностей.
//
// Правила не имеют побочных эффектов и не изменяют вход. Они применяются
// как к входным данным при создании, так и к результату слияния при
// частичном обновлении: patch может внести невалидное значение в поле,
// которое до этого было корректным.
package rules

import (
	"github.com/magabrotheeeer/hotel-aggregator/internal/apperror"
)

// Сообщения правил валидации. Текст фиксирован контрактом HTTP-границы.
const (
	MsgInvalidHotelName   = "Hotel name must not be null or empty"
	MsgInvalidRoomPrice   = "Price must be greater than zero"
	MsgInvalidRoomHotelID = "Hotel id must not be null"
)

// HotelName проверяет, что название отеля непустое.
// Возвращает nil либо ошибку категории InvalidData.
func HotelName(name string) error {
	if name == "" {
		return apperror.InvalidData(MsgInvalidHotelName)
	}
	return nil
}

// RoomPrice проверяет, что цена номера строго положительна.
// Возвращает nil либо ошибку категории InvalidData.
func RoomPrice(price float64) error {
	if price <= 0 {
		return apperror.InvalidData(MsgInvalidRoomPrice)
	}
	return nil
}

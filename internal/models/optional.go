package models

import (
	"bytes"
	"encoding/json"
)

// Optional различает три состояния поля JSON-запроса: ключ отсутствует,
// ключ присутствует со значением null, ключ присутствует со значением.
// Отсутствующее поле при частичном обновлении не трогает сущность,
// явный null — намеренный сброс значения.
type Optional[T any] struct {
	Set   bool // Ключ присутствует в JSON
	Null  bool // Ключ присутствует и равен null
	Value T    // Значение, если Set и не Null
}

// Some возвращает присутствующее поле со значением v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null возвращает присутствующее поле со значением null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// Present сообщает, что поле присутствует и не равно null.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

// IsZero позволяет omitzero не сериализовать отсутствующие поля.
func (o Optional[T]) IsZero() bool {
	return !o.Set
}

// UnmarshalJSON вызывается только для присутствующих ключей:
// отсутствующий ключ оставляет нулевое значение Optional.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON сериализует null для явного null и значение в остальных случаях.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

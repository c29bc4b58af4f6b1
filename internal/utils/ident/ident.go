package ident

import "github.com/google/uuid"

// Generate возвращает уникальный идентификатор вхождения ингредиента в бургер.
// Идентификатор не связан с каталожным id и не повторяется в пределах сессии.
func Generate() string {
	return uuid.NewString()
}

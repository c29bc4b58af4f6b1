package store

import "github.com/avc/stellar-burger-store/internal/domain"

// AppState представляет полный снимок состояния клиентского приложения.
// Снимок никогда не изменяется на месте: каждый переход порождает новое
// значение, копируя только затронутые срезы.
type AppState struct {
	Catalog           []domain.Ingredient
	IsLoading         bool
	ActiveOrder       *domain.Order
	Builder           domain.BurgerBuilder
	IsOrderProcessing bool
	UserData          domain.User
	OrderHistory      []domain.Order
	OrderStats        domain.OrderStats
	PersonalOrders    []domain.Order // nil означает "не загружены", пустой срез — "загружены, заказов нет"
	IsAuth            bool
	IsAppInitialized  bool
	IsDetailsVisible  bool
	ErrorMessage      string
	CurrentOrder      *domain.Order
}

// InitialState возвращает начальный снимок состояния
func InitialState() AppState {
	return AppState{
		Catalog:      []domain.Ingredient{},
		Builder:      emptyBuilder(),
		OrderHistory: []domain.Order{},
	}
}

func emptyBuilder() domain.BurgerBuilder {
	return domain.BurgerBuilder{
		Ingredients: []domain.BuilderIngredient{},
	}
}

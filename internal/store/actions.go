package store

import "github.com/avc/stellar-burger-store/internal/domain"

// Action представляет событие, сворачиваемое редьюсером в новое состояние.
// Неизвестные редьюсеру действия возвращают состояние без изменений.
type Action interface {
	isAction()
}

// Синхронные действия конструктора бургера и интерфейсных флагов

// AddItem помещает ингредиент каталога в конструктор
type AddItem struct {
	Ingredient domain.Ingredient
}

// RemoveItem убирает вхождение ингредиента из конструктора по его InstanceID
type RemoveItem struct {
	Item domain.BuilderIngredient
}

// MoveItemUp меняет вхождение местами с предыдущим
type MoveItemUp struct {
	Item domain.BuilderIngredient
}

// MoveItemDown меняет вхождение местами со следующим
type MoveItemDown struct {
	Item domain.BuilderIngredient
}

// ClearOrder сбрасывает подтвержденный заказ и опустошает конструктор
type ClearOrder struct{}

// ClearOrderHistory опустошает публичную ленту заказов
type ClearOrderHistory struct{}

// ClearPersonalOrders сбрасывает личные заказы в состояние "не загружены"
type ClearPersonalOrders struct{}

// InitializeApp отмечает, что статус аутентификации выяснен; одноразовый переход
type InitializeApp struct{}

// ShowDetails показывает модальное окно деталей
type ShowDetails struct{}

// HideDetails скрывает модальное окно деталей
type HideDetails struct{}

// SetError записывает сообщение об ошибке
type SetError struct {
	Message string
}

// ClearError сбрасывает сообщение об ошибке
type ClearError struct{}

// Фазы асинхронных операций: ровно одна pending, затем ровно одна из
// fulfilled или rejected на каждый запуск операции

type CatalogPending struct{}
type CatalogFulfilled struct {
	Ingredients []domain.Ingredient
}
type CatalogRejected struct {
	Err error
}

type CreateOrderPending struct{}
type CreateOrderFulfilled struct {
	Response domain.OrderResponse
}
type CreateOrderRejected struct {
	Err error
}

type LoginPending struct{}
type LoginFulfilled struct {
	Response domain.AuthResponse
}
type LoginRejected struct {
	Err error
}

type RegisterPending struct{}
type RegisterFulfilled struct {
	Response domain.AuthResponse
}
type RegisterRejected struct {
	Err error
}

type ProfilePending struct{}
type ProfileFulfilled struct {
	Response domain.UserResponse
}
type ProfileRejected struct {
	Err error
}

type FeedPending struct{}
type FeedFulfilled struct {
	Response domain.FeedResponse
}
type FeedRejected struct {
	Err error
}

type PersonalOrdersPending struct{}
type PersonalOrdersFulfilled struct {
	Orders []domain.Order
}
type PersonalOrdersRejected struct {
	Err error
}

type LogoutPending struct{}
type LogoutFulfilled struct {
	Response domain.LogoutResponse
}
type LogoutRejected struct {
	Err error
}

type UpdateProfilePending struct{}
type UpdateProfileFulfilled struct {
	Response domain.UserResponse
}
type UpdateProfileRejected struct {
	Err error
}

type OrderByNumberPending struct{}
type OrderByNumberFulfilled struct {
	Response domain.OrdersResponse
}
type OrderByNumberRejected struct {
	Err error
}

func (AddItem) isAction()             {}
func (RemoveItem) isAction()          {}
func (MoveItemUp) isAction()          {}
func (MoveItemDown) isAction()        {}
func (ClearOrder) isAction()          {}
func (ClearOrderHistory) isAction()   {}
func (ClearPersonalOrders) isAction() {}
func (InitializeApp) isAction()       {}
func (ShowDetails) isAction()         {}
func (HideDetails) isAction()         {}
func (SetError) isAction()            {}
func (ClearError) isAction()          {}

func (CatalogPending) isAction()          {}
func (CatalogFulfilled) isAction()        {}
func (CatalogRejected) isAction()         {}
func (CreateOrderPending) isAction()      {}
func (CreateOrderFulfilled) isAction()    {}
func (CreateOrderRejected) isAction()     {}
func (LoginPending) isAction()            {}
func (LoginFulfilled) isAction()          {}
func (LoginRejected) isAction()           {}
func (RegisterPending) isAction()         {}
func (RegisterFulfilled) isAction()       {}
func (RegisterRejected) isAction()        {}
func (ProfilePending) isAction()          {}
func (ProfileFulfilled) isAction()        {}
func (ProfileRejected) isAction()         {}
func (FeedPending) isAction()             {}
func (FeedFulfilled) isAction()           {}
func (FeedRejected) isAction()            {}
func (PersonalOrdersPending) isAction()   {}
func (PersonalOrdersFulfilled) isAction() {}
func (PersonalOrdersRejected) isAction()  {}
func (LogoutPending) isAction()           {}
func (LogoutFulfilled) isAction()         {}
func (LogoutRejected) isAction()          {}
func (UpdateProfilePending) isAction()    {}
func (UpdateProfileFulfilled) isAction()  {}
func (UpdateProfileRejected) isAction()   {}
func (OrderByNumberPending) isAction()    {}
func (OrderByNumberFulfilled) isAction()  {}
func (OrderByNumberRejected) isAction()   {}

package store

import "github.com/avc/stellar-burger-store/internal/domain"

// Селекторы — чистые проекции над снимком состояния. Ссылочная
// стабильность не гарантируется: производные значения пересчитываются
// при каждом вызове.

// feedPreviewLimit ограничивает число номеров заказов в сводке ленты
const feedPreviewLimit = 20

func SelectCatalog(s AppState) []domain.Ingredient  { return s.Catalog }
func SelectIsLoading(s AppState) bool               { return s.IsLoading }
func SelectActiveOrder(s AppState) *domain.Order    { return s.ActiveOrder }
func SelectBuilder(s AppState) domain.BurgerBuilder { return s.Builder }
func SelectIsOrderProcessing(s AppState) bool       { return s.IsOrderProcessing }
func SelectUserData(s AppState) domain.User         { return s.UserData }
func SelectOrderHistory(s AppState) []domain.Order  { return s.OrderHistory }
func SelectOrderStats(s AppState) domain.OrderStats { return s.OrderStats }
func SelectPersonalOrders(s AppState) []domain.Order {
	return s.PersonalOrders
}
func SelectIsAuth(s AppState) bool           { return s.IsAuth }
func SelectIsAppInitialized(s AppState) bool { return s.IsAppInitialized }
func SelectIsDetailsVisible(s AppState) bool { return s.IsDetailsVisible }
func SelectErrorMessage(s AppState) string   { return s.ErrorMessage }
func SelectCurrentOrder(s AppState) *domain.Order {
	return s.CurrentOrder
}

// ReadyOrderNumbers возвращает номера готовых заказов ленты, не более 20
func ReadyOrderNumbers(s AppState) []int {
	return orderNumbersByStatus(s.OrderHistory, domain.OrderStatusDone)
}

// PendingOrderNumbers возвращает номера заказов ленты в работе, не более 20
func PendingOrderNumbers(s AppState) []int {
	return orderNumbersByStatus(s.OrderHistory, domain.OrderStatusPending)
}

func orderNumbersByStatus(orders []domain.Order, status domain.OrderStatus) []int {
	numbers := make([]int, 0, feedPreviewLimit)
	for _, order := range orders {
		if order.Status != status {
			continue
		}
		numbers = append(numbers, order.Number)
		if len(numbers) == feedPreviewLimit {
			break
		}
	}
	return numbers
}

// BuilderTotalPrice возвращает стоимость собираемого бургера:
// булка считается дважды, начинка — по разу
func BuilderTotalPrice(b domain.BurgerBuilder) float64 {
	total := b.Bun.Price * 2
	for _, item := range b.Ingredients {
		total += item.Price
	}
	return total
}

// OrderIngredientIDs кодирует собранный бургер в список каталожных id для
// отправки заказа: id булки стоит первым и последним. Возвращает
// domain.ErrIncompleteBurger, если булка не выбрана или нет начинки.
func OrderIngredientIDs(b domain.BurgerBuilder) ([]string, error) {
	if !b.HasBun() || len(b.Ingredients) == 0 {
		return nil, domain.ErrIncompleteBurger
	}

	ids := make([]string, 0, len(b.Ingredients)+2)
	ids = append(ids, b.Bun.ID)
	for _, item := range b.Ingredients {
		ids = append(ids, item.ID)
	}
	ids = append(ids, b.Bun.ID)
	return ids, nil
}

// AccessDecision представляет решение контроля доступа к защищенной зоне
type AccessDecision int

const (
	// AccessLoading — статус аутентификации еще не выяснен
	AccessLoading AccessDecision = iota
	// AccessAllowed — доступ разрешен
	AccessAllowed
	// AccessLoginRequired — требуется перенаправление на вход
	AccessLoginRequired
	// AccessRedirectBack — аутентифицированному пользователю не место
	// на странице только-для-гостей
	AccessRedirectBack
)

// Authorize принимает решение о доступе к зоне. onlyUnauth описывает зоны,
// доступные только неаутентифицированным пользователям (вход, регистрация).
func Authorize(s AppState, onlyUnauth bool) AccessDecision {
	if !s.IsAppInitialized {
		return AccessLoading
	}
	if !onlyUnauth && !s.IsAuth {
		return AccessLoginRequired
	}
	if onlyUnauth && s.IsAuth {
		return AccessRedirectBack
	}
	return AccessAllowed
}

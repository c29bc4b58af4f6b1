package store

import (
	"github.com/avc/stellar-burger-store/internal/domain"
	"github.com/avc/stellar-burger-store/internal/utils/ident"
)

// Reduce сворачивает действие в новое состояние. Исходное состояние не
// изменяется; затронутые срезы копируются. Неизвестные действия и действия
// над несуществующими вхождениями возвращают состояние без изменений.
func Reduce(s AppState, action Action) AppState {
	switch a := action.(type) {

	// Конструктор бургера

	case AddItem:
		if a.Ingredient.Type == domain.IngredientTypeBun {
			// Булка всегда одна: новая замещает текущую целиком
			s.Builder.Bun = a.Ingredient
			return s
		}
		items := make([]domain.BuilderIngredient, len(s.Builder.Ingredients), len(s.Builder.Ingredients)+1)
		copy(items, s.Builder.Ingredients)
		s.Builder.Ingredients = append(items, domain.BuilderIngredient{
			Ingredient: a.Ingredient,
			InstanceID: ident.Generate(),
		})
		return s

	case RemoveItem:
		idx := findItem(s.Builder.Ingredients, a.Item.InstanceID)
		if idx < 0 {
			return s
		}
		items := make([]domain.BuilderIngredient, 0, len(s.Builder.Ingredients)-1)
		items = append(items, s.Builder.Ingredients[:idx]...)
		items = append(items, s.Builder.Ingredients[idx+1:]...)
		s.Builder.Ingredients = items
		return s

	case MoveItemUp:
		idx := findItem(s.Builder.Ingredients, a.Item.InstanceID)
		if idx <= 0 {
			return s
		}
		s.Builder.Ingredients = swapItems(s.Builder.Ingredients, idx-1, idx)
		return s

	case MoveItemDown:
		idx := findItem(s.Builder.Ingredients, a.Item.InstanceID)
		if idx < 0 || idx >= len(s.Builder.Ingredients)-1 {
			return s
		}
		s.Builder.Ingredients = swapItems(s.Builder.Ingredients, idx, idx+1)
		return s

	case ClearOrder:
		s.ActiveOrder = nil
		s.IsOrderProcessing = false
		s.Builder = emptyBuilder()
		return s

	case ClearOrderHistory:
		s.OrderHistory = []domain.Order{}
		return s

	case ClearPersonalOrders:
		s.PersonalOrders = nil
		return s

	case InitializeApp:
		s.IsAppInitialized = true
		return s

	case ShowDetails:
		s.IsDetailsVisible = true
		return s

	case HideDetails:
		s.IsDetailsVisible = false
		return s

	case SetError:
		s.ErrorMessage = a.Message
		return s

	case ClearError:
		s.ErrorMessage = ""
		return s

	// Загрузка каталога

	case CatalogPending:
		s.IsLoading = true
		return s

	case CatalogFulfilled:
		s.IsLoading = false
		s.Catalog = a.Ingredients
		return s

	case CatalogRejected:
		s.IsLoading = false
		s.ErrorMessage = errText(a.Err)
		return s

	// Отправка заказа

	case CreateOrderPending:
		s.IsOrderProcessing = true
		return s

	case CreateOrderFulfilled:
		order := a.Response.Order
		s.ActiveOrder = &order
		s.IsOrderProcessing = false
		return s

	case CreateOrderRejected:
		s.IsOrderProcessing = false
		return s

	// Вход

	case LoginPending:
		s.IsLoading = true
		return s

	case LoginFulfilled:
		s.IsLoading = false
		s.IsAuth = true
		return s

	case LoginRejected:
		s.IsLoading = false
		s.ErrorMessage = errText(a.Err)
		return s

	// Регистрация

	case RegisterPending:
		s.IsLoading = true
		return s

	case RegisterFulfilled:
		s.IsLoading = false
		s.IsAuth = true
		return s

	case RegisterRejected:
		s.IsLoading = false
		s.ErrorMessage = errText(a.Err)
		return s

	// Профиль пользователя

	case ProfilePending:
		s.IsLoading = true
		return s

	case ProfileFulfilled:
		s.IsLoading = false
		s.UserData = a.Response.User
		s.IsAuth = true
		return s

	case ProfileRejected:
		// Неудачная загрузка профиля означает потерю сессии целиком
		s.IsLoading = false
		s.IsAuth = false
		s.UserData = domain.User{}
		return s

	// Публичная лента

	case FeedPending:
		s.IsLoading = true
		return s

	case FeedFulfilled:
		s.IsLoading = false
		s.OrderHistory = a.Response.Orders
		s.OrderStats = domain.OrderStats{
			Total: a.Response.Total,
			Today: a.Response.TotalToday,
		}
		return s

	case FeedRejected:
		s.IsLoading = false
		return s

	// Личные заказы

	case PersonalOrdersPending:
		s.IsLoading = true
		return s

	case PersonalOrdersFulfilled:
		s.IsLoading = false
		orders := a.Orders
		if orders == nil {
			// Загруженный пустой список должен отличаться от "не загружены"
			orders = []domain.Order{}
		}
		s.PersonalOrders = orders
		return s

	case PersonalOrdersRejected:
		s.IsLoading = false
		return s

	// Выход

	case LogoutPending:
		s.IsLoading = true
		return s

	case LogoutFulfilled:
		s.IsLoading = false
		if a.Response.Success {
			s.UserData = domain.User{}
			s.IsAuth = false
		}
		return s

	case LogoutRejected:
		s.IsLoading = false
		return s

	// Изменение профиля

	case UpdateProfilePending:
		s.IsLoading = true
		return s

	case UpdateProfileFulfilled:
		s.IsLoading = false
		if a.Response.Success {
			s.UserData = a.Response.User
		}
		return s

	case UpdateProfileRejected:
		s.IsLoading = false
		return s

	// Заказ по номеру

	case OrderByNumberPending:
		s.IsLoading = true
		return s

	case OrderByNumberFulfilled:
		s.IsLoading = false
		if len(a.Response.Orders) > 0 {
			order := a.Response.Orders[0]
			s.CurrentOrder = &order
		} else {
			s.CurrentOrder = nil
		}
		return s

	case OrderByNumberRejected:
		s.IsLoading = false
		s.CurrentOrder = nil
		return s

	default:
		return s
	}
}

func findItem(items []domain.BuilderIngredient, instanceID string) int {
	for i, item := range items {
		if item.InstanceID == instanceID {
			return i
		}
	}
	return -1
}

func swapItems(items []domain.BuilderIngredient, i, j int) []domain.BuilderIngredient {
	next := make([]domain.BuilderIngredient, len(items))
	copy(next, items)
	next[i], next[j] = next[j], next[i]
	return next
}

func errText(err error) string {
	if err != nil {
		return err.Error()
	}
	return "unknown error"
}

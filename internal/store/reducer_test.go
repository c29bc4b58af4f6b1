package store

import (
	"errors"
	"testing"

	"github.com/avc/stellar-burger-store/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testBun = domain.Ingredient{
		ID:    "bun-1",
		Name:  "Краторная булка N-200i",
		Type:  domain.IngredientTypeBun,
		Price: 1255,
	}
	testBun2 = domain.Ingredient{
		ID:    "bun-2",
		Name:  "Флюоресцентная булка R2-D3",
		Type:  domain.IngredientTypeBun,
		Price: 988,
	}
	testMain = domain.Ingredient{
		ID:    "main-1",
		Name:  "Биокотлета из марсианской Магнолии",
		Type:  domain.IngredientTypeMain,
		Price: 424,
	}
	testSauce = domain.Ingredient{
		ID:    "sauce-1",
		Name:  "Соус Spicy-X",
		Type:  domain.IngredientTypeSauce,
		Price: 90,
	}
)

type unknownAction struct{}

func (unknownAction) isAction() {}

func TestReduce_UnknownAction(t *testing.T) {
	initial := InitialState()
	initial.ErrorMessage = "kept"
	initial.IsAuth = true

	next := Reduce(initial, unknownAction{})
	assert.Equal(t, initial, next)
}

func TestReduce_AddItem(t *testing.T) {
	t.Run("Filling is appended in insertion order", func(t *testing.T) {
		s := Reduce(InitialState(), AddItem{Ingredient: testMain})
		s = Reduce(s, AddItem{Ingredient: testSauce})

		require.Len(t, s.Builder.Ingredients, 2)
		assert.Equal(t, testMain.ID, s.Builder.Ingredients[0].ID)
		assert.Equal(t, testSauce.ID, s.Builder.Ingredients[1].ID)
	})

	t.Run("Bun replaces current bun, never appends", func(t *testing.T) {
		s := Reduce(InitialState(), AddItem{Ingredient: testBun})
		s = Reduce(s, AddItem{Ingredient: testBun2})

		assert.Equal(t, testBun2.ID, s.Builder.Bun.ID)
		assert.Empty(t, s.Builder.Ingredients)
	})

	t.Run("Same catalog ingredient twice gets distinct instance ids", func(t *testing.T) {
		s := Reduce(InitialState(), AddItem{Ingredient: testMain})
		s = Reduce(s, AddItem{Ingredient: testMain})

		require.Len(t, s.Builder.Ingredients, 2)
		first, second := s.Builder.Ingredients[0], s.Builder.Ingredients[1]
		assert.Equal(t, first.Ingredient, second.Ingredient)
		assert.NotEmpty(t, first.InstanceID)
		assert.NotEqual(t, first.InstanceID, second.InstanceID)
	})

	t.Run("Does not mutate previous snapshot", func(t *testing.T) {
		before := Reduce(InitialState(), AddItem{Ingredient: testMain})
		beforeLen := len(before.Builder.Ingredients)

		_ = Reduce(before, AddItem{Ingredient: testSauce})
		assert.Len(t, before.Builder.Ingredients, beforeLen)
	})
}

func TestReduce_RemoveItem(t *testing.T) {
	t.Run("Removes only the matching instance", func(t *testing.T) {
		s := Reduce(InitialState(), AddItem{Ingredient: testMain})
		s = Reduce(s, AddItem{Ingredient: testMain})
		require.Len(t, s.Builder.Ingredients, 2)

		removed := s.Builder.Ingredients[0]
		kept := s.Builder.Ingredients[1]

		s = Reduce(s, RemoveItem{Item: removed})
		require.Len(t, s.Builder.Ingredients, 1)
		assert.Equal(t, kept.InstanceID, s.Builder.Ingredients[0].InstanceID)
	})

	t.Run("Unknown instance id is a no-op", func(t *testing.T) {
		s := Reduce(InitialState(), AddItem{Ingredient: testMain})

		next := Reduce(s, RemoveItem{Item: domain.BuilderIngredient{InstanceID: "missing"}})
		assert.Equal(t, s, next)
	})
}

func TestReduce_MoveItems(t *testing.T) {
	build := func(t *testing.T) AppState {
		t.Helper()
		s := Reduce(InitialState(), AddItem{Ingredient: testMain})
		s = Reduce(s, AddItem{Ingredient: testSauce})
		s = Reduce(s, AddItem{Ingredient: testMain})
		require.Len(t, s.Builder.Ingredients, 3)
		return s
	}

	instanceIDs := func(s AppState) []string {
		ids := make([]string, 0, len(s.Builder.Ingredients))
		for _, item := range s.Builder.Ingredients {
			ids = append(ids, item.InstanceID)
		}
		return ids
	}

	t.Run("MoveUp swaps with predecessor", func(t *testing.T) {
		s := build(t)
		before := instanceIDs(s)

		s = Reduce(s, MoveItemUp{Item: s.Builder.Ingredients[1]})
		assert.Equal(t, []string{before[1], before[0], before[2]}, instanceIDs(s))
	})

	t.Run("MoveDown swaps with successor", func(t *testing.T) {
		s := build(t)
		before := instanceIDs(s)

		s = Reduce(s, MoveItemDown{Item: s.Builder.Ingredients[1]})
		assert.Equal(t, []string{before[0], before[2], before[1]}, instanceIDs(s))
	})

	t.Run("MoveUp on first element is a no-op", func(t *testing.T) {
		s := build(t)
		next := Reduce(s, MoveItemUp{Item: s.Builder.Ingredients[0]})
		assert.Equal(t, s, next)
	})

	t.Run("MoveDown on last element is a no-op", func(t *testing.T) {
		s := build(t)
		next := Reduce(s, MoveItemDown{Item: s.Builder.Ingredients[2]})
		assert.Equal(t, s, next)
	})

	t.Run("MoveUp on second of two reverses the pair", func(t *testing.T) {
		s := Reduce(InitialState(), AddItem{Ingredient: testMain})
		s = Reduce(s, AddItem{Ingredient: testSauce})
		before := instanceIDs(s)

		s = Reduce(s, MoveItemUp{Item: s.Builder.Ingredients[1]})
		assert.Equal(t, []string{before[1], before[0]}, instanceIDs(s))
	})

	t.Run("Unknown instance id is a no-op", func(t *testing.T) {
		s := build(t)
		next := Reduce(s, MoveItemUp{Item: domain.BuilderIngredient{InstanceID: "missing"}})
		assert.Equal(t, s, next)
	})
}

func TestReduce_CatalogLifecycle(t *testing.T) {
	initial := InitialState()

	t.Run("Pending sets loading", func(t *testing.T) {
		s := Reduce(initial, CatalogPending{})
		assert.True(t, s.IsLoading)
	})

	t.Run("Fulfilled stores catalog and clears loading", func(t *testing.T) {
		s := Reduce(initial, CatalogPending{})
		s = Reduce(s, CatalogFulfilled{Ingredients: []domain.Ingredient{testBun}})

		assert.False(t, s.IsLoading)
		require.Len(t, s.Catalog, 1)
		assert.Equal(t, testBun.ID, s.Catalog[0].ID)

		// Остальные поля не тронуты
		s.IsLoading = initial.IsLoading
		s.Catalog = initial.Catalog
		assert.Equal(t, initial, s)
	})

	t.Run("Rejected records the error message", func(t *testing.T) {
		s := Reduce(initial, CatalogRejected{Err: errors.New("network down")})

		assert.False(t, s.IsLoading)
		assert.Equal(t, "network down", s.ErrorMessage)

		s.ErrorMessage = initial.ErrorMessage
		assert.Equal(t, initial, s)
	})
}

func TestReduce_CreateOrderAndClear(t *testing.T) {
	order := domain.Order{ID: "o-1", Number: 42, Status: domain.OrderStatusDone}

	s := InitialState()
	s = Reduce(s, CatalogFulfilled{Ingredients: []domain.Ingredient{testBun, testMain}})
	s = Reduce(s, AddItem{Ingredient: testBun})
	s = Reduce(s, AddItem{Ingredient: testMain})
	s = Reduce(s, ProfileFulfilled{Response: domain.UserResponse{
		Success: true,
		User:    domain.User{Name: "Bob", Email: "b@x.com"},
	}})

	s = Reduce(s, CreateOrderPending{})
	assert.True(t, s.IsOrderProcessing)

	s = Reduce(s, CreateOrderFulfilled{Response: domain.OrderResponse{Success: true, Order: order}})
	assert.False(t, s.IsOrderProcessing)
	require.NotNil(t, s.ActiveOrder)
	assert.Equal(t, 42, s.ActiveOrder.Number)

	s = Reduce(s, ClearOrder{})
	assert.Nil(t, s.ActiveOrder)
	assert.False(t, s.IsOrderProcessing)
	assert.False(t, s.Builder.HasBun())
	assert.Zero(t, s.Builder.Bun.Price)
	assert.Empty(t, s.Builder.Ingredients)

	// Каталог и профиль переживают сброс заказа
	assert.Len(t, s.Catalog, 2)
	assert.Equal(t, "Bob", s.UserData.Name)
}

func TestReduce_CreateOrderRejected(t *testing.T) {
	s := Reduce(InitialState(), CreateOrderPending{})
	initialError := s.ErrorMessage

	s = Reduce(s, CreateOrderRejected{Err: errors.New("boom")})
	assert.False(t, s.IsOrderProcessing)
	// Ошибка отправки заказа не попадает в errorMessage
	assert.Equal(t, initialError, s.ErrorMessage)
}

func TestReduce_PersonalOrders(t *testing.T) {
	t.Run("Fulfilled with empty payload is distinguishable from unfetched", func(t *testing.T) {
		s := InitialState()
		assert.Nil(t, s.PersonalOrders)

		s = Reduce(s, PersonalOrdersFulfilled{Orders: []domain.Order{}})
		assert.NotNil(t, s.PersonalOrders)
		assert.Empty(t, s.PersonalOrders)
	})

	t.Run("Fulfilled with nil payload still means loaded", func(t *testing.T) {
		s := Reduce(InitialState(), PersonalOrdersFulfilled{Orders: nil})
		assert.NotNil(t, s.PersonalOrders)
	})

	t.Run("Clear resets to unfetched", func(t *testing.T) {
		s := Reduce(InitialState(), PersonalOrdersFulfilled{Orders: []domain.Order{{Number: 1}}})
		s = Reduce(s, ClearPersonalOrders{})
		assert.Nil(t, s.PersonalOrders)
	})
}

func TestReduce_Feed(t *testing.T) {
	orders := []domain.Order{
		{Number: 1, Status: domain.OrderStatusDone},
		{Number: 2, Status: domain.OrderStatusPending},
	}

	s := Reduce(InitialState(), FeedPending{})
	assert.True(t, s.IsLoading)

	s = Reduce(s, FeedFulfilled{Response: domain.FeedResponse{
		Success:    true,
		Orders:     orders,
		Total:      120,
		TotalToday: 12,
	}})
	assert.False(t, s.IsLoading)
	assert.Len(t, s.OrderHistory, 2)
	assert.Equal(t, domain.OrderStats{Total: 120, Today: 12}, s.OrderStats)

	s = Reduce(s, ClearOrderHistory{})
	assert.NotNil(t, s.OrderHistory)
	assert.Empty(t, s.OrderHistory)
}

func TestReduce_FeedRejectedKeepsError(t *testing.T) {
	s := InitialState()
	s.ErrorMessage = "previous error"

	s = Reduce(s, FeedRejected{Err: errors.New("boom")})
	assert.False(t, s.IsLoading)
	assert.Equal(t, "previous error", s.ErrorMessage)
}

func TestReduce_ProfileLifecycle(t *testing.T) {
	t.Run("Fulfilled stores user and marks auth", func(t *testing.T) {
		s := Reduce(InitialState(), ProfileFulfilled{Response: domain.UserResponse{
			Success: true,
			User:    domain.User{Name: "Bob", Email: "b@x.com"},
		}})

		assert.False(t, s.IsLoading)
		assert.True(t, s.IsAuth)
		assert.Equal(t, "Bob", s.UserData.Name)
	})

	t.Run("Rejected invalidates the whole session", func(t *testing.T) {
		s := InitialState()
		s.IsAuth = true
		s.UserData = domain.User{Name: "Bob", Email: "b@x.com"}

		s = Reduce(s, ProfileRejected{Err: errors.New("jwt expired")})
		assert.False(t, s.IsLoading)
		assert.False(t, s.IsAuth)
		assert.Equal(t, domain.User{}, s.UserData)
	})
}

func TestReduce_Logout(t *testing.T) {
	authed := InitialState()
	authed.IsAuth = true
	authed.UserData = domain.User{Name: "Bob", Email: "b@x.com"}

	t.Run("Successful logout clears user", func(t *testing.T) {
		s := Reduce(authed, LogoutFulfilled{Response: domain.LogoutResponse{Success: true}})
		assert.False(t, s.IsAuth)
		assert.Equal(t, domain.User{}, s.UserData)
	})

	t.Run("Unsuccessful logout keeps user", func(t *testing.T) {
		s := Reduce(authed, LogoutFulfilled{Response: domain.LogoutResponse{Success: false}})
		assert.True(t, s.IsAuth)
		assert.Equal(t, "Bob", s.UserData.Name)
	})

	t.Run("Rejected only resets loading", func(t *testing.T) {
		s := Reduce(authed, LogoutRejected{Err: errors.New("boom")})
		assert.False(t, s.IsLoading)
		assert.True(t, s.IsAuth)
	})
}

func TestReduce_UpdateProfile(t *testing.T) {
	authed := InitialState()
	authed.UserData = domain.User{Name: "Bob", Email: "b@x.com"}

	t.Run("Successful update replaces user data", func(t *testing.T) {
		s := Reduce(authed, UpdateProfileFulfilled{Response: domain.UserResponse{
			Success: true,
			User:    domain.User{Name: "Robert", Email: "b@x.com"},
		}})
		assert.Equal(t, "Robert", s.UserData.Name)
	})

	t.Run("Unsuccessful update keeps user data", func(t *testing.T) {
		s := Reduce(authed, UpdateProfileFulfilled{Response: domain.UserResponse{
			Success: false,
			User:    domain.User{Name: "Robert"},
		}})
		assert.Equal(t, "Bob", s.UserData.Name)
	})
}

func TestReduce_OrderByNumber(t *testing.T) {
	t.Run("Fulfilled stores the first order", func(t *testing.T) {
		s := Reduce(InitialState(), OrderByNumberFulfilled{Response: domain.OrdersResponse{
			Success: true,
			Orders:  []domain.Order{{Number: 42}},
		}})
		require.NotNil(t, s.CurrentOrder)
		assert.Equal(t, 42, s.CurrentOrder.Number)
	})

	t.Run("Fulfilled with no orders clears current order", func(t *testing.T) {
		s := InitialState()
		s.CurrentOrder = &domain.Order{Number: 1}

		s = Reduce(s, OrderByNumberFulfilled{Response: domain.OrdersResponse{Success: true}})
		assert.Nil(t, s.CurrentOrder)
	})

	t.Run("Rejected clears current order", func(t *testing.T) {
		s := InitialState()
		s.CurrentOrder = &domain.Order{Number: 1}

		s = Reduce(s, OrderByNumberRejected{Err: errors.New("not found")})
		assert.False(t, s.IsLoading)
		assert.Nil(t, s.CurrentOrder)
	})
}

func TestReduce_InterfaceFlags(t *testing.T) {
	s := InitialState()

	s = Reduce(s, InitializeApp{})
	assert.True(t, s.IsAppInitialized)

	s = Reduce(s, ShowDetails{})
	assert.True(t, s.IsDetailsVisible)

	s = Reduce(s, HideDetails{})
	assert.False(t, s.IsDetailsVisible)

	s = Reduce(s, SetError{Message: "oops"})
	assert.Equal(t, "oops", s.ErrorMessage)

	s = Reduce(s, ClearError{})
	assert.Empty(t, s.ErrorMessage)
}

package store

import (
	"context"

	"github.com/avc/stellar-burger-store/internal/domain"
	"go.uber.org/zap"
)

// Coordinator запускает удаленные операции и доставляет их фазы в хранилище.
// Для каждого запуска pending диспетчеризуется синхронно до обращения к API,
// затем ровно одна из fulfilled или rejected — после завершения. Повторные
// параллельные запуски одной операции не дедуплицируются: по общим полям
// состояния побеждает последняя примененная фаза.
type Coordinator struct {
	store  *Store
	client domain.APIClient
	logger *zap.Logger
}

// NewCoordinator создает координатор поверх хранилища и API клиента
func NewCoordinator(store *Store, client domain.APIClient, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		store:  store,
		client: client,
		logger: logger,
	}
}

// Task представляет один запуск асинхронной операции. Результат доступен
// после закрытия Done; Wait позволяет дождаться исхода и разветвиться по
// успеху или ошибке, не опрашивая состояние.
type Task[T any] struct {
	done   chan struct{}
	result T
	err    error
}

// Done закрывается после диспетчеризации терминальной фазы
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Wait блокируется до завершения операции или отмены контекста
// и возвращает результат терминальной фазы
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.result, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// run выполняет один запуск операции: pending строго до вызова,
// терминальная фаза строго после, ровно один раз
func run[T any](
	c *Coordinator,
	ctx context.Context,
	name string,
	pending Action,
	call func(context.Context) (T, error),
	fulfilled func(T) Action,
	rejected func(error) Action,
) *Task[T] {
	task := &Task[T]{done: make(chan struct{})}

	c.store.Dispatch(pending)

	go func() {
		defer close(task.done)

		result, err := call(ctx)
		if err != nil {
			c.logger.Warn("operation rejected",
				zap.String("operation", name),
				zap.Error(err),
			)
			task.err = err
			c.store.Dispatch(rejected(err))
			return
		}

		task.result = result
		c.store.Dispatch(fulfilled(result))
	}()

	return task
}

// FetchCatalog загружает каталог ингредиентов
func (c *Coordinator) FetchCatalog(ctx context.Context) *Task[[]domain.Ingredient] {
	return run(c, ctx, "fetchCatalog",
		CatalogPending{},
		c.client.FetchIngredients,
		func(items []domain.Ingredient) Action { return CatalogFulfilled{Ingredients: items} },
		func(err error) Action { return CatalogRejected{Err: err} },
	)
}

// CreateOrder отправляет собранный бургер на сервер
func (c *Coordinator) CreateOrder(ctx context.Context, ingredientIDs []string) *Task[*domain.OrderResponse] {
	return run(c, ctx, "createOrder",
		CreateOrderPending{},
		func(ctx context.Context) (*domain.OrderResponse, error) {
			return c.client.SubmitOrder(ctx, ingredientIDs)
		},
		func(resp *domain.OrderResponse) Action { return CreateOrderFulfilled{Response: *resp} },
		func(err error) Action { return CreateOrderRejected{Err: err} },
	)
}

// Login выполняет вход пользователя
func (c *Coordinator) Login(ctx context.Context, creds domain.Credentials) *Task[*domain.AuthResponse] {
	return run(c, ctx, "login",
		LoginPending{},
		func(ctx context.Context) (*domain.AuthResponse, error) {
			return c.client.Login(ctx, creds)
		},
		func(resp *domain.AuthResponse) Action { return LoginFulfilled{Response: *resp} },
		func(err error) Action { return LoginRejected{Err: err} },
	)
}

// Register регистрирует нового пользователя
func (c *Coordinator) Register(ctx context.Context, req domain.RegisterRequest) *Task[*domain.AuthResponse] {
	return run(c, ctx, "register",
		RegisterPending{},
		func(ctx context.Context) (*domain.AuthResponse, error) {
			return c.client.Register(ctx, req)
		},
		func(resp *domain.AuthResponse) Action { return RegisterFulfilled{Response: *resp} },
		func(err error) Action { return RegisterRejected{Err: err} },
	)
}

// FetchUserProfile загружает профиль текущего пользователя
func (c *Coordinator) FetchUserProfile(ctx context.Context) *Task[*domain.UserResponse] {
	return run(c, ctx, "fetchProfile",
		ProfilePending{},
		c.client.FetchUser,
		func(resp *domain.UserResponse) Action { return ProfileFulfilled{Response: *resp} },
		func(err error) Action { return ProfileRejected{Err: err} },
	)
}

// FetchOrdersFeed загружает публичную ленту заказов
func (c *Coordinator) FetchOrdersFeed(ctx context.Context) *Task[*domain.FeedResponse] {
	return run(c, ctx, "fetchOrdersFeed",
		FeedPending{},
		c.client.FetchFeeds,
		func(resp *domain.FeedResponse) Action { return FeedFulfilled{Response: *resp} },
		func(err error) Action { return FeedRejected{Err: err} },
	)
}

// FetchPersonalOrders загружает заказы текущего пользователя
func (c *Coordinator) FetchPersonalOrders(ctx context.Context) *Task[[]domain.Order] {
	return run(c, ctx, "fetchPersonalOrders",
		PersonalOrdersPending{},
		c.client.FetchOrders,
		func(orders []domain.Order) Action { return PersonalOrdersFulfilled{Orders: orders} },
		func(err error) Action { return PersonalOrdersRejected{Err: err} },
	)
}

// Logout завершает сессию пользователя
func (c *Coordinator) Logout(ctx context.Context) *Task[*domain.LogoutResponse] {
	return run(c, ctx, "logout",
		LogoutPending{},
		c.client.Logout,
		func(resp *domain.LogoutResponse) Action { return LogoutFulfilled{Response: *resp} },
		func(err error) Action { return LogoutRejected{Err: err} },
	)
}

// UpdateUserProfile изменяет профиль текущего пользователя
func (c *Coordinator) UpdateUserProfile(ctx context.Context, patch domain.UserPatch) *Task[*domain.UserResponse] {
	return run(c, ctx, "updateProfile",
		UpdateProfilePending{},
		func(ctx context.Context) (*domain.UserResponse, error) {
			return c.client.UpdateUser(ctx, patch)
		},
		func(resp *domain.UserResponse) Action { return UpdateProfileFulfilled{Response: *resp} },
		func(err error) Action { return UpdateProfileRejected{Err: err} },
	)
}

// GetOrderByNumber загружает один заказ по номеру
func (c *Coordinator) GetOrderByNumber(ctx context.Context, number int) *Task[*domain.OrdersResponse] {
	return run(c, ctx, "getOrder",
		OrderByNumberPending{},
		func(ctx context.Context) (*domain.OrdersResponse, error) {
			return c.client.FetchOrderByNumber(ctx, number)
		},
		func(resp *domain.OrdersResponse) Action { return OrderByNumberFulfilled{Response: *resp} },
		func(err error) Action { return OrderByNumberRejected{Err: err} },
	)
}

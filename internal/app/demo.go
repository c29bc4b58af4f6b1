package app

import (
	"context"
	"fmt"

	"github.com/avc/stellar-burger-store/internal/domain"
	"github.com/avc/stellar-burger-store/internal/store"
	"go.uber.org/zap"
)

// runDemoSession проигрывает полный пользовательский сценарий против API:
// выяснение статуса сессии, загрузка каталога, сборка бургера, регистрация,
// отправка заказа, лента и личные заказы, выход.
func (a *App) runDemoSession(ctx context.Context) error {
	c := a.coordinator

	// Наблюдаем за ошибками независимо от хода сценария
	a.store.Subscribe(func(next store.AppState) {
		if next.ErrorMessage != "" {
			a.logger.Debug("state carries an error", zap.String("error", next.ErrorMessage))
		}
	})

	// Как и браузерный клиент, пробуем восстановить сессию по сохраненным
	// токенам и только после этого считаем приложение инициализированным
	_, _ = c.FetchUserProfile(ctx).Wait(ctx)
	a.store.Dispatch(store.InitializeApp{})

	state := a.store.State()
	a.logger.Info("session restored",
		zap.Bool("is_auth", state.IsAuth),
		zap.String("user", state.UserData.Email),
	)

	// Каталог
	catalog, err := c.FetchCatalog(ctx).Wait(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch catalog: %w", err)
	}
	a.logger.Info("catalog loaded", zap.Int("ingredients", len(catalog)))

	// Сборка бургера: первая булка и по одному ингредиенту каждого типа
	var bun domain.Ingredient
	for _, ingredient := range catalog {
		switch {
		case ingredient.Type == domain.IngredientTypeBun && bun.ID == "":
			bun = ingredient
			a.store.Dispatch(store.AddItem{Ingredient: ingredient})
		case ingredient.Type != domain.IngredientTypeBun:
			a.store.Dispatch(store.AddItem{Ingredient: ingredient})
		}
	}

	builder := store.SelectBuilder(a.store.State())
	a.logger.Info("burger assembled",
		zap.String("bun", builder.Bun.Name),
		zap.Int("fillings", len(builder.Ingredients)),
		zap.Float64("total_price", store.BuilderTotalPrice(builder)),
	)

	// Аутентификация: регистрируем нового пользователя, при конфликте входим
	if !store.SelectIsAuth(a.store.State()) {
		const email = "demo@stellar.test"
		_, err := c.Register(ctx, domain.RegisterRequest{
			Email:    email,
			Password: "supersecret",
			Name:     "Demo User",
		}).Wait(ctx)
		if err != nil {
			a.logger.Warn("registration failed, trying login", zap.Error(err))
			if _, err := c.Login(ctx, domain.Credentials{
				Email:    email,
				Password: "supersecret",
			}).Wait(ctx); err != nil {
				return fmt.Errorf("failed to authenticate: %w", err)
			}
		}
	}

	// Отправка заказа
	ids, err := store.OrderIngredientIDs(store.SelectBuilder(a.store.State()))
	if err != nil {
		return fmt.Errorf("burger is not ready for ordering: %w", err)
	}

	orderResp, err := c.CreateOrder(ctx, ids).Wait(ctx)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	a.logger.Info("order created",
		zap.Int("number", orderResp.Order.Number),
		zap.String("name", orderResp.Name),
	)

	// Подтверждение закрыто: начинаем новый заказ
	a.store.Dispatch(store.ClearOrder{})

	// Публичная лента и заказ по номеру
	if _, err := c.FetchOrdersFeed(ctx).Wait(ctx); err != nil {
		return fmt.Errorf("failed to fetch feed: %w", err)
	}
	state = a.store.State()
	a.logger.Info("feed loaded",
		zap.Int("total", state.OrderStats.Total),
		zap.Int("today", state.OrderStats.Today),
		zap.Ints("ready", store.ReadyOrderNumbers(state)),
		zap.Ints("pending", store.PendingOrderNumbers(state)),
	)

	if _, err := c.GetOrderByNumber(ctx, orderResp.Order.Number).Wait(ctx); err != nil {
		return fmt.Errorf("failed to fetch order by number: %w", err)
	}

	// Личные заказы
	if _, err := c.FetchPersonalOrders(ctx).Wait(ctx); err != nil {
		return fmt.Errorf("failed to fetch personal orders: %w", err)
	}
	a.logger.Info("personal orders loaded",
		zap.Int("count", len(store.SelectPersonalOrders(a.store.State()))),
	)

	// Выход
	if _, err := c.Logout(ctx).Wait(ctx); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}
	a.logger.Info("logged out", zap.Bool("is_auth", store.SelectIsAuth(a.store.State())))

	return nil
}

package domain

// IngredientType представляет тип ингредиента каталога
type IngredientType string

const (
	IngredientTypeBun   IngredientType = "bun"
	IngredientTypeSauce IngredientType = "sauce"
	IngredientTypeMain  IngredientType = "main"
)

// OrderStatus представляет статус заказа
type OrderStatus string

const (
	OrderStatusCreated OrderStatus = "created"
	OrderStatusPending OrderStatus = "pending"
	OrderStatusDone    OrderStatus = "done"
)

// Ingredient представляет позицию каталога. Неизменяема после загрузки.
type Ingredient struct {
	ID          string         `json:"_id"`
	Name        string         `json:"name"`
	Type        IngredientType `json:"type"`
	Proteins    int            `json:"proteins"`
	Fat         int            `json:"fat"`
	Carbs       int            `json:"carbohydrates"`
	Calories    int            `json:"calories"`
	Price       float64        `json:"price"`
	Image       string         `json:"image"`
	ImageMobile string         `json:"image_mobile"`
	ImageLarge  string         `json:"image_large"`
}

// BuilderIngredient представляет ингредиент, помещенный в собираемый бургер.
// InstanceID генерируется локально при каждом помещении: один и тот же
// ингредиент каталога может быть добавлен несколько раз, и каждое вхождение
// удаляется и перемещается независимо от остальных.
type BuilderIngredient struct {
	Ingredient
	InstanceID string `json:"instance_id"`
}

// BurgerBuilder представляет собираемый, еще не отправленный заказ.
// В слоте булки находится не более одной булки; начинка хранится в порядке
// добавления, порядок управляется явными перемещениями.
type BurgerBuilder struct {
	Bun         Ingredient          `json:"bun"`
	Ingredients []BuilderIngredient `json:"ingredients"`
}

// HasBun сообщает, выбрана ли булка
func (b BurgerBuilder) HasBun() bool {
	return b.Bun.ID != ""
}

// Order представляет заказ, созданный сервером
type Order struct {
	ID          string      `json:"_id"`
	Number      int         `json:"number"`
	Name        string      `json:"name"`
	Status      OrderStatus `json:"status"`
	Ingredients []string    `json:"ingredients"`
	CreatedAt   string      `json:"createdAt"`
	UpdatedAt   string      `json:"updatedAt"`
}

// User представляет пользователя; пустые строки означают отсутствие
// аутентифицированного пользователя
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderStats представляет агрегированные счетчики публичной ленты
type OrderStats struct {
	Total int `json:"total"`
	Today int `json:"today"`
}

// Credentials представляет данные для входа
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest представляет данные регистрации
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// UserPatch представляет изменяемые поля профиля; nil означает "не менять"
type UserPatch struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// AuthResponse представляет ответ на вход или регистрацию
type AuthResponse struct {
	Success      bool   `json:"success"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

// UserResponse представляет ответ с данными пользователя
type UserResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

// LogoutResponse представляет ответ на завершение сессии
type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// FeedResponse представляет публичную ленту заказов со счетчиками
type FeedResponse struct {
	Success    bool    `json:"success"`
	Orders     []Order `json:"orders"`
	Total      int     `json:"total"`
	TotalToday int     `json:"totalToday"`
}

// OrdersResponse представляет ответ с набором заказов
type OrdersResponse struct {
	Success bool    `json:"success"`
	Orders  []Order `json:"orders"`
}

// OrderResponse представляет ответ на отправку заказа
type OrderResponse struct {
	Success bool   `json:"success"`
	Name    string `json:"name"`
	Order   Order  `json:"order"`
}

// RefreshResponse представляет ответ на обновление пары токенов
type RefreshResponse struct {
	Success      bool   `json:"success"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

package stubapi

import "github.com/avc/stellar-burger-store/internal/domain"

// fixtureCatalog — каталог встроенного API; подмножество каталога
// продакшен-бэкенда, по одному-два ингредиента каждого типа
var fixtureCatalog = []domain.Ingredient{
	{
		ID:       "643d69a5c3f7b9001cfa093c",
		Name:     "Краторная булка N-200i",
		Type:     domain.IngredientTypeBun,
		Proteins: 80,
		Fat:      24,
		Carbs:    53,
		Calories: 420,
		Price:    1255,
		Image:    "https://code.s3.yandex.net/react/code/bun-02.png",
	},
	{
		ID:       "643d69a5c3f7b9001cfa093d",
		Name:     "Флюоресцентная булка R2-D3",
		Type:     domain.IngredientTypeBun,
		Proteins: 44,
		Fat:      26,
		Carbs:    85,
		Calories: 643,
		Price:    988,
		Image:    "https://code.s3.yandex.net/react/code/bun-01.png",
	},
	{
		ID:       "643d69a5c3f7b9001cfa0941",
		Name:     "Биокотлета из марсианской Магнолии",
		Type:     domain.IngredientTypeMain,
		Proteins: 420,
		Fat:      142,
		Carbs:    242,
		Calories: 4242,
		Price:    424,
		Image:    "https://code.s3.yandex.net/react/code/meat-01.png",
	},
	{
		ID:       "643d69a5c3f7b9001cfa093e",
		Name:     "Филе Люминесцентного тетраодонтимформа",
		Type:     domain.IngredientTypeMain,
		Proteins: 44,
		Fat:      26,
		Carbs:    85,
		Calories: 643,
		Price:    988,
		Image:    "https://code.s3.yandex.net/react/code/meat-03.png",
	},
	{
		ID:       "643d69a5c3f7b9001cfa0942",
		Name:     "Соус Spicy-X",
		Type:     domain.IngredientTypeSauce,
		Proteins: 30,
		Fat:      20,
		Carbs:    40,
		Calories: 30,
		Price:    90,
		Image:    "https://code.s3.yandex.net/react/code/sauce-02.png",
	},
	{
		ID:       "643d69a5c3f7b9001cfa0943",
		Name:     "Соус фирменный Space Sauce",
		Type:     domain.IngredientTypeSauce,
		Proteins: 50,
		Fat:      22,
		Carbs:    11,
		Calories: 14,
		Price:    80,
		Image:    "https://code.s3.yandex.net/react/code/sauce-04.png",
	},
}

// findIngredient ищет ингредиент каталога по id
func findIngredient(id string) (domain.Ingredient, bool) {
	for _, ingredient := range fixtureCatalog {
		if ingredient.ID == id {
			return ingredient, true
		}
	}
	return domain.Ingredient{}, false
}

package stubapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/avc/stellar-burger-store/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type orderRequest struct {
	Ingredients []string `json:"ingredients"`
}

func (s *Server) handleIngredients(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    fixtureCatalog,
	})
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	orders := make([]domain.Order, len(s.orders))
	copy(orders, s.orders)
	s.mu.Unlock()

	// Все заказы встроенного API созданы в текущей сессии процесса,
	// поэтому счетчик "за сегодня" совпадает с общим
	writeJSON(w, http.StatusOK, domain.FeedResponse{
		Success:    true,
		Orders:     orders,
		Total:      len(orders),
		TotalToday: len(orders),
	})
}

func (s *Server) handleOrderByNumber(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order number")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, order := range s.orders {
		if order.Number == number {
			writeJSON(w, http.StatusOK, domain.OrdersResponse{
				Success: true,
				Orders:  []domain.Order{order},
			})
			return
		}
	}

	writeError(w, http.StatusNotFound, "order not found")
}

func (s *Server) handlePersonalOrders(w http.ResponseWriter, r *http.Request) {
	email, ok := requestEmail(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "You should be authorised")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	personal := make([]domain.Order, 0)
	for _, order := range s.orders {
		if s.orderOwners[order.ID] == email {
			personal = append(personal, order)
		}
	}

	writeJSON(w, http.StatusOK, domain.OrdersResponse{
		Success: true,
		Orders:  personal,
	})
}

func (s *Server) handleSubmitOrder(w http.ResponseWriter, r *http.Request) {
	email, ok := requestEmail(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "You should be authorised")
		return
	}

	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Ingredients) == 0 {
		writeError(w, http.StatusBadRequest, "Ingredient ids must be provided")
		return
	}

	name := "Бургер"
	for _, id := range req.Ingredients {
		ingredient, found := findIngredient(id)
		if !found {
			writeError(w, http.StatusBadRequest, "invalid ingredient id: "+id)
			return
		}
		if ingredient.Type == domain.IngredientTypeBun {
			name = ingredient.Name + " бургер"
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)

	s.mu.Lock()
	order := domain.Order{
		ID:          uuid.NewString(),
		Number:      s.nextNumber,
		Name:        name,
		Status:      domain.OrderStatusDone,
		Ingredients: req.Ingredients,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextNumber++
	s.orders = append(s.orders, order)
	s.orderOwners[order.ID] = email
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, domain.OrderResponse{
		Success: true,
		Name:    name,
		Order:   order,
	})
}

package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/antoniopolonijr/sao-joao-frango-assado-server/internal/domain"
	"github.com/antoniopolonijr/sao-joao-frango-assado-server/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog service.CatalogServiceInterface
	Orders  service.OrderServiceInterface
	Contact service.ContactServiceInterface
}

func NewHandler(catalogSvc service.CatalogServiceInterface, orderSvc service.OrderServiceInterface, contactSvc service.ContactServiceInterface) *Handler {
	return &Handler{
		Catalog: catalogSvc,
		Orders:  orderSvc,
		Contact: contactSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/{id}", h.getFood).Methods("GET")
	r.HandleFunc("/api/food-of-the-day", h.getFoodOfTheDay).Methods("GET")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/contact", h.submitContact).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "sao-joao-server",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	foods, err := h.Catalog.Menu()
	if err != nil {
		http.Error(w, "Failed to load menu", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(foods)
}

func (h *Handler) getFood(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	food, err := h.Catalog.Food(id)
	if err != nil {
		if errors.Is(err, domain.ErrFoodNotFound) {
			http.Error(w, "Food not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load food", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(food)
}

func (h *Handler) getFoodOfTheDay(w http.ResponseWriter, r *http.Request) {
	food, err := h.Catalog.FoodOfTheDay()
	if err != nil {
		if errors.Is(err, domain.ErrFoodNotFound) {
			http.Error(w, "No foods in catalog", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to pick food of the day", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(food)
}

type createOrderRequest struct {
	Cart []domain.CartSelection `json:"cart"`
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	orderID, err := h.Orders.Create(req.Cart)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidOrder), errors.Is(err, domain.ErrInvalidItem):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Failed to create order", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int{"orderId": orderID})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	order, items, err := h.Orders.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"order":      order,
		"orderItems": items,
	})
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	orders, err := h.Orders.List(page)
	if err != nil {
		http.Error(w, "Failed to load orders", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	qr, err := h.Orders.QRCode(id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(qr)
}

func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	var msg domain.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Contact.Submit(r.Context(), &msg); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidContact):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, domain.ErrDuplicateContact):
			http.Error(w, err.Error(), http.StatusTooManyRequests)
		default:
			http.Error(w, "Failed to submit message", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(msg)
}

package service

import (
	"context"

	"github.com/antoniopolonijr/sao-joao-frango-assado-server/internal/domain"
)

type OrderRepository interface {
	CreateOrder(date, timeOfDay string, lines []domain.OrderLine) (int, error)
	GetOrder(orderID int) (*domain.Order, error)
	OrderLines(orderID int) ([]domain.OrderLineRow, error)
	ListOrders(limit, offset int) ([]domain.Order, error)
}

type CatalogRepository interface {
	ListFoods() ([]domain.Food, error)
	GetFood(foodID int) (*domain.Food, error)
	CountFoods() (int, error)
	FoodAt(offset int) (*domain.Food, error)
}

type ContactRepository interface {
	InsertContact(msg *domain.ContactMessage) error
}

type MarkerCache interface {
	ContactMarkerKey(email string) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, msg domain.OrderEvent) error
}

type OrderServiceInterface interface {
	Create(cart []domain.CartSelection) (int, error)
	Get(orderID int) (*domain.OrderView, []domain.OrderItemView, error)
	List(page int) ([]domain.Order, error)
	QRCode(orderID int) ([]byte, error)
}

type CatalogServiceInterface interface {
	Menu() ([]domain.Food, error)
	Food(foodID int) (*domain.Food, error)
	FoodOfTheDay() (*domain.Food, error)
}

type ContactServiceInterface interface {
	Submit(ctx context.Context, msg *domain.ContactMessage) error
}

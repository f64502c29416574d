package mocks

import (
	"context"

	"github.com/antoniopolonijr/sao-joao-frango-assado-server/internal/domain"

	"github.com/stretchr/testify/mock"
)

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) CreateOrder(date, timeOfDay string, lines []domain.OrderLine) (int, error) {
	args := m.Called(date, timeOfDay, lines)
	return args.Int(0), args.Error(1)
}

func (m *OrderRepository) GetOrder(orderID int) (*domain.Order, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderRepository) OrderLines(orderID int) ([]domain.OrderLineRow, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderLineRow), args.Error(1)
}

func (m *OrderRepository) ListOrders(limit, offset int) ([]domain.Order, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

type CatalogRepository struct {
	mock.Mock
}

func (m *CatalogRepository) ListFoods() ([]domain.Food, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Food), args.Error(1)
}

func (m *CatalogRepository) GetFood(foodID int) (*domain.Food, error) {
	args := m.Called(foodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Food), args.Error(1)
}

func (m *CatalogRepository) CountFoods() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *CatalogRepository) FoodAt(offset int) (*domain.Food, error) {
	args := m.Called(offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Food), args.Error(1)
}

type ContactRepository struct {
	mock.Mock
}

func (m *ContactRepository) InsertContact(msg *domain.ContactMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

type MarkerCache struct {
	mock.Mock
}

func (m *MarkerCache) ContactMarkerKey(email string) string {
	args := m.Called(email)
	return args.String(0)
}

func (m *MarkerCache) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MarkerCache) SetMarker(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) PublishOrderEvent(ctx context.Context, msg domain.OrderEvent) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func (m *QRGenerator) Generate(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

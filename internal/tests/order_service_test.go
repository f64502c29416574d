package tests

import (
	"testing"
	"time"

	"github.com/antoniopolonijr/sao-joao-frango-assado-server/internal/domain"
	"github.com/antoniopolonijr/sao-joao-frango-assado-server/internal/mocks"
	"github.com/antoniopolonijr/sao-joao-frango-assado-server/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func fixedClock() time.Time {
	return time.Date(2026, time.August, 31, 14, 30, 5, 0, time.Local)
}

func TestOrderService_CreateValidation(t *testing.T) {
	tests := []struct {
		name  string
		cart  []domain.CartSelection
		error error
	}{
		{name: "empty cart", cart: nil, error: domain.ErrInvalidOrder},
		{name: "no selections", cart: []domain.CartSelection{}, error: domain.ErrInvalidOrder},
		{name: "item missing size", cart: []domain.CartSelection{sel(1, "")}, error: domain.ErrInvalidItem},
		{name: "item missing food id", cart: []domain.CartSelection{sel(0, "small")}, error: domain.ErrInvalidItem},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.OrderRepository)
			svc := service.NewOrderService(mockRepo, nil, nil, 20)

			orderID, err := svc.Create(testCase.cart)

			assert.ErrorIs(t, err, testCase.error)
			assert.Zero(t, orderID)
			// invalid carts never reach the repository, so no partial
			// rows can exist for them
			mockRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_CreatePersistsMergedLines(t *testing.T) {
	mockRepo := new(mocks.OrderRepository)
	mockEvents := new(mocks.EventPublisher)
	svc := service.NewOrderServiceWithClock(mockRepo, mockEvents, nil, 20, fixedClock)

	wantLines := []domain.OrderLine{
		{FoodID: 3, Size: "medium", Quantity: 2},
		{FoodID: 7, Size: "small", Quantity: 1},
	}
	mockRepo.On("CreateOrder", "31/08/2026", "14:30:05", wantLines).Return(42, nil).Once()
	mockEvents.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
		return e.Type == "order_created" && e.OrderID == 42 && e.Lines == 2
	})).Return(nil).Once()

	orderID, err := svc.Create([]domain.CartSelection{
		sel(3, "Medium"), sel(3, "medium"), sel(7, "small"),
	})

	assert.NoError(t, err)
	assert.Equal(t, 42, orderID)
	mockRepo.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestOrderService_CreatePublishFailureDoesNotFailOrder(t *testing.T) {
	mockRepo := new(mocks.OrderRepository)
	mockEvents := new(mocks.EventPublisher)
	svc := service.NewOrderService(mockRepo, mockEvents, nil, 20)

	mockRepo.On("CreateOrder", mock.Anything, mock.Anything, mock.Anything).Return(7, nil).Once()
	mockEvents.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	orderID, err := svc.Create([]domain.CartSelection{sel(1, "small")})

	assert.NoError(t, err)
	assert.Equal(t, 7, orderID)
}

func TestOrderService_CreateRepositoryFailure(t *testing.T) {
	mockRepo := new(mocks.OrderRepository)
	svc := service.NewOrderService(mockRepo, nil, nil, 20)

	mockRepo.On("CreateOrder", mock.Anything, mock.Anything, mock.Anything).Return(0, assert.AnError).Once()

	orderID, err := svc.Create([]domain.CartSelection{sel(1, "small")})

	assert.Error(t, err)
	assert.Zero(t, orderID)
}

func TestOrderService_GetAssemblesTotals(t *testing.T) {
	mockRepo := new(mocks.OrderRepository)
	svc := service.NewOrderService(mockRepo, nil, nil, 20)

	header := &domain.Order{ID: 5, Date: "30/08/2026", Time: "12:00:00"}
	rows := []domain.OrderLineRow{
		{FoodID: 1, Name: "Frango Assado", Category: "chicken", Description: "marinated", Quantity: 2, Price: "12.50", Size: "whole"},
		{FoodID: 4, Name: "Arroz", Category: "sides", Description: "rice", Quantity: 1, Price: "3.25", Size: "small"},
	}
	mockRepo.On("GetOrder", 5).Return(header, nil).Twice()
	mockRepo.On("OrderLines", 5).Return(rows, nil).Twice()

	view, items, err := svc.Get(5)

	assert.NoError(t, err)
	assert.Equal(t, 5, view.ID)
	assert.InDelta(t, 28.25, view.Total, 1e-9)
	assert.Len(t, items, 2)
	assert.InDelta(t, 25.0, items[0].Total, 1e-9)
	assert.Equal(t, "/images/foods/1.jpg", items[0].Image)
	// header fields stay untouched by the total merge
	assert.Equal(t, "30/08/2026", view.Date)

	// a second read with no writes in between returns the same result
	view2, items2, err := svc.Get(5)
	assert.NoError(t, err)
	assert.Equal(t, view, view2)
	assert.Equal(t, items, items2)
}

func TestOrderService_GetNotFoundWinsOverLines(t *testing.T) {
	mockRepo := new(mocks.OrderRepository)
	svc := service.NewOrderService(mockRepo, nil, nil, 20)

	mockRepo.On("GetOrder", 999999).Return(nil, domain.ErrOrderNotFound).Once()
	mockRepo.On("OrderLines", 999999).Return([]domain.OrderLineRow{}, nil).Once()

	view, items, err := svc.Get(999999)

	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	assert.Nil(t, view)
	assert.Nil(t, items)
}

func TestOrderService_GetLineQueryErrorNotDropped(t *testing.T) {
	mockRepo := new(mocks.OrderRepository)
	svc := service.NewOrderService(mockRepo, nil, nil, 20)

	mockRepo.On("GetOrder", 5).Return(&domain.Order{ID: 5}, nil).Once()
	mockRepo.On("OrderLines", 5).Return(nil, assert.AnError).Once()

	_, _, err := svc.Get(5)

	assert.ErrorIs(t, err, assert.AnError)
}

func TestOrderService_GetZeroLinesTotalZero(t *testing.T) {
	mockRepo := new(mocks.OrderRepository)
	svc := service.NewOrderService(mockRepo, nil, nil, 20)

	mockRepo.On("GetOrder", 8).Return(&domain.Order{ID: 8}, nil).Once()
	mockRepo.On("OrderLines", 8).Return([]domain.OrderLineRow{}, nil).Once()

	view, items, err := svc.Get(8)

	assert.NoError(t, err)
	assert.Zero(t, view.Total)
	assert.Empty(t, items)
}

func TestOrderService_GetNonNumericPriceIsStorageFailure(t *testing.T) {
	mockRepo := new(mocks.OrderRepository)
	svc := service.NewOrderService(mockRepo, nil, nil, 20)

	rows := []domain.OrderLineRow{{FoodID: 1, Quantity: 1, Price: "not-a-price", Size: "small"}}
	mockRepo.On("GetOrder", 5).Return(&domain.Order{ID: 5}, nil).Once()
	mockRepo.On("OrderLines", 5).Return(rows, nil).Once()

	_, _, err := svc.Get(5)

	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestOrderService_ListPaging(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		wantOffset int
	}{
		{name: "page one", page: 1, wantOffset: 0},
		{name: "zero defaults to page one", page: 0, wantOffset: 0},
		{name: "negative defaults to page one", page: -3, wantOffset: 0},
		{name: "page two", page: 2, wantOffset: 20},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.OrderRepository)
			svc := service.NewOrderService(mockRepo, nil, nil, 20)

			mockRepo.On("ListOrders", 20, testCase.wantOffset).
				Return([]domain.Order{{ID: 1}}, nil).Once()

			orders, err := svc.List(testCase.page)

			assert.NoError(t, err)
			assert.Len(t, orders, 1)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_QRCode(t *testing.T) {
	mockRepo := new(mocks.OrderRepository)
	mockQR := new(mocks.QRGenerator)
	svc := service.NewOrderService(mockRepo, nil, mockQR, 20)

	mockRepo.On("GetOrder", 3).Return(&domain.Order{ID: 3}, nil).Once()
	mockQR.On("Generate", 3).Return([]byte("png"), nil).Once()

	qr, err := svc.QRCode(3)

	assert.NoError(t, err)
	assert.Equal(t, []byte("png"), qr)
}

func TestOrderService_QRCodeUnknownOrder(t *testing.T) {
	mockRepo := new(mocks.OrderRepository)
	mockQR := new(mocks.QRGenerator)
	svc := service.NewOrderService(mockRepo, nil, mockQR, 20)

	mockRepo.On("GetOrder", 404).Return(nil, domain.ErrOrderNotFound).Once()

	_, err := svc.QRCode(404)

	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	mockQR.AssertNotCalled(t, "Generate", mock.Anything)
}

func TestDefaultQRGenerator(t *testing.T) {
	gen := service.DefaultQRGenerator{BaseURL: "http://localhost:8080"}
	qr, err := gen.Generate(123)

	assert.NoError(t, err)
	assert.NotEmpty(t, qr)
}

package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/antoniopolonijr/sao-joao-frango-assado-server/internal/domain"
)

type OrderService struct {
	repo     OrderRepository
	events   EventPublisher
	qr       QRGenerator
	pageSize int
	now      func() time.Time
}

func NewOrderService(repo OrderRepository, events EventPublisher, qr QRGenerator, pageSize int) *OrderService {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &OrderService{
		repo:     repo,
		events:   events,
		qr:       qr,
		pageSize: pageSize,
		now:      time.Now,
	}
}

// NewOrderServiceWithClock pins the clock for tests.
func NewOrderServiceWithClock(repo OrderRepository, events EventPublisher, qr QRGenerator, pageSize int, now func() time.Time) *OrderService {
	svc := NewOrderService(repo, events, qr, pageSize)
	svc.now = now
	return svc
}

// Create normalizes the cart and persists it as one order. The repository
// runs header and line inserts in a single transaction, so a malformed cart
// or storage error leaves no rows behind.
func (s *OrderService) Create(cart []domain.CartSelection) (int, error) {
	if len(cart) == 0 {
		return 0, domain.ErrInvalidOrder
	}

	lines, err := NormalizeCart(cart)
	if err != nil {
		return 0, err
	}

	now := s.now()
	orderID, err := s.repo.CreateOrder(now.Format("02/01/2006"), now.Format("15:04:05"), lines)
	if err != nil {
		return 0, err
	}

	if s.events != nil {
		event := domain.OrderEvent{
			Type:      "order_created",
			OrderID:   orderID,
			Lines:     len(lines),
			Timestamp: now,
		}
		if err := s.events.PublishOrderEvent(context.Background(), event); err != nil {
			log.Printf("[order-svc] failed to publish order event for order %d: %v", orderID, err)
		}
	}

	return orderID, nil
}

type headerResult struct {
	order *domain.Order
	err   error
}

type linesResult struct {
	rows []domain.OrderLineRow
	err  error
}

// Get fetches the header and the joined line rows concurrently, then
// assembles the priced view. A missing header wins over whatever the line
// query returned; a line-query failure is still reported when the header
// resolves fine.
func (s *OrderService) Get(orderID int) (*domain.OrderView, []domain.OrderItemView, error) {
	headerCh := make(chan headerResult, 1)
	linesCh := make(chan linesResult, 1)

	go func() {
		order, err := s.repo.GetOrder(orderID)
		headerCh <- headerResult{order: order, err: err}
	}()
	go func() {
		rows, err := s.repo.OrderLines(orderID)
		linesCh <- linesResult{rows: rows, err: err}
	}()

	header := <-headerCh
	lines := <-linesCh

	if header.err != nil {
		return nil, nil, header.err
	}
	if lines.err != nil {
		return nil, nil, lines.err
	}

	items, total, err := AssembleOrderItems(lines.rows)
	if err != nil {
		return nil, nil, err
	}

	view := &domain.OrderView{Order: *header.order, Total: total}
	return view, items, nil
}

func (s *OrderService) List(page int) ([]domain.Order, error) {
	if page < 1 {
		page = 1
	}
	return s.repo.ListOrders(s.pageSize, (page-1)*s.pageSize)
}

func (s *OrderService) QRCode(orderID int) ([]byte, error) {
	if _, err := s.repo.GetOrder(orderID); err != nil {
		return nil, err
	}
	return s.qr.Generate(orderID)
}

var _ OrderServiceInterface = (*OrderService)(nil)

// AssembleOrderItems coerces the loosely-typed join rows into priced line
// items and sums the order total. Quantities and prices that do not parse
// as numbers are storage corruption, not caller error.
func AssembleOrderItems(rows []domain.OrderLineRow) ([]domain.OrderItemView, float64, error) {
	items := []domain.OrderItemView{}
	var total float64

	for _, row := range rows {
		price, err := strconv.ParseFloat(row.Price, 64)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: non-numeric price %q for food %d", domain.ErrStorage, row.Price, row.FoodID)
		}
		if row.Quantity < 1 {
			return nil, 0, fmt.Errorf("%w: invalid quantity %d for food %d", domain.ErrStorage, row.Quantity, row.FoodID)
		}

		subtotal := float64(row.Quantity) * price
		items = append(items, domain.OrderItemView{
			FoodTypeID:  row.FoodID,
			Name:        row.Name,
			Category:    row.Category,
			Description: row.Description,
			Quantity:    row.Quantity,
			Price:       price,
			Total:       subtotal,
			Size:        row.Size,
			Image:       FoodImagePath(row.FoodID),
		})
		total += subtotal
	}
	return items, total, nil
}

func FoodImagePath(foodID int) string {
	return fmt.Sprintf("/images/foods/%d.jpg", foodID)
}

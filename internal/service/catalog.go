package service

import (
	"time"

	"github.com/antoniopolonijr/sao-joao-frango-assado-server/internal/domain"
)

// rotationEpoch anchors the food-of-the-day rotation. Fixed so every
// replica picks the same food on the same UTC day.
var rotationEpoch = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

type CatalogService struct {
	repo CatalogRepository
	now  func() time.Time
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo, now: time.Now}
}

// NewCatalogServiceWithClock pins the clock for tests.
func NewCatalogServiceWithClock(repo CatalogRepository, now func() time.Time) *CatalogService {
	return &CatalogService{repo: repo, now: now}
}

// RotationOffset is the catalog position picked for the given instant.
func RotationOffset(at time.Time, count int) int {
	days := int(at.UTC().Sub(rotationEpoch).Hours() / 24)
	return days % count
}

func (s *CatalogService) Menu() ([]domain.Food, error) {
	return s.repo.ListFoods()
}

func (s *CatalogService) Food(foodID int) (*domain.Food, error) {
	return s.repo.GetFood(foodID)
}

// FoodOfTheDay rotates through the catalog one food per UTC day. The count
// is queried fresh on every call, so growing the catalog shifts the
// rotation from the next call on.
func (s *CatalogService) FoodOfTheDay() (*domain.Food, error) {
	count, err := s.repo.CountFoods()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, domain.ErrFoodNotFound
	}

	return s.repo.FoodAt(RotationOffset(s.now(), count))
}

var _ CatalogServiceInterface = (*CatalogService)(nil)

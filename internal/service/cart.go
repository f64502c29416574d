package service

import (
	"strings"

	"github.com/antoniopolonijr/sao-joao-frango-assado-server/internal/domain"
)

// lineKey identifies one order line. Keying on the struct instead of a
// concatenated string avoids collisions between ids/sizes that happen to
// share a prefix.
type lineKey struct {
	foodID int
	size   string
}

// NormalizeCart merges a sequence of cart selections into order lines, one
// per (food, size) pair with sizes compared case-insensitively. Lines come
// out in first-seen order.
func NormalizeCart(cart []domain.CartSelection) ([]domain.OrderLine, error) {
	seen := map[lineKey]int{}
	var lines []domain.OrderLine

	for _, sel := range cart {
		size := strings.ToLower(strings.TrimSpace(sel.Size))
		if sel.Food.ID <= 0 || size == "" {
			return nil, domain.ErrInvalidItem
		}

		key := lineKey{foodID: sel.Food.ID, size: size}
		if idx, ok := seen[key]; ok {
			lines[idx].Quantity++
			continue
		}
		seen[key] = len(lines)
		lines = append(lines, domain.OrderLine{FoodID: sel.Food.ID, Size: size, Quantity: 1})
	}
	return lines, nil
}

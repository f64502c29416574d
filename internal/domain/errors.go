package domain

import "errors"

var (
	ErrInvalidOrder     = errors.New("invalid order payload")
	ErrInvalidItem      = errors.New("cart item is missing food id or size")
	ErrOrderNotFound    = errors.New("order not found")
	ErrFoodNotFound     = errors.New("food not found")
	ErrInvalidContact   = errors.New("contact message is missing name, email or message")
	ErrDuplicateContact = errors.New("contact message already submitted recently")
	ErrStorage          = errors.New("storage failure")
)

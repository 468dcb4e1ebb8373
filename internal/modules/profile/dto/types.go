package dto

import "time"

type UseInput struct {
	UserID string
}

type ActiveUserOutput struct {
	UserID     string
	SelectedAt time.Time
}

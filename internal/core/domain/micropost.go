package domain

import "time"

const ContentMaxLength = 140

// Micropost is a short piece of content owned by exactly one user.
type Micropost struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMicropostInput is the validated payload for a new micropost.
type NewMicropostInput struct {
	UserID  string `validate:"required"`
	Content string `validate:"notblank,max=140"`
}

func (in NewMicropostInput) Validate() error {
	return validateStruct(in, ErrInvalidMicropost)
}

package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// --- Request types ---

type signupRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type loginRequest struct {
	Email      string `json:"email"       validate:"notblank"`
	Password   string `json:"password"    validate:"notblank"`
	RememberMe bool   `json:"remember_me"`
}

type followRequest struct {
	FollowedID string `json:"followed_id" validate:"required"`
}

type micropostRequest struct {
	Content string `json:"content"`
}

type feedQuery struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// --- Response types ---

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"created_at"`
}

type sessionResponse struct {
	User       userResponse `json:"user"`
	Remembered bool         `json:"remembered"`
	RedirectTo string       `json:"redirect_to,omitempty"`
}

type profileResponse struct {
	User          userResponse `json:"user"`
	Microposts    int64        `json:"microposts"`
	Following     bool         `json:"following"`
	IsCurrentUser bool         `json:"is_current_user"`
}

type usersResponse struct {
	Users []userResponse `json:"users"`
	Count int            `json:"count"`
}

type micropostResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type feedResponse struct {
	Items      []micropostResponse `json:"items"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"total_pages"`
}

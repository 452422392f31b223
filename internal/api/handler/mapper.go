package handler

import (
	"github.com/rimonomega/sampleapp/internal/core/domain"
	"github.com/rimonomega/sampleapp/internal/core/ports"
)

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Admin:     u.Admin,
		CreatedAt: u.CreatedAt,
	}
}

func toUsersResponse(users []*domain.User) usersResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return usersResponse{Users: out, Count: len(out)}
}

func toMicropostResponse(p *domain.Micropost) micropostResponse {
	return micropostResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
	}
}

func toFeedResponse(r *ports.FeedResult) feedResponse {
	items := make([]micropostResponse, 0, len(r.Items))
	for _, p := range r.Items {
		items = append(items, toMicropostResponse(p))
	}
	return feedResponse{
		Items:      items,
		Total:      r.Total,
		Page:       r.Page,
		Limit:      r.Limit,
		TotalPages: r.TotalPages,
	}
}

package domain

import "time"

// Relationship is a directed follow edge: FollowerID follows FollowedID.
type Relationship struct {
	FollowerID string    `json:"follower_id" bson:"follower_id"`
	FollowedID string    `json:"followed_id" bson:"followed_id"`
	CreatedAt  time.Time `json:"created_at"  bson:"created_at"`
}

package ports

import "context"

// RelationshipRepository stores directed follow edges.
type RelationshipRepository interface {
	// Create inserts followerID → followedID and reports whether the edge is
	// new. Inserting an existing edge is not an error.
	Create(ctx context.Context, followerID, followedID string) (bool, error)
	// Delete removes the edge; deleting a missing edge is not an error.
	Delete(ctx context.Context, followerID, followedID string) error
	Exists(ctx context.Context, followerID, followedID string) (bool, error)
	FollowingIDs(ctx context.Context, followerID string) ([]string, error)
	FollowerIDs(ctx context.Context, followedID string) ([]string, error)
}

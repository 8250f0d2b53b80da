package entity

import "time"

// ReactionKind identifies one of the two mutually exclusive reactions.
type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// Opposite returns the kind a toggle must clear to keep reactions exclusive.
func (k ReactionKind) Opposite() ReactionKind {
	if k == ReactionLike {
		return ReactionDislike
	}
	return ReactionLike
}

func (k ReactionKind) IsValid() bool {
	return k == ReactionLike || k == ReactionDislike
}

// Reaction is one user's like or dislike of one tuit. Records are never
// updated in place; changing kind means deleting one record and creating
// another.
type Reaction struct {
	ID        string
	Kind      ReactionKind
	UserID    string
	TuitID    string
	CreatedAt time.Time

	// Populated by the list queries only.
	User *User
	Tuit *Tuit
}

package entity

import "time"

// Tuit is a user-authored post.
type Tuit struct {
	ID           string    `bson:"_id,omitempty" json:"_id"`
	Tuit         string    `bson:"tuit" json:"tuit"`
	PostedByID   string    `bson:"postedBy" json:"postedById"`
	PostedBy     *User     `bson:"postedByUser,omitempty" json:"postedBy,omitempty"`
	PostedOn     time.Time `bson:"postedOn" json:"postedOn"`
	Image        *string   `bson:"image,omitempty" json:"image,omitempty"`
	Youtube      *string   `bson:"youtube,omitempty" json:"youtube,omitempty"`
	AvatarLogo   *string   `bson:"avatarLogo,omitempty" json:"avatarLogo,omitempty"`
	ImageOverlay *string   `bson:"imageOverlay,omitempty" json:"imageOverlay,omitempty"`
	Stats        Stats     `bson:"stats" json:"stats"`
}

// Stats holds the denormalized counters embedded on a tuit. Likes and
// Dislikes mirror the number of reaction records pointing at the tuit;
// they are rewritten wholesale by the reaction toggle, never incremented.
type Stats struct {
	Replies      int  `bson:"replies" json:"replies"`
	Retuits      int  `bson:"retuits" json:"retuits"`
	Likes        int  `bson:"likes" json:"likes"`
	Dislikes     int  `bson:"dislikes" json:"dislikes"`
	LikedByMe    bool `bson:"likedByMe" json:"likedByMe"`
	DislikedByMe bool `bson:"dislikedByMe" json:"dislikedByMe"`
}

// Count returns the counter for the given reaction kind.
func (s Stats) Count(kind ReactionKind) int {
	if kind == ReactionDislike {
		return s.Dislikes
	}
	return s.Likes
}

// Set overwrites the counter and the by-caller flag for the given kind.
func (s *Stats) Set(kind ReactionKind, count int, byCaller bool) {
	switch kind {
	case ReactionLike:
		s.Likes = count
		s.LikedByMe = byCaller
	case ReactionDislike:
		s.Dislikes = count
		s.DislikedByMe = byCaller
	}
}

// SetByCaller overwrites only the by-caller flag for the given kind.
func (s *Stats) SetByCaller(kind ReactionKind, byCaller bool) {
	switch kind {
	case ReactionLike:
		s.LikedByMe = byCaller
	case ReactionDislike:
		s.DislikedByMe = byCaller
	}
}

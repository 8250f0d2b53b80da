package dto

import "github.com/tuiter/tuiter/internal/domain/entity"

// ReactionResponse renders a reaction as stored: {_id, tuit, likedBy} for a
// like, {_id, tuit, dislikedBy} for a dislike. The reactor is the resolved
// user when the query populated it, otherwise the bare id.
type ReactionResponse struct {
	ID         string      `json:"_id"`
	TuitID     string      `json:"tuit"`
	LikedBy    interface{} `json:"likedBy,omitempty"`
	DislikedBy interface{} `json:"dislikedBy,omitempty"`
}

func ToReactionResponse(r *entity.Reaction) ReactionResponse {
	resp := ReactionResponse{ID: r.ID, TuitID: r.TuitID}
	var reactor interface{} = r.UserID
	if r.User != nil {
		reactor = r.User
	}
	if r.Kind == entity.ReactionDislike {
		resp.DislikedBy = reactor
	} else {
		resp.LikedBy = reactor
	}
	return resp
}

func ToReactionResponses(reactions []*entity.Reaction) []ReactionResponse {
	out := make([]ReactionResponse, 0, len(reactions))
	for _, r := range reactions {
		out = append(out, ToReactionResponse(r))
	}
	return out
}

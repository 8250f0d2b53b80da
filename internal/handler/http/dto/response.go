package dto

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DeleteResponse mirrors the store's delete acknowledgement.
type DeleteResponse struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

func NewDeleteResponse(deleted int64) DeleteResponse {
	return DeleteResponse{Acknowledged: true, DeletedCount: deleted}
}

package dto

import "github.com/tuiter/tuiter/internal/domain/entity"

type CreateTuitRequest struct {
	Tuit         string  `json:"tuit" binding:"required,max=280"`
	Image        *string `json:"image"`
	Youtube      *string `json:"youtube"`
	AvatarLogo   *string `json:"avatarLogo"`
	ImageOverlay *string `json:"imageOverlay"`
}

func (r CreateTuitRequest) ToEntity() *entity.Tuit {
	return &entity.Tuit{
		Tuit:         r.Tuit,
		Image:        r.Image,
		Youtube:      r.Youtube,
		AvatarLogo:   r.AvatarLogo,
		ImageOverlay: r.ImageOverlay,
	}
}

// UpdateTuitRequest has no stats field; counters are only written by reactions.
type UpdateTuitRequest struct {
	Tuit         *string `json:"tuit" binding:"omitempty,min=1,max=280"`
	Image        *string `json:"image"`
	Youtube      *string `json:"youtube"`
	AvatarLogo   *string `json:"avatarLogo"`
	ImageOverlay *string `json:"imageOverlay"`
}

func (r UpdateTuitRequest) ToUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Tuit != nil {
		updates["tuit"] = *r.Tuit
	}
	if r.Image != nil {
		updates["image"] = *r.Image
	}
	if r.Youtube != nil {
		updates["youtube"] = *r.Youtube
	}
	if r.AvatarLogo != nil {
		updates["avatarLogo"] = *r.AvatarLogo
	}
	if r.ImageOverlay != nil {
		updates["imageOverlay"] = *r.ImageOverlay
	}
	return updates
}

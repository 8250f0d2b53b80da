package dto

import (
	"time"

	"github.com/tuiter/tuiter/internal/domain/entity"
)

// CreateUserRequest is the body of signup and POST /api/users.
type CreateUserRequest struct {
	Username      string           `json:"username" binding:"required,min=3,max=32"`
	Password      string           `json:"password" binding:"required"`
	Email         string           `json:"email" binding:"omitempty,email"`
	FirstName     *string          `json:"firstName"`
	LastName      *string          `json:"lastName"`
	ProfilePhoto  *string          `json:"profilePhoto"`
	HeaderImage   *string          `json:"headerImage"`
	Biography     *string          `json:"biography"`
	DateOfBirth   *time.Time       `json:"dateOfBirth"`
	AccountType   string           `json:"accountType" binding:"omitempty,oneof=PERSONAL ACADEMIC PROFESSIONAL"`
	MaritalStatus string           `json:"maritalStatus" binding:"omitempty,oneof=MARRIED SINGLE WIDOWED"`
	Location      *entity.Location `json:"location"`
	Salary        float64          `json:"salary" binding:"gte=0"`
}

func (r CreateUserRequest) ToEntity() *entity.User {
	return &entity.User{
		Username:      r.Username,
		Email:         r.Email,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		ProfilePhoto:  r.ProfilePhoto,
		HeaderImage:   r.HeaderImage,
		Biography:     r.Biography,
		DateOfBirth:   r.DateOfBirth,
		AccountType:   entity.AccountType(r.AccountType),
		MaritalStatus: entity.MaritalStatus(r.MaritalStatus),
		Location:      r.Location,
		Salary:        r.Salary,
	}
}

// UpdateUserRequest carries a partial profile; nil fields are left unchanged.
type UpdateUserRequest struct {
	Password      *string          `json:"password"`
	Email         *string          `json:"email" binding:"omitempty,email"`
	FirstName     *string          `json:"firstName"`
	LastName      *string          `json:"lastName"`
	ProfilePhoto  *string          `json:"profilePhoto"`
	HeaderImage   *string          `json:"headerImage"`
	Biography     *string          `json:"biography"`
	DateOfBirth   *time.Time       `json:"dateOfBirth"`
	AccountType   *string          `json:"accountType" binding:"omitempty,oneof=PERSONAL ACADEMIC PROFESSIONAL"`
	MaritalStatus *string          `json:"maritalStatus" binding:"omitempty,oneof=MARRIED SINGLE WIDOWED"`
	Location      *entity.Location `json:"location"`
	Salary        *float64         `json:"salary" binding:"omitempty,gte=0"`
}

// ToUpdates keys the set fields by their document names.
func (r UpdateUserRequest) ToUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Password != nil {
		updates["password"] = *r.Password
	}
	if r.Email != nil {
		updates["email"] = *r.Email
	}
	if r.FirstName != nil {
		updates["firstName"] = *r.FirstName
	}
	if r.LastName != nil {
		updates["lastName"] = *r.LastName
	}
	if r.ProfilePhoto != nil {
		updates["profilePhoto"] = *r.ProfilePhoto
	}
	if r.HeaderImage != nil {
		updates["headerImage"] = *r.HeaderImage
	}
	if r.Biography != nil {
		updates["biography"] = *r.Biography
	}
	if r.DateOfBirth != nil {
		updates["dateOfBirth"] = *r.DateOfBirth
	}
	if r.AccountType != nil {
		updates["accountType"] = *r.AccountType
	}
	if r.MaritalStatus != nil {
		updates["maritalStatus"] = *r.MaritalStatus
	}
	if r.Location != nil {
		updates["location"] = *r.Location
	}
	if r.Salary != nil {
		updates["salary"] = *r.Salary
	}
	return updates
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"accessToken"`
}

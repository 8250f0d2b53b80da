package entity

import (
	"time"
)

// User represents a registered user in the system
type User struct {
	ID            string        `bson:"_id,omitempty" json:"_id"`
	Username      string        `bson:"username" json:"username"`
	PasswordHash  string        `bson:"password_hash" json:"-"`
	Email         string        `bson:"email" json:"email"`
	FirstName     *string       `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName      *string       `bson:"lastName,omitempty" json:"lastName,omitempty"`
	ProfilePhoto  *string       `bson:"profilePhoto,omitempty" json:"profilePhoto,omitempty"`
	HeaderImage   *string       `bson:"headerImage,omitempty" json:"headerImage,omitempty"`
	Biography     *string       `bson:"biography,omitempty" json:"biography,omitempty"`
	DateOfBirth   *time.Time    `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	AccountType   AccountType   `bson:"accountType" json:"accountType"`
	MaritalStatus MaritalStatus `bson:"maritalStatus" json:"maritalStatus"`
	Location      *Location     `bson:"location,omitempty" json:"location,omitempty"`
	Salary        float64       `bson:"salary" json:"salary"`
	Joined        time.Time     `bson:"joined" json:"joined"`
}

// Location is the user's last known position.
type Location struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// AccountType represents the kind of account a user holds
type AccountType string

const (
	AccountTypePersonal     AccountType = "PERSONAL"
	AccountTypeAcademic     AccountType = "ACADEMIC"
	AccountTypeProfessional AccountType = "PROFESSIONAL"
)

type MaritalStatus string

const (
	MaritalStatusMarried MaritalStatus = "MARRIED"
	MaritalStatusSingle  MaritalStatus = "SINGLE"
	MaritalStatusWidowed MaritalStatus = "WIDOWED"
)

func DefaultAccountType() AccountType {
	return AccountTypePersonal
}

func DefaultMaritalStatus() MaritalStatus {
	return MaritalStatusSingle
}

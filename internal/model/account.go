package model

import "time"

const (
	RoleUser      = "User"
	RoleCompanyHR = "Company_HR"
)

const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// Account represents a registered user or company HR
type Account struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"` // Do not expose password hash in JSON responses
	RecoveryEmail string    `json:"recoveryEmail,omitempty"`
	DOB           time.Time `json:"DOB"`
	MobileNumber  string    `json:"mobileNumber"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PublicProfile is the view of an account shown to other accounts.
type PublicProfile struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
}

// Profile returns the public view of a.
func (a *Account) Profile() PublicProfile {
	return PublicProfile{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Username:  a.Username,
		Email:     a.Email,
		Role:      a.Role,
		Status:    a.Status,
	}
}

// SignUpRequest is the registration payload.
type SignUpRequest struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	Username      string `json:"username" binding:"omitempty,alphanum,max=64"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6,bcryptlen"`
	RecoveryEmail string `json:"recoveryEmail" binding:"omitempty,email"`
	DOB           string `json:"DOB" binding:"required,isodate"`
	MobileNumber  string `json:"mobileNumber" binding:"required,mobile"`
	Role          string `json:"role" binding:"required,oneof=User Company_HR"`
}

// SignInRequest accepts either the account email or its mobile number.
type SignInRequest struct {
	EmailOrMobile string `json:"emailOrMobile" binding:"required,email|mobile"`
	Password      string `json:"password" binding:"required,min=6,bcryptlen"`
}

// UpdateAccountRequest carries a partial profile update; empty fields are left unchanged.
// Role is immutable after registration and has no field here.
type UpdateAccountRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email" binding:"omitempty,email"`
	MobileNumber  string `json:"mobileNumber" binding:"omitempty,mobile"`
	RecoveryEmail string `json:"recoveryEmail" binding:"omitempty,email"`
	DOB           string `json:"DOB" binding:"omitempty,isodate"`
}

// UpdatePasswordRequest changes the password of the authenticated account.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6,bcryptlen,nefield=CurrentPassword"`
}

package model

import "time"

// Company is an organization managed by one Company_HR account.
type Company struct {
	ID                string    `json:"id"`
	CompanyName       string    `json:"companyName"`
	Description       string    `json:"description"`
	Industry          string    `json:"industry"`
	Address           string    `json:"address"`
	NumberOfEmployees string    `json:"numberOfEmployees"`
	CompanyEmail      string    `json:"companyEmail"`
	CompanyHR         string    `json:"companyHR"`
	CreatedAt         time.Time `json:"createdAt"`
}

// CompanyDetails is a company together with the public profile of its HR.
type CompanyDetails struct {
	Company
	HR *PublicProfile `json:"hr,omitempty"`
}

// CreateCompanyRequest is the payload for adding a company. The HR is the caller.
type CreateCompanyRequest struct {
	CompanyName       string `json:"companyName" binding:"required"`
	Description       string `json:"description" binding:"required"`
	Industry          string `json:"industry" binding:"required"`
	Address           string `json:"address" binding:"required"`
	NumberOfEmployees string `json:"numberOfEmployees" binding:"required,oneof=1-10 11-50 51-200 201-500 501+"`
	CompanyEmail      string `json:"companyEmail" binding:"required,email"`
}

// UpdateCompanyRequest is a partial update; empty fields are left unchanged.
type UpdateCompanyRequest struct {
	Description       string `json:"description"`
	Industry          string `json:"industry"`
	Address           string `json:"address"`
	NumberOfEmployees string `json:"numberOfEmployees" binding:"omitempty,oneof=1-10 11-50 51-200 201-500 501+"`
}

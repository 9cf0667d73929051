package model

import "time"

const (
	JobLocationOnsite   = "onsite"
	JobLocationRemotely = "remotely"
	JobLocationHybrid   = "hybrid"
)

const (
	WorkingTimePartTime = "part-time"
	WorkingTimeFullTime = "full-time"
)

// Job is a posting added by a Company_HR account.
type Job struct {
	ID              string    `json:"id"`
	JobTitle        string    `json:"jobTitle"`
	JobLocation     string    `json:"jobLocation"`
	WorkingTime     string    `json:"workingTime"`
	SeniorityLevel  string    `json:"seniorityLevel"`
	JobDescription  string    `json:"jobDescription"`
	TechnicalSkills []string  `json:"technicalSkills"`
	SoftSkills      []string  `json:"softSkills"`
	AddedBy         string    `json:"addedBy"`
	CreatedAt       time.Time `json:"createdAt"`
}

// JobListing is a job with the name of the company its HR manages, if any.
type JobListing struct {
	Job
	CompanyName string `json:"companyName,omitempty"`
}

// CreateJobRequest is the payload for adding a job. AddedBy is the caller.
type CreateJobRequest struct {
	JobTitle        string   `json:"jobTitle" binding:"required"`
	JobLocation     string   `json:"jobLocation" binding:"required,oneof=onsite remotely hybrid"`
	WorkingTime     string   `json:"workingTime" binding:"required,oneof=part-time full-time"`
	SeniorityLevel  string   `json:"seniorityLevel" binding:"required,oneof=Junior Mid-Level Senior Team-Lead CTO"`
	JobDescription  string   `json:"jobDescription" binding:"required"`
	TechnicalSkills []string `json:"technicalSkills" binding:"required,dive,required"`
	SoftSkills      []string `json:"softSkills" binding:"required,dive,required"`
}

// UpdateJobRequest is a partial update; empty or absent fields are left unchanged.
type UpdateJobRequest struct {
	JobTitle        string   `json:"jobTitle"`
	JobLocation     string   `json:"jobLocation" binding:"omitempty,oneof=onsite remotely hybrid"`
	WorkingTime     string   `json:"workingTime" binding:"omitempty,oneof=part-time full-time"`
	SeniorityLevel  string   `json:"seniorityLevel" binding:"omitempty,oneof=Junior Mid-Level Senior Team-Lead CTO"`
	JobDescription  string   `json:"jobDescription"`
	TechnicalSkills []string `json:"technicalSkills" binding:"omitempty,dive,required"`
	SoftSkills      []string `json:"softSkills" binding:"omitempty,dive,required"`
}

// JobFilter narrows a job search. Zero fields do not filter.
type JobFilter struct {
	WorkingTime     string   `json:"workingTime" binding:"omitempty,oneof=part-time full-time"`
	JobLocation     string   `json:"jobLocation" binding:"omitempty,oneof=onsite remotely hybrid"`
	SeniorityLevel  string   `json:"seniorityLevel" binding:"omitempty,oneof=Junior Mid-Level Senior Team-Lead CTO"`
	JobTitle        string   `json:"jobTitle"`
	TechnicalSkills []string `json:"technicalSkills" binding:"omitempty,dive,required"`
}

package model

import "time"

// Application is a job seeker's submission to a job.
type Application struct {
	ID             string    `json:"id"`
	JobID          string    `json:"jobId"`
	UserID         string    `json:"userId"`
	UserTechSkills []string  `json:"userTechSkills"`
	UserSoftSkills []string  `json:"userSoftSkills"`
	AppliedAt      time.Time `json:"appliedAt"`
}

// ApplicationDetails is an application joined with its applicant and job.
type ApplicationDetails struct {
	Application
	ApplicantFirstName string `json:"applicantFirstName"`
	ApplicantLastName  string `json:"applicantLastName"`
	ApplicantEmail     string `json:"applicantEmail"`
	JobTitle           string `json:"jobTitle"`
	JobLocation        string `json:"jobLocation"`
	JobAddedBy         string `json:"-"`
}

// CreateApplicationRequest is the payload for applying to a job. The applicant is the caller.
type CreateApplicationRequest struct {
	JobID          string   `json:"jobId" binding:"required,uuid4"`
	UserTechSkills []string `json:"userTechSkills" binding:"required,dive,required"`
	UserSoftSkills []string `json:"userSoftSkills" binding:"required,dive,required"`
}

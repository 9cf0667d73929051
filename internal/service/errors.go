package service

import "job_board/internal/apperr"

var (
	ErrAccountNotFound     = apperr.NotFound("account not found")
	ErrCompanyNotFound     = apperr.NotFound("company not found")
	ErrJobNotFound         = apperr.NotFound("job not found")
	ErrApplicationNotFound = apperr.NotFound("application not found")

	ErrEmailTaken  = apperr.Conflict("email already in use")
	ErrMobileTaken = apperr.Conflict("mobileNumber already in use")

	// Login does not reveal whether the account or the password was wrong.
	ErrInvalidCredentials = apperr.Unauthenticated("invalid email, mobile number or password")
	ErrWrongPassword      = apperr.Unauthenticated("current password is incorrect")
)

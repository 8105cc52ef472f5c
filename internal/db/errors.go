package db

import "errors"

// Domain-level database error sentinels. Share-link errors live in the
// sharing package since they are part of the LinkStore contract.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrConditionNotFound  = errors.New("condition not found")
	ErrMedicationNotFound = errors.New("medication not found")
	ErrScanNotFound       = errors.New("scan not found")
	ErrLabResultNotFound  = errors.New("lab result not found")
	ErrProfileNotFound    = errors.New("profile not found")
)

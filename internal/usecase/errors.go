package usecase

import "errors"

var (
	ErrContactNotFound = errors.New("contact not found")
	ErrNoPhones        = errors.New("contact has no phone numbers")
	ErrNoBirthday      = errors.New("contact has no birthday")
	ErrStorageFailure  = errors.New("storage failure")
)

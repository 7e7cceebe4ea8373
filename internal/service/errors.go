package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrWrongPassword      = errors.New("current password is incorrect")

	ErrNotVenueOwner   = errors.New("venue belongs to another manager")
	ErrInvalidCategory = errors.New("invalid amenity category")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrHashingPassword     = errors.New("password hashing failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

package domain

import "errors"

var (
	ErrDocumentNotFound  = errors.New("document not found")
	ErrForbiddenUpdate   = errors.New("forbidden: you can only update your own profile")
	ErrMissingUserID     = errors.New("missing user id")
	ErrInvalidField      = errors.New("invalid field value")
	ErrInvalidCollection = errors.New("invalid collection")
	ErrRemoteService     = errors.New("remote service failure")
)

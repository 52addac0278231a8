package service

import "errors"

// Sentinel errors surfaced to API clients. The texts are the exact
// descriptions the HTTP layer serializes into error responses, so they
// are capitalized sentences rather than Go-style lowercase messages.
var (
	ErrContactsAlreadyAdded = errors.New("Contacts have already been added")
	ErrContactsNotAdded     = errors.New("Contacts have not been added yet")
	ErrContactsNotFound     = errors.New("Contacts not found")

	ErrImageAlreadyAdded = errors.New("Image have already been added")
	ErrNotImageOwner     = errors.New("User is not the owner of the image")
	ErrEmptyImage        = errors.New("Image is empty")
)

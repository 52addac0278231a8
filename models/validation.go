package models

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// emailPattern requires a local part, a domain and a TLD of at least two
// letters ("local@domain.tld").
var emailPattern = regexp.MustCompile(`^[_A-Za-z0-9+-]+(\.[_A-Za-z0-9-]+)*@[A-Za-z0-9-]+(\.[A-Za-z0-9]+)*(\.[A-Za-z]{2,})$`)

// maxPhoneNumberLength caps the phone number field, counted in
// characters, not bytes.
const maxPhoneNumberLength = 20

// Field-level validation failures. The message of the first failing rule
// becomes the error description of the HTTP 400 response.
var (
	ErrFirstnameEmpty   = errors.New("Firstname cannot be empty")
	ErrLastnameEmpty    = errors.New("Lastname cannot be empty")
	ErrSurnameEmpty     = errors.New("Surname cannot be empty")
	ErrBirthdayNull     = errors.New("Birthday cannot be null")
	ErrBirthdayInFuture = errors.New("Birthday cannot be in future")
	ErrEmailEmpty       = errors.New("Email cannot be empty")
	ErrEmailInvalid     = errors.New("Email is not valid")
	ErrPhoneNumberNull  = errors.New("Phone number cannot be null")
	ErrPhoneNumberLong  = errors.New("Length of the phone number should not exceed 20 characters")
)

// Validate checks all ShortUser field rules in declaration order and
// returns the first violation.
func (u ShortUser) Validate() error {
	if isBlank(u.FirstName) {
		return ErrFirstnameEmpty
	}
	if isBlank(u.LastName) {
		return ErrLastnameEmpty
	}
	if isBlank(u.Surname) {
		return ErrSurnameEmpty
	}
	if u.Birthday.IsZero() {
		return ErrBirthdayNull
	}
	if u.Birthday.After(Today().Time) {
		return ErrBirthdayInFuture
	}

	return nil
}

// Validate checks the contact pair: email must be present and match
// [emailPattern], phone must be present and at most 20 characters.
func (c UserContact) Validate() error {
	if isBlank(c.Email) {
		return ErrEmailEmpty
	}
	if !emailPattern.MatchString(c.Email) {
		return ErrEmailInvalid
	}
	if c.PhoneNumber == "" {
		return ErrPhoneNumberNull
	}
	if utf8.RuneCountInString(c.PhoneNumber) > maxPhoneNumberLength {
		return ErrPhoneNumberLong
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

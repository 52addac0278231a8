package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validShortUser() ShortUser {
	return ShortUser{
		FirstName: "Anna",
		LastName:  "Pavlova",
		Surname:   "Matveyevna",
		Birthday:  NewDate(1990, time.February, 12),
	}
}

func TestShortUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(u *ShortUser)
		wantErr error
	}{
		{
			name:   "valid user",
			mutate: func(u *ShortUser) {},
		},
		{
			name:    "empty firstname",
			mutate:  func(u *ShortUser) { u.FirstName = "" },
			wantErr: ErrFirstnameEmpty,
		},
		{
			name:    "whitespace firstname",
			mutate:  func(u *ShortUser) { u.FirstName = "   " },
			wantErr: ErrFirstnameEmpty,
		},
		{
			name:    "empty lastname",
			mutate:  func(u *ShortUser) { u.LastName = "" },
			wantErr: ErrLastnameEmpty,
		},
		{
			name:    "empty surname",
			mutate:  func(u *ShortUser) { u.Surname = "\t" },
			wantErr: ErrSurnameEmpty,
		},
		{
			name:    "zero birthday",
			mutate:  func(u *ShortUser) { u.Birthday = Date{} },
			wantErr: ErrBirthdayNull,
		},
		{
			name: "birthday in future",
			mutate: func(u *ShortUser) {
				u.Birthday = NewDate(2999, time.January, 1)
			},
			wantErr: ErrBirthdayInFuture,
		},
		{
			name: "birthday today is allowed",
			mutate: func(u *ShortUser) {
				u.Birthday = Today()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := validShortUser()
			tt.mutate(&user)

			err := user.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestShortUser_Validate_FirstFailureWins(t *testing.T) {
	// several rules broken at once: the declaration-order first one reports
	user := ShortUser{}

	assert.ErrorIs(t, user.Validate(), ErrFirstnameEmpty)
}

func TestUserContact_Validate(t *testing.T) {
	tests := []struct {
		name    string
		contact UserContact
		wantErr error
	}{
		{
			name:    "valid contact",
			contact: UserContact{Email: "anna@example.com", PhoneNumber: "+79990001122"},
		},
		{
			name:    "empty email",
			contact: UserContact{Email: "", PhoneNumber: "+79990001122"},
			wantErr: ErrEmailEmpty,
		},
		{
			name:    "email without at sign",
			contact: UserContact{Email: "anna.example.com", PhoneNumber: "+79990001122"},
			wantErr: ErrEmailInvalid,
		},
		{
			name:    "email without tld",
			contact: UserContact{Email: "anna@example", PhoneNumber: "+79990001122"},
			wantErr: ErrEmailInvalid,
		},
		{
			name:    "email with dotted local part",
			contact: UserContact{Email: "anna.pavlova@example.co.uk", PhoneNumber: "+79990001122"},
		},
		{
			name:    "missing phone number",
			contact: UserContact{Email: "anna@example.com", PhoneNumber: ""},
			wantErr: ErrPhoneNumberNull,
		},
		{
			name:    "phone number at the limit",
			contact: UserContact{Email: "anna@example.com", PhoneNumber: strings.Repeat("9", 20)},
		},
		{
			name:    "phone number over the limit",
			contact: UserContact{Email: "anna@example.com", PhoneNumber: strings.Repeat("9", 21)},
			wantErr: ErrPhoneNumberLong,
		},
		{
			name:    "multibyte phone number at the limit",
			contact: UserContact{Email: "anna@example.com", PhoneNumber: "＋" + strings.Repeat("9", 19)},
		},
		{
			name:    "multibyte phone number over the limit",
			contact: UserContact{Email: "anna@example.com", PhoneNumber: "＋" + strings.Repeat("9", 20)},
			wantErr: ErrPhoneNumberLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.contact.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

package models

// User represents a dancer profile stored in the database.
// Contact fields (Email, PhoneNumber) are nullable and always change
// together: either both are set or both are cleared.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// FirstName is the user's given name.
	FirstName string `json:"firstname"`

	// LastName is the user's family name.
	LastName string `json:"lastname"`

	// Surname is the user's patronymic.
	Surname string `json:"surname"`

	// Birthday is the user's date of birth. Must not be in the future.
	Birthday Date `json:"birthday"`

	// Email is the user's contact email. Nil until contacts are added.
	Email *string `json:"email,omitempty"`

	// PhoneNumber is the user's contact phone. Nil until contacts are added.
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// HasContacts reports whether the contact pair is fully present.
// The public API never produces a state where only one field is set.
func (u User) HasContacts() bool {
	return u.Email != nil && u.PhoneNumber != nil
}

// HasAnyContact reports whether at least one contact field is present.
// Distinct from [User.HasContacts] so a half-set pair still blocks an
// add and still shows up on a get.
func (u User) HasAnyContact() bool {
	return u.Email != nil || u.PhoneNumber != nil
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

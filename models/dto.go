package models

// Wire representations exchanged with API clients. They are distinct from
// the persisted entities: shape validation happens here, persistence
// concerns stay in [User] and [Image].

// ShortUser is the reduced user representation accepted on create/update
// and returned by the list endpoint. All fields are required.
type ShortUser struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Surname   string `json:"surname"`
	Birthday  Date   `json:"birthday"`
}

// FullUser is the complete user representation returned by single-user
// endpoints. Email and PhoneNumber are omitted while no contacts exist.
type FullUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Surname   string `json:"surname"`
	Birthday  Date   `json:"birthday"`

	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// UserContact is the email/phone pair attached to a user. The pair is
// treated as a single atomic unit for add/update/delete purposes.
type UserContact struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// ImageInfo describes an uploaded image without its binary payload.
type ImageInfo struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// ImageUpload carries a multipart file received by the HTTP layer into
// the image service.
type ImageUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Bytes       []byte
}

// ErrorResponse is the uniform error body returned for every failed
// request: {"error": <category>, "description": <message>}.
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"description"`
}

package models

// Image represents a profile image owned by exactly one user.
// The schema allows many images per user; the service layer enforces
// that at most one is ever created through the public API.
type Image struct {
	// ID is the server-assigned unique identifier of the image.
	ID int64 `json:"id"`

	// UserID references the owning user. Used for ownership checks.
	UserID int64 `json:"user_id"`

	// FileName is the original file name supplied at upload time.
	FileName string `json:"file_name"`

	// ContentType is the MIME type of the payload (e.g. "image/jpeg").
	ContentType string `json:"content_type"`

	// Size is the payload length in bytes.
	Size int64 `json:"size"`

	// Bytes is the raw binary payload.
	Bytes []byte `json:"-"`
}

// TableName returns the name of the database table
// associated with the Image model.
func (i Image) TableName() string {
	return "images"
}

// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors raised by the transport layer itself, before or while
// handing a request to a service. Their texts are the exact descriptions
// serialized into error responses.
var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("Invalid JSON was passed")

	// ErrInvalidUserID is returned when the {userId} path segment is not
	// a valid integer.
	ErrInvalidUserID = errors.New("Invalid user ID")

	// ErrInvalidImageID is returned when the {imageId} path segment is
	// not a valid integer.
	ErrInvalidImageID = errors.New("Invalid image ID")

	// ErrImageSave is returned when the multipart payload of an upload
	// cannot be read.
	ErrImageSave = errors.New("Image save error")

	// ErrImageUpdate is returned when the multipart payload of a
	// replacement cannot be read.
	ErrImageUpdate = errors.New("Image update error")
)

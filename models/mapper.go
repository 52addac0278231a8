package models

// Pure entity/DTO transformers. No business rules live here: services
// decide what may change, mappers only copy fields.

// ToUser builds a new [User] entity from a validated short representation.
// The identity and contact fields stay at their zero values.
func ToUser(short ShortUser) User {
	return User{
		FirstName: short.FirstName,
		LastName:  short.LastName,
		Surname:   short.Surname,
		Birthday:  short.Birthday,
	}
}

// ToFullUserDTO builds the complete wire representation of a user,
// including the nullable contact pair.
func ToFullUserDTO(user User) FullUser {
	return FullUser{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Surname:     user.Surname,
		Birthday:    user.Birthday,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
	}
}

// ToShortUserDTO builds the reduced wire representation of a user.
func ToShortUserDTO(user User) ShortUser {
	return ShortUser{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Surname:   user.Surname,
		Birthday:  user.Birthday,
	}
}

// ToShortUserDTOs maps a user list to its reduced representation.
// It always returns a non-nil slice so an empty list serializes as [].
func ToShortUserDTOs(users []User) []ShortUser {
	dtos := make([]ShortUser, 0, len(users))
	for _, user := range users {
		dtos = append(dtos, ToShortUserDTO(user))
	}

	return dtos
}

// ToContactDTO extracts the contact pair of a user. The caller must have
// verified that contacts are present.
func ToContactDTO(user User) UserContact {
	contact := UserContact{}
	if user.Email != nil {
		contact.Email = *user.Email
	}
	if user.PhoneNumber != nil {
		contact.PhoneNumber = *user.PhoneNumber
	}

	return contact
}

// ImageFromUpload builds an [Image] entity owned by the given user from
// a received multipart file.
func ImageFromUpload(userID int64, upload ImageUpload) Image {
	return Image{
		UserID:      userID,
		FileName:    upload.FileName,
		ContentType: upload.ContentType,
		Size:        upload.Size,
		Bytes:       upload.Bytes,
	}
}

// ToImageInfo builds the payload-free wire representation of an image.
func ToImageInfo(image Image) ImageInfo {
	return ImageInfo{
		FileName:    image.FileName,
		ContentType: image.ContentType,
		Size:        image.Size,
	}
}

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/heydancer/dancer-profile/models"
)

const (
	createUser = `INSERT INTO users (first_name, last_name, surname, birthday)
    VALUES ($1, $2, $3, $4)
    RETURNING id, first_name, last_name, surname, birthday, email, phone_number;`

	getUserByID = `SELECT id, first_name, last_name, surname, birthday, email, phone_number
    FROM users
    WHERE id = $1;`

	getAllUsers = `SELECT id, first_name, last_name, surname, birthday, email, phone_number
    FROM users;`

	deleteUser = `DELETE FROM users
    WHERE id = $1;`

	createImage = `INSERT INTO images (user_id, file_name, content_type, size, bytes)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id;`

	getImageByID = `SELECT id, user_id, file_name, content_type, size, bytes
    FROM images
    WHERE id = $1;`

	countImagesByUser = `SELECT COUNT(*)
    FROM images
    WHERE user_id = $1;`

	deleteImage = `DELETE FROM images
    WHERE id = $1;`
)

// psql builds queries with PostgreSQL positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateUserQuery builds the UPDATE statement that overwrites the
// name/surname/birthday fields of a user in place. Contact columns are
// never touched by this query.
func buildUpdateUserQuery(user models.User) (string, []any, error) {
	return psql.Update(user.TableName()).
		Set("first_name", user.FirstName).
		Set("last_name", user.LastName).
		Set("surname", user.Surname).
		Set("birthday", user.Birthday).
		Where(sq.Eq{"id": user.ID}).
		Suffix("RETURNING id, first_name, last_name, surname, birthday, email, phone_number").
		ToSql()
}

// buildUpdateContactsQuery builds the UPDATE statement that sets or clears
// the contact pair of a user. Both columns always change together: passing
// nil for both clears the contacts.
func buildUpdateContactsQuery(userID int64, email, phoneNumber *string) (string, []any, error) {
	return psql.Update(models.User{}.TableName()).
		Set("email", email).
		Set("phone_number", phoneNumber).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// buildUpdateImageQuery builds the UPDATE statement that replaces an image
// payload in place, keeping the image identity unchanged.
func buildUpdateImageQuery(image models.Image) (string, []any, error) {
	return psql.Update(image.TableName()).
		Set("file_name", image.FileName).
		Set("content_type", image.ContentType).
		Set("size", image.Size).
		Set("bytes", image.Bytes).
		Where(sq.Eq{"id": image.ID}).
		ToSql()
}

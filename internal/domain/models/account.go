// internal/domain/models/account.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account represents a registered user of the catalog.
//
// Email is the login identity. It is stored exactly as the user typed it,
// and duplicate detection is a byte-exact match on the unique index:
// "A@x.com" and "a@x.com" are two different accounts. Nothing in the
// credential path folds or lowercases the email.
type Account struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	FullName string             `bson:"full_name" json:"full_name"`

	// FullNameCI is the folded full name, kept only so rosters can sort
	// case/diacritic-insensitively.
	FullNameCI string `bson:"full_name_ci" json:"-"`

	// PasswordHash is the bcrypt hash of the account secret. The plaintext
	// never touches storage and the hash never appears in JSON.
	PasswordHash string `bson:"password_hash" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

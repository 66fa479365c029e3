// internal/domain/models/activity.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityRecord is one login/logout window for an account.
//
// A record is created at successful login with LogoutAt nil ("open") and is
// mutated exactly once, by the matching logout, which sets LogoutAt. A nil
// LogoutAt means the window is still considered open. Records are never
// deleted.
//
// The session cookie carries this record's ID, so logout closes exactly the
// record its login opened, never "the latest open record for the account",
// which would be ambiguous when a prior session was abandoned.
type ActivityRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AccountID primitive.ObjectID `bson:"account_id" json:"account_id"`
	LoginAt   time.Time          `bson:"login_at" json:"login_at"`
	LogoutAt  *time.Time         `bson:"logout_at,omitempty" json:"logout_at,omitempty"`
	IP        string             `bson:"ip,omitempty" json:"ip,omitempty"`
}

// Open reports whether the window has not been closed yet.
func (r ActivityRecord) Open() bool {
	return r.LogoutAt == nil
}

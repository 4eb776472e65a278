package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is the identity anchor. Historical user documents carry their _id
// either as a native ObjectID or as the same 24-hex value stored as a plain
// string, so the field stays untyped and is stringified on the way out.
type User struct {
	ID          any            `bson:"_id,omitempty"`
	Email       string         `bson:"email"`
	GoogleID    string         `bson:"google_id"`
	CreatedAt   time.Time      `bson:"created_at"`
	LastLoginAt *time.Time     `bson:"last_login_at,omitempty"`
	Settings    map[string]any `bson:"settings"`
	FCMTokens   []string       `bson:"fcm_tokens"`
	BlockedApps []string       `bson:"blocked_apps"`
}

func (u User) IDString() string { return IDString(u.ID) }

// IDString renders a stored _id regardless of which representation it used.
func IDString(id any) string {
	switch v := id.(type) {
	case bson.ObjectID:
		return v.Hex()
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

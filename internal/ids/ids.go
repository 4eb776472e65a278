// Package ids mints the opaque, globally-unique string keys used wherever a
// store generates its own identifier instead of deferring to the database.
package ids

import "github.com/segmentio/ksuid"

func New() string {
	return ksuid.New().String()
}

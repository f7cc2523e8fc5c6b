package id

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// GetULID generates a lexicographically sortable unique id.
func GetULID() string {
	entropy := rand.New(rand.NewSource(time.Now().UnixNano()))
	ms := ulid.Timestamp(time.Now())
	u, err := ulid.New(ms, entropy)
	if err != nil {
		return ""
	}
	return u.String()
}

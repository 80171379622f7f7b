package oid

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"time"
)

// Length of an id in its hex form.
const Length = 24

// New returns a fresh 24-character lowercase hex identifier.
// The first 4 bytes are a unix timestamp so ids sort roughly by
// creation time; the remaining 8 bytes are random.
func New() string {
	var b [12]byte
	binary.BigEndian.PutUint32(b[:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(b[4:]); err != nil {
		panic("oid: rand.Read failed: " + err.Error())
	}
	return hex.EncodeToString(b[:])
}

// IsValid reports whether s has the expected id shape:
// exactly 24 lowercase hex characters.
func IsValid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

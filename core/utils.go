package core

import (
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// NewID returns a new record identifier: the current millisecond timestamp in
// base36 followed by a random suffix. Existing exported documents carry ids of
// this shape, so it is kept across versions.
func NewID() string {
	u := uuid.New()
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + hex.EncodeToString(u[:6])
}

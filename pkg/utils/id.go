package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a 32-char hex id suitable for varchar(32) primary keys.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

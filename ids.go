package tasknest

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID generates an opaque identifier: a base-36 millisecond timestamp
// followed by a random suffix.
func NewID() string {
	prefix := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return prefix + suffix
}

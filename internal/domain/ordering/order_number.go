package ordering

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewOrderNumber builds a human-readable, effectively unique reference:
// a millisecond timestamp plus a random suffix. The unique index on the
// column catches the residual collision risk.
func NewOrderNumber() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}

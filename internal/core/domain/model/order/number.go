package order

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// GenerateNumber returns a human-facing order number ORD-YYYYMMDD-NNNNN. The
// suffix is random; uniqueness is enforced by storage.
func GenerateNumber(at time.Time) string {
	return fmt.Sprintf("ORD-%s-%05d", at.Format("20060102"), rand.IntN(100000))
}

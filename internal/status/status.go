package status

import "strings"

// Canonical is the normalized transaction status.
type Canonical string

const (
	Success Canonical = "SUCCESS"
	Pending Canonical = "PENDING"
	Failure Canonical = "FAILURE"
)

// Icon identifies the glyph shown next to a status.
type Icon string

const (
	IconCheckCircle Icon = "check-circle"
	IconXCircle     Icon = "x-circle"
	IconClock       Icon = "clock"
)

// Presentation carries everything a screen needs to render a status.
type Presentation struct {
	Canonical  Canonical `json:"canonical"`
	Icon       Icon      `json:"icon"`
	BadgeClass string    `json:"badge_class"`
}

// Normalize maps a raw gateway status token to its canonical value and
// presentation metadata. Comparison is case-insensitive and anything
// outside the success/failure token families is pending, including an
// empty status. The icon always derives from the canonical value, never
// the raw token, so "FAILURE", "Failure" and "failed" render identically.
// The badge class for failures is the literal "failed" regardless of
// which failure token the gateway sent.
func Normalize(raw string) Presentation {
	switch strings.ToLower(raw) {
	case "success":
		return Presentation{Canonical: Success, Icon: IconCheckCircle, BadgeClass: "success"}
	case "failure", "failed":
		return Presentation{Canonical: Failure, Icon: IconXCircle, BadgeClass: "failed"}
	default:
		return Presentation{Canonical: Pending, Icon: IconClock, BadgeClass: "pending"}
	}
}

package loyalty

import (
	"fmt"
	"time"

	"github.com/arcadia-gaming/loyaltyrank/internal/domain"
)

const monthLayout = "January 2006"

// TimestampLayout is the fixed pattern all activity timestamps must follow.
const TimestampLayout = "02-01-2006 15:04"

// ResolveMonth turns a named month such as "October 2022" into an inclusive
// window from the first day 00:00 to the last day 23:59:59.
func ResolveMonth(label string) (domain.Window, error) {
	start, err := time.Parse(monthLayout, label)
	if err != nil {
		return domain.Window{}, fmt.Errorf("unrecognized analysis month %q: %w", label, err)
	}
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return domain.Window{Label: label, Start: start, End: end}, nil
}

package booking

import "github.com/sebastian26-ui/barbershop-backend/internal/models"

// ===============================
// Window matching
// ===============================

// Slot is the half-open interval implied by a requested service and start
// time, pre-computed into the comparable fields window matching needs.
type Slot struct {
	Date      string // "YYYY-MM-DD" of the requested start
	DayOfWeek int    // 0=Sunday..6=Saturday
	Start     string // "HH:MM", zero-padded
	End       string // "HH:MM", zero-padded
}

// WindowCovers reports whether an availability window fully covers the
// slot. A window with a specific date only ever matches on that date;
// recurring windows only apply when no specific date is set. The "HH:MM"
// comparisons are lexicographic, so a slot whose end wraps past midnight
// (End < Start) can never match — a documented limitation of the
// string-comparison approach, kept as-is.
func WindowCovers(w models.AvailabilityWindow, slot Slot) bool {
	if !w.Active || !w.Available {
		return false
	}

	if w.SpecificDate != nil && *w.SpecificDate != "" {
		return *w.SpecificDate == slot.Date &&
			w.StartTime <= slot.Start &&
			w.EndTime >= slot.End
	}

	if w.DayOfWeek == nil {
		return false
	}

	return *w.DayOfWeek == slot.DayOfWeek &&
		w.StartTime <= slot.Start &&
		w.EndTime >= slot.End
}

// AnyWindowCovers applies the "any matching window suffices" overlap rule.
func AnyWindowCovers(windows []models.AvailabilityWindow, slot Slot) bool {
	for _, w := range windows {
		if WindowCovers(w, slot) {
			return true
		}
	}
	return false
}

package appointment

import (
	"errors"
	"time"
)

var ErrInvalidSlot = errors.New("slot start must be before slot end")

// Slot is one contiguous bookable interval on one day, expressed in the
// DRS reference timezone.
type Slot struct {
	start time.Time
	end   time.Time
}

func NewSlot(start, end time.Time) (Slot, error) {
	if !start.Before(end) {
		return Slot{}, ErrInvalidSlot
	}
	return Slot{start: start, end: end}, nil
}

func (s Slot) Start() time.Time {
	return s.start
}

func (s Slot) End() time.Time {
	return s.end
}

func (s Slot) Day() string {
	return s.start.Format("2006-01-02")
}

type slotPattern struct {
	startHour   int
	startMinute int
	endHour     int
	endMinute   int
}

// DRS returns blanket whole-day windows with these exact shapes on days it
// cannot genuinely serve; they must never be offered to a caller.
var placeholderPatterns = []slotPattern{
	{9, 30, 14, 30},
	{8, 0, 16, 0},
	{8, 30, 13, 30},
	{7, 0, 15, 0},
}

func (s Slot) IsPlaceholder() bool {
	for _, p := range placeholderPatterns {
		if s.start.Hour() == p.startHour && s.start.Minute() == p.startMinute &&
			s.end.Hour() == p.endHour && s.end.Minute() == p.endMinute {
			return true
		}
	}
	return false
}

// DistinctDays counts how many distinct calendar dates the slots cover.
func DistinctDays(slots []Slot) int {
	seen := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		seen[s.Day()] = struct{}{}
	}
	return len(seen)
}

// FirstDays groups slots by calendar date in arrival order, keeps only the
// first maxDays distinct dates and flattens the groups back into one list.
// Slots within a date keep their arrival order.
func FirstDays(slots []Slot, maxDays int) []Slot {
	order := make([]string, 0, maxDays)
	groups := make(map[string][]Slot)
	for _, s := range slots {
		day := s.Day()
		if _, ok := groups[day]; !ok {
			order = append(order, day)
		}
		groups[day] = append(groups[day], s)
	}
	if len(order) > maxDays {
		order = order[:maxDays]
	}
	kept := make([]Slot, 0, len(slots))
	for _, day := range order {
		kept = append(kept, groups[day]...)
	}
	return kept
}

package availability

import (
	"fmt"
	"strings"
	"time"

	"ride-together/internal/pkg/errs"
)

var (
	ErrInvalidDate       = errs.New("invalid ride date")
	ErrInvalidTimeOfDay  = errs.New("invalid time of day")
	ErrInvalidTimeRange  = errs.New("start time must be before end time")
	ErrInvalidTrailType  = errs.New("invalid trail type")
	ErrInvalidVisibility = errs.New("invalid visibility")
)

const DateLayout = "2006-01-02"

// RideDate is a calendar day with no time-of-day or zone attached.
// Comparison is by day only.
type RideDate struct {
	t time.Time
}

func ParseRideDate(s string) (RideDate, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return RideDate{}, errs.Mark(err, ErrInvalidDate)
	}
	return RideDate{t: t}, nil
}

// DateOf returns the calendar day of t as observed in t's location.
func DateOf(t time.Time) RideDate {
	y, m, d := t.Date()
	return RideDate{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d RideDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// Time returns midnight UTC of the day.
func (d RideDate) Time() time.Time { return d.t }
func (d RideDate) IsZero() bool    { return d.t.IsZero() }

func (d RideDate) Before(other RideDate) bool { return d.t.Before(other.t) }

func (d RideDate) Compare(other RideDate) int { return d.t.Compare(other.t) }

// IsUpcoming reports whether the day is today or later relative to now.
func (d RideDate) IsUpcoming(now time.Time) bool {
	return !d.Before(DateOf(now))
}

// Format renders the day with a time layout, e.g. "Monday, Jan 2, 2006".
func (d RideDate) Format(layout string) string {
	return d.t.Format(layout)
}

// In returns the given clock time on this day in loc.
func (d RideDate) In(loc *time.Location, tod TimeOfDay) time.Time {
	y, m, day := d.t.Date()
	return time.Date(y, m, day, tod.minutes/60, tod.minutes%60, 0, 0, loc)
}

// TimeOfDay is a wall-clock time with minute precision.
type TimeOfDay struct {
	minutes int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return TimeOfDay{}, errs.Mark(err, ErrInvalidTimeOfDay)
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

func TimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= 24*60 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: minutes}, nil
}

func (t TimeOfDay) Minutes() int { return t.minutes }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

func (t TimeOfDay) Before(other TimeOfDay) bool { return t.minutes < other.minutes }

type TimeRange struct {
	start TimeOfDay
	end   TimeOfDay
}

func NewTimeRange(start, end TimeOfDay) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return TimeRange{start: start, end: end}, nil
}

func ParseTimeRange(start, end string) (TimeRange, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return TimeRange{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return TimeRange{}, err
	}
	return NewTimeRange(s, e)
}

func (r TimeRange) Start() TimeOfDay { return r.start }
func (r TimeRange) End() TimeOfDay   { return r.end }

func (r TimeRange) Duration() time.Duration {
	return time.Duration(r.end.minutes-r.start.minutes) * time.Minute
}

type TrailType string

const (
	TrailRoad     TrailType = "road"
	TrailMountain TrailType = "mountain"
	TrailCasual   TrailType = "casual"
	TrailGravel   TrailType = "gravel"
)

var trailLabels = map[TrailType]string{
	TrailRoad:     "Road Cycling",
	TrailMountain: "Mountain Biking",
	TrailCasual:   "Casual Ride",
	TrailGravel:   "Gravel Paths",
}

func ParseTrailType(s string) (TrailType, error) {
	t := TrailType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := trailLabels[t]; !ok {
		return "", ErrInvalidTrailType
	}
	return t, nil
}

func (t TrailType) Label() string {
	if label, ok := trailLabels[t]; ok {
		return label
	}
	return string(t)
}

func (t TrailType) String() string { return string(t) }

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityFriends Visibility = "friends"

	DefaultVisibility = VisibilityFriends
)

// ParseVisibility maps an empty value to DefaultVisibility.
func ParseVisibility(s string) (Visibility, error) {
	switch v := Visibility(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return DefaultVisibility, nil
	case VisibilityPublic, VisibilityFriends:
		return v, nil
	default:
		return "", ErrInvalidVisibility
	}
}

func (v Visibility) String() string { return string(v) }

package calendar

import (
	"fmt"
	"strings"
	"time"

	"ride-together/internal/usecase/queries"

	ical "github.com/arran4/golang-ical"
	"github.com/cockroachdb/errors"
)

const (
	productID = "-//ride-together//confirmed rides//EN"
	layout    = "2006-01-02 15:04"
)

// ICalRenderer turns confirmed rides into an iCalendar feed. Ride dates
// and times are wall-clock values in loc.
type ICalRenderer struct {
	loc *time.Location
}

func NewICalRenderer(loc *time.Location) *ICalRenderer {
	if loc == nil {
		loc = time.UTC
	}
	return &ICalRenderer{loc: loc}
}

func (r *ICalRenderer) Render(rides []*queries.ConfirmedRideView, now time.Time) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetName("Confirmed rides")

	for _, ride := range rides {
		start, err := time.ParseInLocation(layout, ride.Date+" "+ride.StartTime, r.loc)
		if err != nil {
			return nil, errors.Wrapf(err, "ride %s has an invalid start", ride.ID)
		}
		end, err := time.ParseInLocation(layout, ride.Date+" "+ride.EndTime, r.loc)
		if err != nil {
			return nil, errors.Wrapf(err, "ride %s has an invalid end", ride.ID)
		}

		ev := cal.AddEvent(ride.ID.String())
		ev.SetDtStampTime(now)
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(fmt.Sprintf("%s ride with %s", ride.TrailLabel, ride.PartnerName))
		if desc := contactLine(ride); desc != "" {
			ev.SetDescription(desc)
		}
	}
	return []byte(cal.Serialize()), nil
}

func contactLine(ride *queries.ConfirmedRideView) string {
	var parts []string
	if ride.ContactEmail != "" {
		parts = append(parts, "Email: "+ride.ContactEmail)
	}
	if ride.ContactPhone != "" {
		parts = append(parts, "Phone: "+ride.ContactPhone)
	}
	return strings.Join(parts, "\n")
}

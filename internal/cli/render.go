package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/tripjournal/internal/models"
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func printTrips(w io.Writer, trips []models.Trip) {
	if len(trips) == 0 {
		fmt.Fprintln(w, "No trips yet. Use 'addtrip' to create one.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTART\tEND\tEVENTS")
	for _, t := range trips {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", t.ID, t.Name, formatDate(t.StartDate), formatDate(t.EndDate), len(t.Events))
	}
	_ = tw.Flush()
}

func printTrip(w io.Writer, t models.Trip) {
	fmt.Fprintf(w, "Trip %d: %s\n", t.ID, t.Name)
	fmt.Fprintf(w, "  %s .. %s\n", formatDate(t.StartDate), formatDate(t.EndDate))
	for _, e := range t.Events {
		fmt.Fprintf(w, "  - [%d] %s %s", e.ID, formatDate(e.Date), e.Name)
		if e.TransitionFromPrevious != nil {
			fmt.Fprintf(w, " (via %s)", *e.TransitionFromPrevious)
		}
		fmt.Fprintln(w)
	}
}

func printEvents(w io.Writer, events []models.Event) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No events yet. Use 'addevent' to create one.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTRIP\tDATE\tNAME\tMEDIA")
	for _, e := range events {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%d\n", e.ID, e.TripID, formatDate(e.Date), e.Name, len(e.Media))
	}
	_ = tw.Flush()
}

func printEvent(w io.Writer, e models.Event) {
	fmt.Fprintf(w, "Event %d: %s (trip %d)\n", e.ID, e.Name, e.TripID)
	fmt.Fprintf(w, "  date: %s\n", formatDate(e.Date))
	if e.Note != nil {
		fmt.Fprintf(w, "  note: %s\n", strings.ReplaceAll(*e.Note, "\n", "\n        "))
	}
	if e.Location != nil {
		fmt.Fprintf(w, "  location: %.5f, %.5f", e.Location.Latitude, e.Location.Longitude)
		if addr := deref(e.Location.Address); addr != "" {
			fmt.Fprintf(w, " (%s)", addr)
		}
		fmt.Fprintln(w)
	}
	if e.TransitionFromPrevious != nil {
		fmt.Fprintf(w, "  arrived by: %s\n", *e.TransitionFromPrevious)
	}
	for _, m := range e.Media {
		fmt.Fprintf(w, "  media %d: %d bytes\n", m.ID, len(m.Base64Data))
	}
}

func printMedia(w io.Writer, media []models.Media) {
	if len(media) == 0 {
		fmt.Fprintln(w, "No media yet. Use 'addmedia <eventID> <file>' to upload.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEVENT\tBYTES")
	for _, m := range media {
		fmt.Fprintf(tw, "%d\t%d\t%d\n", m.ID, m.EventID, len(m.Base64Data))
	}
	_ = tw.Flush()
}

func printMediaItem(w io.Writer, m models.Media) {
	fmt.Fprintf(w, "Media %d (event %d): %d bytes\n", m.ID, m.EventID, len(m.Base64Data))
}

package core

import (
	"fmt"
	"strings"
	"time"
)

// contentDateLayouts are the date shapes the API has been seen returning,
// most common first.
var contentDateLayouts = []string{
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"01/02/2006",
	"02/01/2006",
	"Monday, January 2, 2006",
	"Monday, Jan 2, 2006",
}

const (
	contentFooterInfo = "For more information: see https://albertapaleo.org/events/calendar"
	contentFooterTags = "#palaeontology #paleontology #fossils #dinosaurs #events"
)

// BuildContent renders the content.txt companion file: one line per event in
// "Weekday, Month D: Title @ Location (Host)" form, followed by the calendar
// link and hashtag footer.
func BuildContent(events []Event) string {
	lines := make([]string, 0, len(events)+4)

	for _, event := range events {
		var dayName, formattedDate string

		if event.Date != "" {
			formattedDate = event.Date

			for _, layout := range contentDateLayouts {
				if parsed, err := time.Parse(layout, event.Date); err == nil {
					dayName = parsed.Weekday().String()
					formattedDate = fmt.Sprintf("%s %d", parsed.Month().String(), parsed.Day())

					break
				}
			}
		}

		title := event.Title
		if title == "" {
			title = "Event"
		}

		var parts []string

		switch {
		case dayName != "" && formattedDate != "":
			parts = append(parts, fmt.Sprintf("%s, %s: %s", dayName, formattedDate, title))
		case formattedDate != "":
			parts = append(parts, fmt.Sprintf("%s: %s", formattedDate, title))
		default:
			parts = append(parts, title)
		}

		if event.Location != "" {
			parts = append(parts, "@ "+event.Location)
		}

		if event.Host != "" {
			parts = append(parts, "("+event.Host+")")
		}

		lines = append(lines, strings.Join(parts, " "))
	}

	lines = append(lines, "", contentFooterInfo, "", contentFooterTags)

	return strings.Join(lines, "\n")
}

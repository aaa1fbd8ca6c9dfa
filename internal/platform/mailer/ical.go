package mailer

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Invite describes a calendar event to attach to an email as an iCalendar
// REQUEST.
type Invite struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Location    string
	Organizer   string
	Attendees   []string
}

const icalTimeLayout = "20060102T150405Z"

// escapeText escapes characters that have special meaning in iCalendar
// text values.
func escapeText(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
	)
	return r.Replace(s)
}

// Encode renders the invite as an iCalendar document with METHOD:REQUEST so
// mail clients offer to add the event to the recipient's calendar.
func (iv Invite) Encode() []byte {
	var b strings.Builder

	write := func(line string) {
		b.WriteString(line)
		b.WriteString("\r\n")
	}

	write("BEGIN:VCALENDAR")
	write("PRODID:-//OR Scheduler//orbook//")
	write("VERSION:2.0")
	write("METHOD:REQUEST")
	write("BEGIN:VEVENT")
	write("UID:" + uuid.New().String() + "@orbook")
	write("DTSTAMP:" + time.Now().UTC().Format(icalTimeLayout))
	write("DTSTART:" + iv.Start.UTC().Format(icalTimeLayout))
	write("DTEND:" + iv.End.UTC().Format(icalTimeLayout))
	write("SUMMARY:" + escapeText(iv.Title))
	write("DESCRIPTION:" + escapeText(iv.Description))
	if iv.Location != "" {
		write("LOCATION:" + escapeText(iv.Location))
	}
	write("STATUS:CONFIRMED")
	if iv.Organizer != "" {
		write("ORGANIZER:mailto:" + iv.Organizer)
	}
	for _, a := range iv.Attendees {
		write(fmt.Sprintf("ATTENDEE;ROLE=REQ-PARTICIPANT;RSVP=TRUE:mailto:%s", a))
	}
	write("END:VEVENT")
	write("END:VCALENDAR")

	return []byte(b.String())
}

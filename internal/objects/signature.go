package objects

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KostasZigo/gitodb/internal/constants"
)

// Signature represents commit author/committer identity and timestamp
type Signature struct {
	Name  string
	Email string
	When  time.Time
}

// String renders the header value form: "Name <email> <unix-seconds> ±HHMM".
func (s Signature) String() string {
	_, offset := s.When.Zone()
	return fmt.Sprintf("%s <%s> %d %s", s.Name, s.Email, s.When.Unix(), formatTimezone(offset))
}

// Identity renders "Name <email>" without the timestamp.
func (s Signature) Identity() string {
	return fmt.Sprintf("%s <%s>", s.Name, s.Email)
}

// ParseSignature parses an author or committer header value.
func ParseSignature(value string) (Signature, error) {
	emailStart := strings.LastIndexByte(value, '<')
	emailEnd := strings.LastIndexByte(value, '>')
	if emailStart == -1 || emailEnd < emailStart {
		return Signature{}, fmt.Errorf("invalid signature %q: missing <email>", value)
	}

	signature := Signature{
		Name:  strings.TrimSpace(value[:emailStart]),
		Email: value[emailStart+1 : emailEnd],
	}

	fields := strings.Fields(value[emailEnd+1:])
	if len(fields) != 2 {
		return Signature{}, fmt.Errorf("invalid signature %q: expected timestamp and timezone", value)
	}

	seconds, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Signature{}, fmt.Errorf("invalid signature timestamp %q: %w", fields[0], err)
	}

	location, err := parseTimezone(fields[1])
	if err != nil {
		return Signature{}, err
	}

	signature.When = time.Unix(seconds, 0).In(location)
	return signature, nil
}

func formatTimezone(offset int) string {
	// offset is in seconds, convert to ±HHMM format
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	hours := offset / constants.SecondsPerHour
	minutes := (offset % constants.SecondsPerHour) / constants.SecondsPerMinute

	return fmt.Sprintf("%c%02d%02d", sign, hours, minutes)
}

func parseTimezone(zone string) (*time.Location, error) {
	if len(zone) != 5 || (zone[0] != '+' && zone[0] != '-') {
		return nil, fmt.Errorf("invalid timezone %q", zone)
	}

	hours, err := strconv.Atoi(zone[1:3])
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", zone, err)
	}
	minutes, err := strconv.Atoi(zone[3:5])
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", zone, err)
	}

	offset := hours*constants.SecondsPerHour + minutes*constants.SecondsPerMinute
	if zone[0] == '-' {
		offset = -offset
	}
	return time.FixedZone(zone, offset), nil
}

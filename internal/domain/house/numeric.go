package house

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

// Text keeps a JSON scalar in its textual form so that numbers and dates
// sent either as JSON numbers or as strings are coerced in one place.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("expected a number or a string")
	}
	*t = Text(n.String())
	return nil
}

func (t Text) Empty() bool {
	return strings.TrimSpace(string(t)) == ""
}

func (t Text) Float() (float64, error) {
	return strconv.ParseFloat(string(t), 64)
}

// Int accepts integral floats such as "2.0".
func (t Text) Int() (int, error) {
	if n, err := strconv.Atoi(string(t)); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(string(t), 64)
	if err != nil || f != float64(int(f)) {
		return 0, errors.New("not an integer")
	}
	return int(f), nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (t Text) Time() (time.Time, error) {
	for _, layout := range dateLayouts {
		if v, err := time.Parse(layout, string(t)); err == nil {
			return v, nil
		}
	}
	return time.Time{}, errors.New("not a date")
}

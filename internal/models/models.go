package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Housemate is one entry of the roster
type Housemate struct {
	ID   string `mapstructure:"id" yaml:"id"`
	Name string `mapstructure:"name" yaml:"name"`
}

// Task represents a single chore assignment
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     *Date  `json:"dueDate"` // nil means no due date
	Assignee    string `json:"assignee"`
	Completed   bool   `json:"completed"`
}

// Draft holds the user-editable fields of a task
type Draft struct {
	Title       string
	Description string
	DueDate     *Date
	Assignee    string
}

// Draft returns the editable fields of the task
func (t Task) Draft() Draft {
	return Draft{
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate.Clone(),
		Assignee:    t.Assignee,
	}
}

// Clone returns a deep copy of the task
func (t Task) Clone() Task {
	t.DueDate = t.DueDate.Clone()
	return t
}

// DateLayout is the wire and display format of a Date
const DateLayout = "2006-01-02"

// Date is a calendar day with no time component
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate returns the normalized date for year, month and day
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Today returns the current local date
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate accepts YYYY-MM-DD, or an RFC 3339 timestamp which is read as the
// local calendar day it falls on
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		// Timestamps are local midnights serialized in UTC
		return DateOf(t.In(time.Local)), nil
	}
	return Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
}

// Year returns the year of the date
func (d Date) Year() int { return d.year }

// Month returns the month of the date
func (d Date) Month() time.Month { return d.month }

// Day returns the day of the month
func (d Date) Day() int { return d.day }

// IsZero reports whether d is the zero Date, which names no real day
func (d Date) IsZero() bool { return d.year == 0 && d.month == 0 && d.day == 0 }

// Time returns midnight UTC of the date
func (d Date) Time() time.Time { return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC) }

// Before reports whether d is an earlier day than o
func (d Date) Before(o Date) bool { return d.Time().Before(o.Time()) }

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// Clone copies a possibly nil date pointer
func (d *Date) Clone() *Date {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

// Equal reports whether two optional dates hold the same day
func (d *Date) Equal(o *Date) bool {
	if d == nil || o == nil {
		return d == o
	}
	return *d == *o
}

// MarshalJSON writes the date as a "YYYY-MM-DD" string
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON reads anything ParseDate accepts; null leaves d untouched
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

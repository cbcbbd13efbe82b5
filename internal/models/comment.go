package models

import "time"

type NewsComment struct {
	ID       int64
	NewsID   int
	Writer   string
	Comment  string
	Datetime *time.Time
}

// ToEpochMillis is the persisted form of a comment timestamp.
func ToEpochMillis(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

func FromEpochMillis(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms)
	return &t
}

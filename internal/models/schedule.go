package models

import "fmt"

// SlotRef identifies a weekly schedule slot as (weekday, period).
// Weekday 0 is Monday; period 0 is the first class of the day.
// Serialized as a two-element JSON array, e.g. [2, 4].
type SlotRef [2]int

func (s SlotRef) Weekday() int { return s[0] }
func (s SlotRef) Period() int  { return s[1] }

func (s SlotRef) String() string {
	return fmt.Sprintf("(%d, %d)", s[0], s[1])
}

// Schedule is a recurring weekly entry. Its identity is the slot: at most one
// schedule exists per SlotRef, enforced by the schedule store's Upsert.
type Schedule struct {
	Title    string  `json:"title"`
	Location string  `json:"location"`
	Time     SlotRef `json:"time"`
}

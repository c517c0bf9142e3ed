// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package deck

import "fmt"

// Milestones is an ascending list of reveal-count thresholds that each
// trigger a one-time celebration.
type Milestones []int

// DefaultMilestones returns the standard thresholds for a 54-card deck.
func DefaultMilestones() Milestones {
	return Milestones{10, 25, 54}
}

// Validate checks that thresholds are positive and strictly ascending.
func (m Milestones) Validate() error {
	prev := 0
	for _, t := range m {
		if t <= prev {
			return fmt.Errorf("milestones must be positive and strictly ascending, got %v", []int(m))
		}
		prev = t
	}
	return nil
}

// Check reports whether count sits exactly on a threshold. Exact equality
// (not >=) means each milestone fires once, because Tracker.Reveal grows the
// set one card at a time and the count cannot skip a threshold.
func (m Milestones) Check(count int) (int, bool) {
	for _, t := range m {
		if count == t {
			return t, true
		}
	}
	return 0, false
}

// Next returns the first threshold above count, if any.
func (m Milestones) Next(count int) (int, bool) {
	for _, t := range m {
		if t > count {
			return t, true
		}
	}
	return 0, false
}

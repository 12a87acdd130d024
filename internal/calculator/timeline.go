// internal/calculator/timeline.go
package calculator

import "math"

const workingDaysPerWeek = 5

// Timeline translates a day estimate into calendar duration.
type Timeline struct {
	SequentialWeeks float64 `json:"sequential_weeks"`
	ParallelWeeks   float64 `json:"parallel_weeks,omitempty"`
	TeamSize        int     `json:"team_size"`
	TotalPersonDays int     `json:"total_person_days"`
}

// ProjectTimeline converts total working days to weeks, parallelized across
// the team when more than one person is assigned.
func ProjectTimeline(totalDays, teamSize int) Timeline {
	if teamSize < 1 {
		teamSize = 1
	}
	weeks := float64(totalDays) / workingDaysPerWeek

	t := Timeline{
		SequentialWeeks: round1(weeks),
		TeamSize:        teamSize,
		TotalPersonDays: totalDays,
	}
	if teamSize > 1 {
		t.ParallelWeeks = round1(weeks / float64(teamSize))
	}
	return t
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

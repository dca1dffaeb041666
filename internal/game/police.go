package game

import (
	"sort"
	"time"

	"wolfjudge/internal/models"
)

// SpeechOrder derives the campaign speech rotation. The current clock
// minute modulo the candidate count picks the starting candidate; an
// odd starting seat speaks clockwise (ascending seats), an even one
// counterclockwise (descending), wrapping around the table.
func SpeechOrder(candidates []int, now time.Time) []int {
	if len(candidates) == 0 {
		return nil
	}

	start := candidates[now.Minute()%len(candidates)]

	sorted := make([]int, len(candidates))
	copy(sorted, candidates)
	if start%2 == 1 {
		sort.Ints(sorted)
	} else {
		sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	}

	var pivot int
	for i, seat := range sorted {
		if seat == start {
			pivot = i
			break
		}
	}
	return append(sorted[pivot:], sorted[:pivot]...)
}

// EligiblePoliceVoters returns the living seats still allowed to cast
// a chief ballot: not yet voted, not abstained, not a current
// candidate and not withdrawn. During a tie-breaker the candidate
// list has been reduced to the tied seats, which re-admits non-tied
// former candidates as voters.
func EligiblePoliceVoters(players []*models.Player, day models.DayState) []int {
	voted := make(map[int]bool, len(day.PoliceVotes))
	for _, v := range day.PoliceVotes {
		voted[v.Voter] = true
	}
	excluded := make(map[int]bool)
	for _, seat := range day.PoliceAbstentions {
		excluded[seat] = true
	}
	for _, seat := range day.PoliceCandidates {
		excluded[seat] = true
	}
	for _, seat := range day.PoliceWithdrawn {
		excluded[seat] = true
	}

	var voters []int
	for _, p := range players {
		if p.Alive && !voted[p.Seat] && !excluded[p.Seat] {
			voters = append(voters, p.Seat)
		}
	}
	return voters
}

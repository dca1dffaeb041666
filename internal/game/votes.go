package game

import (
	"sort"

	"wolfjudge/internal/models"
)

// PoliceVoteWeight is the weight of a ballot cast by the police chief.
const PoliceVoteWeight = 1.5

// TallyResult is the outcome of counting an execution ballot.
type TallyResult struct {
	VoteCount    map[int]float64
	MaxVotes     float64
	Winners      []int
	IsTie        bool
	AbstainCount float64
}

// Tally counts weighted votes. A police ballot weighs 1.5, any other
// ballot 1; target 0 is an abstention and accumulates into
// AbstainCount. Winners holds every target at the maximum count,
// sorted by seat. No execution should happen when IsTie is true or
// MaxVotes is zero.
func Tally(votes []models.VoteRecord) TallyResult {
	result := TallyResult{VoteCount: make(map[int]float64)}

	for _, v := range votes {
		weight := 1.0
		if v.PoliceVote {
			weight = PoliceVoteWeight
		}
		if v.Target == 0 {
			result.AbstainCount += weight
			continue
		}
		result.VoteCount[v.Target] += weight
	}

	for _, count := range result.VoteCount {
		if count > result.MaxVotes {
			result.MaxVotes = count
		}
	}
	for target, count := range result.VoteCount {
		if count == result.MaxVotes {
			result.Winners = append(result.Winners, target)
		}
	}
	sort.Ints(result.Winners)
	result.IsTie = len(result.Winners) > 1

	return result
}

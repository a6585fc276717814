package normalize

import (
	"math"
	"strings"

	"github.com/carlosmalvarenga1-rgb/civilrightsalert/internal/model"
)

const (
	VoteYes          = "yes"
	VoteNo           = "no"
	VoteAbsent       = "absent"
	VoteAbstain      = "abstain"
	VoteUnclassified = "unclassified"
)

// ClassifyVote buckets a free-text vote label. The yes group is checked
// first; the keyword groups are otherwise disjoint.
func ClassifyVote(value string) string {
	v := strings.ToLower(value)
	switch {
	case containsAny(v, []string{"aye", "yes", "affirmative"}):
		return VoteYes
	case containsAny(v, []string{"nay", "no"}):
		return VoteNo
	case containsAny(v, []string{"absent", "excused"}):
		return VoteAbsent
	case containsAny(v, []string{"abstain", "present"}):
		return VoteAbstain
	default:
		return VoteUnclassified
	}
}

// TallyVotes classifies each vote value and aggregates the buckets.
// Attendance rate = round(100 * (total - absent) / total); it is reported
// only when at least one vote was recorded.
func TallyVotes(values []string) model.VoteTally {
	tally := model.VoteTally{}
	for _, v := range values {
		tally.Total++
		switch ClassifyVote(v) {
		case VoteYes:
			tally.Yes++
		case VoteNo:
			tally.No++
		case VoteAbsent:
			tally.Absent++
		case VoteAbstain:
			tally.Abstain++
		default:
			tally.Unclassified++
		}
	}
	if tally.Total > 0 {
		rate := 100 * float64(tally.Total-tally.Absent) / float64(tally.Total)
		tally.AttendanceRate = int(math.Round(rate))
		tally.HasRate = true
	}
	return tally
}

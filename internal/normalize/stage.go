package normalize

import "strings"

const (
	// DefaultStage labels items whose latest action matched no rule.
	DefaultStage         = "In Progress"
	DefaultStagePriority = 3
)

type stageRule struct {
	keywords []string
	label    string
	priority int
}

// stageRules is evaluated in order; the first keyword hit wins. Ordering
// encodes priority: an action reading "signed ... and referred to ..." is
// enacted, not in committee.
var stageRules = []stageRule{
	{[]string{"became public law", "signed by president", "enacted"}, "Signed Into Law", 10},
	{[]string{"vetoed"}, "Vetoed", 9},
	{[]string{"passed house", "passed senate", "agreed to in"}, "Passed Chamber", 8},
	{[]string{"cloture", "floor consideration", "placed on calendar"}, "Floor Vote Pending", 7},
	{[]string{"reported by", "ordered to be reported"}, "Reported by Committee", 6},
	{[]string{"hearing", "markup"}, "Committee Hearing", 5},
	{[]string{"referred to", "subcommittee"}, "In Committee", 4},
	{[]string{"introduced", "read twice", "sponsor introductory"}, "Introduced", 3},
}

// ClassifyStage maps a free-text action description to a coarse stage label
// and numeric priority (higher = further along). Empty or unmatched text
// classifies as "In Progress".
func ClassifyStage(text string) (string, int) {
	lower := strings.ToLower(text)
	for _, rule := range stageRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.label, rule.priority
			}
		}
	}
	return DefaultStage, DefaultStagePriority
}

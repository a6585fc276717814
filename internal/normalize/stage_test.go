package normalize

import "testing"

func TestClassifyStage(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantLabel    string
		wantPriority int
	}{
		{"became law", "Became Public Law No: 119-21.", "Signed Into Law", 10},
		{"signed", "Signed by President.", "Signed Into Law", 10},
		{"vetoed", "Vetoed by President.", "Vetoed", 9},
		{"passed house", "Passed House by voice vote.", "Passed Chamber", 8},
		{"agreed to", "Agreed to in Senate without amendment.", "Passed Chamber", 8},
		{"cloture", "Cloture motion presented in Senate.", "Floor Vote Pending", 7},
		{"calendar", "Placed on Calendar of Business.", "Floor Vote Pending", 7},
		{"reported", "Reported by the Committee on the Judiciary.", "Reported by Committee", 6},
		{"hearing", "Committee hearing held.", "Committee Hearing", 5},
		{"referred", "Referred to the House Committee on Ways and Means.", "In Committee", 4},
		{"introduced", "Introduced in House", "Introduced", 3},
		{"read twice", "Read twice and referred to the Committee.", "In Committee", 4},
		{"empty", "", "In Progress", 3},
		{"no match", "Motion to reconsider laid on the table.", "In Progress", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, priority := ClassifyStage(tt.text)
			if label != tt.wantLabel || priority != tt.wantPriority {
				t.Errorf("ClassifyStage(%q) = (%q, %d), want (%q, %d)",
					tt.text, label, priority, tt.wantLabel, tt.wantPriority)
			}
		})
	}
}

// Text matching multiple rule groups takes the earliest rule: "referred to"
// outranks "introduced" even though both appear.
func TestClassifyStage_EarliestRuleWins(t *testing.T) {
	label, priority := ClassifyStage("Introduced in House and referred to the Committee on Rules.")
	if label != "In Committee" || priority != 4 {
		t.Errorf("got (%q, %d), want (\"In Committee\", 4)", label, priority)
	}

	label, priority = ClassifyStage("Signed by President and referred to the Archivist.")
	if label != "Signed Into Law" || priority != 10 {
		t.Errorf("got (%q, %d), want (\"Signed Into Law\", 10)", label, priority)
	}
}

func TestClassifyStage_CaseInsensitive(t *testing.T) {
	label, _ := ClassifyStage("PASSED HOUSE")
	if label != "Passed Chamber" {
		t.Errorf("got %q, want \"Passed Chamber\"", label)
	}
}

package normalize

import (
	"strings"
	"time"

	"github.com/carlosmalvarenga1-rgb/civilrightsalert/internal/model"
)

// Body names that identify the primary governing body outright.
var primaryBodyKeywords = []string{
	"city council",
	"board of supervisors",
	"common council",
	"town council",
	"borough council",
	"village board",
}

// Broader match used only when nothing hits the primary set.
var looseBodyKeywords = []string{"council", "mayor", "aldermen"}

// Advisory and administrative bodies that the loose match must not pick up.
var bodyExclusions = []string{
	"advisory",
	"committee",
	"commission",
	"task force",
	"authority",
	"planning",
	"zoning",
	"youth",
	"neighborhood",
	"review board",
}

// Name fragments that mark staff or utility accounts rather than elected
// officials. Used only by the last-resort fallback when a source publishes
// no office records at all.
var staffNameKeywords = []string{
	"system",
	"monitor",
	"view only",
	"test",
	"admin",
	"clerk",
	"secretary",
	"attorney",
	"manager",
	"director",
	"coordinator",
	"analyst",
	"assistant",
	"staff",
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// selectGoverningBodies picks the primary governing bodies out of the full
// body list. Primary keywords win outright; otherwise the loose keywords
// apply minus the advisory/administrative exclusions.
func selectGoverningBodies(bodies []model.CouncilBody) []model.CouncilBody {
	var primary []model.CouncilBody
	for _, b := range bodies {
		if !b.Active {
			continue
		}
		if containsAny(strings.ToLower(b.Name), primaryBodyKeywords) {
			primary = append(primary, b)
		}
	}
	if len(primary) > 0 {
		return primary
	}

	var loose []model.CouncilBody
	for _, b := range bodies {
		if !b.Active {
			continue
		}
		name := strings.ToLower(b.Name)
		if containsAny(name, looseBodyKeywords) && !containsAny(name, bodyExclusions) {
			loose = append(loose, b)
		}
	}
	return loose
}

// SelectCouncilMembers computes the current elected members of a
// jurisdiction's primary governing body. Municipal sources publish hundreds
// of staff contacts next to elected officials, and some publish no body or
// office-record data at all, so selection degrades through three tiers:
// body-scoped office records, all active office records, then a name-based
// staff filter over active persons.
func SelectCouncilMembers(bodies []model.CouncilBody, offices []model.OfficeRecord, persons []model.Person, now time.Time) []model.CouncilMember {
	governing := selectGoverningBodies(bodies)

	governingIDs := make(map[int64]bool, len(governing))
	for _, b := range governing {
		governingIDs[b.ID] = true
	}

	// Office records scoped to the governing bodies; when the source gave
	// us no body data at all, every record is in scope.
	var activeOffices []model.OfficeRecord
	for _, r := range offices {
		if len(bodies) > 0 && !governingIDs[r.BodyID] {
			continue
		}
		if r.ActiveAt(now) {
			activeOffices = append(activeOffices, r)
		}
	}

	officesByPerson := make(map[int64]model.OfficeRecord, len(activeOffices))
	for _, r := range activeOffices {
		if _, seen := officesByPerson[r.PersonID]; !seen {
			officesByPerson[r.PersonID] = r
		}
	}

	var members []model.CouncilMember
	if len(offices) > 0 {
		for _, p := range persons {
			if !p.Active {
				continue
			}
			office, held := officesByPerson[p.ID]
			if !held {
				continue
			}
			members = append(members, model.CouncilMember{
				Person:   p,
				Title:    office.Title,
				BodyName: office.BodyName,
				Start:    office.Start,
				End:      office.End,
			})
		}
		return members
	}

	// No office-record data at all: keep active persons whose name does not
	// look like a staff or utility account.
	for _, p := range persons {
		if !p.Active {
			continue
		}
		if containsAny(strings.ToLower(p.FullName), staffNameKeywords) {
			continue
		}
		members = append(members, model.CouncilMember{Person: p})
	}
	return members
}

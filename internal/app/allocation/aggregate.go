package allocation

import (
	"sort"

	"github.com/hosteldesk/hosteldesk/internal/app/hostelscope"
	"github.com/hosteldesk/hosteldesk/internal/app/models"
)

// CurrentByDepartment reduces the append-only merit list history to the
// current list per department: the one with the latest GeneratedAt, ties
// broken by the larger document id so the result stays deterministic even
// under identical timestamps.
func CurrentByDepartment(lists []*models.MeritList) map[string]*models.MeritList {
	current := make(map[string]*models.MeritList)
	for _, l := range lists {
		cur, ok := current[l.Department]
		if !ok || newer(l, cur) {
			current[l.Department] = l
		}
	}
	return current
}

// VisibleToRector returns the current lists a rector may see, sorted by
// department. Drafts are excluded: a rector never sees a list the warden has
// not yet sent for review.
func VisibleToRector(lists []*models.MeritList) []*models.MeritList {
	var visible []*models.MeritList
	for _, l := range sortedCurrent(lists) {
		if l.Status == models.ListDraft {
			continue
		}
		visible = append(visible, l)
	}
	return visible
}

// PendingForWarden returns the current draft lists with at least one student
// inside the given hostel's scope. These are the lists the warden can still
// send for review; lists already forwarded no longer show up.
func PendingForWarden(lists []*models.MeritList, hostelKey string) ([]*models.MeritList, error) {
	var pending []*models.MeritList
	for _, l := range sortedCurrent(lists) {
		if l.Status != models.ListDraft {
			continue
		}
		scoped, err := hostelscope.Scope(l.Students, hostelKey)
		if err != nil {
			return nil, err
		}
		if len(scoped) > 0 {
			pending = append(pending, l)
		}
	}
	return pending, nil
}

func newer(candidate, current *models.MeritList) bool {
	if candidate.GeneratedAt.After(current.GeneratedAt) {
		return true
	}
	return candidate.GeneratedAt.Equal(current.GeneratedAt) && candidate.ID > current.ID
}

func sortedCurrent(lists []*models.MeritList) []*models.MeritList {
	current := CurrentByDepartment(lists)
	out := make([]*models.MeritList, 0, len(current))
	for _, l := range current {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Department < out[j].Department })
	return out
}

// Package allocation implements the merit-list allocation engine and the
// pure reductions over its output. Everything here is deterministic given a
// fixed admission ordering; callers are expected to supply admissions in a
// stable, reproducible order (the repositories order by insertion id).
package allocation

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/hosteldesk/hosteldesk/internal/app/models"
)

// Allocate runs one allocation pass over the accepted admission pool and
// returns one draft merit list per department that has a positive configured
// seat count and at least one eligible admission. Departments failing either
// condition produce no output; that is a configuration concern, not an error.
//
// All returned lists share a single run id and timestamp so a batch can be
// traced as one unit even though each list is persisted independently.
func Allocate(admissions []models.AdmissionRecord, cfg models.QuotaConfig, now time.Time) []*models.MeritList {
	runID := uuid.NewString()
	snapshot := snapshotConfig(cfg)

	var lists []*models.MeritList
	for _, dept := range sortedDepartments(cfg.DepartmentSeats) {
		seats := cfg.DepartmentSeats[dept]
		if seats <= 0 {
			continue
		}

		pool := eligible(admissions, dept)
		if len(pool) == 0 {
			continue
		}

		lists = append(lists, &models.MeritList{
			RunID:            runID,
			Department:       dept,
			Students:         allocateDepartment(pool, seats, cfg.CategoryPercentages),
			Status:           models.ListDraft,
			GeneratedAt:      now,
			SettingsSnapshot: snapshot,
		})
	}
	return lists
}

// allocateDepartment fills a department's seats in three passes: a rank-only
// open slice, reserved category passes, and a merit fallback for whatever is
// left. Ranks reflect quota-fill order across the passes, not a final re-sort
// by marks.
func allocateDepartment(pool []models.AdmissionRecord, totalSeats int, percentages map[string]float64) []models.ShortlistEntry {
	remaining := make([]models.AdmissionRecord, len(pool))
	copy(remaining, pool)

	// Stable sort keeps the caller's ordering for tied marks, which is what
	// makes repeated runs over the same snapshot identical.
	sort.SliceStable(remaining, func(i, j int) bool {
		return remaining[i].Marks() > remaining[j].Marks()
	})

	selected := make([]models.ShortlistEntry, 0, totalSeats)

	// Open pass: purely rank-based. The top slice is seated under "Open" no
	// matter what category they declared; a declared-SC applicant in the top
	// slice takes an open seat, not an SC one. Merit-first by policy.
	openCount := quotaSeats(totalSeats, percentages[models.CategoryOpen])
	for openCount > 0 && len(selected) < totalSeats && len(remaining) > 0 {
		selected = append(selected, newEntry(remaining[0], models.CategoryOpen))
		remaining = remaining[1:]
		openCount--
	}

	// Reserved passes. Only applicants whose declared category matches are
	// taken; non-matches stay in place for later passes. Category c applicants
	// beyond the c quota also stay in the pool.
	for _, cat := range reservedCategories(percentages) {
		if len(selected) == totalSeats {
			break
		}
		catCount := quotaSeats(totalSeats, percentages[cat])
		i := 0
		for catCount > 0 && i < len(remaining) && len(selected) < totalSeats {
			if remaining[i].Category != cat {
				i++
				continue
			}
			selected = append(selected, newEntry(remaining[i], cat))
			remaining = append(remaining[:i], remaining[i+1:]...)
			catCount--
		}
	}

	// Merit-remaining: highest leftover marks first until seats run out.
	for len(selected) < totalSeats && len(remaining) > 0 {
		selected = append(selected, newEntry(remaining[0], models.SelectionMeritRemaining))
		remaining = remaining[1:]
	}

	for i := range selected {
		selected[i].Rank = i + 1
	}
	return selected
}

// eligible filters the snapshot to one department's accepted applications,
// preserving input order.
func eligible(admissions []models.AdmissionRecord, department string) []models.AdmissionRecord {
	var pool []models.AdmissionRecord
	for _, a := range admissions {
		if a.Status != models.AdmissionAccepted {
			continue
		}
		if a.Department != department {
			continue
		}
		pool = append(pool, a)
	}
	return pool
}

// quotaSeats converts a percentage share of the department's seats into a
// whole seat count, rounding down.
func quotaSeats(totalSeats int, percent float64) int {
	if percent <= 0 {
		return 0
	}
	return int(math.Floor(float64(totalSeats) * percent / 100))
}

// sortedDepartments returns the configured department names in a fixed order
// so run output does not depend on map iteration.
func sortedDepartments(seats map[string]int) []string {
	departments := make([]string, 0, len(seats))
	for dept := range seats {
		departments = append(departments, dept)
	}
	sort.Strings(departments)
	return departments
}

// reservedCategories returns every configured category except "Open", in a
// fixed order for the same reason.
func reservedCategories(percentages map[string]float64) []string {
	categories := make([]string, 0, len(percentages))
	for cat := range percentages {
		if cat == models.CategoryOpen {
			continue
		}
		categories = append(categories, cat)
	}
	sort.Strings(categories)
	return categories
}

func newEntry(a models.AdmissionRecord, selectionCategory string) models.ShortlistEntry {
	return models.ShortlistEntry{
		AdmissionID:       a.ID,
		FullName:          a.FullName,
		Enrollment:        a.Enrollment,
		Email:             a.Email,
		Year:              a.Year,
		Gender:            a.Gender,
		PrevMarks:         a.Marks(),
		Category:          a.Category,
		SelectionCategory: selectionCategory,
	}
}

// snapshotConfig deep-copies the quota config so the persisted settings
// snapshot cannot be changed by later config edits.
func snapshotConfig(cfg models.QuotaConfig) models.QuotaConfig {
	out := models.QuotaConfig{
		DepartmentSeats:     make(map[string]int, len(cfg.DepartmentSeats)),
		CategoryPercentages: make(map[string]float64, len(cfg.CategoryPercentages)),
	}
	for k, v := range cfg.DepartmentSeats {
		out.DepartmentSeats[k] = v
	}
	for k, v := range cfg.CategoryPercentages {
		out.CategoryPercentages[k] = v
	}
	return out
}

package allocation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hosteldesk/hosteldesk/internal/app/hostelscope"
	"github.com/hosteldesk/hosteldesk/internal/app/models"
)

func listFixture(id int64, department string, status models.ListStatus, generatedAt time.Time, students ...models.ShortlistEntry) *models.MeritList {
	return &models.MeritList{
		ID:          id,
		RunID:       "run",
		Department:  department,
		Students:    students,
		Status:      status,
		GeneratedAt: generatedAt,
	}
}

func firstYearBoy(admissionID int64) models.ShortlistEntry {
	return models.ShortlistEntry{
		AdmissionID: admissionID,
		Year:        models.YearFirst,
		Gender:      models.GenderMale,
	}
}

func TestCurrentByDepartmentLatestWins(t *testing.T) {
	earlier := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	later := earlier.Add(time.Hour)

	lists := []*models.MeritList{
		listFixture(1, "CE", models.ListPublished, earlier),
		listFixture(2, "CE", models.ListDraft, later),
		listFixture(3, "ME", models.ListDraft, earlier),
	}

	current := CurrentByDepartment(lists)
	require.Len(t, current, 2)
	assert.Equal(t, int64(2), current["CE"].ID)
	assert.Equal(t, int64(3), current["ME"].ID)
}

func TestCurrentByDepartmentTieBreaksOnID(t *testing.T) {
	at := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	lists := []*models.MeritList{
		listFixture(7, "CE", models.ListDraft, at),
		listFixture(4, "CE", models.ListDraft, at),
	}

	current := CurrentByDepartment(lists)
	assert.Equal(t, int64(7), current["CE"].ID)
}

func TestVisibleToRectorExcludesDrafts(t *testing.T) {
	at := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	lists := []*models.MeritList{
		listFixture(1, "ME", models.ListSentForReview, at),
		listFixture(2, "CE", models.ListDraft, at),
		listFixture(3, "EE", models.ListPublished, at),
	}

	visible := VisibleToRector(lists)
	require.Len(t, visible, 2)
	// sorted by department
	assert.Equal(t, "EE", visible[0].Department)
	assert.Equal(t, "ME", visible[1].Department)
}

func TestVisibleToRectorSupersededDraftHidesNothing(t *testing.T) {
	earlier := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	later := earlier.Add(time.Hour)

	// The published list is stale; the current list for CE is a draft, so the
	// rector sees nothing for that department.
	lists := []*models.MeritList{
		listFixture(1, "CE", models.ListPublished, earlier),
		listFixture(2, "CE", models.ListDraft, later),
	}

	assert.Empty(t, VisibleToRector(lists))
}

func TestPendingForWardenScopesDrafts(t *testing.T) {
	at := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	girl := models.ShortlistEntry{AdmissionID: 9, Year: models.YearFirst, Gender: models.GenderFemale}
	lists := []*models.MeritList{
		listFixture(1, "CE", models.ListDraft, at, firstYearBoy(1)),
		listFixture(2, "ME", models.ListDraft, at, girl),
		listFixture(3, "EE", models.ListSentForReview, at, firstYearBoy(2)),
	}

	pending, err := PendingForWarden(lists, hostelscope.Shivneri)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "CE", pending[0].Department)
}

func TestPendingForWardenUnknownHostel(t *testing.T) {
	at := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	lists := []*models.MeritList{
		listFixture(1, "CE", models.ListDraft, at, firstYearBoy(1)),
	}

	_, err := PendingForWarden(lists, "panhala")
	assert.Error(t, err)
}

func TestPendingForWardenOnlyCurrentDrafts(t *testing.T) {
	earlier := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	later := earlier.Add(time.Hour)

	// The older draft was superseded by a newer run; only the newer one is
	// actionable.
	lists := []*models.MeritList{
		listFixture(1, "CE", models.ListDraft, earlier, firstYearBoy(1)),
		listFixture(2, "CE", models.ListDraft, later, firstYearBoy(2)),
	}

	pending, err := PendingForWarden(lists, hostelscope.Boys)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, int64(2), pending[0].ID)
}

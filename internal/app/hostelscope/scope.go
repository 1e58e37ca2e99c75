// Package hostelscope projects merit-list entries and admission records into
// the subset visible to a hostel. The hostel table is fixed: scoping is part
// of the building layout, not configuration.
package hostelscope

import (
	"fmt"
	"strings"

	"github.com/hosteldesk/hosteldesk/internal/app/models"
	"github.com/hosteldesk/hosteldesk/internal/pkg/apperrors"
)

// Named hostel keys and the boys/girls aggregates.
const (
	Shivneri     = "shivneri"
	Lenyadri     = "lenyadri"
	Bhimashankar = "bhimashankar"
	Saraswati    = "saraswati"
	Shwetamber   = "shwetamber"
	Shwetambara  = "shwetambara"
	Boys         = "boys"
	Girls        = "girls"
)

// rule matches a resident by year and gender. An empty year matches any year.
type rule struct {
	year   string
	gender string
}

var hostels = map[string]rule{
	Shivneri:     {models.YearFirst, models.GenderMale},
	Lenyadri:     {models.YearSecond, models.GenderMale},
	Bhimashankar: {models.YearThird, models.GenderMale},
	Saraswati:    {"", models.GenderFemale},
	Shwetamber:   {"", models.GenderFemale},
	Shwetambara:  {"", models.GenderFemale},
	Boys:         {"", models.GenderMale},
	Girls:        {"", models.GenderFemale},
}

// Known reports whether key names a hostel or aggregate this package scopes.
func Known(key string) bool {
	_, ok := hostels[normalize(key)]
	return ok
}

// IsAggregate reports whether key is one of the cross-hostel aggregates.
func IsAggregate(key string) bool {
	k := normalize(key)
	return k == Boys || k == Girls
}

// Scope returns the entries visible to the given hostel. An unrecognized key
// is an error, never an empty result; a typo in a hostel key must not look
// like an empty hostel.
func Scope(entries []models.ShortlistEntry, hostelKey string) ([]models.ShortlistEntry, error) {
	r, err := ruleFor(hostelKey)
	if err != nil {
		return nil, err
	}

	var scoped []models.ShortlistEntry
	for _, e := range entries {
		if r.matches(e.Year, e.Gender) {
			scoped = append(scoped, e)
		}
	}
	return scoped, nil
}

// ScopeAdmissions applies the same hostel predicate to raw admission records.
func ScopeAdmissions(records []models.AdmissionRecord, hostelKey string) ([]models.AdmissionRecord, error) {
	r, err := ruleFor(hostelKey)
	if err != nil {
		return nil, err
	}

	var scoped []models.AdmissionRecord
	for _, a := range records {
		if r.matches(a.Year, a.Gender) {
			scoped = append(scoped, a)
		}
	}
	return scoped, nil
}

func (r rule) matches(year, gender string) bool {
	if !strings.EqualFold(gender, r.gender) {
		return false
	}
	return r.year == "" || strings.EqualFold(year, r.year)
}

func ruleFor(hostelKey string) (rule, error) {
	r, ok := hostels[normalize(hostelKey)]
	if !ok {
		return rule{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownHostelKey, hostelKey)
	}
	return r, nil
}

func normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

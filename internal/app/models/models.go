package models

// AdmissionStatus tracks a hostel application through admin review.
type AdmissionStatus string

const (
	AdmissionPending  AdmissionStatus = "pending"
	AdmissionVerified AdmissionStatus = "verified"
	AdmissionAccepted AdmissionStatus = "accepted"
	AdmissionRejected AdmissionStatus = "rejected"
)

// ListStatus is the lifecycle state of a merit list. Transitions are strictly
// forward: draft -> sent_for_review -> published.
type ListStatus string

const (
	ListDraft         ListStatus = "draft"
	ListSentForReview ListStatus = "sent_for_review"
	ListPublished     ListStatus = "published"
)

// StaffRole defines the staff account role type
type StaffRole string

const (
	RoleWarden     StaffRole = "warden" // hostel admin, scoped by SubRole
	RoleRector     StaffRole = "rector"
	RoleContractor StaffRole = "contractor"
	RoleWatchman   StaffRole = "watchman"
)

// Reservation categories. CategoryOpen doubles as the selection bucket of the
// rank-only open pass; SelectionMeritRemaining is only ever a selection bucket,
// never a declared category.
const (
	CategoryOpen            = "Open"
	CategoryOBC             = "OBC"
	CategorySC              = "SC"
	CategoryST              = "ST"
	SelectionMeritRemaining = "Merit-Remaining"
)

// Admission years as submitted on the application form.
const (
	YearFirst  = "1st"
	YearSecond = "2nd"
	YearThird  = "3rd"
)

// Genders as submitted on the application form.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

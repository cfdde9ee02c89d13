// Package status holds the application-status vocabulary, its presentation
// mapping, and the transition policies used when an admin moves an
// application through the hiring pipeline.
package status

// Status is one stage of an application's lifecycle.
type Status string

const (
	Applied            Status = "APPLIED"
	ResumeViewed       Status = "RESUME_VIEWED"
	InterviewScheduled Status = "INTERVIEW_SCHEDULED"
	Interviewed        Status = "INTERVIEWED"
	OfferExtended      Status = "OFFER_EXTENDED"
	Hired              Status = "HIRED"
	Rejected           Status = "REJECTED"
)

// All lists the vocabulary in pipeline order. REJECTED sits last because it
// is reachable from every other stage rather than part of the progression.
var All = []Status{
	Applied,
	ResumeViewed,
	InterviewScheduled,
	Interviewed,
	OfferExtended,
	Hired,
	Rejected,
}

// order maps each pipeline stage to its position. Rejected is absent on
// purpose, it has no position in the forward progression.
var order = map[Status]int{
	Applied:            0,
	ResumeViewed:       1,
	InterviewScheduled: 2,
	Interviewed:        3,
	OfferExtended:      4,
	Hired:              5,
}

func (s Status) Valid() bool {
	if s == Rejected {
		return true
	}
	_, ok := order[s]
	return ok
}

// Terminal reports whether the pipeline ends at s.
func (s Status) Terminal() bool {
	return s == Hired || s == Rejected
}

// Category is the visual bucket a status renders in.
type Category string

const (
	CategoryNeutral Category = "neutral"
	CategoryInfo    Category = "info"
	CategorySuccess Category = "success"
	CategoryDanger  Category = "danger"
)

// Display is the presentation triple the dashboard shows for a status badge.
type Display struct {
	Label    string   `json:"label"`
	Icon     string   `json:"icon"`
	Category Category `json:"category"`
}

var displays = map[Status]Display{
	Applied:            {Label: "Applied", Icon: "clock", Category: CategoryNeutral},
	ResumeViewed:       {Label: "Resume Viewed", Icon: "eye", Category: CategoryInfo},
	InterviewScheduled: {Label: "Interview Scheduled", Icon: "calendar", Category: CategoryInfo},
	Interviewed:        {Label: "Interviewed", Icon: "user-check", Category: CategoryInfo},
	OfferExtended:      {Label: "Offer Extended", Icon: "send", Category: CategoryInfo},
	Hired:              {Label: "Hired", Icon: "award", Category: CategorySuccess},
	Rejected:           {Label: "Rejected", Icon: "x-circle", Category: CategoryDanger},
}

// DisplayFor is total over any input: unrecognized values fall back to the
// APPLIED presentation so a bad row never crashes a badge render.
func DisplayFor(s Status) Display {
	if d, ok := displays[s]; ok {
		return d
	}
	return displays[Applied]
}

// Policy selects how transitions are checked. The product has not decided
// whether the pipeline should be guarded, so both behaviors ship and the
// choice is a config flag.
type Policy struct {
	// Strict limits moves to the next pipeline stage, plus REJECTED from
	// any non-terminal stage. When false any status can move to any other.
	Strict bool
}

// Allows reports whether the policy permits moving from one status to
// another. Self-moves are never useful and are rejected in strict mode.
func (p Policy) Allows(from, to Status) bool {
	if !p.Strict {
		return true
	}
	if from.Terminal() {
		return false
	}
	if to == Rejected {
		return true
	}
	fi, ok := order[from]
	if !ok {
		return false
	}
	ti, ok := order[to]
	if !ok {
		return false
	}
	return ti == fi+1
}

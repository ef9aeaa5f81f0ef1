// Package workflow holds the transient draft a user accumulates while
// stepping through the booking flow: choose a dance at an event, then
// a partner (or skip), then confirm. One draft per session; nothing is
// committed until the confirm step succeeds, so abandoning a draft
// needs no compensation.
package workflow

import "tantsuball/internal/models"

// Workflow steps, in order
const (
	StepDance   = "selecting_dance"
	StepPartner = "selecting_partner"
	StepConfirm = "confirming"
	StepDone    = "completed"
)

// Draft is the uncommitted selection carried across workflow steps.
type Draft struct {
	Step    string
	Event   *models.Event
	Dance   *models.Dance
	Partner *models.Partner
	// Skipped marks an explicit "no partner" choice, distinct from not
	// having reached the partner step yet
	Skipped bool
}

func newDraft() *Draft {
	return &Draft{Step: StepDance}
}

// SetDance moves the draft to the partner step, discarding any partner
// chosen for a previous dance.
func (d *Draft) SetDance(event *models.Event, dance *models.Dance) {
	d.Event = event
	d.Dance = dance
	d.Partner = nil
	d.Skipped = false
	d.Step = StepPartner
}

// SetPartner moves the draft to the confirm step.
func (d *Draft) SetPartner(partner *models.Partner) {
	d.Partner = partner
	d.Skipped = false
	d.Step = StepConfirm
}

// SkipPartner moves to the confirm step without a partner.
func (d *Draft) SkipPartner() {
	d.Partner = nil
	d.Skipped = true
	d.Step = StepConfirm
}

// Back steps the draft one step backwards. Data carried for steps
// before the one returned to is kept, so moving forward again does not
// force re-selection of the event or dance.
func (d *Draft) Back() {
	switch d.Step {
	case StepConfirm:
		d.Partner = nil
		d.Skipped = false
		d.Step = StepPartner
	case StepPartner:
		d.Step = StepDance
	}
}

// Reset drops everything and returns to the dance step.
func (d *Draft) Reset() {
	*d = *newDraft()
}

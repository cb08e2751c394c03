package models

import (
	"strings"
	"time"

	"github.com/guregu/null/v5"
)

// Action is the kind of mutation a ChangeRecord describes
type Action string

const (
	ActionCreated       Action = "created"
	ActionUpdated       Action = "updated"
	ActionAssigned      Action = "assigned"
	ActionUnassigned    Action = "unassigned"
	ActionStatusChanged Action = "status_changed"
	ActionDeleted       Action = "deleted"
)

// AllActions returns every action in display order
func AllActions() []Action {
	return []Action{
		ActionCreated,
		ActionUpdated,
		ActionAssigned,
		ActionUnassigned,
		ActionStatusChanged,
		ActionDeleted,
	}
}

// IsValid reports whether the action belongs to the closed enumeration
func (a Action) IsValid() bool {
	for _, known := range AllActions() {
		if a == known {
			return true
		}
	}
	return false
}

// Label returns a human readable action name
func (a Action) Label() string {
	return strings.ReplaceAll(string(a), "_", " ")
}

// ParseAction parses an action name, rejecting anything outside the enumeration
func ParseAction(s string) (Action, error) {
	action := Action(strings.TrimSpace(s))
	if !action.IsValid() {
		return "", ValidationError{Field: "action", Message: "unknown action " + s}
	}
	return action, nil
}

// ChangeRecord is one immutable audit entry describing a single mutation of a subject
type ChangeRecord struct {
	ID          string      `json:"id"`
	SubjectID   string      `json:"subject_id"`
	Action      Action      `json:"action"`
	BeforeState FieldMap    `json:"before_state,omitempty"`
	AfterState  FieldMap    `json:"after_state,omitempty"`
	ActorID     null.String `json:"actor_id"`
	Notes       null.String `json:"notes"`
	OccurredAt  time.Time   `json:"occurred_at"`
}

// IsSystemAction reports whether no user is credited with the change
func (r *ChangeRecord) IsSystemAction() bool {
	return !r.ActorID.Valid || r.ActorID.String == ""
}

// Changes returns the field-level diff between the before and after state
func (r *ChangeRecord) Changes() []FieldChange {
	return Diff(r.BeforeState, r.AfterState)
}

// Validate checks the record shape before it is handed to the store
func (r *ChangeRecord) Validate() error {
	var errs ValidationErrors

	if strings.TrimSpace(r.SubjectID) == "" {
		errs = append(errs, ValidationError{Field: "subject_id", Message: "subject id is required"})
	}

	if !r.Action.IsValid() {
		errs = append(errs, ValidationError{Field: "action", Message: "unknown action " + string(r.Action)})
		return errs
	}

	hasBefore := len(r.BeforeState) > 0
	hasAfter := len(r.AfterState) > 0

	if !hasBefore && !hasAfter {
		errs = append(errs, ValidationError{Field: "state", Message: "before or after state is required"})
		return errs
	}

	switch r.Action {
	case ActionCreated:
		if r.BeforeState != nil {
			errs = append(errs, ValidationError{Field: "before_state", Message: "created records carry no before state"})
		}
		if !hasAfter {
			errs = append(errs, ValidationError{Field: "after_state", Message: "created records require an after state"})
		}
	case ActionDeleted:
		if r.AfterState != nil {
			errs = append(errs, ValidationError{Field: "after_state", Message: "deleted records carry no after state"})
		}
		if !hasBefore {
			errs = append(errs, ValidationError{Field: "before_state", Message: "deleted records require a before state"})
		}
	case ActionAssigned:
		if !hasAfter {
			errs = append(errs, ValidationError{Field: "after_state", Message: "assigned records require an after state"})
		}
	default:
		if !hasBefore || !hasAfter {
			errs = append(errs, ValidationError{Field: "state", Message: string(r.Action) + " records require both before and after state"})
		}
	}

	switch r.Action {
	case ActionUpdated, ActionUnassigned, ActionStatusChanged:
		if hasBefore && hasAfter && len(r.Changes()) == 0 {
			errs = append(errs, ValidationError{Field: "state", Message: "no discernible change"})
		}
	}

	for _, state := range []struct {
		field string
		value FieldMap
	}{
		{"before_state", r.BeforeState},
		{"after_state", r.AfterState},
	} {
		if _, err := state.value.Encode(); err != nil {
			errs = append(errs, ValidationError{Field: state.field, Message: "state holds a value that cannot be stored"})
		}
	}

	return errs.Err()
}

// ChangeRecordDetails is a ChangeRecord with its subject and actor resolved for display
type ChangeRecordDetails struct {
	ChangeRecord

	SubjectName    null.String `json:"subject_name"`
	SubjectTag     null.String `json:"subject_tag"`
	ActorFirstName null.String `json:"actor_first_name"`
	ActorLastName  null.String `json:"actor_last_name"`
	ActorEmail     null.String `json:"actor_email"`
}

// ActorDisplayName returns the actor's full name, email, id, or "System"
func (d ChangeRecordDetails) ActorDisplayName() string {
	fullName := strings.TrimSpace(d.ActorFirstName.ValueOrZero() + " " + d.ActorLastName.ValueOrZero())
	switch {
	case fullName != "":
		return fullName
	case d.ActorEmail.ValueOrZero() != "":
		return d.ActorEmail.String
	case !d.IsSystemAction():
		return d.ActorID.String
	default:
		return "System"
	}
}

// SubjectDisplayName returns the subject's name, tag or id
func (d ChangeRecordDetails) SubjectDisplayName() string {
	switch {
	case d.SubjectName.ValueOrZero() != "":
		return d.SubjectName.String
	case d.SubjectTag.ValueOrZero() != "":
		return d.SubjectTag.String
	default:
		return d.SubjectID
	}
}

// DateRange is a coarse time bucket used to filter the audit trail
type DateRange string

const (
	RangeAll   DateRange = "all"
	RangeToday DateRange = "today"
	RangeWeek  DateRange = "week"
	RangeMonth DateRange = "month"
)

// ParseDateRange maps unknown or empty values to RangeAll
func ParseDateRange(s string) DateRange {
	switch DateRange(s) {
	case RangeToday, RangeWeek, RangeMonth:
		return DateRange(s)
	default:
		return RangeAll
	}
}

// Since returns the inclusive lower bound for the range, and false for RangeAll
func (r DateRange) Since(now time.Time) (time.Time, bool) {
	switch r {
	case RangeToday:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), true
	case RangeWeek:
		return now.Add(-7 * 24 * time.Hour), true
	case RangeMonth:
		return now.Add(-30 * 24 * time.Hour), true
	default:
		return time.Time{}, false
	}
}

// ChangeRecordFilter narrows a trail query. Zero values match everything.
type ChangeRecordFilter struct {
	Action Action
	Search string
	Range  DateRange
}

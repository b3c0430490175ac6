// Package ticket defines the maintenance ticket domain and its status
// workflow.
package ticket

// Status is the canonical five-value ticket lifecycle vocabulary. It drives
// the kanban board columns and the quick actions.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusPending    Status = "pending"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

// Statuses lists all statuses in canonical kanban column order.
var Statuses = []Status{
	StatusOpen,
	StatusInProgress,
	StatusPending,
	StatusResolved,
	StatusClosed,
}

// Valid reports whether the status is one of the five known values.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the ticket has left the active workflow. Closed
// tickets offer no quick actions, but a direct status set can still reopen
// them: the workflow recommends, it does not forbid.
func (s Status) IsTerminal() bool {
	return s == StatusClosed
}

// QuickAction is a labeled shortcut for a commonly-needed transition.
type QuickAction struct {
	Label string `json:"label"`
	To    Status `json:"to"`
}

// QuickActions maps each status to its recommended transitions. This is a
// curated subset of a fully-connected graph: every status can always be set
// directly to any of the five values regardless of the current one.
var QuickActions = map[Status][]QuickAction{
	StatusOpen: {
		{Label: "Start Work", To: StatusInProgress},
		{Label: "Set Pending", To: StatusPending},
	},
	StatusInProgress: {
		{Label: "Mark Complete", To: StatusResolved},
		{Label: "Set Pending", To: StatusPending},
	},
	StatusPending: {
		{Label: "Resume Work", To: StatusInProgress},
		{Label: "Mark Complete", To: StatusResolved},
	},
	StatusResolved: {
		{Label: "Close Ticket", To: StatusClosed},
		{Label: "Reopen", To: StatusOpen},
	},
	StatusClosed: {},
}

// QuickActionsFor returns the recommended transitions from the given status.
func QuickActionsFor(s Status) []QuickAction {
	return QuickActions[s]
}

// IsRecommended reports whether moving from one status to another is covered
// by a quick action. A false result never blocks an update.
func (s Status) IsRecommended(target Status) bool {
	for _, action := range QuickActions[s] {
		if action.To == target {
			return true
		}
	}
	return false
}

// ProgressStep is the deprecated seven-value vocabulary the old ticket detail
// view rendered over the same status field. It survives only as a display
// mapping from the canonical statuses.
type ProgressStep string

const (
	StepPending              ProgressStep = "pending"
	StepScheduling           ProgressStep = "scheduling"
	StepWorkDateScheduled    ProgressStep = "work_date_scheduled"
	StepConfirmingCompletion ProgressStep = "confirming_completion"
	StepGettingInvoice       ProgressStep = "getting_invoice"
	StepCompleted            ProgressStep = "completed"
	StepCancelled            ProgressStep = "cancelled"
)

// DisplayStep maps the canonical status onto the legacy progress-step view.
//
// Deprecated: new views should render the canonical status directly.
func (s Status) DisplayStep() ProgressStep {
	switch s {
	case StatusOpen:
		return StepPending
	case StatusPending:
		return StepScheduling
	case StatusInProgress:
		return StepWorkDateScheduled
	case StatusResolved:
		return StepConfirmingCompletion
	case StatusClosed:
		return StepCompleted
	default:
		return StepPending
	}
}

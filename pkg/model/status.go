package model

// Status is the closed task status enumeration. The zero value is not
// valid; unknown inputs normalize to StatusTodo.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusBlocked    Status = "blocked"
)

// statusLabels is the single source of truth for the machine-value to
// display-label bijection. The filter UI surfaces labels, the wire
// carries machine values; keeping one table prevents the two from
// drifting apart.
var statusLabels = []struct {
	Value Status
	Label string
}{
	{StatusTodo, "To Do"},
	{StatusInProgress, "In Progress"},
	{StatusDone, "Done"},
	{StatusBlocked, "Blocked"},
}

// AllStatuses returns every status in display order.
func AllStatuses() []Status {
	out := make([]Status, len(statusLabels))
	for i, row := range statusLabels {
		out[i] = row.Value
	}
	return out
}

// StatusLabels returns every display label in display order.
func StatusLabels() []string {
	out := make([]string, len(statusLabels))
	for i, row := range statusLabels {
		out[i] = row.Label
	}
	return out
}

// Label returns the display label for s, or the raw value for an
// unknown status so broken data stays visible rather than vanishing.
func (s Status) Label() string {
	for _, row := range statusLabels {
		if row.Value == s {
			return row.Label
		}
	}
	return string(s)
}

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	for _, row := range statusLabels {
		if row.Value == s {
			return true
		}
	}
	return false
}

// StatusFromLabel maps a display label back to its machine value.
func StatusFromLabel(label string) (Status, bool) {
	for _, row := range statusLabels {
		if row.Label == label {
			return row.Value, true
		}
	}
	return "", false
}

// NormalizeStatus coerces unknown or empty status values to StatusTodo,
// mirroring the remote store's create-time behavior.
func NormalizeStatus(s Status) Status {
	if s.Valid() {
		return s
	}
	return StatusTodo
}

// NextStatus returns the status after s in display order, wrapping
// around. Used by the quick status-cycle key.
func NextStatus(s Status) Status {
	for i, row := range statusLabels {
		if row.Value == s {
			return statusLabels[(i+1)%len(statusLabels)].Value
		}
	}
	return StatusTodo
}

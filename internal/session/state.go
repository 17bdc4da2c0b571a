package session

// State is the generation lifecycle of the drafting session.
//
// Idle → Validating → AwaitingModel → Normalizing → Ready, with Failed
// reachable from the model call. A failed validation is not a failure
// state; the session returns to Idle with the field errors surfaced.
type State int

const (
	Idle State = iota
	Validating
	AwaitingModel
	Normalizing
	Ready
	Failed
)

// String returns the display name for each state.
func (s State) String() string {
	names := []string{"Idle", "Validating", "AwaitingModel", "Normalizing", "Ready", "Failed"}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

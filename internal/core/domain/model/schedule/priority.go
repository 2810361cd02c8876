package schedule

// Priority represents the urgency level of a delivery schedule.
// The numeric values are part of the external contract: callers submit and
// receive priorities as the integers 1 through 4, and the same value doubles
// as the priority's scheduling weight.
//
// Priority is a value object that validates membership in the closed set
// and provides string representations for persistence and display.
type Priority int

const (
	// PriorityLow is routine work with no urgency.
	PriorityLow Priority = 1

	// PriorityMedium is the default urgency for scheduled work.
	PriorityMedium Priority = 2

	// PriorityHigh is urgent work that should preempt routine schedules.
	PriorityHigh Priority = 3

	// PriorityUrgent is the highest urgency level.
	PriorityUrgent Priority = 4
)

// getPriorityStrings returns a map of Priority values to their string representations.
func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityLow:    "Low",
		PriorityMedium: "Medium",
		PriorityHigh:   "High",
		PriorityUrgent: "Urgent",
	}
}

// Validate checks if the Priority value belongs to the closed set {1,2,3,4}.
//
// Returns:
//   - nil if the priority is valid
//   - ErrInvalidPriority (rejection code 402) otherwise
//
// Every schedule creation and priority update must pass this check; values
// such as 0, 5, or 10 are rejected with no state change.
func (p Priority) Validate() error {
	if _, ok := getPriorityStrings()[p]; !ok {
		return ErrInvalidPriority
	}
	return nil
}

// Weight returns the scheduling weight of the priority. The taxonomy maps
// each level to its own numeric value, so the weight of Urgent is 4.
func (p Priority) Weight() int {
	return int(p)
}

// String returns the human-readable name of the priority.
//
// Returns "Unknown" for values outside the closed set. This method implements
// the fmt.Stringer interface and is safe to call on any Priority value.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

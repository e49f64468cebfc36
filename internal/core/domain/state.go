package domain

// CategoryUnrunnable is the category of a test that cannot be reconnected.
const CategoryUnrunnable = "unrunnable"

// Unrunnable is the terminal state of a test whose previous results cannot be found.
type Unrunnable struct {
	BriefText string
	FreeText  string
}

// NewUnrunnable creates an Unrunnable state.
func NewUnrunnable(brief, free string) *Unrunnable {
	return &Unrunnable{BriefText: brief, FreeText: free}
}

// Category returns CategoryUnrunnable.
func (u *Unrunnable) Category() string {
	return CategoryUnrunnable
}

// HasResults is always false.
func (u *Unrunnable) HasResults() bool {
	return false
}

// ExecutionHosts is always empty.
func (u *Unrunnable) ExecutionHosts() []string {
	return nil
}

// ClearLifecycleChange does nothing, an unrunnable test is never in progress.
func (u *Unrunnable) ClearLifecycleChange() {}

// ProgressText describes a reconnected outcome for progress output. An empty category
// means the test's results were copied and will be recomputed.
func ProgressText(category string) string {
	if category == "" {
		return " (recomputing)"
	}
	return " (state " + category + ")"
}

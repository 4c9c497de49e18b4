package delivery

type State int

const (
	Planning State = iota
	Executing
	Replanning
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Planning:
		return "planning"
	case Executing:
		return "executing"
	case Replanning:
		return "replanning"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

func (s State) Terminal() bool {
	return s == Succeeded || s == Failed
}

type FailureReason string

const (
	ReasonNone                  FailureReason = ""
	ReasonNoInitialPath         FailureReason = "no_initial_path"
	ReasonReplanFailed          FailureReason = "replan_failed"
	ReasonReplanBudgetExhausted FailureReason = "replan_budget_exhausted"
	ReasonStepBudgetExhausted   FailureReason = "step_budget_exhausted"
)

package domain

import "time"

// DefaultAssetsCacheLimit is the byte budget applied to the asset working cache after each compile.
const DefaultAssetsCacheLimit Budget = 52428800

// Budget is a byte limit for a cached slot.
type Budget int64

// Validate rejects negative budgets.
func (b Budget) Validate() error {
	if b < 0 {
		return ErrInvalidBudget
	}
	return nil
}

// PrecompileState is a state of the asset precompile state machine.
type PrecompileState string

const (
	// StateNotStarted is the initial state.
	StateNotStarted PrecompileState = "not_started"
	// StateChecking looks for out-of-band compiled output and task availability.
	StateChecking PrecompileState = "checking"
	// StateSkipped means no compile was needed or possible.
	StateSkipped PrecompileState = "skipped"
	// StateCompiling means cache slots are loaded and the compile task is running.
	StateCompiling PrecompileState = "compiling"
	// StateCaching means the compile succeeded and slots are being trimmed and stored.
	StateCaching PrecompileState = "caching"
	// StateAborted means the compile failed or was cancelled.
	StateAborted PrecompileState = "aborted"
	// StateDone is the terminal state.
	StateDone PrecompileState = "done"
)

// Outcome classifies a finished precompile run.
type Outcome string

const (
	// OutcomeSkipped indicates that the compile step did not run.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeSucceeded indicates that the compile task ran and succeeded.
	OutcomeSucceeded Outcome = "succeeded"
	// OutcomeFailed indicates that the compile task failed or was cancelled.
	OutcomeFailed Outcome = "failed"
)

// SkipReason explains an OutcomeSkipped result.
type SkipReason string

const (
	// SkipNone is used for runs that were not skipped.
	SkipNone SkipReason = ""
	// SkipManifestPresent means assets were compiled before the build started.
	SkipManifestPresent SkipReason = "manifest_present"
	// SkipTaskUndefined means the project does not define the compile task.
	SkipTaskUndefined SkipReason = "task_undefined"
)

// CompileResult is produced once per precompile run.
type CompileResult struct {
	Outcome     Outcome
	SkipReason  SkipReason
	Manifest    string
	Duration    time.Duration
	Output      string
	Transitions []PrecompileState
}

// TaskResult is what the external task runner reports for one invocation.
type TaskResult struct {
	Defined   bool
	Succeeded bool
	Duration  time.Duration
	Output    string
}

// PrecompilePlan describes what a framework variant needs from the orchestrator.
// Slots are loaded before the compile task and stored, in order, after it succeeds.
// EvictSlot, if set, names the slot trimmed to Budget before storing.
// Env is added to the environment of both tasks.
type PrecompilePlan struct {
	ManifestGlob string
	CompileTask  string
	CleanTask    string
	Slots        []Slot
	EvictSlot    string
	Budget       Budget
	Env          map[string]string
}

// Slot returns the plan slot with the given name.
func (p PrecompilePlan) Slot(name string) (Slot, bool) {
	for _, s := range p.Slots {
		if s.Name == name {
			return s, true
		}
	}
	return Slot{}, false
}

// Validate checks slot definitions and the budget.
func (p PrecompilePlan) Validate() error {
	if err := p.Budget.Validate(); err != nil {
		return err
	}
	for _, s := range p.Slots {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	if p.EvictSlot != "" {
		if _, ok := p.Slot(p.EvictSlot); !ok {
			return ErrSlotNotFound
		}
	}
	return nil
}

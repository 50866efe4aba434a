package core

// Phase is a state of the cycle controller.
type Phase string

const (
	PhaseValidating   Phase = "validating"
	PhaseInitializing Phase = "initializing"
	PhaseAdvancing    Phase = "advancing"
	PhaseRetrying     Phase = "retrying"
	PhaseReloading    Phase = "reloading"
	PhaseSleeping     Phase = "sleeping"
	PhaseTerminated   Phase = "terminated"
)

func (p Phase) String() string {
	return string(p)
}

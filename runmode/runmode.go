package runmode

// RunMode decides what happens to a finished git command.
type RunMode int

const (
	Normal RunMode = iota
	DryRun
	Copy
	DryRunAndCopy
)

func (m RunMode) String() string {
	switch m {
	case Normal:
		return "normal"
	case DryRun:
		return "dry-run"
	case Copy:
		return "copy"
	case DryRunAndCopy:
		return "dry-run-and-copy"
	}
	return "unknown"
}

// Flags are the -x and -d command line flags of a branch or commit action.
type Flags struct {
	Copy   bool
	DryRun bool
}

func Resolve(flags Flags) RunMode {
	switch {
	case flags.Copy && flags.DryRun:
		return DryRunAndCopy
	case flags.Copy:
		return Copy
	case flags.DryRun:
		return DryRun
	default:
		return Normal
	}
}

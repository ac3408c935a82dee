package doctor

// Status classifies a single check outcome.
type Status string

const (
	// StatusOK means the check passed.
	StatusOK Status = "ok"
	// StatusWarn means the check found something worth knowing that does
	// not block any command.
	StatusWarn Status = "warn"
	// StatusFail means a command will not work until this is fixed.
	StatusFail Status = "fail"
)

// Result is the outcome of one environment check.
type Result struct {
	Name   string // short check name, e.g. "git", "origin remote"
	Status Status
	Detail string // what was found
	Hint   string // how to fix a warn/fail, empty when none applies
}

// Stats counts results by status.
type Stats struct {
	OK   int
	Warn int
	Fail int
}

func (s *Stats) add(r Result) {
	switch r.Status {
	case StatusOK:
		s.OK++
	case StatusWarn:
		s.Warn++
	case StatusFail:
		s.Fail++
	}
}

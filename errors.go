package spatial

// ErrorKind classifies a failure raised by this package.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindInvalidArgument
	KindOutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case KindRuntime:
		return "runtime"
	case KindInvalidArgument:
		return "invalid argument"
	case KindOutOfRange:
		return "out of range"
	}
	return "unknown"
}

// Error is the failure value raised (via panic) by validated-profile checks.
// Operations raise before mutating any state, so recovering from one leaves
// the grid consistent.
type Error struct {
	Kind ErrorKind
	Op   string
	Msg  string
}

func (e *Error) Error() string {
	return e.Op + ": " + e.Msg + " (" + e.Kind.String() + ")"
}

func raiseInvalidArgument(op, msg string) {
	panic(&Error{Kind: KindInvalidArgument, Op: op, Msg: msg})
}

func raiseOutOfRange(op, msg string) {
	panic(&Error{Kind: KindOutOfRange, Op: op, Msg: msg})
}

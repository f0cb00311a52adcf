package ping

import (
	"errors"
	"net/http"
)

// ErrInvalidUUID is returned by New when the identifier is not a UUID.
var ErrInvalidUUID = errors.New("invalid UUID")

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Signal selects which ping endpoint a request goes to.
type Signal string

const (
	SignalSuccess Signal = ""
	SignalFail    Signal = "/fail"
	SignalStart   Signal = "/start"
)

func (s Signal) String() string {
	switch s {
	case SignalSuccess:
		return "success"
	case SignalFail:
		return "fail"
	case SignalStart:
		return "start"
	}
	return "unknown"
}

// ParseSignal maps "success", "fail" and "start" to a Signal.
func ParseSignal(name string) (Signal, bool) {
	switch name {
	case "success", "":
		return SignalSuccess, true
	case "fail", "failure":
		return SignalFail, true
	case "start":
		return SignalStart, true
	}
	return "", false
}

// Outcome classifies a ping. Only Acknowledged counts as success.
type Outcome int

const (
	Acknowledged Outcome = iota
	Rejected             // the service answered with a status other than 200
	Unreachable          // the request never produced a response
)

func (o Outcome) String() string {
	switch o {
	case Acknowledged:
		return "acknowledged"
	case Rejected:
		return "rejected"
	case Unreachable:
		return "unreachable"
	}
	return "unknown"
}

// Result is the outcome of a single ping.
//
// StatusCode is 0 and Err is set when Outcome is Unreachable.
type Result struct {
	Signal     Signal
	URL        string
	Outcome    Outcome
	StatusCode int
	LatencyMS  float64
	Err        error
}

// OK reports whether the service acknowledged the ping with HTTP 200.
func (r Result) OK() bool {
	return r.Outcome == Acknowledged
}

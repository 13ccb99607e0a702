package types

import "errors"

// Validation precondition errors. These are raised before any request is
// sent to the admin API.
var (
	ErrMissingID     = errors.New("no audiogram id given")
	ErrMissingName   = errors.New("no latin name given")
	ErrMissingDOI    = errors.New("no DOI given")
	ErrMissingField  = errors.New("please fill all fields")
	ErrNoDataPoints  = errors.New("no data points, enter the id of the audiogram to edit and click on edit")
	ErrInvalidNumber = errors.New("invalid number")
	ErrInvalidOption = errors.New("invalid option")

	ErrAlreadyPersisted = errors.New("record already persisted")
)

// Remote access errors. Gateways wrap one of these in a gateway.Failure so
// callers can tell why an operation failed with errors.Is.
var (
	ErrRequest  = errors.New("request failed")
	ErrRejected = errors.New("rejected by server")
	ErrDecode   = errors.New("undecodable response")
	ErrNotFound = errors.New("record not found")
)

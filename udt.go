// Package udt holds the pieces of a UDT-style reliable transport shared by
// the connection layer: the control packet codec lives in packet, the ACK and
// timing windows in window. This package only defines the connection-level
// failure signals; they are produced and consumed by the connection state
// machine and are opaque to the codec and window layers.
package udt

import "errors"

// Connection setup failures.
var (
	ErrConnectionTimeout  = errors.New("connection setup error: connection time out")
	ErrConnectionRejected = errors.New("connection setup error: connection rejected")
	ErrSocketUnavailable  = errors.New("connection setup error: unable to create/configure UDP socket")
	ErrSecurityAbort      = errors.New("connection setup error: abort for security reasons")
)

// Failures of an established connection.
var (
	ErrConnectionFailure  = errors.New("connection failure")
	ErrConnectionBroken   = errors.New("connection was broken")
	ErrConnectionNotExist = errors.New("connection does not exist")
)

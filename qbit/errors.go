package qbit

import (
	"github.com/pkg/errors"
)

// ErrAuthentication means the daemon refused the session: bad credentials,
// an expired session cookie, or an IP ban.
var ErrAuthentication = errors.New("authentication failed")

package tracker

import (
	"regexp"

	"github.com/pkg/errors"
)

// ErrUntrustedRemoteVersion means the daemon reported a version string that
// does not look like a release version. Scans refuse to proceed against such
// an endpoint.
var ErrUntrustedRemoteVersion = errors.New("untrusted remote version")

// remoteVersionRe accepts dotted numeric versions with an optional leading
// "v": "1.2.3", "v1.2.3", "v5".
var remoteVersionRe = regexp.MustCompile(`^v?\d+(\.\d+)*$`)

// ValidateRemoteVersion gates a scan on the daemon's reported version string.
func ValidateRemoteVersion(version string) error {
	if !remoteVersionRe.MatchString(version) {
		return errors.Wrapf(ErrUntrustedRemoteVersion, "version %q", version)
	}

	return nil
}

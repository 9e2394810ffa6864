package history

import (
	"errors"
	"fmt"

	"golang.org/x/mod/semver"
)

// FormatVersion is the on-disk history format version. It is stamped into
// every new database and checked on open.
const FormatVersion = "v1.0.0"

// ErrIncompatibleFormat reports a database written in a format this build
// cannot read.
var ErrIncompatibleFormat = errors.New("incompatible history format")

// IsCompatibleFormat checks if a stored database format is readable by this build.
// Compatibility rules:
// - Major version must match exactly.
// - Minor and patch versions can differ.
func IsCompatibleFormat(storedVersion, currentVersion string) (bool, error) {
	if !semver.IsValid(storedVersion) {
		return false, fmt.Errorf("invalid stored format version: %s", storedVersion)
	}
	if !semver.IsValid(currentVersion) {
		return false, fmt.Errorf("invalid current format version: %s", currentVersion)
	}

	return semver.Major(storedVersion) == semver.Major(currentVersion), nil
}

// CompatibilityError returns a user-friendly message for an incompatible database.
func CompatibilityError(storedVersion, currentVersion string) string {
	return fmt.Sprintf(
		"database format %s cannot be read by this build (format %s). Required version: %s.x.x",
		storedVersion, currentVersion, semver.Major(currentVersion),
	)
}

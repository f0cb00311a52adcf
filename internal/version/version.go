package version

// Name is the library name sent in the default User-Agent header.
const Name = "healthchecks-go"

// Version is overridden at build time with
// -ldflags "-X github.com/hamed0406/healthchecks/internal/version.Version=..."
var Version = "0.3.0"

// UserAgent returns the default User-Agent, e.g. "healthchecks-go/0.3.0".
func UserAgent() string {
	return Name + "/" + Version
}

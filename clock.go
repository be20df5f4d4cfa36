package oauth1

import "time"

// nowUnix returns the current wall-clock time as Unix seconds, the
// production default for oauth_timestamp when Options.timestamp is unset.
// Tests pin the timestamp via Options.Timestamp instead of stubbing this
// seam, since Go has no ambient mutable "current time" to inject without
// introducing a package-level clock interface this otherwise synchronous,
// allocation-free path does not need.
func nowUnix() uint64 {
	return uint64(time.Now().Unix())
}

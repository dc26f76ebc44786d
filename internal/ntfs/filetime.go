package ntfs

import "time"

// filetimeUnixDiffSeconds is the number of seconds between the FILETIME
// epoch (1601-01-01 00:00:00 UTC) and the Unix epoch.
const filetimeUnixDiffSeconds = 11644473600

// decodeFiletime converts a raw Windows FILETIME (100-ns intervals since
// 1601-01-01 UTC) to a Filetime. A value of 0, or one that would fall
// before the Unix epoch, yields an invalid Filetime rather than a
// spurious 1970 timestamp.
func decodeFiletime(v uint64) Filetime {
	if v == 0 {
		return Filetime{}
	}

	seconds := int64(v / 10_000_000)
	if seconds < filetimeUnixDiffSeconds {
		return Filetime{}
	}

	unixSeconds := seconds - filetimeUnixDiffSeconds
	nanos := int64(v%10_000_000) * 100

	return Filetime{Time: time.Unix(unixSeconds, nanos).UTC(), Valid: true}
}

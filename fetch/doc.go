// Package fetch obtains raw graph dataset archives: HTTP download and ZIP
// extraction.
//
// What
//
//   - Download saves the body of a URL to <destdir>/<filename>. The
//     destination directory defaults to a fresh temporary directory and
//     the filename to the last path segment of the URL.
//   - Unzip extracts an archive into <parent>/<name>, where name is the
//     archive's filename up to its first dot — "ca-netscience.zip"
//     becomes "ca-netscience/". Entries escaping the destination are
//     rejected.
//
// Both operations take a context and are plain synchronous calls: they
// finish or fail deterministically, bounded by input size, with no shared
// state across invocations.
//
// Errors
//
//	ErrExists      - destination present and no-clobber was requested.
//	ErrBadFilename - an explicit filename containing path separators.
//	ErrHTTPStatus  - a non-2xx response.
//	ErrUnsafePath  - a ZIP entry escaping the extraction directory.
//	IO failures wrap the underlying os errors.
package fetch

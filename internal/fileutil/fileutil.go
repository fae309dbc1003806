// Package fileutil holds file permission modes shared by commands that write files.
package fileutil

import "os"

// OwnerReadWrite is the mode for files that may hold credentials or other
// local-only data, such as a freshly initialized configuration.
const OwnerReadWrite os.FileMode = 0o600

// ReadableByAll is the mode for generated project files read by build tools.
const ReadableByAll os.FileMode = 0o644

// DirMode is the mode for directories created for generated output.
const DirMode os.FileMode = 0o755

// Package fileutil holds the file permission modes used when writing files.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for written documents and
// configuration files (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// OwnerDir is the directory permission mode for directories created to hold
// documents.
const OwnerDir os.FileMode = 0o750

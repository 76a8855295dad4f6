// Package platform papers over file-system differences between Unix and
// Windows so callers can state the permissions they want and move on.
package platform

import (
	"os"
	"runtime"
)

// Chmod applies mode to path. Directories created with os.MkdirAll get their
// mode filtered through the umask, so callers use this to settle the final
// bits afterwards. On Windows, which has no Unix permission bits, it is a
// no-op and reports success.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

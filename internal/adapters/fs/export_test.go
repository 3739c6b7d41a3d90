package fs

// SetReadDirNamesForTest replaces the directory listing used by the walk and
// returns a function restoring the original.
func SetReadDirNamesForTest(fn func(path string) ([]string, error)) (restore func()) {
	orig := readDirNames
	readDirNames = fn
	return func() { readDirNames = orig }
}

// ReadDirNamesForTest returns the directory listing currently in use.
func ReadDirNamesForTest() func(path string) ([]string, error) {
	return readDirNames
}

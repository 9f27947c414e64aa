package hook

import "os"

// System abstracts the filesystem operations the purge routine needs. Only
// deletion is on the interface so tests can assert that non-purge actions
// perform no filesystem work at all.
type System interface {
	Remove(name string) error
	RemoveAll(path string) error
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// Remove removes the named file or empty directory.
func (RealSystem) Remove(name string) error {
	return os.Remove(name)
}

// RemoveAll removes path and any children it contains.
func (RealSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

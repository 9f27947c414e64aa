// Package paths holds the fixed filesystem layout the purge routine targets.
package paths

import (
	"path/filepath"

	"github.com/saltstack/salt-postrm/internal/variant"
)

// Layout names the directories Salt leaves behind after its primary files
// are removed. The production layout is fixed; Under exists so tests can
// stage a throwaway tree.
type Layout struct {
	Etc   string
	Log   string
	Cache string
	Run   string
}

// Default returns the layout the hook operates on in production.
func Default() Layout {
	return Layout{
		Etc:   "/etc/salt",
		Log:   "/var/log/salt",
		Cache: "/var/cache/salt",
		Run:   "/var/run/salt",
	}
}

// Under rebases the default layout beneath root.
func Under(root string) Layout {
	return Layout{
		Etc:   filepath.Join(root, "etc", "salt"),
		Log:   filepath.Join(root, "var", "log", "salt"),
		Cache: filepath.Join(root, "var", "cache", "salt"),
		Run:   filepath.Join(root, "var", "run", "salt"),
	}
}

// ConfigFile returns the variant's config file under Etc.
func (l Layout) ConfigFile(v variant.Variant) string {
	return filepath.Join(l.Etc, v.String())
}

// LogFile returns the variant's log file under Log.
func (l Layout) LogFile(v variant.Variant) string {
	return filepath.Join(l.Log, v.String())
}

// CommonDirs lists the directories removed when purging the common package,
// in removal order.
func (l Layout) CommonDirs() []string {
	return []string{l.Cache, l.Run, l.Etc, l.Log}
}

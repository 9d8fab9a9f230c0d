package git

import (
	"sync"
	"syscall"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"go.uber.org/zap"
)

var errNotDir = syscall.ENOTDIR

var (
	globalOnce     sync.Once
	globalPatterns []gitignore.Pattern
)

// GlobalPatterns returns the user's core.excludesfile rules. They are read once per process;
// a missing or unreadable configuration yields no rules.
func GlobalPatterns(logger *zap.Logger) []gitignore.Pattern {
	globalOnce.Do(func() {
		ps, err := gitignore.LoadGlobalPatterns(osfs.New("/"))
		if err != nil {
			if logger != nil {
				logger.Debug("global git excludes unavailable", zap.Error(err))
			}
			return
		}
		globalPatterns = ps
	})
	return globalPatterns
}

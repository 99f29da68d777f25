package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/levante-framework/levante-surveys-sub001/internal/core/domain"
	"github.com/levante-framework/levante-surveys-sub001/internal/core/ports/driving"
	"github.com/levante-framework/levante-surveys-sub001/internal/logger"
)

// Ensure Pruner implements the interface.
var _ driving.Pruner = (*Pruner)(nil)

// Pruner rotates the timestamped backups the pull command writes,
// keeping the newest N per artifact.
type Pruner struct {
	cfg domain.PruneConfig
}

// NewPruner creates a pruner.
func NewPruner(cfg domain.PruneConfig) *Pruner {
	return &Pruner{cfg: cfg}
}

// Prune removes old backups. Files are grouped by artifact prefix;
// within a group the timestamp in the name orders them, newest kept
// first. A missing backup directory is not an error.
func (p *Pruner) Prune(_ context.Context) ([]driving.PruneResult, error) {
	keep := p.cfg.Keep
	if keep < 1 {
		keep = 1
	}

	entries, err := os.ReadDir(p.cfg.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", p.cfg.Dir, err)
	}

	groups := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".bak") {
			continue
		}
		prefix, ok := backupPrefix(entry.Name())
		if !ok {
			continue
		}
		groups[prefix] = append(groups[prefix], entry.Name())
	}

	prefixes := make([]string, 0, len(groups))
	for prefix := range groups {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	var results []driving.PruneResult
	for _, prefix := range prefixes {
		names := groups[prefix]
		// The timestamp format sorts lexicographically, newest last.
		sort.Sort(sort.Reverse(sort.StringSlice(names)))

		removed := 0
		for _, name := range names[min(keep, len(names)):] {
			path := filepath.Join(p.cfg.Dir, name)
			if err := os.Remove(path); err != nil {
				return results, fmt.Errorf("remove %s: %w", path, err)
			}
			logger.Debug("pruned %s", path)
			removed++
		}
		results = append(results, driving.PruneResult{
			Prefix:  prefix,
			Kept:    min(keep, len(names)),
			Removed: removed,
		})
	}
	return results, nil
}

// backupPrefix strips the ".<timestamp>.bak" suffix the puller appends,
// returning the artifact file name the backup belongs to.
func backupPrefix(name string) (string, bool) {
	trimmed := strings.TrimSuffix(name, ".bak")
	dot := strings.LastIndex(trimmed, ".")
	if dot <= 0 {
		return "", false
	}
	return trimmed[:dot], true
}

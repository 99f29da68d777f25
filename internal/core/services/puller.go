package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/levante-framework/levante-surveys-sub001/internal/core/domain"
	"github.com/levante-framework/levante-surveys-sub001/internal/core/ports/driven"
	"github.com/levante-framework/levante-surveys-sub001/internal/core/ports/driving"
	"github.com/levante-framework/levante-surveys-sub001/internal/logger"
)

// Ensure Puller implements the interface.
var _ driving.Puller = (*Puller)(nil)

// backupTimeFormat names backup files so the newest sorts last. The
// pruner relies on this layout: <base>.<timestamp>.bak.
const backupTimeFormat = "20060102-150405"

// Puller downloads the configured translation artifacts, backing up the
// previous copy of each before replacing it.
type Puller struct {
	cfg  domain.PullConfig
	http driven.TranslationSource
	repo driven.TranslationSource
	now  func() time.Time
}

// NewPuller creates a puller. The repo source may be nil when no GitHub
// repository is configured; artifacts without a URL then fail.
func NewPuller(cfg domain.PullConfig, httpSource, repoSource driven.TranslationSource) *Puller {
	return &Puller{
		cfg:  cfg,
		http: httpSource,
		repo: repoSource,
		now:  time.Now,
	}
}

// Pull fetches every configured artifact in declaration order. The
// progress callback, when non-nil, is invoked before and after each
// artifact. The first failure aborts the run.
func (p *Puller) Pull(ctx context.Context, progress func(driving.PullEvent)) error {
	total := len(p.cfg.Artifacts)
	if total == 0 {
		logger.Warn("pull: no artifacts configured")
		return nil
	}

	emit := func(ev driving.PullEvent) {
		if progress != nil {
			progress(ev)
		}
	}

	for i, artifact := range p.cfg.Artifacts {
		emit(driving.PullEvent{Name: artifact.Name, Index: i, Total: total})

		data, err := p.fetch(ctx, artifact)
		if err != nil {
			err = fmt.Errorf("fetch %s: %w", artifact.Name, err)
			emit(driving.PullEvent{Name: artifact.Name, Index: i, Total: total, Err: err})
			return err
		}

		if err := p.backup(artifact.Out); err != nil {
			emit(driving.PullEvent{Name: artifact.Name, Index: i, Total: total, Err: err})
			return err
		}

		if err := writeAtomic(artifact.Out, data); err != nil {
			err = fmt.Errorf("write %s: %w", artifact.Out, err)
			emit(driving.PullEvent{Name: artifact.Name, Index: i, Total: total, Err: err})
			return err
		}

		logger.Debug("pulled %s (%d bytes) -> %s", artifact.Name, len(data), artifact.Out)
		emit(driving.PullEvent{Name: artifact.Name, Index: i, Total: total, Done: true, Bytes: len(data)})
	}
	return nil
}

func (p *Puller) fetch(ctx context.Context, artifact domain.Artifact) ([]byte, error) {
	if artifact.URL != "" {
		if p.http == nil {
			return nil, domain.ErrSourceUnavailable
		}
		return p.http.Fetch(ctx, artifact)
	}
	if p.repo == nil {
		return nil, fmt.Errorf("no repository configured for %s: %w", artifact.Name, domain.ErrSourceUnavailable)
	}
	return p.repo.Fetch(ctx, artifact)
}

// backup copies the current artifact into the backup directory with a
// timestamped name before it gets replaced.
func (p *Puller) backup(path string) error {
	if p.cfg.BackupDir == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("backup read %s: %w", path, err)
	}
	if err := os.MkdirAll(p.cfg.BackupDir, 0o755); err != nil {
		return fmt.Errorf("backup dir: %w", err)
	}

	name := fmt.Sprintf("%s.%s.bak", filepath.Base(path), p.now().Format(backupTimeFormat))
	dst := filepath.Join(p.cfg.BackupDir, name)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("backup write %s: %w", dst, err)
	}
	logger.Debug("backed up %s -> %s", path, dst)
	return nil
}

// writeAtomic writes through a temp file in the destination directory
// and renames it into place.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.New().String()[:8]))
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

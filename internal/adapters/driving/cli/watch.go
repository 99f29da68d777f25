package cli

import (
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/levante-framework/levante-surveys-sub001/internal/logger"
)

// debounceDelay coalesces the bursts of events editors emit per save.
const debounceDelay = 250 * time.Millisecond

// watchAndValidate re-runs the analysis whenever one of the watched
// files changes. Watch mode never fails on issues; it reports them and
// keeps watching until interrupted.
func watchAndValidate(cmd *cobra.Command, paths []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch parent directories: editors replace files on save, which
	// drops watches placed on the files themselves.
	watched := make(map[string]bool, len(paths))
	for _, path := range paths {
		dir := filepath.Dir(path)
		if watched[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return err
		}
		watched[dir] = true
	}

	targets := make(map[string]bool, len(paths))
	for _, path := range paths {
		targets[filepath.Clean(path)] = true
	}

	if _, err := analyse(cmd, paths, validateJSON); err != nil {
		cmd.PrintErrln(err)
	}
	cmd.Println("watching for changes, press Ctrl-C to stop")

	var timer *time.Timer
	rerun := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !targets[filepath.Clean(event.Name)] {
				continue
			}
			logger.Debug("watch: %s", event)
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDelay, func() {
				select {
				case rerun <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmd.PrintErrln("watch error:", err)
		case <-rerun:
			if _, err := analyse(cmd, paths, validateJSON); err != nil {
				cmd.PrintErrln(err)
			}
		}
	}
}

package driving

import "context"

// PullEvent reports progress of one artifact during a pull.
type PullEvent struct {
	// Name identifies the artifact.
	Name string

	// Index and Total position the artifact within the run.
	Index int
	Total int

	// Done is true once the artifact has been written.
	Done bool

	// Bytes is the artifact size once fetched.
	Bytes int

	// Err is set when fetching or writing the artifact failed.
	Err error
}

// Puller downloads the configured translation artifacts.
type Puller interface {
	// Pull fetches every configured artifact, backing up existing files
	// first. The progress callback, when non-nil, is invoked from the
	// pulling goroutine before and after each artifact.
	Pull(ctx context.Context, progress func(PullEvent)) error
}

// SplitResult describes one CSV produced by the split command.
type SplitResult struct {
	// Group is the value of the split column.
	Group string

	// File is the path written.
	File string

	// Rows is the number of data rows, excluding the header.
	Rows int
}

// Splitter splits a combined translation CSV into per-survey files.
type Splitter interface {
	Split(ctx context.Context, combinedPath string) ([]SplitResult, error)
}

// PruneResult describes backup rotation for one artifact prefix.
type PruneResult struct {
	// Prefix groups backups belonging to one artifact.
	Prefix string

	// Kept and Removed count backup files.
	Kept    int
	Removed int
}

// Pruner removes old backups, keeping the newest N per artifact.
type Pruner interface {
	Prune(ctx context.Context) ([]PruneResult, error)
}

// Deployer publishes the preview site via the configured external command.
type Deployer interface {
	Deploy(ctx context.Context) error
}

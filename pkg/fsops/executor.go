package fsops

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/stromschlag/pkg/errors"
	"github.com/arthur-debert/stromschlag/pkg/logging"
)

// Executor executes stromschlag operations using synthfs
type Executor struct {
	logger     zerolog.Logger
	dryRun     bool
	filesystem synthfs.FileSystem
}

// NewExecutor creates a new synthfs-based executor
func NewExecutor(dryRun bool) *Executor {
	return &Executor{
		logger:     logging.GetLogger("fsops"),
		dryRun:     dryRun,
		filesystem: filesystem.NewOSFileSystem("/"), // Use root filesystem
	}
}

// DryRun reports whether the executor only logs what it would do.
func (e *Executor) DryRun() bool {
	return e.dryRun
}

// Execute runs the operations as a single synthfs pipeline. Re-running
// a pack export overwrites previous output, so existing regular files
// at write/copy targets are removed first (synthfs validation would
// otherwise reject them).
func (e *Executor) Execute(ops []Operation) error {
	if len(ops) == 0 {
		return nil
	}

	if e.dryRun {
		e.logger.Info().Msg("Dry run mode - operations would be executed:")
		for _, op := range ops {
			e.logOperation(op)
		}
		return nil
	}

	// Re-running against an existing tree is the common case: drop
	// directory creations that are already satisfied and clear files
	// that are about to be replaced.
	pending := make([]Operation, 0, len(ops))
	for _, op := range ops {
		switch op.Type {
		case OperationCreateDir:
			if info, err := os.Stat(op.Target); err == nil && info.IsDir() {
				continue
			}
		case OperationWriteFile, OperationCopyFile:
			if info, err := os.Lstat(op.Target); err == nil && !info.IsDir() {
				e.logger.Debug().
					Str("target", op.Target).
					Msg("Removing existing file to allow overwrite")
				if err := os.Remove(op.Target); err != nil {
					e.logger.Warn().
						Err(err).
						Str("target", op.Target).
						Msg("Failed to remove existing file")
				}
			}
		}
		pending = append(pending, op)
	}
	if len(pending) == 0 {
		return nil
	}

	synthOps := make([]synthfs.Operation, 0, len(pending))
	for _, op := range pending {
		synthOp, err := e.convert(op)
		if err != nil {
			return err
		}
		synthOps = append(synthOps, synthOp)
	}

	pipeline := synthfs.NewMemPipeline()
	for _, op := range synthOps {
		if err := pipeline.Add(op); err != nil {
			return errors.Wrap(err, errors.ErrInternal,
				"failed to add operation to pipeline")
		}
	}

	ctx := context.Background()
	executor := synthfs.NewExecutor()

	e.logger.Debug().Int("operationCount", len(synthOps)).Msg("Executing operations")

	result := executor.Run(ctx, pipeline, e.filesystem)
	if result.GetError() != nil {
		e.logger.Error().Err(result.GetError()).Msg("Pipeline execution failed")
		return errors.Wrap(result.GetError(), errors.ErrFileWrite,
			"failed to execute filesystem operations")
	}

	return nil
}

// convert translates one stromschlag operation into a synthfs operation
func (e *Executor) convert(op Operation) (synthfs.Operation, error) {
	switch op.Type {
	case OperationCreateDir:
		return e.convertCreateDir(op)
	case OperationWriteFile:
		return e.convertWriteFile(op)
	case OperationCopyFile:
		return e.convertCopyFile(op)
	default:
		return nil, errors.Newf(errors.ErrInternal, "unknown operation type: %s", op.Type)
	}
}

// rootRelative converts a path to the "/"-relative form synthfs
// expects. Relative paths are resolved against the working directory
// first, so "build/my-pack" targets work the same as absolute ones.
func rootRelative(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert path: %s", path)
	}
	rel, err := filepath.Rel("/", abs)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert path: %s", path)
	}
	return rel, nil
}

func (e *Executor) convertCreateDir(op Operation) (synthfs.Operation, error) {
	if op.Target == "" {
		return nil, errors.New(errors.ErrInvalidInput,
			"create directory operation requires target")
	}

	relPath, err := rootRelative(op.Target)
	if err != nil {
		return nil, err
	}

	opID := core.OperationID(fmt.Sprintf("create-dir-%s", op.Target))
	createOp := operations.NewCreateDirectoryOperation(opID, relPath)
	createOp.SetItem(&directoryItem{
		path: relPath,
		mode: 0755,
	})

	return synthfs.NewOperationsPackageAdapter(createOp), nil
}

func (e *Executor) convertWriteFile(op Operation) (synthfs.Operation, error) {
	if op.Target == "" {
		return nil, errors.New(errors.ErrInvalidInput,
			"write file operation requires target")
	}

	relPath, err := rootRelative(op.Target)
	if err != nil {
		return nil, err
	}

	opID := core.OperationID(fmt.Sprintf("write-file-%s", op.Target))
	createOp := operations.NewCreateFileOperation(opID, relPath)
	createOp.SetItem(&fileItem{
		path:    relPath,
		content: op.Content,
		mode:    0644,
	})

	return synthfs.NewOperationsPackageAdapter(createOp), nil
}

func (e *Executor) convertCopyFile(op Operation) (synthfs.Operation, error) {
	if op.Source == "" || op.Target == "" {
		return nil, errors.New(errors.ErrInvalidInput,
			"copy file operation requires source and target")
	}

	relSource, err := rootRelative(op.Source)
	if err != nil {
		return nil, err
	}
	relTarget, err := rootRelative(op.Target)
	if err != nil {
		return nil, err
	}

	opID := core.OperationID(fmt.Sprintf("copy-%s-to-%s", filepath.Base(op.Source), op.Target))
	copyOp := operations.NewCopyOperation(opID, relTarget)
	copyOp.SetPaths(relSource, relTarget)

	return synthfs.NewOperationsPackageAdapter(copyOp), nil
}

func (e *Executor) logOperation(op Operation) {
	switch op.Type {
	case OperationCreateDir:
		e.logger.Info().Str("target", op.Target).Msg("Would create directory")
	case OperationWriteFile:
		e.logger.Info().
			Str("target", op.Target).
			Int("contentLen", len(op.Content)).
			Msg("Would write file")
	case OperationCopyFile:
		e.logger.Info().
			Str("source", op.Source).
			Str("target", op.Target).
			Msg("Would copy file")
	default:
		e.logger.Info().Msg("Would execute operation")
	}
}

// Item types for synthfs operations

// fileItem implements the interface needed for file operations
type fileItem struct {
	path    string
	content []byte
	mode    fs.FileMode
}

func (f *fileItem) Path() string       { return f.path }
func (f *fileItem) Type() string       { return "file" }
func (f *fileItem) Content() []byte    { return f.content }
func (f *fileItem) Mode() fs.FileMode  { return f.mode }
func (f *fileItem) IsDir() bool        { return false }
func (f *fileItem) ModTime() time.Time { return time.Now() }
func (f *fileItem) Size() int64        { return int64(len(f.content)) }

// directoryItem implements the interface needed for directory operations
type directoryItem struct {
	path string
	mode fs.FileMode
}

func (d *directoryItem) Path() string       { return d.path }
func (d *directoryItem) Type() string       { return "directory" }
func (d *directoryItem) Mode() fs.FileMode  { return d.mode }
func (d *directoryItem) IsDir() bool        { return true }
func (d *directoryItem) ModTime() time.Time { return time.Now() }
func (d *directoryItem) Size() int64        { return 0 }

package synthfs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/gulps/pkg/errors"
	gfs "github.com/arthur-debert/gulps/pkg/filesystem"
	"github.com/arthur-debert/gulps/pkg/logging"
	"github.com/arthur-debert/gulps/pkg/types"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/rs/zerolog"
)

// Report lists what an execution did with each write target.
type Report struct {
	// Written holds targets that were written, or would be in dry-run.
	Written []string
	// Skipped holds targets left alone because they already existed.
	Skipped []string
}

// Executor executes gulps operations using synthfs
type Executor struct {
	logger     zerolog.Logger
	root       string
	dryRun     bool
	force      bool
	fs         types.FS
	filesystem synthfs.FileSystem
}

// NewExecutor creates an executor confined to root.
func NewExecutor(root string, dryRun bool) *Executor {
	return &Executor{
		logger:     logging.GetLogger("core.synthfs"),
		root:       filepath.Clean(root),
		dryRun:     dryRun,
		fs:         gfs.NewOS(),
		filesystem: filesystem.NewOSFileSystem("/"), // Use root filesystem
	}
}

// EnableForce enables or disables force mode (overwrite existing files)
func (e *Executor) EnableForce(force bool) *Executor {
	e.force = force
	return e
}

// WithFS replaces the filesystem used for existence checks and removals.
func (e *Executor) WithFS(fsys types.FS) *Executor {
	e.fs = fsys
	return e
}

// ExecuteOperations runs ops in order. Parent directories of write targets
// that do not exist yet are created first.
func (e *Executor) ExecuteOperations(ctx context.Context, ops []types.Operation) (*Report, error) {
	report := &Report{}

	prepared, replaced, err := e.prepare(ops, report)
	if err != nil {
		return nil, err
	}

	if e.dryRun {
		e.logger.Info().Msg("Dry run mode - operations would be executed:")
		for _, op := range prepared {
			e.logOperation(op)
		}
		return report, nil
	}

	if len(prepared) == 0 {
		e.logger.Info().Msg("No operations to execute")
		return report, nil
	}

	pipeline := synthfs.NewMemPipeline()
	for _, op := range prepared {
		synthOp, err := e.convert(op)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrActionExecute,
				"failed to convert operation: %s", op.Description)
		}
		if err := pipeline.Add(synthOp); err != nil {
			return nil, errors.Wrapf(err, errors.ErrActionExecute,
				"failed to add operation to pipeline")
		}
	}

	originals, err := e.removeExisting(replaced)
	if err != nil {
		return nil, err
	}

	e.logger.Info().Int("operationCount", len(prepared)).Msg("Executing operations")

	result := synthfs.NewExecutor().Run(ctx, pipeline, e.filesystem)
	if result.GetError() != nil {
		e.logger.Error().Err(result.GetError()).Msg("Pipeline execution failed")
		e.restore(originals)
		return nil, errors.Wrapf(result.GetError(), errors.ErrFileWrite,
			"failed to write files")
	}

	e.logger.Info().Int("written", len(report.Written)).Msg("All operations executed successfully")
	return report, nil
}

// prepare validates ops, resolves existing targets and expands missing
// parent directories. It touches nothing on disk. Existing targets that
// force mode will overwrite are returned separately. It fills report as a
// side effect.
func (e *Executor) prepare(ops []types.Operation, report *Report) ([]types.Operation, []string, error) {
	var out []types.Operation
	var replaced []string
	planned := map[string]bool{}

	for _, op := range ops {
		if op.Status != types.StatusReady {
			e.logger.Debug().
				Str("type", string(op.Type)).
				Str("target", op.Target).
				Str("status", string(op.Status)).
				Msg("Skipping operation with non-ready status")
			continue
		}
		if err := e.validateTarget(op.Target); err != nil {
			return nil, nil, err
		}

		switch op.Type {
		case types.OperationCreateDir:
			dirs, err := e.missingDirs(op.Target, planned)
			if err != nil {
				return nil, nil, err
			}
			out = append(out, dirs...)

		case types.OperationWriteFile:
			exists, err := gfs.Exists(e.fs, op.Target)
			if err != nil {
				return nil, nil, err
			}
			if exists && !e.force {
				e.logger.Warn().Str("target", op.Target).Msg("File already exists, skipping (use --force to overwrite)")
				report.Skipped = append(report.Skipped, op.Target)
				continue
			}
			if exists {
				replaced = append(replaced, op.Target)
			}

			dirs, err := e.missingDirs(filepath.Dir(op.Target), planned)
			if err != nil {
				return nil, nil, err
			}
			out = append(out, dirs...)
			out = append(out, op)
			report.Written = append(report.Written, op.Target)

		default:
			return nil, nil, errors.Newf(errors.ErrActionInvalid,
				"unsupported operation type: %s", op.Type)
		}
	}

	return out, replaced, nil
}

// missingDirs returns mkdir operations for dir and each missing ancestor
// below the root, outermost first.
func (e *Executor) missingDirs(dir string, planned map[string]bool) ([]types.Operation, error) {
	var chain []string
	for d := filepath.Clean(dir); isPathWithin(d, e.root) && !planned[d]; d = filepath.Dir(d) {
		exists, err := gfs.Exists(e.fs, d)
		if err != nil {
			return nil, err
		}
		if exists {
			break
		}
		chain = append(chain, d)
		if d == e.root {
			break
		}
	}

	ops := make([]types.Operation, 0, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		planned[chain[i]] = true
		ops = append(ops, types.NewMkdirOperation(chain[i]))
	}
	return ops, nil
}

// original is an existing file held in memory while force mode rewrites it.
type original struct {
	path    string
	content []byte
	mode    fs.FileMode
}

// removeExisting reads and removes each target so the pipeline can create it
// again. On failure the files removed so far are put back.
func (e *Executor) removeExisting(targets []string) ([]original, error) {
	originals := make([]original, 0, len(targets))
	for _, target := range targets {
		info, err := e.fs.Stat(target)
		if err != nil {
			e.restore(originals)
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", target)
		}
		content, err := e.fs.ReadFile(target)
		if err != nil {
			e.restore(originals)
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", target)
		}

		e.logger.Debug().Str("target", target).Msg("Removing existing file to allow overwrite in force mode")
		if err := e.fs.Remove(target); err != nil {
			e.restore(originals)
			return nil, errors.Wrapf(err, errors.ErrFileWrite,
				"failed to remove existing file %s", target)
		}
		originals = append(originals, original{path: target, content: content, mode: info.Mode().Perm()})
	}
	return originals, nil
}

// restore writes originals back, replacing anything a partial run left at
// their paths.
func (e *Executor) restore(originals []original) {
	for _, o := range originals {
		_ = e.fs.RemoveAll(o.path)
		if err := e.fs.WriteFile(o.path, o.content, o.mode); err != nil {
			e.logger.Error().Err(err).Str("target", o.path).Msg("Failed to restore file")
			continue
		}
		e.logger.Warn().Str("target", o.path).Msg("Restored file after failed write")
	}
}

func (e *Executor) validateTarget(target string) error {
	if target == "" {
		return errors.New(errors.ErrInvalidInput, "operation requires target")
	}
	if !filepath.IsAbs(target) {
		return errors.Newf(errors.ErrInvalidInput, "operation target must be absolute: %s", target)
	}
	if !isPathWithin(target, e.root) {
		return errors.Newf(errors.ErrInvalidInput,
			"operation target is outside the project directory: %s", target).
			WithDetail("root", e.root)
	}
	return nil
}

// isPathWithin checks if a path is within a parent directory
func isPathWithin(path, parent string) bool {
	path = filepath.Clean(path)
	parent = filepath.Clean(parent)

	if path == parent {
		return true
	}
	rel, err := filepath.Rel(parent, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (e *Executor) convert(op types.Operation) (synthfs.Operation, error) {
	// Convert absolute path to relative for synthfs
	relPath, err := filepath.Rel("/", op.Target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert path: %s", op.Target)
	}

	switch op.Type {
	case types.OperationCreateDir:
		mode := modeOr(op.Mode, 0755)
		e.logger.Debug().Str("target", op.Target).Str("mode", mode.String()).Msg("Creating directory operation")

		createOp := operations.NewCreateDirectoryOperation(
			core.OperationID(fmt.Sprintf("create-dir-%s", op.Target)), relPath)
		createOp.SetItem(&directoryItem{path: relPath, mode: mode})
		return synthfs.NewOperationsPackageAdapter(createOp), nil

	case types.OperationWriteFile:
		mode := modeOr(op.Mode, 0644)
		e.logger.Debug().
			Str("target", op.Target).
			Str("mode", mode.String()).
			Int("contentLen", len(op.Content)).
			Msg("Creating write file operation")

		createOp := operations.NewCreateFileOperation(
			core.OperationID(fmt.Sprintf("write-file-%s", op.Target)), relPath)
		createOp.SetItem(&fileItem{path: relPath, content: op.Content, mode: mode})
		return synthfs.NewOperationsPackageAdapter(createOp), nil
	}

	return nil, errors.Newf(errors.ErrActionInvalid, "unsupported operation type: %s", op.Type)
}

func modeOr(m *uint32, def os.FileMode) os.FileMode {
	if m == nil {
		return def
	}
	return os.FileMode(*m)
}

// logOperation logs details about an operation
func (e *Executor) logOperation(op types.Operation) {
	logger := e.logger.With().
		Str("type", string(op.Type)).
		Str("description", op.Description).
		Logger()

	switch op.Type {
	case types.OperationCreateDir:
		logger.Info().Str("target", op.Target).Msg("Would create directory")
	case types.OperationWriteFile:
		logger.Info().Str("target", op.Target).Int("contentLen", len(op.Content)).Msg("Would write file")
	}
}

// Item types for synthfs operations

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

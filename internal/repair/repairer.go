package repair

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"golang.org/x/text/encoding"

	"mojifix/internal/fileutil"
	"mojifix/internal/journal"
	"mojifix/internal/logging"
	"mojifix/internal/mojibake"
)

// ErrLocked reports that another process holds the lock on a target file.
var ErrLocked = errors.New("target is locked by another process")

// Recorder persists completed repair runs.
type Recorder interface {
	Record(ctx context.Context, entry journal.Entry) (journal.Entry, error)
}

// Report describes one repair or check run over a single file.
type Report struct {
	RunID        string
	Path         string
	Encoding     string
	BytesBefore  int
	BytesAfter   int
	DigestBefore string
	DigestAfter  string
	Stats        Stats
	Written      bool
	StartedAt    time.Time
	Duration     time.Duration
}

// Changed reports whether the repaired content differs from the original.
func (r *Report) Changed() bool {
	return r.DigestBefore != r.DigestAfter
}

// Message is the completion line printed after a successful repair.
func (r *Report) Message() string {
	return fmt.Sprintf("Fixed corrupted characters in %s", filepath.Base(r.Path))
}

// Entry converts the report into a journal entry.
func (r *Report) Entry() journal.Entry {
	return journal.Entry{
		RunID:          r.RunID,
		Path:           r.Path,
		Encoding:       r.Encoding,
		BytesBefore:    r.BytesBefore,
		BytesAfter:     r.BytesAfter,
		DigestBefore:   r.DigestBefore,
		DigestAfter:    r.DigestAfter,
		StructuralHits: r.Stats.StructuralTotal(),
		SymbolicHits:   r.Stats.SymbolicTotal(),
		CreatedAt:      r.StartedAt,
	}
}

// Option customizes a Repairer.
type Option func(*Repairer)

// WithEncoding sets the encoding used to load and persist files.
func WithEncoding(enc encoding.Encoding) Option {
	return func(r *Repairer) {
		if enc != nil {
			r.encoding = enc
		}
	}
}

// WithRecorder records every successful repair. Recording failures are
// logged and do not fail the repair.
func WithRecorder(rec Recorder) Option {
	return func(r *Repairer) {
		r.recorder = rec
	}
}

// WithLogger sets the base logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Repairer) {
		r.logger = logger
	}
}

// Repairer applies a Pipeline to files on disk.
type Repairer struct {
	pipeline *Pipeline
	encoding encoding.Encoding
	recorder Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewRepairer constructs a Repairer. A nil pipeline selects DefaultPipeline.
func NewRepairer(pipeline *Pipeline, opts ...Option) *Repairer {
	if pipeline == nil {
		pipeline = DefaultPipeline()
	}
	enc, _ := mojibake.LookupEncoding(mojibake.DefaultEncoding)
	r := &Repairer{
		pipeline: pipeline,
		encoding: enc,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = logging.NewComponentLogger(r.logger, "repair")
	return r
}

// Pipeline returns the pipeline the repairer applies.
func (r *Repairer) Pipeline() *Pipeline {
	return r.pipeline
}

// Repair rewrites path in place with the pipeline applied. The file is
// rewritten even when nothing matched.
func (r *Repairer) Repair(ctx context.Context, path string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// The lock opens the target itself, so it must never create it.
	lock := flock.New(path, flock.SetFlag(os.O_RDONLY))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}
	defer func() { _ = lock.Unlock() }()

	report, output, err := r.transform(ctx, path)
	if err != nil {
		return nil, err
	}

	if err := fileutil.Overwrite(path, output); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	report.Written = true
	report.Duration = r.now().Sub(report.StartedAt)

	logger := r.runLogger(report)
	logger.Info("repaired file",
		logging.Int(logging.FieldStructuralHits, report.Stats.StructuralTotal()),
		logging.Int(logging.FieldSymbolicHits, report.Stats.SymbolicTotal()),
		logging.Bool(logging.FieldChanged, report.Changed()),
		logging.Duration("duration", report.Duration),
	)

	r.record(ctx, report, logger)
	return report, nil
}

// Check runs the pipeline over path without locking or writing it.
func (r *Repairer) Check(ctx context.Context, path string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	report, _, err := r.transform(ctx, path)
	if err != nil {
		return nil, err
	}
	report.Duration = r.now().Sub(report.StartedAt)
	r.runLogger(report).Debug("checked file",
		logging.Int(logging.FieldStructuralHits, report.Stats.StructuralTotal()),
		logging.Int(logging.FieldSymbolicHits, report.Stats.SymbolicTotal()),
	)
	return report, nil
}

func (r *Repairer) transform(ctx context.Context, path string) (*Report, []byte, error) {
	report := &Report{
		RunID:     uuid.NewString(),
		Path:      path,
		Encoding:  mojibake.EncodingName(r.encoding),
		StartedAt: r.now(),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	report.BytesBefore = len(raw)
	report.DigestBefore = fileutil.Digest(raw)

	text, err := mojibake.Decode(r.encoding, raw)
	if err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	repaired, stats := r.pipeline.Apply(text)
	report.Stats = stats

	output, err := mojibake.Encode(r.encoding, repaired)
	if err != nil {
		return nil, nil, fmt.Errorf("encode %s: %w", path, err)
	}
	report.BytesAfter = len(output)
	report.DigestAfter = fileutil.Digest(output)
	return report, output, nil
}

func (r *Repairer) runLogger(report *Report) *slog.Logger {
	return r.logger.With(
		logging.String(logging.FieldRunID, report.RunID),
		logging.String(logging.FieldPath, report.Path),
	)
}

func (r *Repairer) record(ctx context.Context, report *Report, logger *slog.Logger) {
	if r.recorder == nil {
		return
	}
	if _, err := r.recorder.Record(ctx, report.Entry()); err != nil {
		logging.WarnWithContext(logger, "journal record failed", "journal_write_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "repair applied but missing from history"),
		)
	}
}

// Package domain holds the sshbatch business logic: parsing the sshfs mount
// table, translating local paths to remote ones and building the batch
// submission.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"sshbatch.dev/pkg/sshbatch/internal/adapter"
	"sshbatch.dev/pkg/sshbatch/internal/controller"
	m "sshbatch.dev/pkg/sshbatch/internal/model"
)

// MountsArgs contains the arguments for listing sshfs mounts.
type MountsArgs struct {
	Marker string
}

// ResolveArgs contains the arguments for translating local paths.
type ResolveArgs struct {
	Paths  []m.Path
	Marker string
	Format m.OutputFormat
}

// SubmitArgs contains the arguments for submitting a batch job.
type SubmitArgs struct {
	Address      string
	Request      m.ResolutionRequest
	Job          m.BatchJob // BidsDir and OutDir are filled in from Request
	Marker       string
	Profile      string
	BatchCommand string
	DryRun       bool
}

// Workflow is the entry point used by the CLI commands.
type Workflow interface {
	Mounts(ctx context.Context, args MountsArgs) error
	Resolve(ctx context.Context, args ResolveArgs) error
	Submit(ctx context.Context, args SubmitArgs) error
}

type workflow struct {
	lister   adapter.MountListerAdapter
	resolver Resolver
	runner   adapter.RemoteRunnerAdapter
	ui       controller.UI
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(
	lister adapter.MountListerAdapter,
	resolver Resolver,
	runner adapter.RemoteRunnerAdapter,
	ui controller.UI,
) Workflow {
	return &workflow{
		lister:   lister,
		resolver: resolver,
		runner:   runner,
		ui:       ui,
	}
}

// Mounts displays the current sshfs mount table.
func (w *workflow) Mounts(ctx context.Context, args MountsArgs) error {
	table, err := w.mountTable(ctx, args.Marker)
	if err != nil {
		return err
	}

	return w.ui.DisplayMountTable(ctx, table)
}

// Resolve displays the remote equivalent of every path. Resolutions are shown
// even when some paths are unresolved; the error still names them.
func (w *workflow) Resolve(ctx context.Context, args ResolveArgs) error {
	if len(args.Paths) == 0 {
		return fmt.Errorf("no paths to resolve")
	}

	table, err := w.mountTable(ctx, args.Marker)
	if err != nil {
		return err
	}

	resolutions, resolveErr := w.resolver.ResolveAll(ctx, table, args.Paths)

	if err := w.ui.DisplayResolutions(ctx, resolutions, args.Format); err != nil {
		return err
	}

	return resolveErr
}

// Submit resolves both job directories and dispatches the batch command.
// Nothing is dispatched unless both directories resolve.
func (w *workflow) Submit(ctx context.Context, args SubmitArgs) error {
	table, err := w.mountTable(ctx, args.Marker)
	if err != nil {
		return err
	}

	pair, err := w.resolver.ResolvePair(ctx, table, args.Request)
	if err != nil {
		return err
	}

	job := args.Job
	job.BidsDir = pair.BidsDir.Remote
	job.OutDir = pair.OutDir.Remote

	command, err := BuildRemoteCommand(args.Address, args.Profile, args.BatchCommand, job)
	if err != nil {
		return fmt.Errorf("failed to build remote command: %w", err)
	}

	if err := w.ui.DisplayRemoteCommand(ctx, command, args.DryRun); err != nil {
		return err
	}

	if args.DryRun {
		slog.Info("dry run, not dispatching", "address", command.Address)
		return nil
	}

	stdout, stderr := w.ui.Streams()

	if err := w.runner.Run(ctx, command, stdout, stderr); err != nil {
		return fmt.Errorf("failed to submit job: %w", err)
	}

	return nil
}

func (w *workflow) mountTable(ctx context.Context, marker string) (m.MountTable, error) {
	lines, err := w.lister.ListMounts(ctx)
	if err != nil {
		return m.MountTable{}, fmt.Errorf("failed to read mount table: %w", err)
	}

	table := BuildMountTable(lines, marker)
	slog.Debug("built sshfs mount table", "lines", len(lines), "mounts", table.Len())

	return table, nil
}

package domain

import (
	"context"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"sshbatch.dev/pkg/sshbatch/internal/adapter"
	m "sshbatch.dev/pkg/sshbatch/internal/model"
)

// Resolver translates local paths on sshfs mounts into paths on the remote host.
type Resolver interface {
	// Resolve translates a single candidate. A missing candidate or a stale
	// mount is returned as an error; a path no mount covers comes back with
	// status Unresolved and a nil error.
	Resolve(ctx context.Context, table m.MountTable, candidate m.Path) (m.Resolution, error)
	// ResolveAll resolves every candidate, stopping at the first fatal error.
	// Unresolved candidates are reported together in an UnresolvedPathError,
	// alongside the full resolution list.
	ResolveAll(ctx context.Context, table m.MountTable, candidates []m.Path) ([]m.Resolution, error)
	// ResolvePair resolves the two directories of a batch job. Both must
	// resolve; anything less is an error.
	ResolvePair(ctx context.Context, table m.MountTable, request m.ResolutionRequest) (m.ResolvedPair, error)
}

type resolver struct {
	fsAdapter adapter.PathFSAdapter
}

// NewResolver constructs a Resolver that canonicalizes paths through fsAdapter.
func NewResolver(fsAdapter adapter.PathFSAdapter) Resolver {
	return &resolver{fsAdapter: fsAdapter}
}

// Resolve scans every mount in listing order. Each mount root is
// canonicalized before matching, and a root that no longer resolves aborts
// the scan even when a later mount would match. When several mounts cover the
// candidate (nested mounts) the last one in listing order wins.
func (r *resolver) Resolve(ctx context.Context, table m.MountTable, candidate m.Path) (m.Resolution, error) {
	result, err := r.canonicalize(ctx, candidate)
	if err != nil {
		return result, err
	}

	return r.scan(table, result)
}

// ResolveAll checks that every candidate exists before scanning any mount.
func (r *resolver) ResolveAll(ctx context.Context, table m.MountTable, candidates []m.Path) ([]m.Resolution, error) {
	pending := make([]m.Resolution, 0, len(candidates))

	for _, candidate := range candidates {
		result, err := r.canonicalize(ctx, candidate)
		if err != nil {
			// Earlier candidates were never scanned, so only the failure is reported.
			return []m.Resolution{result}, err
		}

		pending = append(pending, result)
	}

	resolutions := make([]m.Resolution, 0, len(pending))

	var unresolved []m.Path

	for _, candidate := range pending {
		resolution, err := r.scan(table, candidate)
		if err != nil {
			return append(resolutions, resolution), err
		}

		if !resolution.IsResolved() {
			unresolved = append(unresolved, candidate.Local)
		}

		resolutions = append(resolutions, resolution)
	}

	if len(unresolved) > 0 {
		slog.Error("paths are not on an sshfs mount", "paths", unresolved)
		return resolutions, &UnresolvedPathError{Paths: unresolved}
	}

	return resolutions, nil
}

func (r *resolver) canonicalize(ctx context.Context, candidate m.Path) (m.Resolution, error) {
	result := m.Resolution{Local: candidate, Status: m.Failed}

	if err := ctx.Err(); err != nil {
		result.Err = err
		return result, err
	}

	canonical, err := r.fsAdapter.Canonicalize(candidate)
	if err != nil {
		notFound := &PathNotFoundError{Path: candidate, Err: err}
		slog.Error("candidate path does not resolve", "path", candidate, "error", err)

		result.Reason = notFound.Error()
		result.Err = notFound

		return result, notFound
	}

	result.Canonical = canonical

	return result, nil
}

// scan matches an already canonicalized candidate against every mount.
func (r *resolver) scan(table m.MountTable, result m.Resolution) (m.Resolution, error) {
	result.Status = m.Unresolved
	result.Reason = m.ReasonNoCoveringMount

	for _, entry := range table.Entries() {
		root, err := r.fsAdapter.Canonicalize(entry.LocalRoot)
		if err != nil {
			stale := &StaleMountError{LocalRoot: entry.LocalRoot, Err: err}
			slog.Error("sshfs mount no longer resolves", "mount", entry.LocalRoot, "error", err)

			return m.Resolution{
				Local:     result.Local,
				Canonical: result.Canonical,
				Status:    m.Failed,
				Reason:    stale.Error(),
				Err:       stale,
			}, stale
		}

		rel, ok := relativeToRoot(string(root), string(result.Canonical))
		if !ok {
			continue
		}

		matched := entry
		result.Status = m.Resolved
		result.Reason = ""
		result.Mount = &matched
		result.Remote = remoteJoin(entry.RemoteRoot(), rel)

		slog.Debug("sshfs mount is a parent of path", "mount", entry.LocalRoot, "path", result.Canonical, "remote", result.Remote)
	}

	if result.Status == m.Unresolved {
		slog.Debug("no sshfs mount covers path", "path", result.Canonical, "mounts", table.Len())
	}

	return result, nil
}

func (r *resolver) ResolvePair(ctx context.Context, table m.MountTable, request m.ResolutionRequest) (m.ResolvedPair, error) {
	resolutions, err := r.ResolveAll(ctx, table, []m.Path{request.BidsDir, request.OutDir})
	if err != nil {
		return m.ResolvedPair{}, err
	}

	return m.ResolvedPair{BidsDir: resolutions[0], OutDir: resolutions[1]}, nil
}

// relativeToRoot reports whether root is candidate or one of its ancestors,
// comparing whole path segments, and returns the remainder of candidate.
func relativeToRoot(root, candidate string) (string, bool) {
	if root == candidate {
		return ".", true
	}

	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}

	if !strings.HasPrefix(candidate, prefix) {
		return "", false
	}

	return strings.TrimPrefix(candidate, prefix), true
}

// remoteJoin appends a local relative path to a remote root. Remote hosts
// use '/' regardless of the local separator.
func remoteJoin(remoteRoot, rel string) string {
	rel = filepath.ToSlash(rel)

	if remoteRoot == "" {
		// "host:" mounts the remote home directory.
		return path.Clean(rel)
	}

	return path.Join(remoteRoot, rel)
}

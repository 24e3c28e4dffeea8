package domain

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sshbatch.dev/pkg/sshbatch/internal/adapter"
	m "sshbatch.dev/pkg/sshbatch/internal/model"
)

// fixture lays out directories under a symlink-free temp root. Directories
// stand in for mount points; the resolver only needs them to exist.
type fixture struct {
	t    *testing.T
	root string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	return &fixture{t: t, root: root}
}

func (f *fixture) dir(rel string) string {
	f.t.Helper()

	p := filepath.Join(f.root, rel)
	require.NoError(f.t, os.MkdirAll(p, 0o755))

	return p
}

func (f *fixture) file(rel string) string {
	f.t.Helper()

	p := filepath.Join(f.root, rel)
	require.NoError(f.t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(f.t, os.WriteFile(p, []byte("x"), 0o600))

	return p
}

func (f *fixture) path(rel string) string {
	return filepath.Join(f.root, rel)
}

func newLocalResolver() Resolver {
	return NewResolver(adapter.NewLocalPathFSAdapter())
}

func TestResolve_RoundTrip(t *testing.T) {
	fx := newFixture(t)
	mnt := fx.dir("mnt/x")
	candidate := fx.file("mnt/x/sub/file.txt")

	table := m.NewMountTable(m.MountEntry{LocalRoot: m.Path(mnt), RemoteSpec: "host:/home/user/data"})

	got, err := newLocalResolver().Resolve(context.Background(), table, m.Path(candidate))
	require.NoError(t, err)

	assert.Equal(t, m.Resolved, got.Status)
	assert.Equal(t, "/home/user/data/sub/file.txt", got.Remote)
	assert.Equal(t, m.Path(candidate), got.Canonical)
	require.NotNil(t, got.Mount)
	assert.Equal(t, m.Path(mnt), got.Mount.LocalRoot)
	assert.Empty(t, got.Reason)
}

func TestResolve_MountRootItself(t *testing.T) {
	fx := newFixture(t)
	mnt := fx.dir("mnt/x")

	table := m.NewMountTable(m.MountEntry{LocalRoot: m.Path(mnt), RemoteSpec: "host:/home/user/data/"})

	got, err := newLocalResolver().Resolve(context.Background(), table, m.Path(mnt))
	require.NoError(t, err)
	assert.Equal(t, "/home/user/data", got.Remote)
}

func TestResolve_SegmentAwarePrefix(t *testing.T) {
	fx := newFixture(t)
	data := fx.dir("data")
	candidate := fx.dir("data2/foo")

	table := m.NewMountTable(m.MountEntry{LocalRoot: m.Path(data), RemoteSpec: "host:/remote/data"})

	got, err := newLocalResolver().Resolve(context.Background(), table, m.Path(candidate))
	require.NoError(t, err)

	assert.Equal(t, m.Unresolved, got.Status)
	assert.Equal(t, m.ReasonNoCoveringMount, got.Reason)
	assert.Empty(t, got.Remote)
	assert.Nil(t, got.Mount)
}

// Nested mounts both cover the candidate; the entry listed last decides.
func TestResolve_LastMatchingEntryWins(t *testing.T) {
	fx := newFixture(t)
	outer := fx.dir("mnt")
	inner := fx.dir("mnt/project")
	candidate := fx.dir("mnt/project/bids")

	t.Run("inner listed last", func(t *testing.T) {
		table := m.NewMountTable(
			m.MountEntry{LocalRoot: m.Path(outer), RemoteSpec: "host:/outer"},
			m.MountEntry{LocalRoot: m.Path(inner), RemoteSpec: "host:/inner"},
		)

		got, err := newLocalResolver().Resolve(context.Background(), table, m.Path(candidate))
		require.NoError(t, err)
		assert.Equal(t, "/inner/bids", got.Remote)
	})

	t.Run("outer listed last", func(t *testing.T) {
		table := m.NewMountTable(
			m.MountEntry{LocalRoot: m.Path(inner), RemoteSpec: "host:/inner"},
			m.MountEntry{LocalRoot: m.Path(outer), RemoteSpec: "host:/outer"},
		)

		got, err := newLocalResolver().Resolve(context.Background(), table, m.Path(candidate))
		require.NoError(t, err)
		assert.Equal(t, "/outer/project/bids", got.Remote)
	})
}

func TestResolve_StaleMountAborts(t *testing.T) {
	fx := newFixture(t)
	valid := fx.dir("mnt/valid")
	candidate := fx.dir("mnt/valid/sub")

	table := m.NewMountTable(
		m.MountEntry{LocalRoot: m.Path(fx.path("mnt/gone")), RemoteSpec: "host:/gone"},
		m.MountEntry{LocalRoot: m.Path(valid), RemoteSpec: "host:/valid"},
	)

	got, err := newLocalResolver().Resolve(context.Background(), table, m.Path(candidate))
	require.Error(t, err)

	var stale *StaleMountError
	require.ErrorAs(t, err, &stale)
	assert.Equal(t, m.Path(fx.path("mnt/gone")), stale.LocalRoot)
	assert.ErrorIs(t, err, ErrStaleMount)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	assert.Equal(t, m.Failed, got.Status)
	assert.Empty(t, got.Remote)
}

func TestResolve_MissingCandidate(t *testing.T) {
	fx := newFixture(t)

	// The table also holds a stale mount: the missing candidate is reported
	// first because no mount is looked at before the candidate resolves.
	table := m.NewMountTable(m.MountEntry{LocalRoot: m.Path(fx.path("gone")), RemoteSpec: "host:/gone"})

	got, err := newLocalResolver().Resolve(context.Background(), table, m.Path(fx.path("nope")))
	require.Error(t, err)

	var notFound *PathNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, m.Path(fx.path("nope")), notFound.Path)
	assert.ErrorIs(t, err, ErrPathNotFound)
	assert.False(t, errors.Is(err, ErrStaleMount))
	assert.Equal(t, m.Failed, got.Status)
}

func TestResolve_SymlinkIntoMount(t *testing.T) {
	fx := newFixture(t)
	mnt := fx.dir("mnt/x")
	fx.dir("mnt/x/study")

	link := fx.path("shortcut")
	require.NoError(t, os.Symlink(filepath.Join(mnt, "study"), link))

	table := m.NewMountTable(m.MountEntry{LocalRoot: m.Path(mnt), RemoteSpec: "host:/home/user/data"})

	got, err := newLocalResolver().Resolve(context.Background(), table, m.Path(link))
	require.NoError(t, err)
	assert.Equal(t, "/home/user/data/study", got.Remote)
	assert.Equal(t, m.Path(link), got.Local)
}

func TestResolve_SymlinkedMountRoot(t *testing.T) {
	fx := newFixture(t)
	target := fx.dir("real/mnt")
	fx.dir("real/mnt/bids")

	link := fx.path("mnt-link")
	require.NoError(t, os.Symlink(target, link))

	table := m.NewMountTable(m.MountEntry{LocalRoot: m.Path(link), RemoteSpec: "host:/srv"})

	got, err := newLocalResolver().Resolve(context.Background(), table, m.Path(filepath.Join(target, "bids")))
	require.NoError(t, err)
	assert.Equal(t, "/srv/bids", got.Remote)
}

func TestResolve_HomeRelativeRemote(t *testing.T) {
	fx := newFixture(t)
	mnt := fx.dir("mnt/home")
	candidate := fx.dir("mnt/home/projects/a")

	table := m.NewMountTable(m.MountEntry{LocalRoot: m.Path(mnt), RemoteSpec: "host:"})

	got, err := newLocalResolver().Resolve(context.Background(), table, m.Path(candidate))
	require.NoError(t, err)
	assert.Equal(t, "projects/a", got.Remote)
}

func TestResolve_RemoteRootWithColon(t *testing.T) {
	fx := newFixture(t)
	mnt := fx.dir("mnt/x")
	candidate := fx.dir("mnt/x/sub")

	table := m.NewMountTable(m.MountEntry{LocalRoot: m.Path(mnt), RemoteSpec: "host:/odd:dir"})

	got, err := newLocalResolver().Resolve(context.Background(), table, m.Path(candidate))
	require.NoError(t, err)
	assert.Equal(t, "/odd:dir/sub", got.Remote)
}

func TestResolve_EmptyTable(t *testing.T) {
	fx := newFixture(t)
	candidate := fx.dir("anywhere")

	got, err := newLocalResolver().Resolve(context.Background(), m.NewMountTable(), m.Path(candidate))
	require.NoError(t, err)
	assert.Equal(t, m.Unresolved, got.Status)
}

func TestResolve_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newLocalResolver().Resolve(ctx, m.NewMountTable(), "/")
	require.ErrorIs(t, err, context.Canceled)
}

func TestResolvePair(t *testing.T) {
	fx := newFixture(t)
	mnt := fx.dir("mnt/graham")
	bids := fx.dir("mnt/graham/bids")
	out := fx.dir("mnt/graham/derivatives")
	local := fx.dir("local/out")

	table := m.NewMountTable(m.MountEntry{LocalRoot: m.Path(mnt), RemoteSpec: "me@graham:/project/me"})

	t.Run("both resolve", func(t *testing.T) {
		pair, err := newLocalResolver().ResolvePair(context.Background(), table, m.ResolutionRequest{
			BidsDir: m.Path(bids),
			OutDir:  m.Path(out),
		})
		require.NoError(t, err)
		assert.Equal(t, "/project/me/bids", pair.BidsDir.Remote)
		assert.Equal(t, "/project/me/derivatives", pair.OutDir.Remote)
	})

	t.Run("one unresolved fails the pair", func(t *testing.T) {
		pair, err := newLocalResolver().ResolvePair(context.Background(), table, m.ResolutionRequest{
			BidsDir: m.Path(bids),
			OutDir:  m.Path(local),
		})
		require.Error(t, err)

		var unresolved *UnresolvedPathError
		require.ErrorAs(t, err, &unresolved)
		assert.Equal(t, []m.Path{m.Path(local)}, unresolved.Paths)
		assert.ErrorIs(t, err, ErrUnresolvedPath)
		assert.Equal(t, m.ResolvedPair{}, pair)
	})

	t.Run("both unresolved are named", func(t *testing.T) {
		other := fx.dir("local/bids")

		_, err := newLocalResolver().ResolvePair(context.Background(), table, m.ResolutionRequest{
			BidsDir: m.Path(other),
			OutDir:  m.Path(local),
		})

		var unresolved *UnresolvedPathError
		require.ErrorAs(t, err, &unresolved)
		assert.Equal(t, []m.Path{m.Path(other), m.Path(local)}, unresolved.Paths)
		assert.Contains(t, err.Error(), other+" or "+local)
	})

	t.Run("missing output dir", func(t *testing.T) {
		_, err := newLocalResolver().ResolvePair(context.Background(), table, m.ResolutionRequest{
			BidsDir: m.Path(bids),
			OutDir:  m.Path(fx.path("mnt/graham/missing")),
		})
		require.ErrorIs(t, err, ErrPathNotFound)
	})
}

func TestResolveAll_KeepsResolutionsOnUnresolved(t *testing.T) {
	fx := newFixture(t)
	mnt := fx.dir("mnt/x")
	in := fx.dir("mnt/x/in")
	local := fx.dir("elsewhere")

	table := m.NewMountTable(m.MountEntry{LocalRoot: m.Path(mnt), RemoteSpec: "host:/r"})

	resolutions, err := newLocalResolver().ResolveAll(context.Background(), table, []m.Path{m.Path(in), m.Path(local)})
	require.ErrorIs(t, err, ErrUnresolvedPath)
	require.Len(t, resolutions, 2)
	assert.Equal(t, m.Resolved, resolutions[0].Status)
	assert.Equal(t, m.Unresolved, resolutions[1].Status)
}

func TestResolveAll_MissingLaterCandidateReportsOnlyFailure(t *testing.T) {
	fx := newFixture(t)
	mnt := fx.dir("mnt/x")
	bids := fx.dir("mnt/x/bids")
	missing := fx.path("mnt/x/nope")

	table := m.NewMountTable(m.MountEntry{LocalRoot: m.Path(mnt), RemoteSpec: "host:/data"})

	resolutions, err := newLocalResolver().ResolveAll(context.Background(), table, []m.Path{m.Path(bids), m.Path(missing)})
	require.ErrorIs(t, err, ErrPathNotFound)
	require.Len(t, resolutions, 1)
	assert.Equal(t, m.Path(missing), resolutions[0].Local)
	assert.Equal(t, m.Failed, resolutions[0].Status)

	for _, resolution := range resolutions {
		assert.NotEqual(t, m.ReasonNoCoveringMount, resolution.Reason)
	}
}

func TestRelativeToRoot(t *testing.T) {
	tests := []struct {
		name      string
		root      string
		candidate string
		wantRel   string
		wantOK    bool
	}{
		{"same path", "/data", "/data", ".", true},
		{"child", "/data", "/data/foo", "foo", true},
		{"deep child", "/data", "/data/foo/bar", "foo/bar", true},
		{"sibling with shared prefix", "/data", "/data2/foo", "", false},
		{"sibling exact shared prefix", "/data", "/data2", "", false},
		{"parent", "/data/foo", "/data", "", false},
		{"filesystem root", "/", "/data", "data", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rel, ok := relativeToRoot(tt.root, tt.candidate)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRel, rel)
		})
	}
}

func TestRemoteJoin(t *testing.T) {
	assert.Equal(t, "/home/user/data/sub", remoteJoin("/home/user/data", "sub"))
	assert.Equal(t, "/home/user/data", remoteJoin("/home/user/data/", "."))
	assert.Equal(t, "sub/x", remoteJoin("", "sub/x"))
	assert.Equal(t, ".", remoteJoin("", "."))
}

package usecase

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/bankcore/internal/domain"
)

type recordingInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
	err   error
}

func (r *recordingInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	r.spec = spec
	r.force = force
	return r.err
}

func TestInitWorkspace_ResolvesAbsoluteRoot(t *testing.T) {
	init := &recordingInitializer{}
	dir := t.TempDir()

	got, err := NewInitWorkspace(init).Execute(dir, true)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, got, init.spec.Root)
	assert.True(t, init.force)
}

func TestInitWorkspace_EmptyRootIsCurrentDir(t *testing.T) {
	init := &recordingInitializer{}
	got, err := NewInitWorkspace(init).Execute("  ", false)
	require.NoError(t, err)

	wd, err := filepath.Abs(".")
	require.NoError(t, err)
	assert.Equal(t, wd, got)
}

func TestInitWorkspace_PropagatesError(t *testing.T) {
	boom := errors.New("exists")
	_, err := NewInitWorkspace(&recordingInitializer{err: boom}).Execute(t.TempDir(), false)
	assert.ErrorIs(t, err, boom)
}

package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	orig := Dir
	Dir = t.TempDir()
	t.Cleanup(func() { Dir = orig })

	p := Profile{DisplayName: "Sipho N", Email: "sipho@example.com", ProfilePicPath: "/uploads/profiles/x.png"}
	require.NoError(t, Write("user-1", p))

	got, err := Read("user-1")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	// Overwrite replaces the previous sidecar.
	p.DisplayName = "Sipho Ndlovu"
	require.NoError(t, Write("user-1", p))
	got, err = Read("user-1")
	require.NoError(t, err)
	assert.Equal(t, "Sipho Ndlovu", got.DisplayName)
}

func TestRead_MissingIsZeroProfile(t *testing.T) {
	orig := Dir
	Dir = t.TempDir()
	t.Cleanup(func() { Dir = orig })

	got, err := Read("nobody")
	require.NoError(t, err)
	assert.Equal(t, Profile{}, got)
}

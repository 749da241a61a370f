package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(src, "en", "about"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "en", "index.html"), []byte("<html>home</html>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "en", "about", "index.html"), []byte("<html>about</html>"), 0644))

	err := Run(Options{
		SrcDir:        src,
		DestDir:       dest,
		Domain:        "sunstaterealty.com.au",
		DefaultLocale: "en",
	}, logrus.New())
	require.NoError(t, err)

	// Site tree copied intact
	copied, err := os.ReadFile(filepath.Join(dest, "en", "about", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<html>about</html>", string(copied))

	// Root redirect targets the default locale with a meta-refresh fallback
	redirect, err := os.ReadFile(filepath.Join(dest, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(redirect), `http-equiv="refresh" content="0;url=/en/"`)
	assert.Contains(t, string(redirect), `window.location.replace("/en/");`)

	// CNAME holds the literal domain
	cname, err := os.ReadFile(filepath.Join(dest, "CNAME"))
	require.NoError(t, err)
	assert.Equal(t, "sunstaterealty.com.au", string(cname))
}

func TestRun_NoDomainSkipsCNAME(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "index.txt"), []byte("x"), 0644))

	err := Run(Options{SrcDir: src, DestDir: dest}, logrus.New())
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dest, "CNAME"))
	assert.True(t, os.IsNotExist(err))

	// Default locale falls back to en
	redirect, err := os.ReadFile(filepath.Join(dest, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(redirect), "/en/")
}

func TestRun_MissingSource(t *testing.T) {
	err := Run(Options{SrcDir: filepath.Join(t.TempDir(), "missing"), DestDir: t.TempDir()}, logrus.New())
	assert.Error(t, err)
}

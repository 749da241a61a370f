package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// redirectTemplate is the root index.html: an immediate client-side redirect
// to the default-locale tree, with a meta-refresh fallback for clients that
// do not run scripts.
const redirectTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="0;url=%[1]s">
<link rel="canonical" href="%[1]s">
<title>Redirecting&hellip;</title>
<script>window.location.replace(%[1]q);</script>
</head>
<body>
<p>If you are not redirected automatically, <a href="%[1]s">continue to the site</a>.</p>
</body>
</html>
`

// Options configures a deployment export.
type Options struct {
	// SrcDir is the statically exported site tree.
	SrcDir string

	// DestDir is the deployment directory the tree is copied into.
	DestDir string

	// Domain is written verbatim to the CNAME file. Empty skips the file.
	Domain string

	// DefaultLocale is the target of the root redirect, e.g. "en" -> /en/.
	DefaultLocale string
}

// Run copies the exported site into the deployment directory and writes the
// root redirect and CNAME files expected by the pages host.
func Run(opts Options, logger *logrus.Logger) error {
	if opts.DefaultLocale == "" {
		opts.DefaultLocale = "en"
	}

	if err := copyTree(opts.SrcDir, opts.DestDir); err != nil {
		return fmt.Errorf("failed to copy exported site: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"src":  opts.SrcDir,
		"dest": opts.DestDir,
	}).Info("Copied exported site tree")

	target := "/" + opts.DefaultLocale + "/"
	redirect := fmt.Sprintf(redirectTemplate, target)
	if err := os.WriteFile(filepath.Join(opts.DestDir, "index.html"), []byte(redirect), 0644); err != nil {
		return fmt.Errorf("failed to write root redirect: %w", err)
	}
	logger.WithField("target", target).Info("Wrote root redirect")

	if opts.Domain != "" {
		if err := os.WriteFile(filepath.Join(opts.DestDir, "CNAME"), []byte(opts.Domain), 0644); err != nil {
			return fmt.Errorf("failed to write CNAME: %w", err)
		}
		logger.WithField("domain", opts.Domain).Info("Wrote CNAME")
	}

	return nil
}

func copyTree(src, dest string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// Package project manages local checkouts of catalog entries
package project

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/code-relay-cli/code-relay/internals/catalog"
	"github.com/code-relay-cli/code-relay/internals/utils"
)

// MetadataFile is the entry metadata written into every checkout so
// later commands (and the user) can refer back to it
const MetadataFile = "coderelay.json"

// DefaultBaseDir returns the directory checkouts go into
func DefaultBaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "code-relay"), nil
}

// Checkout is a (possibly not yet existing) working copy of one entry
type Checkout struct {
	Entry *catalog.Entry
	Dir   string
}

// NewCheckout returns the checkout of the given entry below baseDir
func NewCheckout(baseDir string, entry *catalog.Entry) *Checkout {
	return &Checkout{
		Entry: entry,
		Dir:   filepath.Join(baseDir, entry.Name),
	}
}

// Exists returns true when the checkout directory is already there
func (c *Checkout) Exists() bool {
	_, err := os.Stat(c.Dir)
	return err == nil
}

// Remove deletes the checkout directory
func (c *Checkout) Remove() error {
	return os.RemoveAll(c.Dir)
}

// Clone runs git to fetch the entry's repository into the checkout dir
func (c *Checkout) Clone(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(c.Dir), 0755); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, "git", "clone", c.Entry.Git, c.Dir)
	if out, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrapf(err, "git clone failed: %s", strings.TrimSpace(string(out)))
	}
	return nil
}

// Head returns the short revision the checkout is at
func (c *Checkout) Head() (string, error) {
	return utils.SimpleGitExec("-C", c.Dir, "rev-parse", "--short", "HEAD")
}

// WriteMetadata drops the entry as coderelay.json into the checkout
// and makes sure the file is gitignored so it never gets committed
func (c *Checkout) WriteMetadata() error {
	buf, err := json.MarshalIndent(c.Entry, "", "    ")
	if err != nil {
		return err
	}
	metaPath := filepath.Join(c.Dir, MetadataFile)
	if err := os.WriteFile(metaPath, append(buf, '\n'), 0644); err != nil {
		return errors.Wrap(err, "could not write "+MetadataFile)
	}

	return c.ensureIgnored()
}

func (c *Checkout) ensureIgnored() error {
	ignorePath := filepath.Join(c.Dir, ".gitignore")

	existing, err := os.ReadFile(ignorePath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if strings.Contains(string(existing), MetadataFile) {
		return nil
	}

	file, err := os.OpenFile(ignorePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, "could not update .gitignore")
	}
	defer file.Close()

	entry := "\n# Code Relay\n" + MetadataFile + "\n"
	if len(existing) == 0 {
		entry = "# Code Relay\n" + MetadataFile + "\n"
	}
	_, err = file.WriteString(entry)
	return err
}

// Size returns the size of the checkout in bytes
func (c *Checkout) Size() (uint64, error) {
	var size uint64
	err := filepath.WalkDir(c.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		size += uint64(info.Size())
		return nil
	})
	return size, err
}

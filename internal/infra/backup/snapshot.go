package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// SnapshotFileName is the backup file tracked inside the snapshot repo.
const SnapshotFileName = "daybook-backup.json"

// Snapshotter keeps a local git history of exported backups so any
// previous export can be recovered.
type Snapshotter struct {
	dir string
}

// NewSnapshotter creates a Snapshotter rooted at dir. The directory is
// initialized as a git repository on first use.
func NewSnapshotter(dir string) *Snapshotter {
	return &Snapshotter{dir: dir}
}

// Save writes the document into the snapshot repository and commits it.
// It returns the commit hash. A snapshot identical to the previous one
// is skipped and returns an empty hash.
func (s *Snapshotter) Save(doc *Document, now time.Time) (string, error) {
	repo, err := s.openOrInit()
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal backup: %w", err)
	}
	path := filepath.Join(s.dir, SnapshotFileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write backup file: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("open worktree: %w", err)
	}
	if _, err := wt.Add(SnapshotFileName); err != nil {
		return "", fmt.Errorf("stage backup file: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return "", fmt.Errorf("worktree status: %w", err)
	}
	if status.IsClean() {
		return "", nil
	}

	hash, err := wt.Commit(fmt.Sprintf("backup %s", now.Format("2006-01-02 15:04:05")), &git.CommitOptions{
		Author: &object.Signature{
			Name:  "daybook",
			Email: "daybook@localhost",
			When:  now,
		},
	})
	if err != nil {
		return "", fmt.Errorf("commit backup: %w", err)
	}
	return hash.String(), nil
}

func (s *Snapshotter) openOrInit() (*git.Repository, error) {
	repo, err := git.PlainOpen(s.dir)
	if err == nil {
		return repo, nil
	}
	if !errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("open snapshot repository: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return nil, fmt.Errorf("create snapshot directory: %w", err)
	}
	repo, err = git.PlainInit(s.dir, false)
	if err != nil {
		return nil, fmt.Errorf("init snapshot repository: %w", err)
	}
	return repo, nil
}

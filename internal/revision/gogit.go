package revision

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/KostasZigo/commitlint/internal/objects"
)

// GoGit is a Store that reads the repository in-process with go-git.
// It needs no git executable; calls are serialized because the
// filesystem storage shares packfile handles.
type GoGit struct {
	mu   sync.Mutex
	repo *git.Repository
}

// OpenGoGit opens the repository containing dir.
func OpenGoGit(dir string) (*GoGit, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %s: %w", dir, err)
	}
	return NewGoGit(repo), nil
}

// NewGoGit wraps an already opened repository.
func NewGoGit(repo *git.Repository) *GoGit {
	return &GoGit{repo: repo}
}

func (g *GoGit) Resolve(ctx context.Context, name string) (objects.Hash, bool, error) {
	if err := ctx.Err(); err != nil {
		return objects.Hash{}, false, err
	}
	if !validName(name) {
		return objects.Hash{}, false, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	hash, err := g.repo.ResolveRevision(plumbing.Revision(name))
	if err != nil {
		slog.Debug("Failed to resolve revision", "name", name, "error", err)
		return objects.Hash{}, false, nil
	}
	return objects.Hash(*hash), true, nil
}

func (g *GoGit) ListRange(ctx context.Context, head, base objects.Hash) ([]objects.Hash, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	headCommit, err := g.repo.CommitObject(plumbing.Hash(head))
	if err != nil {
		slog.Debug("Head commit not found", "hash", head.String(), "error", err)
		return nil, nil
	}
	baseCommit, err := g.repo.CommitObject(plumbing.Hash(base))
	if err != nil {
		slog.Debug("Base commit not found", "hash", base.String(), "error", err)
		return nil, nil
	}

	walk := newRangeWalk(g.repo)
	walk.push(baseCommit, true)
	walk.push(headCommit, false)

	commits, err := walk.run(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		slog.Debug("Failed to walk commit history", "error", err)
		return nil, nil
	}

	hashes := make([]objects.Hash, 0, len(commits))
	for _, hash := range commits {
		hashes = append(hashes, objects.Hash(hash))
	}
	return hashes, nil
}

func (g *GoGit) FetchCommit(ctx context.Context, id objects.Hash) (*objects.Commit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	encoded, err := g.repo.Storer.EncodedObject(plumbing.CommitObject, plumbing.Hash(id))
	if err != nil {
		slog.Debug("Commit object not found", "hash", id.String(), "error", err)
		return nil, nil
	}

	reader, err := encoded.Reader()
	if err != nil {
		slog.Debug("Failed to open commit object", "hash", id.String(), "error", err)
		return nil, nil
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		slog.Debug("Failed to read commit object", "hash", id.String(), "error", err)
		return nil, nil
	}

	commit, err := objects.DecodeCommit(raw)
	if err != nil {
		slog.Warn("Failed to decode commit object",
			"hash", id.String(),
			"error", err)
		return nil, nil
	}
	return commit, nil
}

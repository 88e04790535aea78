package revision

import (
	"context"
	"fmt"
	"strings"

	"github.com/KostasZigo/commitlint/internal/config"
	"github.com/KostasZigo/commitlint/internal/constants"
	"github.com/KostasZigo/commitlint/internal/objects"
)

// Store reads commit history.
//
// Lookups that fail inside the version-control tool (unknown name, non-zero
// exit, timeout, malformed output) are reported softly: ok=false, an empty
// slice or a nil commit. The error result is reserved for failures to run the
// tool at all, and for cancellation of ctx.
//
// Implementations are safe for concurrent use.
type Store interface {
	// Resolve turns a revision name (branch, tag, HEAD~2, full hash) into a commit id.
	Resolve(ctx context.Context, name string) (objects.Hash, bool, error)

	// ListRange returns the commits reachable from head but not from base, newest first.
	ListRange(ctx context.Context, head, base objects.Hash) ([]objects.Hash, error)

	// FetchCommit reads and decodes one commit object.
	FetchCommit(ctx context.Context, id objects.Hash) (*objects.Commit, error)
}

// Open returns the Store selected by cfg.Backend for the repository at dir.
func Open(cfg config.Config, dir string) (Store, error) {
	switch cfg.Backend {
	case constants.BackendExec:
		return NewGitCLI(dir, cfg.Git.Binary, cfg.Git.Timeout), nil
	case constants.BackendGoGit:
		store, err := OpenGoGit(dir)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// validName rejects names the tool would parse as an option.
func validName(name string) bool {
	return name != "" && !strings.HasPrefix(name, "-")
}

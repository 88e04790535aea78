package revision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/KostasZigo/commitlint/internal/constants"
	"github.com/KostasZigo/commitlint/internal/objects"
	"github.com/KostasZigo/commitlint/utils"
)

// GitCLI is a Store backed by the git executable.
// Every call spawns one process bounded by the configured timeout.
type GitCLI struct {
	dir     string
	binary  string
	timeout time.Duration
}

func NewGitCLI(dir, binary string, timeout time.Duration) *GitCLI {
	if binary == "" {
		binary = constants.DefaultGitBinary
	}
	if timeout <= 0 {
		timeout = constants.DefaultTimeout
	}
	return &GitCLI{
		dir:     dir,
		binary:  binary,
		timeout: timeout,
	}
}

// run executes git with args and returns its stdout.
// ok is false when git ran but failed or timed out; err is set only when
// git could not be started or ctx itself was cancelled.
func (g *GitCLI) run(ctx context.Context, args ...string) (out []byte, ok bool, err error) {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	cmd := exec.CommandContext(callCtx, g.binary, args...)
	cmd.Dir = g.dir
	cmd.WaitDelay = constants.GitWaitDelay
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err = cmd.Output()
	if err == nil {
		return out, true, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, false, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		slog.Debug("git command failed",
			"args", args,
			"error", err,
			"stderr", stderr.String())
		return nil, false, nil
	}

	return nil, false, fmt.Errorf("failed to run %s %s: %w", g.binary, args[0], err)
}

func (g *GitCLI) Resolve(ctx context.Context, name string) (objects.Hash, bool, error) {
	if !validName(name) {
		return objects.Hash{}, false, nil
	}

	out, ok, err := g.run(ctx, constants.GitRevParse, name)
	if err != nil || !ok {
		return objects.Hash{}, false, err
	}
	if len(out) < constants.HashStringLength {
		return objects.Hash{}, false, nil
	}

	hash, err := objects.ParseHash(out[:constants.HashStringLength])
	if err != nil {
		slog.Debug("rev-parse printed an invalid hash", "name", name, "error", err)
		return objects.Hash{}, false, nil
	}
	return hash, true, nil
}

func (g *GitCLI) ListRange(ctx context.Context, head, base objects.Hash) ([]objects.Hash, error) {
	out, ok, err := g.run(ctx, constants.GitLog, "--format=%H", head.String(), "^"+base.String())
	if err != nil {
		return nil, err
	}
	if !ok || len(out) < constants.HashStringLength {
		return nil, nil
	}

	var hashes []objects.Hash
	for _, line := range bytes.Split(out, []byte{'\n'}) {
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if len(line) == 0 {
			continue
		}
		hash, err := objects.ParseHash(line)
		if err != nil {
			slog.Debug("Skipping malformed log line", "line", string(line), "error", err)
			continue
		}
		hashes = append(hashes, hash)
	}
	return hashes, nil
}

func (g *GitCLI) FetchCommit(ctx context.Context, id objects.Hash) (*objects.Commit, error) {
	out, ok, err := g.run(ctx, constants.GitCatFile, string(utils.CommitObjectType), id.String())
	if err != nil || !ok {
		return nil, err
	}

	// Output is the exact object content, so it must hash back to id
	hash, err := utils.ComputeHash(out, utils.CommitObjectType)
	if err != nil {
		return nil, err
	}
	if hash != id.String() {
		slog.Warn("Commit object hash mismatch",
			"expected", id.String(),
			"got", hash)
		return nil, nil
	}

	commit, err := objects.DecodeCommit(out)
	if err != nil {
		slog.Warn("Failed to decode commit object",
			"hash", id.String(),
			"error", err)
		return nil, nil
	}
	return commit, nil
}

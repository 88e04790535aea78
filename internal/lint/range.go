package lint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/KostasZigo/commitlint/internal/objects"
	"github.com/KostasZigo/commitlint/internal/revision"
)

// Range check failures. Both mean the check never ran, as opposed to a
// commit having violations.
var (
	ErrUnknownRevision = errors.New("unknown revision")
	ErrCommitNotFound  = errors.New("commit not found")
)

// Result holds the violations of one commit.
type Result struct {
	Hash   objects.Hash
	Errors []MessageError
}

// Report lists results in range order, newest commit first.
type Report struct {
	Head    objects.Hash
	Base    objects.Hash
	Results []Result
}

// HasViolations reports whether any commit in the range broke a rule.
func (r *Report) HasViolations() bool {
	for _, result := range r.Results {
		if len(result.Errors) > 0 {
			return true
		}
	}
	return false
}

// Failed returns only the results that carry violations.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, result := range r.Results {
		if len(result.Errors) > 0 {
			failed = append(failed, result)
		}
	}
	return failed
}

// CheckRange validates every commit reachable from headName but not from baseName.
// Up to jobs commits are fetched and validated at once. The first store
// error or missing commit cancels the remaining work.
func CheckRange(ctx context.Context, store revision.Store, headName, baseName string, jobs int) (*Report, error) {
	head, err := resolve(ctx, store, headName)
	if err != nil {
		return nil, err
	}
	base, err := resolve(ctx, store, baseName)
	if err != nil {
		return nil, err
	}

	hashes, err := store.ListRange(ctx, head, base)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits %s..%s: %w", baseName, headName, err)
	}
	slog.Debug("Checking commit range",
		"head", head.String(),
		"base", base.String(),
		"commits", len(hashes))

	report := &Report{
		Head:    head,
		Base:    base,
		Results: make([]Result, len(hashes)),
	}

	if jobs < 1 {
		jobs = 1
	}
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for i, hash := range hashes {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			commit, err := store.FetchCommit(groupCtx, hash)
			if err != nil {
				return fmt.Errorf("failed to fetch commit %s: %w", hash, err)
			}
			if commit == nil {
				return fmt.Errorf("%w: %s", ErrCommitNotFound, hash)
			}

			report.Results[i] = Result{
				Hash:   hash,
				Errors: Validate(commit.Message),
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}

func resolve(ctx context.Context, store revision.Store, name string) (objects.Hash, error) {
	hash, ok, err := store.Resolve(ctx, name)
	if err != nil {
		return objects.Hash{}, fmt.Errorf("failed to resolve %q: %w", name, err)
	}
	if !ok {
		return objects.Hash{}, fmt.Errorf("%w: %s", ErrUnknownRevision, name)
	}
	return hash, nil
}

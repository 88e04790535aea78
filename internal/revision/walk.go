package revision

import (
	"context"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// walkSlop is how many more commits are popped once only uninteresting
// commits remain queued, so committer dates that go backwards do not end
// the walk too early. Same allowance as git's revision walk.
const walkSlop = 5

type walkFlags uint8

const (
	walkSeen walkFlags = 1 << iota
	walkDone
	walkUninteresting
)

// rangeWalk lists commits reachable from the interesting tips but not from
// the uninteresting ones, newest first. Commits are popped by committer time
// and the walk ends when nothing interesting is left in the queue, so history
// below the merge base is not read.
type rangeWalk struct {
	repo    *git.Repository
	queue   *binaryheap.Heap
	flags   map[plumbing.Hash]walkFlags
	parents map[plumbing.Hash][]plumbing.Hash

	// interesting counts queued commits not marked uninteresting.
	interesting int
	candidates  []plumbing.Hash
}

func newRangeWalk(repo *git.Repository) *rangeWalk {
	return &rangeWalk{
		repo:    repo,
		queue:   binaryheap.NewWith(newerFirst),
		flags:   make(map[plumbing.Hash]walkFlags),
		parents: make(map[plumbing.Hash][]plumbing.Hash),
	}
}

func newerFirst(a, b interface{}) int {
	ta := a.(*object.Commit).Committer.When
	tb := b.(*object.Commit).Committer.When
	switch {
	case ta.After(tb):
		return -1
	case ta.Before(tb):
		return 1
	default:
		return 0
	}
}

// push queues c once. Pushing a queued commit again as uninteresting marks it.
func (w *rangeWalk) push(c *object.Commit, uninteresting bool) {
	flags := w.flags[c.Hash]
	if flags&walkSeen != 0 {
		if uninteresting {
			w.markUninteresting(c.Hash)
		}
		return
	}

	flags |= walkSeen
	if uninteresting {
		flags |= walkUninteresting
	}
	if flags&walkUninteresting == 0 {
		w.interesting++
	}
	w.flags[c.Hash] = flags
	w.queue.Push(c)
}

// markUninteresting flags hash, and the ancestors of commits already walked.
func (w *rangeWalk) markUninteresting(hash plumbing.Hash) {
	stack := []plumbing.Hash{hash}
	for len(stack) > 0 {
		hash := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		flags := w.flags[hash]
		if flags&walkUninteresting != 0 {
			continue
		}
		if flags&walkSeen != 0 && flags&walkDone == 0 {
			w.interesting--
		}
		w.flags[hash] = flags | walkUninteresting
		if flags&walkDone != 0 {
			stack = append(stack, w.parents[hash]...)
		}
	}
}

func (w *rangeWalk) run(ctx context.Context) ([]plumbing.Hash, error) {
	slop := walkSlop
	for !w.queue.Empty() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if w.interesting == 0 {
			if slop == 0 {
				break
			}
			slop--
		} else {
			slop = walkSlop
		}

		value, _ := w.queue.Pop()
		c := value.(*object.Commit)
		flags := w.flags[c.Hash]
		w.flags[c.Hash] = flags | walkDone
		w.parents[c.Hash] = c.ParentHashes

		uninteresting := flags&walkUninteresting != 0
		if !uninteresting {
			w.interesting--
			w.candidates = append(w.candidates, c.Hash)
		}

		for _, hash := range c.ParentHashes {
			if w.flags[hash]&walkSeen != 0 {
				if uninteresting {
					w.markUninteresting(hash)
				}
				continue
			}
			parent, err := w.repo.CommitObject(hash)
			if err != nil {
				return nil, err
			}
			w.push(parent, uninteresting)
		}
	}

	// a candidate can be reached from the uninteresting side after it was popped
	var result []plumbing.Hash
	for _, hash := range w.candidates {
		if w.flags[hash]&walkUninteresting == 0 {
			result = append(result, hash)
		}
	}
	return result, nil
}

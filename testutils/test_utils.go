package testutils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/KostasZigo/commitlint/internal/constants"
	"github.com/KostasZigo/commitlint/utils"
)

// RandomString generates a random hex string of n bytes
func RandomString(n int) string {
	bytes := make([]byte, n)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// RandomHash generates a random 40-character SHA-1 hash
func RandomHash() string {
	return RandomString(constants.HashByteLength)
}

// CreateTestFile creates a file with given content in the specified directory.
// Returns the full path to the created file.
func CreateTestFile(t *testing.T, dir, filename string, content []byte) string {
	t.Helper()

	filePath := filepath.Join(dir, filename)
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", filename, err)
	}

	return filePath
}

// fakeGitScript answers rev-parse, log and cat-file from files under root:
// refs/<name>, log, objects/<hash>. Every invocation is appended to calls.
const fakeGitScript = `#!/bin/sh
root='%ROOT%'
echo "$@" >> "$root/calls"
if [ -f "$root/sleep" ]; then
	exec sleep 10
fi
if [ -f "$root/sleep-child" ]; then
	sleep 10
	echo never
	exit 0
fi
case "$1" in
rev-parse)
	[ -f "$root/refs/$2" ] || { echo "fatal: ambiguous argument '$2'" >&2; exit 128; }
	cat "$root/refs/$2" ;;
log)
	[ -f "$root/log" ] || { echo "fatal: bad revision" >&2; exit 128; }
	cat "$root/log" ;;
cat-file)
	[ -f "$root/objects/$3" ] || { echo "fatal: Not a valid object name $3" >&2; exit 128; }
	cat "$root/objects/$3" ;;
*)
	echo "unsupported: $1" >&2
	exit 1 ;;
esac
`

// FakeGit is a shell script standing in for the git executable.
type FakeGit struct {
	Path string
	root string
}

// NewFakeGit writes a fake git executable into a temporary directory.
// Skips the test on platforms without /bin/sh.
func NewFakeGit(t *testing.T) *FakeGit {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake git needs /bin/sh")
	}

	root := t.TempDir()
	for _, dir := range []string{"refs", "objects"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatalf("Failed to create fake git directory %s: %v", dir, err)
		}
	}

	path := filepath.Join(root, "git")
	script := strings.ReplaceAll(fakeGitScript, "%ROOT%", root)
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write fake git: %v", err)
	}

	return &FakeGit{Path: path, root: root}
}

// SetRef makes `rev-parse name` print output.
func (f *FakeGit) SetRef(t *testing.T, name, output string) {
	t.Helper()
	CreateTestFile(t, filepath.Join(f.root, "refs"), name, []byte(output))
}

// SetLog makes `log` print output.
func (f *FakeGit) SetLog(t *testing.T, output string) {
	t.Helper()
	CreateTestFile(t, f.root, "log", []byte(output))
}

// AddCommit stores content as a commit object and returns its id.
func (f *FakeGit) AddCommit(t *testing.T, content []byte) string {
	t.Helper()

	hash, err := utils.ComputeHash(content, utils.CommitObjectType)
	if err != nil {
		t.Fatalf("Hash computation failed: %v", err)
	}
	CreateTestFile(t, filepath.Join(f.root, "objects"), hash, content)
	return hash
}

// AddObject stores content under hash without checking that they match.
func (f *FakeGit) AddObject(t *testing.T, hash string, content []byte) {
	t.Helper()
	CreateTestFile(t, filepath.Join(f.root, "objects"), hash, content)
}

// Hang makes every following invocation block for ten seconds.
func (f *FakeGit) Hang(t *testing.T) {
	t.Helper()
	CreateTestFile(t, f.root, "sleep", nil)
}

// HangInChild makes every following invocation wait on a child process
// that keeps stdout open after the script itself is killed.
func (f *FakeGit) HangInChild(t *testing.T) {
	t.Helper()
	CreateTestFile(t, f.root, "sleep-child", nil)
}

// Calls returns the argument lists the fake received, one per line.
func (f *FakeGit) Calls(t *testing.T) []string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(f.root, "calls"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		t.Fatalf("Failed to read fake git calls: %v", err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

// CommitContent renders a commit object the way git serializes it.
func CommitContent(treeHash string, parents []string, message string) []byte {
	var b strings.Builder

	b.WriteString("tree " + treeHash + "\n")
	for _, parent := range parents {
		b.WriteString("parent " + parent + "\n")
	}
	b.WriteString("author Test User <test@example.com> 1700000000 +0000\n")
	b.WriteString("committer Test User <test@example.com> 1700000000 +0000\n")
	b.WriteString("\n")
	b.WriteString(message)

	return []byte(b.String())
}

// InitGoGitRepo creates an empty repository in a temporary directory.
func InitGoGitRepo(t *testing.T) (*git.Repository, string) {
	t.Helper()

	repoPath := t.TempDir()
	repo, err := git.PlainInit(repoPath, false)
	if err != nil {
		t.Fatalf("Failed to init repository: %v", err)
	}
	return repo, repoPath
}

// CommitEmpty records an empty commit with message on HEAD and returns its id.
// Each call is one second later than the previous so commit time orders history.
func CommitEmpty(t *testing.T, repo *git.Repository, message string) string {
	t.Helper()

	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to open worktree: %v", err)
	}

	signature := nextSignature()

	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author:            signature,
		Committer:         signature,
		AllowEmptyCommits: true,
	})
	if err != nil {
		t.Fatalf("Failed to commit %q: %v", message, err)
	}
	return hash.String()
}

// CommitWithParents stores a commit with an empty tree and the given parents
// without moving HEAD, and returns its id. Parents need not exist.
func CommitWithParents(t *testing.T, repo *git.Repository, message string, parents ...string) string {
	t.Helper()

	tree := repo.Storer.NewEncodedObject()
	if err := (&object.Tree{}).Encode(tree); err != nil {
		t.Fatalf("Failed to encode empty tree: %v", err)
	}
	treeHash, err := repo.Storer.SetEncodedObject(tree)
	if err != nil {
		t.Fatalf("Failed to store empty tree: %v", err)
	}

	signature := nextSignature()
	commit := &object.Commit{
		Author:    *signature,
		Committer: *signature,
		Message:   message,
		TreeHash:  treeHash,
	}
	for _, parent := range parents {
		commit.ParentHashes = append(commit.ParentHashes, plumbing.NewHash(parent))
	}

	encoded := repo.Storer.NewEncodedObject()
	if err := commit.Encode(encoded); err != nil {
		t.Fatalf("Failed to encode commit %q: %v", message, err)
	}
	hash, err := repo.Storer.SetEncodedObject(encoded)
	if err != nil {
		t.Fatalf("Failed to store commit %q: %v", message, err)
	}
	return hash.String()
}

// nextSignature returns a signature one second later than the previous one.
func nextSignature() *object.Signature {
	return &object.Signature{
		Name:  "Test User",
		Email: "test@example.com",
		When:  commitClock.Add(time.Duration(commitTick.Add(1)) * time.Second),
	}
}

var (
	commitClock = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	commitTick  atomic.Int64
)

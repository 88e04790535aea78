package constants

import "time"

// Command name constants used in tests and error messages.
// Cobra Use fields remain inline for CLI discoverability.
const (
	EditCmdName    = "edit"
	CheckCmdName   = "check"
	VersionCmdName = "version"
)

// Version is reported by the version command.
const Version = "0.3.0"

// Repository discovery and configuration file names.
const (
	// GitDir is the repository metadata directory (or gitfile for worktrees).
	GitDir = ".git"

	// ConfigFileName is looked up at the repository root.
	ConfigFileName = ".commitlint.yaml"
)

// Revision store backends.
const (
	// BackendExec shells out to the git executable.
	BackendExec = "exec"

	// BackendGoGit reads the repository in-process with go-git.
	BackendGoGit = "go-git"
)

// Default runtime values.
const (
	// DefaultGitBinary is the executable used by the exec backend.
	DefaultGitBinary = "git"

	// DefaultTimeout bounds every external git invocation.
	DefaultTimeout = 30 * time.Second

	// GitWaitDelay is how long a timed out git call may keep its output pipes
	// open after the process is killed, e.g. held by a child it spawned.
	GitWaitDelay = time.Second

	// DefaultJobs is the number of commits fetched and validated concurrently.
	DefaultJobs = 4
)

// Cryptographic hash properties.
const (
	// HashByteLength is byte length of SHA-1 hash (20 bytes).
	HashByteLength = 20

	// HashStringLength is hex string length of SHA-1 hash (40 characters).
	HashStringLength = 40
)

// Git subcommands invoked by the exec backend.
const (
	GitRevParse = "rev-parse"
	GitLog      = "log"
	GitCatFile  = "cat-file"
)

// Commit object header names.
const (
	CommitTreeHeader   = "tree"
	CommitParentHeader = "parent"
)

// Process exit codes.
const (
	// ExitViolations means at least one message broke a rule.
	ExitViolations = 1

	// ExitFailure means the check could not run (unknown revision, missing object, git failure).
	ExitFailure = 2
)

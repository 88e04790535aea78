package lint

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"
)

// exemptPrefixes start messages git and forges generate on their own.
// Merge titles follow fmt_merge_msg_title in git's fmt-merge-msg.c.
var exemptPrefixes = [][]byte{
	[]byte("Merge branch "),
	[]byte("Merge branches "),
	[]byte("Merge remote-tracking branch "),
	[]byte("Merge remote-tracking branches "),
	[]byte("Merge tag "),
	[]byte("Merge tags "),
	[]byte("Merge commit "),
	[]byte("Merge commits "),
	[]byte("Merge HEAD "),
	[]byte("Revert \""),
	[]byte("Merge pull request #"),
}

// IsExempt reports whether message is an auto-generated merge or revert message.
func IsExempt(message []byte) bool {
	for _, prefix := range exemptPrefixes {
		if bytes.HasPrefix(message, prefix) {
			return true
		}
	}
	return false
}

// Validate checks message against the commit convention and returns every
// violation in discovery order. A nil result means the message is clean.
func Validate(message []byte) []MessageError {
	if IsExempt(message) {
		return nil
	}
	if !utf8.Valid(message) {
		return []MessageError{Err(NotUTF8)}
	}

	lines := splitLines(string(message))

	errs, breaking, parsed := checkHeader(lines[0], nil)
	if len(lines) == 1 {
		return errs
	}

	if lines[1] != "" {
		errs = append(errs, Err(NoEmptyLineBeforeBody))
	}

	if parsed && !breaking && hasBreakingFooter(lines[2:]) {
		errs = append(errs, Err(NoBangInBreakingChangeCommit))
	}

	return errs
}

// splitLines splits on '\n' and "\r\n" and does not yield an empty line
// after a final newline. A '\r' not followed by '\n' stays in the line.
// Always returns at least one line.
func splitLines(s string) []string {
	terminated := strings.HasSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if i < len(lines)-1 || terminated {
			lines[i] = strings.TrimSuffix(line, "\r")
		}
	}
	return lines
}

func hasBreakingFooter(lines []string) bool {
	for _, line := range lines {
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
		if strings.HasPrefix(trimmed, "BREAKING CHANGE") || strings.HasPrefix(trimmed, "BREAKING-CHANGE") {
			return true
		}
	}
	return false
}

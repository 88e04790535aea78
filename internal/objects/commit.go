package objects

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/KostasZigo/commitlint/internal/constants"
)

// ErrMalformedCommit is returned when a raw commit object cannot be decoded.
var ErrMalformedCommit = errors.New("malformed commit object")

// HeaderField is one "name value" line of a commit object.
// Continuation lines are folded into Value joined by '\n'.
type HeaderField struct {
	Name  []byte
	Value []byte
}

// Commit is a decoded commit object: its header fields in file order
// (duplicates kept) and the raw message after the blank separator line.
type Commit struct {
	Header  []HeaderField
	Message []byte
}

// DecodeCommit parses the plain-text serialization printed by `git cat-file commit`.
//
// Format:
//
//	tree <hash>
//	parent <hash>
//	gpgsig -----BEGIN PGP SIGNATURE-----
//	 <continuation line>
//
//	<message>
//
// The input must contain the blank line terminating the header and every
// header line must contain a space; otherwise ErrMalformedCommit is returned
// and no partial commit is produced.
func DecodeCommit(data []byte) (*Commit, error) {
	var header []HeaderField
	rest := data

	for {
		line, after, found := bytes.Cut(rest, []byte{'\n'})
		if !found {
			return nil, fmt.Errorf("%w: header not terminated by a blank line", ErrMalformedCommit)
		}
		rest = after

		if len(line) == 0 {
			break
		}

		name, value, found := bytes.Cut(line, []byte{' '})
		if !found {
			return nil, fmt.Errorf("%w: header line %q has no value", ErrMalformedCommit, line)
		}
		folded := bytes.Clone(value)

		// Lines starting with a space continue the previous value
		for len(rest) > 0 && rest[0] == ' ' {
			cont, after, found := bytes.Cut(rest, []byte{'\n'})
			if !found {
				return nil, fmt.Errorf("%w: unterminated continuation of %q", ErrMalformedCommit, name)
			}
			rest = after
			folded = append(folded, '\n')
			folded = append(folded, cont[1:]...)
		}

		header = append(header, HeaderField{Name: bytes.Clone(name), Value: folded})
	}

	return &Commit{
		Header:  header,
		Message: bytes.Clone(rest),
	}, nil
}

// Get returns the value of the first header field called name.
func (c *Commit) Get(name string) ([]byte, bool) {
	for _, field := range c.Header {
		if string(field.Name) == name {
			return field.Value, true
		}
	}
	return nil, false
}

// Values returns every value of the header fields called name, in order.
func (c *Commit) Values(name string) [][]byte {
	var values [][]byte
	for _, field := range c.Header {
		if string(field.Name) == name {
			values = append(values, field.Value)
		}
	}
	return values
}

// Tree returns the id of the commit's root tree.
func (c *Commit) Tree() (Hash, error) {
	value, ok := c.Get(constants.CommitTreeHeader)
	if !ok {
		return Hash{}, fmt.Errorf("%w: missing tree header", ErrMalformedCommit)
	}
	return ParseHash(value)
}

// Parents returns the parent ids in header order.
func (c *Commit) Parents() ([]Hash, error) {
	values := c.Values(constants.CommitParentHeader)
	parents := make([]Hash, 0, len(values))
	for _, value := range values {
		h, err := ParseHash(value)
		if err != nil {
			return nil, fmt.Errorf("invalid parent %q: %w", value, err)
		}
		parents = append(parents, h)
	}
	return parents, nil
}

// IsMerge reports whether the commit has more than one parent.
func (c *Commit) IsMerge() bool {
	return len(c.Values(constants.CommitParentHeader)) > 1
}

func (c *Commit) String() string {
	return fmt.Sprintf("Commit{headers: %d, message: %q}", len(c.Header), c.Message)
}

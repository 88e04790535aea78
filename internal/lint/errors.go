package lint

import "fmt"

// Kind identifies a commit message rule violation.
type Kind int

const (
	NotUTF8 Kind = iota + 1

	// about header line
	HeaderNotFormatted
	HeaderNoSpaceAfterColon
	HeaderTypeNotLower
	HeaderUnknownType
	HeaderSubjectNotTrimmed
	HeaderSubjectMustNotASentence
	HeaderSubjectEmpty

	// about body
	NoEmptyLineBeforeBody
	NoBangInBreakingChangeCommit
)

// MessageError is one violation found in a commit message.
// Only HeaderUnknownType carries a payload (Type, as written in the message).
// MessageError values are comparable with ==.
type MessageError struct {
	Kind Kind
	Type string
}

// Err returns the payload-free violation of kind k.
func Err(k Kind) MessageError {
	return MessageError{Kind: k}
}

// UnknownType returns a HeaderUnknownType violation for typ.
func UnknownType(typ string) MessageError {
	return MessageError{Kind: HeaderUnknownType, Type: typ}
}

func (e MessageError) String() string {
	switch e.Kind {
	case NotUTF8:
		return "commit message is not utf8"
	case HeaderNotFormatted:
		return "commit first line is not formatted"
	case HeaderNoSpaceAfterColon:
		return "no space after ':'"
	case HeaderTypeNotLower:
		return "commit type is not lowercase"
	case HeaderUnknownType:
		return fmt.Sprintf("unknown header type: %s", e.Type)
	case HeaderSubjectNotTrimmed:
		return "commit subject contains extra spaces"
	case HeaderSubjectMustNotASentence:
		return "commit subject seems like a sentence"
	case HeaderSubjectEmpty:
		return "commit subject is empty"
	case NoEmptyLineBeforeBody:
		return "there is no empty line before body"
	case NoBangInBreakingChangeCommit:
		return "no '!' in first line in breaking change commit"
	default:
		return fmt.Sprintf("unknown violation %d", int(e.Kind))
	}
}

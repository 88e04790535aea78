package lint

import "strings"

// knownTypes is the fixed set of accepted commit types.
var knownTypes = map[string]bool{
	"build":    true,
	"chore":    true,
	"ci":       true,
	"docs":     true,
	"feat":     true,
	"fix":      true,
	"perf":     true,
	"refactor": true,
	"revert":   true,
	"style":    true,
	"test":     true,
}

// Header is the parsed first line of a commit message:
//
//	type ["(" scope ")"] ["!"] ":" subject
//
// Subject is everything after the colon, including a leading space.
type Header struct {
	Type     string
	Scope    string
	HasScope bool
	Breaking bool
	Subject  string
}

// ParseHeader matches line against the header grammar.
// It reports false when the line does not match at all.
func ParseHeader(line string) (Header, bool) {
	var h Header

	end := strings.IndexFunc(line, func(r rune) bool { return !isTypeChar(r) })
	if end <= 0 {
		// empty type, or nothing but type characters
		return Header{}, false
	}
	h.Type, line = line[:end], line[end:]

	if strings.HasPrefix(line, "(") {
		scope, rest, found := strings.Cut(line[1:], ")")
		if !found {
			return Header{}, false
		}
		h.Scope, h.HasScope = scope, true
		line = rest
	}

	if strings.HasPrefix(line, "!") {
		h.Breaking = true
		line = line[1:]
	}

	subject, ok := strings.CutPrefix(line, ":")
	if !ok {
		return Header{}, false
	}
	h.Subject = subject

	return h, true
}

func isTypeChar(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-'
}

// isKnownType reports whether typ, lowercased, is an accepted commit type.
func isKnownType(typ string) bool {
	return knownTypes[strings.ToLower(typ)]
}

// checkHeader validates the first line and returns the breaking flag.
// parsed is false when the line did not match the grammar; breaking is then meaningless.
func checkHeader(line string, errs []MessageError) (out []MessageError, breaking, parsed bool) {
	h, parsed := ParseHeader(line)

	subject := line
	if parsed {
		lower := strings.ToLower(h.Type)
		if lower != h.Type {
			errs = append(errs, Err(HeaderTypeNotLower))
		}
		if !isKnownType(h.Type) {
			errs = append(errs, UnknownType(h.Type))
		}

		subject = h.Subject
		if subject != "" {
			if rest, ok := strings.CutPrefix(subject, " "); ok {
				subject = rest
			} else {
				errs = append(errs, Err(HeaderNoSpaceAfterColon))
			}
		}
	} else {
		errs = append(errs, Err(HeaderNotFormatted))
	}

	trimmed := strings.TrimSpace(subject)
	if trimmed != subject {
		errs = append(errs, Err(HeaderSubjectNotTrimmed))
	}

	lower := strings.ToLower(trimmed)
	if looksLikeSentence(lower) {
		errs = append(errs, Err(HeaderSubjectMustNotASentence))
	}
	if lower == "" {
		errs = append(errs, Err(HeaderSubjectEmpty))
	}

	return errs, h.Breaking, parsed
}

// looksLikeSentence flags a trailing period or a personal pronoun as the grammatical subject.
func looksLikeSentence(subject string) bool {
	if strings.HasSuffix(subject, ".") {
		return true
	}
	for _, pronoun := range []string{"i ", "we ", "you "} {
		if strings.HasPrefix(subject, pronoun) {
			return true
		}
	}
	return false
}

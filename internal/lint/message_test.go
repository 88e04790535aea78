package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		message string
		want    []MessageError
	}{
		{"feat: Test commit", nil},
		{"feat(scope): Test commit", nil},
		{"feat(scope)!: Test commit", nil},
		{"feat(scope)!: Test commit\n\nBREAKING CHANGES: breaking", nil},
		{"feat: Test commit\n", nil},
		{"docs(readme): describe flags\n\nLonger body.\n\nRefs: #12\n", nil},

		{"\xff", []MessageError{Err(NotUTF8)}},
		{"Message Only", []MessageError{Err(HeaderNotFormatted)}},
		{"feat(not closed scope", []MessageError{Err(HeaderNotFormatted)}},
		{"feat:no space after colon", []MessageError{Err(HeaderNoSpaceAfterColon)}},
		{"FEAT: test", []MessageError{Err(HeaderTypeNotLower)}},
		{"tag: Test commit", []MessageError{UnknownType("tag")}},
		{"fix: Not trimmed ", []MessageError{Err(HeaderSubjectNotTrimmed)}},
		{"fix:  Not trimmed", []MessageError{Err(HeaderSubjectNotTrimmed)}},
		// U+3000 IDEOGRAPHIC SPACE
		{"fix: \xE3\x80\x80Not trimmed", []MessageError{Err(HeaderSubjectNotTrimmed)}},
		{"fix: I fixed some bug", []MessageError{Err(HeaderSubjectMustNotASentence)}},
		{"fix: We fixed some bug", []MessageError{Err(HeaderSubjectMustNotASentence)}},
		{"fix: You cannot use that", []MessageError{Err(HeaderSubjectMustNotASentence)}},
		{"fix: fixed some bug.", []MessageError{Err(HeaderSubjectMustNotASentence)}},
		{"fix: ", []MessageError{Err(HeaderSubjectEmpty)}},
		{"fix:", []MessageError{Err(HeaderSubjectEmpty)}},
		{"feat(scope)!: Test commit\nmessage", []MessageError{Err(NoEmptyLineBeforeBody)}},
		{
			"feat(scope): Test commit\n\nBREAKING CHANGES: breaking",
			[]MessageError{Err(NoBangInBreakingChangeCommit)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate([]byte(tt.message)))
		})
	}
}

func TestValidate_AccumulatesInOrder(t *testing.T) {
	got := Validate([]byte("Tag:I did it. \nbody\n  BREAKING-CHANGE: yes"))

	assert.Equal(t, []MessageError{
		Err(HeaderTypeNotLower),
		UnknownType("Tag"),
		Err(HeaderNoSpaceAfterColon),
		Err(HeaderSubjectNotTrimmed),
		Err(HeaderSubjectMustNotASentence),
		Err(NoEmptyLineBeforeBody),
		Err(NoBangInBreakingChangeCommit),
	}, got)
}

func TestValidate_BreakingFooterVariants(t *testing.T) {
	for _, footer := range []string{"BREAKING CHANGE: x", "BREAKING-CHANGE: x", "\t BREAKING CHANGE: x"} {
		got := Validate([]byte("feat: add flag\n\n" + footer))
		assert.Equal(t, []MessageError{Err(NoBangInBreakingChangeCommit)}, got, footer)

		assert.Empty(t, Validate([]byte("feat!: add flag\n\n"+footer)), footer)
	}

	// only lines after the blank separator count as footers
	assert.Equal(t, []MessageError{Err(NoEmptyLineBeforeBody)}, Validate([]byte("feat: add flag\nBREAKING CHANGE: x")))

	// lowercase is not a footer token
	assert.Empty(t, Validate([]byte("feat: add flag\n\nbreaking change: x")))
}

func TestValidate_UnformattedHeaderSkipsBreakingCheck(t *testing.T) {
	got := Validate([]byte("not a header\n\nBREAKING CHANGE: x"))
	assert.Equal(t, []MessageError{Err(HeaderNotFormatted)}, got)
}

func TestValidate_UnformattedHeaderChecksWholeLine(t *testing.T) {
	got := Validate([]byte("We changed things."))
	assert.Equal(t, []MessageError{Err(HeaderNotFormatted), Err(HeaderSubjectMustNotASentence)}, got)
}

func TestValidate_Exempt(t *testing.T) {
	for _, message := range []string{
		"Merge branch 'main' into feature",
		"Merge branches 'a' and 'b'",
		"Merge remote-tracking branch 'origin/main'",
		"Merge tag 'v1.0.0'",
		"Merge commit 'abc123'",
		"Merge HEAD into topic",
		"Revert \"feat: Test commit\"\n\nThis reverts commit abc.",
		"Merge pull request #42 from someone/branch\n\nnot even formatted\n\xff",
	} {
		assert.Nil(t, Validate([]byte(message)), message)
		assert.True(t, IsExempt([]byte(message)), message)
	}

	assert.False(t, IsExempt([]byte("Merge the branches")))
	assert.False(t, IsExempt([]byte("revert: undo flag")))
}

func TestValidate_Idempotent(t *testing.T) {
	for _, message := range []string{"feat: a", "fix(core)!: b\n\nBREAKING CHANGE: c", "Merge branch 'x'"} {
		assert.Empty(t, Validate([]byte(message)))
		assert.Empty(t, Validate([]byte(message)))
	}
}

func TestValidate_EmptyAndLineEndings(t *testing.T) {
	assert.Equal(t, []MessageError{Err(HeaderNotFormatted), Err(HeaderSubjectEmpty)}, Validate(nil))
	assert.Empty(t, Validate([]byte("fix: handle crlf\r\n\r\nbody\r\n")))
	assert.Equal(t, []MessageError{Err(NoEmptyLineBeforeBody)}, Validate([]byte("fix: handle crlf\r\nbody\r\n")))
}

func TestValidate_BareCarriageReturn(t *testing.T) {
	assert.Equal(t, []MessageError{Err(HeaderSubjectNotTrimmed)}, Validate([]byte("fix: x\r")))
	assert.Empty(t, Validate([]byte("fix: x\r\n")))
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", []string{""}},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\r\n\r\nb", []string{"a", "", "b"}},
		{"a\r\nb\r", []string{"a", "b\r"}},
		{"a\rb\n", []string{"a\rb"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, splitLines(tt.input), "%q", tt.input)
	}
}

func TestMessageError_String(t *testing.T) {
	assert.Equal(t, "unknown header type: tag", UnknownType("tag").String())
	assert.Equal(t, "commit message is not utf8", Err(NotUTF8).String())
	assert.Equal(t, "no '!' in first line in breaking change commit", Err(NoBangInBreakingChangeCommit).String())
	assert.Equal(t, "unknown violation 0", MessageError{}.String())
}

package format

// Validate checks that every specifier in untrusted matches the expected
// specifier at the same position (in Kind, numeric Style, and verb),
// starting the comparison alreadyValidated specifiers into expected.
// Fewer specifiers in untrusted than in expected is permitted; a
// specifier that diverges in kind is an error.
func Validate(expected, untrusted string, alreadyValidated int) error {
	expSpecs, err := parseAll([]rune(expected))
	if err != nil {
		return err
	}
	gotSpecs, err := parseAll([]rune(untrusted))
	if err != nil {
		return err
	}

	for i, got := range gotSpecs {
		j := i + alreadyValidated
		if j >= len(expSpecs) {
			return ErrFormatMismatch
		}
		want := expSpecs[j]
		if got.Kind != want.Kind || got.Style != want.Style || got.Verb != want.Verb {
			return ErrFormatMismatch
		}
	}
	return nil
}

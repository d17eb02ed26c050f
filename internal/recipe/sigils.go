package recipe

import "strings"

// Line sigils of the export format. Two-character sigils must be matched
// before the single-character ones.
const (
	SigilTitle        = ">"
	SigilDescription  = "<"
	SigilNotes        = "="
	SigilIngredient   = "~"
	SigilReplacement  = "+"
	SigilStep         = ".-"
	SigilContinuation = ".~"
)

// stepSeparator splits a step header into its order and first line.
const stepSeparator = "~"

var lineSigils = []string{
	SigilStep,
	SigilContinuation,
	SigilTitle,
	SigilDescription,
	SigilNotes,
	SigilIngredient,
	SigilReplacement,
}

// splitSigil returns the sigil that opens line and the remainder after it.
// Lines without a known sigil return an empty sigil and the line unchanged.
func splitSigil(line string) (string, string) {
	for _, sigil := range lineSigils {
		if strings.HasPrefix(line, sigil) {
			return sigil, line[len(sigil):]
		}
	}
	return "", line
}

// continueLines repeats prefix after every embedded newline so each physical
// line of a multi-line field keeps its tag.
func continueLines(text, prefix string) string {
	return strings.ReplaceAll(text, "\n", "\n"+prefix)
}

// StripSigils converts export text into display text by removing the sigil
// that opens each line, together with the single space that follows it.
// Only line-leading markers are removed; sigil characters inside content are
// left alone. Step headers are rendered as "<order>. <directions>".
func StripSigils(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = stripLine(line)
	}
	return strings.Join(lines, "\n")
}

func stripLine(line string) string {
	sigil, rest := splitSigil(line)
	if sigil == "" {
		return line
	}
	rest = strings.TrimPrefix(rest, " ")
	if sigil != SigilStep {
		return rest
	}
	order, directions, found := strings.Cut(rest, stepSeparator)
	if !found {
		return strings.TrimSpace(rest)
	}
	return strings.TrimRight(strings.TrimSpace(order)+". "+strings.TrimPrefix(directions, " "), " ")
}

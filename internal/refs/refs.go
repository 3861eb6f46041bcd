// Package refs parses pull-request reference strings such as
// "owner/repo/pull/123" and "owner/repo#123". The grammar is a single
// pattern with two alternatives: the full shape is anchored at both ends,
// the shorthand at the end only, and leftmost-first search keeps alternative
// order significant.
package refs

import "regexp"

// refPattern is compiled once at init and never mutated. Groups 1-3 capture
// the full shape (owner, repo, number); groups 4-6 capture the shorthand
// (optional owner, optional repo, number).
var refPattern = regexp.MustCompile(`^(?:https://github\.com/)?([^/]+)/([^/]+)/pull/(\d+)$|(?:([^/]+)/([^/#]+))?#?(\d+)$`)

// Kind discriminates the three possible parse outcomes.
type Kind int

const (
	// KindNoMatch means the input conformed to neither reference shape.
	KindNoMatch Kind = iota
	// KindFull is an owner/repo/pull/NNN path, optionally prefixed with
	// https://github.com/.
	KindFull
	// KindShort is a trailing digit run, optionally preceded by # and an
	// owner/repo pair.
	KindShort
)

// String returns a short name for the outcome kind.
func (k Kind) String() string {
	switch k {
	case KindFull:
		return "full"
	case KindShort:
		return "short"
	default:
		return "none"
	}
}

// Group is one positional capture of the reference pattern. Present
// distinguishes a group the engine skipped from one that matched; a matched
// group is never empty, because every capture in the pattern requires at
// least one character.
type Group struct {
	Value   string
	Present bool
}

// Result is the outcome of a single Parse call. Owner and Repo are "" when
// the shorthand matched without its optional owner/repo prefix. Number is
// the matched digit run, unconverted. Groups holds the six raw captures in
// pattern order for positional display.
type Result struct {
	Kind   Kind
	Owner  string
	Repo   string
	Number string
	Groups [6]Group
}

// Parse matches input against the reference grammar and reports the
// captured fields. Parse is pure and deterministic; absence of a match is a
// normal result carried in Kind, not an error.
func Parse(input string) Result {
	idx := refPattern.FindStringSubmatchIndex(input)
	if idx == nil {
		return Result{Kind: KindNoMatch}
	}

	var res Result
	for i := range res.Groups {
		lo, hi := idx[2*i+2], idx[2*i+3]
		if lo < 0 {
			continue
		}
		res.Groups[i] = Group{Value: input[lo:hi], Present: true}
	}

	// Group 3 participates exactly when the full alternative matched.
	if res.Groups[2].Present {
		res.Kind = KindFull
		res.Owner = res.Groups[0].Value
		res.Repo = res.Groups[1].Value
		res.Number = res.Groups[2].Value
		return res
	}

	res.Kind = KindShort
	res.Owner = res.Groups[3].Value
	res.Repo = res.Groups[4].Value
	res.Number = res.Groups[5].Value
	return res
}

package puzzle

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind tags the outcome of classifying a raw chat message.
type Kind int

const (
	Ignored Kind = iota
	GameResult
	Command
)

// Parsed is the tagged union produced by Classify. Exactly the fields for
// the active Kind are meaningful.
type Parsed struct {
	Kind Kind

	// GameResult fields
	PuzzleNumber int
	Attempts     int // 1-6 on a solve; 0 when Failed
	Failed       bool

	// Command fields
	Command string
	Arg     string
}

// Brand labels that mark a share message as a game result. Matching is
// case-insensitive.
var brandLabels = []string{"Wordle", "Daily Wordle"}

var resultRe = buildResultRe()

func buildResultRe() *regexp.Regexp {
	quoted := make([]string, len(brandLabels))
	for i, l := range brandLabels {
		quoted[i] = regexp.QuoteMeta(l)
	}
	// e.g. "Wordle 1,581 4/6" or "wordle 209 X/6"
	return regexp.MustCompile(`(?i)(?:` + strings.Join(quoted, "|") + `)\s+(\d[\d,]*)\s+([1-6Xx])/6`)
}

// Commands that take no argument. Matching is case-sensitive and requires
// the trimmed message to equal the token exactly.
var bareCommands = map[string]bool{
	"/current":        true,
	"/total":          true,
	"/all":            true,
	"/pending":        true,
	"/resetConfirmed": true,
	"/word":           true,
	"/minu":           true,
}

// Commands that take a single trailing argument.
var argCommands = map[string]bool{
	"/addword": true,
	"/status":  true,
}

// Classify determines whether raw message text is a game-result submission,
// a known command, or chatter. It is a pure function: no store access, no
// natural-language understanding, just text matching.
func Classify(text string) Parsed {
	trimmed := strings.TrimSpace(text)

	if m := resultRe.FindStringSubmatch(trimmed); m != nil {
		numStr := strings.ReplaceAll(m[1], ",", "")
		n, err := strconv.Atoi(numStr)
		if err != nil {
			return Parsed{Kind: Ignored}
		}
		if strings.EqualFold(m[2], "X") {
			return Parsed{Kind: GameResult, PuzzleNumber: n, Failed: true}
		}
		attempts, _ := strconv.Atoi(m[2])
		return Parsed{Kind: GameResult, PuzzleNumber: n, Attempts: attempts}
	}

	if bareCommands[trimmed] {
		return Parsed{Kind: Command, Command: trimmed}
	}

	if name, arg, ok := strings.Cut(trimmed, " "); ok && argCommands[name] {
		return Parsed{Kind: Command, Command: name, Arg: strings.TrimSpace(arg)}
	}
	// An arg command with its argument missing still routes to the command
	// so the handler can reply with a usage hint.
	if argCommands[trimmed] {
		return Parsed{Kind: Command, Command: trimmed}
	}

	return Parsed{Kind: Ignored}
}

// Score converts a parsed game result to ledger points: 7 minus attempts
// for a solve, 0 for a fail.
func (p Parsed) Score() int {
	if p.Failed {
		return 0
	}
	return 7 - p.Attempts
}

package quiz

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

func isMaskable(r rune) bool {
	return unicode.IsLetter(r)
}

// guessLetter grades a single-letter guess against the hidden name.
// Anything other than exactly one letter is ignored.
func (s RoundState) guessLetter() RoundState {
	if len(s.Inputs) == 0 || len(s.Mask) == 0 {
		return s
	}
	letter, ok := parseLetter(s.Inputs[0])
	if !ok {
		return s
	}

	next := s.clone()
	next.Inputs[0] = ""
	if !next.alreadyGuessed(letter) {
		next.Guessed = append(next.Guessed, letter)
	}

	found := false
	name := []rune(norm.NFC.String(next.Challenge.Items[0].Name))
	for i, r := range name {
		if isMaskable(r) && sameLetter(r, letter) {
			next.Mask[i] = r
			found = true
		}
	}

	if found {
		if next.maskComplete() {
			if next.Marks[0] != MarkCorrect {
				next.Marks[0] = MarkCorrect
				next.Score++
			}
			next.RoundOver = true
			next.Feedback = FeedbackCorrect
		} else {
			next.Feedback = FeedbackHit
		}
		return next
	}

	next.Attempts--
	if next.Attempts <= 0 {
		next.Attempts = 0
		next.Marks[0] = MarkIncorrect
		next.RoundOver = true
		next.Feedback = FeedbackWrong
		return next
	}
	next.Feedback = FeedbackMiss
	next.resetClock()
	return next
}

func (s RoundState) maskComplete() bool {
	for _, r := range s.Mask {
		if r == MaskRune {
			return false
		}
	}
	return true
}

func (s RoundState) alreadyGuessed(letter rune) bool {
	for _, g := range s.Guessed {
		if sameLetter(g, letter) {
			return true
		}
	}
	return false
}

package mastermind

import "github.com/rocketscienceinc/mastermind-backend/internal/entity"

// EvaluateGuess scores a guess against the secret with the classic
// two-pass rule.
//
// Pass one walks the positions in order: an exact match settles the
// position and consumes one occurrence of that color from the remaining
// multiset. Pass two walks the unsettled positions and consumes a
// remaining occurrence of the guessed color if one is left.
//
// Consuming by count, not position, is what prevents double-counting
// when the secret holds duplicate colors: Exact+Color never exceeds the
// code length, and no secret color is counted twice across both passes.
func EvaluateGuess(secret, guess []entity.Color) entity.Score {
	remaining := make(map[entity.Color]int, len(secret))
	for _, color := range secret {
		remaining[color]++
	}

	var score entity.Score

	settled := make([]bool, len(guess))
	for i := range guess {
		if guess[i] == secret[i] {
			score.Exact++
			settled[i] = true
			remaining[guess[i]]--
		}
	}

	for i := range guess {
		if settled[i] {
			continue
		}
		if remaining[guess[i]] > 0 {
			score.Color++
			remaining[guess[i]]--
		}
	}

	return score
}

// Package generator builds playground content.
package generator

import (
	"math/rand"
	"strings"
	"time"
	"unicode"
)

const sentencePunct = ".,;!?"

// Generator produces randomized lines of text.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with seed, or with the current time when
// seed is 0.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Lines builds count lines of minWords to maxWords words each. Each line is
// capitalized and may end with punctuation.
func (g *Generator) Lines(words []string, count, minWords, maxWords int) []string {
	if len(words) == 0 || count <= 0 {
		return nil
	}
	if minWords < 1 {
		minWords = 1
	}
	if maxWords < minWords {
		maxWords = minWords
	}
	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		n := minWords + g.rnd.Intn(maxWords-minWords+1)
		line := make([]string, 0, n)
		for j := 0; j < n; j++ {
			line = append(line, words[g.rnd.Intn(len(words))])
		}
		text := applyCaps(strings.Join(line, " "))
		text = applyPunct(g.rnd, text, 0.5, []rune(sentencePunct))
		lines = append(lines, text)
	}
	return lines
}

func applyCaps(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 {
		return word
	}
	if rnd.Float64() > punctPct {
		return word
	}
	punct := punctSet[rnd.Intn(len(punctSet))]
	return word + string(punct)
}

package game

import "golang.org/x/exp/rand"

// Language tags which side of a pair an item shows.
type Language int

const (
	LangTerm Language = iota
	LangTranslation
)

func (l Language) String() string {
	if l == LangTerm {
		return "term"
	}
	return "translation"
}

// Item is one collectible spawned for a round. Correct is set on exactly
// one item per round: the one whose text is the target's term in the term
// language. A filler distractor may share the target's text without being
// correct; only the flag scores.
type Item struct {
	Text    string
	Lang    Language
	Correct bool
	Pos     Cell
}

// Round is one prompt: the pair to find plus the items on the grid.
type Round struct {
	Target TermPair
	Items  []Item
}

// ItemAt returns the index of the first item occupying c, or -1. Placement
// keeps cells unique within a round, so "first" is only a tie-break on
// paper.
func (r Round) ItemAt(c Cell) int {
	for i := range r.Items {
		if r.Items[i].Pos == c {
			return i
		}
	}
	return -1
}

// Generator spawns rounds. It shares the session RNG so a seeded game
// replays identically.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// NewGenerator returns a generator for the given rules and RNG.
func NewGenerator(cfg Config, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// Generate draws a target differing from prev (when the pool allows) and
// places one correct item plus min(2+level, cap) distractors on free cells.
// Distractors alternate sources by index parity: even indices take wrong
// terms, odd indices take translations. An exhausted list falls back to the
// other; when both run dry the target's own term is reused as filler,
// unflagged. No two items share a cell and none lands on an occupied cell.
func (g *Generator) Generate(pool *Pool, prev *TermPair, level int, occupied map[Cell]bool) Round {
	target := pool.DrawExcluding(prev)

	occ := make(map[Cell]bool, len(occupied)+g.cfg.MaxDistractors+1)
	for c := range occupied {
		occ[c] = true
	}

	items := make([]Item, 0, g.cfg.MaxDistractors+1)
	if pos, ok := g.freeCell(occ); ok {
		occ[pos] = true
		items = append(items, Item{Text: target.Term, Lang: LangTerm, Correct: true, Pos: pos})
	}

	pairs := pool.Pairs()
	wrongTerms := make([]string, 0, len(pairs))
	translations := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if p.Term != target.Term {
			wrongTerms = append(wrongTerms, p.Term)
		}
		translations = append(translations, p.Translation)
	}
	g.rng.Shuffle(len(wrongTerms), func(i, j int) {
		wrongTerms[i], wrongTerms[j] = wrongTerms[j], wrongTerms[i]
	})
	g.rng.Shuffle(len(translations), func(i, j int) {
		translations[i], translations[j] = translations[j], translations[i]
	})

	count := g.cfg.DistractorCount(level)
	for i := 0; i < count; i++ {
		var text string
		lang := LangTerm
		fromTerms := i%2 == 0
		if fromTerms && len(wrongTerms) == 0 {
			fromTerms = false
		}
		if !fromTerms && len(translations) == 0 {
			fromTerms = len(wrongTerms) > 0
		}
		switch {
		case fromTerms:
			text = wrongTerms[len(wrongTerms)-1]
			wrongTerms = wrongTerms[:len(wrongTerms)-1]
		case len(translations) > 0:
			text = translations[len(translations)-1]
			translations = translations[:len(translations)-1]
			lang = LangTranslation
		default:
			// Both lists exhausted: duplicate-text filler, never flagged.
			text = target.Term
		}

		pos, ok := g.freeCell(occ)
		if !ok {
			break
		}
		occ[pos] = true
		items = append(items, Item{Text: text, Lang: lang, Pos: pos})
	}

	return Round{Target: target, Items: items}
}

// freeCell picks a uniformly random unoccupied cell. After a bounded number
// of random probes it falls back to a scan from a random offset, so
// generation terminates even on a crowded grid. ok is false only when the
// grid is completely full.
func (g *Generator) freeCell(occupied map[Cell]bool) (Cell, bool) {
	total := g.cfg.GridW * g.cfg.GridH
	for i := 0; i < total; i++ {
		c := Cell{g.rng.Intn(g.cfg.GridW), g.rng.Intn(g.cfg.GridH)}
		if !occupied[c] {
			return c, true
		}
	}
	start := g.rng.Intn(total)
	for i := 0; i < total; i++ {
		n := (start + i) % total
		c := Cell{n % g.cfg.GridW, n / g.cfg.GridW}
		if !occupied[c] {
			return c, true
		}
	}
	return Cell{}, false
}

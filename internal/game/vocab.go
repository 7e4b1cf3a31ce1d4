package game

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/rand"
	"golang.org/x/text/unicode/norm"
)

// TermPair is one vocabulary entry: the term to find and its translation.
// Pairs compare by value; a duplicate entry is a distinct pool member.
type TermPair struct {
	Term        string
	Translation string
}

// ErrEmptyPool is returned when a pool is constructed with no pairs.
// Callers are expected to fall back to BuiltinVocab instead of failing.
var ErrEmptyPool = errors.New("vocabulary pool is empty")

// Pool holds the session's term pairs and draws targets from them.
type Pool struct {
	pairs []TermPair
	rng   *rand.Rand
}

// NewPool copies pairs into a pool driven by rng.
func NewPool(pairs []TermPair, rng *rand.Rand) (*Pool, error) {
	if len(pairs) == 0 {
		return nil, ErrEmptyPool
	}
	own := make([]TermPair, len(pairs))
	copy(own, pairs)
	return &Pool{pairs: own, rng: rng}, nil
}

// Size returns the number of pairs, counting duplicates.
func (p *Pool) Size() int {
	return len(p.pairs)
}

// Pairs returns a copy of the pool contents.
func (p *Pool) Pairs() []TermPair {
	out := make([]TermPair, len(p.pairs))
	copy(out, p.pairs)
	return out
}

// Shuffle reorders the pool in place.
func (p *Pool) Shuffle() {
	p.rng.Shuffle(len(p.pairs), func(i, j int) {
		p.pairs[i], p.pairs[j] = p.pairs[j], p.pairs[i]
	})
}

// DrawExcluding picks a pair uniformly at random among those that differ by
// value from prev. When every pair equals prev (single distinct member) the
// draw falls back to the whole pool. One pass over the pool, no retry loop.
func (p *Pool) DrawExcluding(prev *TermPair) TermPair {
	if prev == nil {
		return p.pairs[p.rng.Intn(len(p.pairs))]
	}
	candidates := make([]TermPair, 0, len(p.pairs))
	for _, pair := range p.pairs {
		if pair != *prev {
			candidates = append(candidates, pair)
		}
	}
	if len(candidates) == 0 {
		candidates = p.pairs
	}
	return candidates[p.rng.Intn(len(candidates))]
}

// LoadCSV reads term pairs from a headered CSV file. The header names the
// two columns either korean/english (the original file format) or
// term/translation. Rows with a blank side are skipped. All text is
// NFC-normalized so value equality is well-defined for Korean input.
func LoadCSV(path string) ([]TermPair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse vocabulary csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	termCol, transCol := -1, -1
	for i, h := range records[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "korean", "term":
			termCol = i
		case "english", "translation":
			transCol = i
		}
	}
	if termCol < 0 || transCol < 0 {
		return nil, fmt.Errorf("vocabulary csv %s: missing term/translation header", path)
	}

	var out []TermPair
	for _, rec := range records[1:] {
		if termCol >= len(rec) || transCol >= len(rec) {
			continue
		}
		term := cleanTerm(rec[termCol])
		trans := cleanTerm(rec[transCol])
		if term == "" || trans == "" {
			continue
		}
		out = append(out, TermPair{Term: term, Translation: trans})
	}
	return out, nil
}

func cleanTerm(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// BuiltinVocab is the fallback set used when no vocabulary file is
// available. Romanized Korean, 50 entries; the repeated sarang/love entry
// is intentional (duplicates are legal pool members).
var BuiltinVocab = []TermPair{
	{"mul", "water"},
	{"annyeong", "hello"},
	{"gamsahamnida", "thank you"},
	{"bap", "rice"},
	{"sarang", "love"},
	{"mianhae", "sorry"},
	{"nae", "yes"},
	{"ani", "no"},
	{"juseyo", "please"},
	{"eolmayo", "how much"},
	{"jip", "house"},
	{"sigan", "time"},
	{"saram", "person"},
	{"chingu", "friend"},
	{"gajok", "family"},
	{"hakgyo", "school"},
	{"hoesa", "office"},
	{"byeongwon", "hospital"},
	{"sijang", "market"},
	{"eumsik", "food"},
	{"oneul", "today"},
	{"naeil", "tomorrow"},
	{"eoje", "yesterday"},
	{"nalssi", "weather"},
	{"hana", "one"},
	{"dul", "two"},
	{"set", "three"},
	{"yeol", "ten"},
	{"baek", "hundred"},
	{"sarang", "love"},
	{"haengbok", "happiness"},
	{"seulpeum", "sadness"},
	{"hwa", "anger"},
	{"utda", "smile"},
	{"meokda", "to eat"},
	{"masida", "to drink"},
	{"gada", "to go"},
	{"oda", "to come"},
	{"jada", "to sleep"},
	{"gongwon", "park"},
	{"doseogwan", "library"},
	{"gyohoe", "church"},
	{"gage", "store"},
	{"eunhaeng", "bank"},
	{"ucheguk", "post office"},
	{"sikdang", "restaurant"},
	{"kape", "cafe"},
	{"gonghang", "airport"},
	{"bada", "sea"},
	{"chaek", "book"},
}

package sim

import "strings"

// OptionCount is the number of answer options per question.
const OptionCount = 3

// Question is one immutable trivia record. Pinned marks the entry that must
// surface within the first few draws after every shuffle.
type Question struct {
	Prompt  string
	Options [OptionCount]string
	Correct int
	Pinned  bool
}

// ValidateBank checks a question bank: non-empty, every question has a
// prompt and three options, a correct index in range, and at most one
// pinned entry.
func ValidateBank(bank []Question) error {
	if len(bank) == 0 {
		return bankError("BANK_EMPTY", "question bank has no questions")
	}

	pinned := -1
	for i, q := range bank {
		if strings.TrimSpace(q.Prompt) == "" {
			return bankError("BANK_PROMPT", "question %d has an empty prompt", i)
		}
		for j, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return bankError("BANK_OPTIONS", "question %d option %d is empty", i, j+1)
			}
		}
		if q.Correct < 0 || q.Correct >= OptionCount {
			return bankError("BANK_ANSWER", "question %d: correct index %d outside 0..%d", i, q.Correct, OptionCount-1)
		}
		if q.Pinned {
			if pinned >= 0 {
				return bankError("BANK_PINNED", "questions %d and %d are both pinned", pinned, i)
			}
			pinned = i
		}
	}
	return nil
}

// Deck hands out question indices in a shuffled, non-repeating order.
// The order is a stack: Draw pops from the end.
type Deck struct {
	bank   []Question
	order  []int
	pinned int // -1 when the bank has no pinned entry
	window int
	rng    Rand
}

// NewDeck validates the bank and returns a shuffled deck. window is the
// number of trailing order slots the pinned question is moved into.
func NewDeck(bank []Question, window int, rng Rand) (*Deck, error) {
	if err := ValidateBank(bank); err != nil {
		return nil, err
	}

	d := &Deck{
		bank:   append([]Question(nil), bank...),
		pinned: -1,
		window: max(1, window),
		rng:    rng,
	}
	for i, q := range d.bank {
		if q.Pinned {
			d.pinned = i
		}
	}
	d.Shuffle()
	return d, nil
}

// Shuffle resets the order to a random permutation of every index, then
// swaps the pinned index into a uniformly random slot among the last
// min(window, size) positions, which are the next ones drawn.
func (d *Deck) Shuffle() {
	n := len(d.bank)
	d.order = d.order[:0]
	for i := 0; i < n; i++ {
		d.order = append(d.order, i)
	}
	d.rng.Shuffle(n, func(i, j int) {
		d.order[i], d.order[j] = d.order[j], d.order[i]
	})

	if d.pinned < 0 {
		return
	}

	current := 0
	for i, idx := range d.order {
		if idx == d.pinned {
			current = i
			break
		}
	}
	k := min(d.window, n)
	target := n - 1 - d.rng.Intn(k)
	d.order[current], d.order[target] = d.order[target], d.order[current]
}

// Draw pops the next question, reshuffling first if the order is exhausted.
func (d *Deck) Draw() (int, Question) {
	if len(d.order) == 0 {
		d.Shuffle()
	}
	last := len(d.order) - 1
	idx := d.order[last]
	d.order = d.order[:last]
	return idx, d.bank[idx]
}

// Remaining returns how many draws are left before the next reshuffle.
func (d *Deck) Remaining() int {
	return len(d.order)
}

// Size returns the number of questions in the bank.
func (d *Deck) Size() int {
	return len(d.bank)
}

// Order returns a copy of the pending draw order; the last entry is drawn next.
func (d *Deck) Order() []int {
	return append([]int(nil), d.order...)
}

// PinnedIndex returns the pinned question's index, or -1.
func (d *Deck) PinnedIndex() int {
	return d.pinned
}

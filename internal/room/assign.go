package room

import (
	"math/rand"
	"sync"
	"time"

	"spy-room/internal/pool"
)

// Assigner partitions a participant set into spies and informed players and
// computes each participant's visible content for one round.
type Assigner struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewAssigner() *Assigner {
	return &Assigner{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Assign computes the content map for one round. It covers exactly the
// given participants. Fails with ErrInvalidConfig when the spy count does
// not leave at least one informed participant or when the keyword pool is
// too small for one truth plus cfg.NumFalses decoys; nothing is partially
// assigned on failure.
func (a *Assigner) Assign(participants []string, topics []pool.Topic, cfg RoundConfig) (map[string]Assignment, error) {
	if cfg.NumSpies < 1 || cfg.NumSpies >= len(participants) || cfg.NumFalses < 0 {
		return nil, ErrInvalidConfig
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	keywords := a.candidatesLocked(topics, cfg.Mix)
	if len(keywords) < 1+cfg.NumFalses {
		return nil, ErrInvalidConfig
	}
	a.rnd.Shuffle(len(keywords), func(i, j int) {
		keywords[i], keywords[j] = keywords[j], keywords[i]
	})
	truth := keywords[0]
	decoys := keywords[1 : 1+cfg.NumFalses]

	order := make([]string, len(participants))
	copy(order, participants)
	a.rnd.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	assignments := make(map[string]Assignment, len(order))
	for i, id := range order {
		if i < cfg.NumSpies {
			// the truth hides among the falses, indistinguishable
			falses := append([]string{truth}, decoys...)
			a.shuffleLocked(falses)
			assignments[id] = Assignment{Truth: "", Falses: falses}
			continue
		}
		falses := make([]string, len(decoys))
		copy(falses, decoys)
		// independent shuffle per participant so ordering leaks nothing
		a.shuffleLocked(falses)
		assignments[id] = Assignment{Truth: truth, Falses: falses}
	}
	return assignments, nil
}

func (a *Assigner) candidatesLocked(topics []pool.Topic, mix bool) []string {
	if len(topics) == 0 {
		return nil
	}
	if mix {
		var all []string
		for _, t := range topics {
			all = append(all, t.Keywords...)
		}
		return all
	}
	picked := topics[a.rnd.Intn(len(topics))]
	out := make([]string, len(picked.Keywords))
	copy(out, picked.Keywords)
	return out
}

func (a *Assigner) shuffleLocked(s []string) {
	a.rnd.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

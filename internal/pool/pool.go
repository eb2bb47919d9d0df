package pool

import "context"

// Topic is one themed pool of candidate keywords for a round.
type Topic struct {
	Name     string
	Keywords []string
}

// Source supplies topic pools. Implementations must be safe for
// concurrent use; the returned slices are owned by the caller.
type Source interface {
	Topics(ctx context.Context) ([]Topic, error)
}

// StaticSource serves a fixed set of topics from memory.
type StaticSource struct {
	topics []Topic
}

func NewStaticSource(topics []Topic) *StaticSource {
	return &StaticSource{topics: topics}
}

// Builtin returns the topic pools the server ships with, used whenever no
// external question bank is configured.
func Builtin() *StaticSource {
	return NewStaticSource(builtinTopics)
}

func (s *StaticSource) Topics(_ context.Context) ([]Topic, error) {
	out := make([]Topic, len(s.topics))
	for i, t := range s.topics {
		kws := make([]string, len(t.Keywords))
		copy(kws, t.Keywords)
		out[i] = Topic{Name: t.Name, Keywords: kws}
	}
	return out, nil
}

var builtinTopics = []Topic{
	{
		Name: "food",
		Keywords: []string{
			"ramen", "sushi", "taco", "pizza", "curry", "dumpling",
			"croissant", "paella", "pho", "falafel", "lasagna", "bibimbap",
		},
	},
	{
		Name: "places",
		Keywords: []string{
			"airport", "library", "aquarium", "casino", "lighthouse",
			"subway", "vineyard", "observatory", "harbor", "stadium",
			"greenhouse", "planetarium",
		},
	},
	{
		Name: "jobs",
		Keywords: []string{
			"surgeon", "locksmith", "astronaut", "beekeeper", "notary",
			"plumber", "archivist", "falconer", "barista", "diver",
			"auctioneer", "cartographer",
		},
	},
	{
		Name: "animals",
		Keywords: []string{
			"octopus", "pangolin", "heron", "wombat", "gecko", "narwhal",
			"lemur", "badger", "mantis", "axolotl", "puffin", "capuchin",
		},
	},
	{
		Name: "things",
		Keywords: []string{
			"umbrella", "typewriter", "compass", "lantern", "hourglass",
			"telescope", "accordion", "thermos", "stapler", "kaleidoscope",
			"metronome", "corkscrew",
		},
	},
}

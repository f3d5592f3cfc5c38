package lemma

import (
	"strings"

	"github.com/heartmarshall/vocabkit/internal/domain"
	"github.com/heartmarshall/vocabkit/internal/service/caption"
)

// group collects the evidence of every surface form sharing one lemma.
type group struct {
	lemma     string
	captions  *caption.Bounded[domain.Caption]
	externals *caption.Bounded[domain.ExternalCaption]
	sentences *caption.Bounded[string]
}

func newGroup(lemma string) *group {
	return &group{
		lemma:     lemma,
		captions:  caption.NewBounded[domain.Caption](caption.Limit),
		externals: caption.NewBounded[domain.ExternalCaption](caption.Limit),
		sentences: caption.NewBounded[string](caption.Limit),
	}
}

func (g *group) collect(w domain.Word, batch bool) {
	if batch {
		g.externals.Add(w.ExternalCaptions...)
	} else {
		g.captions.Add(w.Captions...)
	}
	g.sentences.Add(w.Sentences()...)
}

// apply attaches the collected evidence to a copy of the canonical record.
func (g *group) apply(record domain.Word, batch bool) domain.Word {
	out := record.Clone()
	out.Captions = nil
	out.ExternalCaptions = nil
	if batch {
		caption.AppendExternal(&out, g.externals.Items()...)
	} else {
		caption.AppendCaptions(&out, g.captions.Items()...)
	}
	if sentences := g.sentences.Items(); len(sentences) > 0 {
		out.POS = strings.Join(sentences, "\n")
	}
	return out
}

// groups keeps lemma groups in first-seen order.
type groups struct {
	order []string
	byKey map[string]*group
}

func newGroups() *groups {
	return &groups{byKey: make(map[string]*group)}
}

func (gs *groups) add(lemma string, w domain.Word, batch bool) {
	key := domain.WordKey(lemma)
	g, ok := gs.byKey[key]
	if !ok {
		g = newGroup(lemma)
		gs.byKey[key] = g
		gs.order = append(gs.order, key)
	}
	g.collect(w, batch)
}

// lemmas returns the distinct lemma spellings in first-seen order.
func (gs *groups) lemmas() []string {
	out := make([]string, len(gs.order))
	for i, key := range gs.order {
		out[i] = gs.byKey[key].lemma
	}
	return out
}

package furigana

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Resolver finds the furigana of dictionary entries.
//
// Solvers are consulted in tiers of descending priority. As soon as a tier
// produced at least one valid solution, lower tiers are skipped. An entry is
// resolved if the resulting solution set has exactly one member.
//
// A Resolver does not change after construction and may be used by several
// goroutines at once.
type Resolver struct {
	res        *ResourceSet
	withNanori bool
	strict     bool
	honorifics []honorific
}

type honorific struct {
	prefix      rune
	substitutes []string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithNanori makes kanji readings include name readings. Use it for name
// dictionaries like JMnedict.
func WithNanori() Option {
	return func(r *Resolver) {
		r.withNanori = true
	}
}

// WithStrict decides what happens to solver output failing the solution
// check. Strict resolvers (the default) return ErrMalformedCandidate, others
// drop the candidate and trace an error.
func WithStrict(strict bool) Option {
	return func(r *Resolver) {
		r.strict = strict
	}
}

// WithHonorific registers a prefix character which, if an entry starting
// with it cannot be solved, is replaced by each of the substitutes in turn.
// Resolvers start out with 御 replaced by お and ご. Empty substitutes are
// ignored.
func WithHonorific(prefix rune, substitutes ...string) Option {
	substitutes = slices.DeleteFunc(slices.Clone(substitutes), func(s string) bool { return s == "" })
	return func(r *Resolver) {
		for i, h := range r.honorifics {
			if h.prefix == prefix {
				r.honorifics[i].substitutes = substitutes
				return
			}
		}
		r.honorifics = append(r.honorifics, honorific{prefix: prefix, substitutes: substitutes})
	}
}

// NewResolver creates a resolver on top of a resource set. The resource set
// is frozen.
func NewResolver(res *ResourceSet, opts ...Option) *Resolver {
	assert(res != nil, "resolver needs a resource set")
	res.Freeze()
	r := &Resolver{
		res:        res,
		strict:     true,
		honorifics: []honorific{{prefix: '御', substitutes: []string{"お", "ご"}}},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resources returns the (frozen) resource set of the resolver.
func (r *Resolver) Resources() *ResourceSet {
	return r.res
}

// Resolve finds all valid solutions of the best tier for entry e. An entry
// which no solver can handle results in an empty set. The error is non-nil
// only for strict resolvers meeting a malformed candidate.
func (r *Resolver) Resolve(e Entry) (*SolutionSet, error) {
	if e.IsEmpty() {
		return NewSolutionSet(e), nil
	}
	set, err := r.process(e)
	if err != nil || set.Len() > 0 {
		return set, err
	}
	lead := []rune(e.Orthography)[0]
	for _, h := range r.honorifics {
		if h.prefix != lead {
			continue
		}
		for _, sub := range h.substitutes {
			substituted := Entry{
				Orthography:   sub + strings.TrimPrefix(e.Orthography, string(lead)),
				Pronunciation: e.Pronunciation,
			}
			tracer().Debugf("%s: retrying as %s", e, substituted)
			retry, err := r.process(substituted)
			if err != nil {
				return set, err
			}
			if retry.Len() > 0 {
				return retry.retag(e, sub), nil
			}
		}
	}
	return set, nil
}

// process runs the solvers tier by tier.
func (r *Resolver) process(e Entry) (*SolutionSet, error) {
	set := NewSolutionSet(e)
	j := newJob(e, r.res, r.withNanori)
	priority := solvers[0].priority
	for _, s := range solvers {
		if s.priority < priority {
			if set.Len() > 0 {
				break
			}
			priority = s.priority
		}
		for _, candidate := range s.solve(j) {
			if set.Add(candidate) {
				continue
			}
			if r.strict {
				return set, fmt.Errorf("%w: solver %s produced %s", ErrMalformedCandidate, s.name, candidate)
			}
			tracer().Errorf("solver %s produced malformed candidate %s", s.name, candidate)
		}
	}
	tracer().Debugf("%s: %d solution(s)", e, set.Len())
	return set, nil
}

// ResolveMany resolves a sequence of entries. The result has one solution
// set per entry, in input order.
func (r *Resolver) ResolveMany(entries []Entry) ([]*SolutionSet, error) {
	sets := make([]*SolutionSet, 0, len(entries))
	for _, e := range entries {
		set, err := r.Resolve(e)
		if err != nil {
			return sets, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// All resolves the entries of a sequence lazily, yielding one solution set
// per entry in input order.
func (r *Resolver) All(entries iter.Seq[Entry]) iter.Seq2[*SolutionSet, error] {
	return func(yield func(*SolutionSet, error) bool) {
		for e := range entries {
			if !yield(r.Resolve(e)) {
				return
			}
		}
	}
}

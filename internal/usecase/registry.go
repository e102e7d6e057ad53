package usecase

import (
	"sort"

	"github.com/totegamma/recognizer"
	"github.com/totegamma/recognizer/internal/domain"
)

// Recognizer pairs pattern metadata with the validator for the same entity.
type Recognizer struct {
	Definition recognizer.Definition
	Validator  recognizer.Validator
}

type Registry struct {
	recognizers map[string]Recognizer
}

// NewRegistry indexes recognizers by validator entity. Later entries win.
func NewRegistry(recognizers ...Recognizer) *Registry {
	r := &Registry{recognizers: make(map[string]Recognizer, len(recognizers))}
	for _, rec := range recognizers {
		r.recognizers[rec.Validator.Entity()] = rec
	}
	return r
}

func (r *Registry) Get(entity string) (Recognizer, error) {
	rec, ok := r.recognizers[entity]
	if !ok {
		return Recognizer{}, domain.NotFoundError{Resource: "entity " + entity}
	}
	return rec, nil
}

// Definitions returns every definition ordered by entity name.
func (r *Registry) Definitions() []recognizer.Definition {
	defs := make([]recognizer.Definition, 0, len(r.recognizers))
	for _, rec := range r.recognizers {
		defs = append(defs, rec.Definition)
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Entity < defs[j].Entity
	})
	return defs
}

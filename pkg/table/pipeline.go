package table

import "context"

// Transform is one step over a Table. Steps may mutate columns in place
// or return a new table (filters and group-bys do the latter).
type Transform interface {
	Name() string
	Apply(ctx context.Context, t *Table) (*Table, error)
}

// Pipeline composes a sequence of Transforms.
type Pipeline struct {
	steps []Transform
}

func NewPipeline() *Pipeline { return &Pipeline{} }

func (p *Pipeline) Add(t Transform) *Pipeline {
	p.steps = append(p.steps, t)
	return p
}

func (p *Pipeline) Run(ctx context.Context, t *Table) (*Table, error) {
	cur := t
	for _, step := range p.steps {
		var err error
		cur, err = step.Apply(ctx, cur)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

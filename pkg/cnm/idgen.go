package cnm

// IdGenerator hands out monotonically increasing community ids. Ids start
// at 1, increment by 1, and are never reused even after the community they
// named is retired by a merge.
type IdGenerator struct {
	next int
}

// NewIdGenerator returns an IdGenerator whose first id is 1.
func NewIdGenerator() *IdGenerator {
	return &IdGenerator{next: 1}
}

// Next returns the next id and advances the generator.
func (g *IdGenerator) Next() int {
	id := g.next
	g.next++
	return id
}

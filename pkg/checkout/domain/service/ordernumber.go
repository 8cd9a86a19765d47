package service

import (
	"fmt"
	"math/rand"
	"sync/atomic"
)

const (
	orderNumberMin   = 100000
	orderNumberRange = 900000
)

// RandomOrderNumbers draws ORD-100000..ORD-999999 with no collision avoidance.
type RandomOrderNumbers struct{}

func (RandomOrderNumbers) Next() string {
	return fmt.Sprintf("ORD-%d", orderNumberMin+rand.Intn(orderNumberRange))
}

// SequentialOrderNumbers is monotonic and wraps after 900000 numbers.
type SequentialOrderNumbers struct {
	counter atomic.Uint64
}

func NewSequentialOrderNumbers(start uint64) *SequentialOrderNumbers {
	g := &SequentialOrderNumbers{}
	g.counter.Store(start)
	return g
}

func (g *SequentialOrderNumbers) Next() string {
	n := g.counter.Add(1) - 1
	return fmt.Sprintf("ORD-%d", orderNumberMin+n%orderNumberRange)
}

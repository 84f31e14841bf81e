// Package game holds the world state and the letter-to-target dispatch
// logic that consumes confirmed letters once per simulation tick.
package game

import (
	"math"
	"unicode"
)

// Vec2 is a 2D position or direction in world pixels.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the vector length.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Dist returns the Euclidean distance between two points.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Normalized returns a unit vector in v's direction, or the zero vector
// for a zero input.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// Tagged is the read-only capability the dispatcher needs from any
// targetable actor: a position, a liveness predicate, and the letter
// tag assigned at spawn time.
type Tagged interface {
	ID() string
	Pos() Vec2
	Alive() bool
	Letter() rune
}

// Pool is one of the two disjoint sets of taggable entities (ground
// enemies, flying entities). It is only ever touched on the simulation
// tick.
type Pool struct {
	entities []Tagged
}

// NewPool creates an empty Pool.
func NewPool() *Pool {
	return &Pool{}
}

// Add inserts an entity into the pool.
func (p *Pool) Add(e Tagged) {
	if e == nil {
		return
	}
	p.entities = append(p.entities, e)
}

// All returns the pool's entities, dead ones included.
func (p *Pool) All() []Tagged {
	return p.entities
}

// AliveCount returns the number of live entities.
func (p *Pool) AliveCount() int {
	n := 0
	for _, e := range p.entities {
		if e.Alive() {
			n++
		}
	}
	return n
}

// Clear removes all entities.
func (p *Pool) Clear() {
	p.entities = nil
}

// NearestByLetter finds the live entity whose letter matches (case
// insensitive) that is nearest to from. Liveness is part of the match
// predicate, so an entity that died earlier this tick is never selected.
func (p *Pool) NearestByLetter(letter rune, from Vec2) (Tagged, bool) {
	letter = unicode.ToUpper(letter)

	var nearest Tagged
	nearestDist := math.Inf(1)

	for _, e := range p.entities {
		if !e.Alive() || unicode.ToUpper(e.Letter()) != letter {
			continue
		}
		if d := from.Dist(e.Pos()); d < nearestDist {
			nearestDist = d
			nearest = e
		}
	}

	if nearest == nil {
		return nil, false
	}
	return nearest, true
}

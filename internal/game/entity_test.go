package game

import (
	"math"
	"testing"
)

func TestVec2Normalized(t *testing.T) {
	v := Vec2{X: 3, Y: 4}.Normalized()
	if math.Abs(v.Len()-1) > 1e-9 {
		t.Fatalf("expected unit length, got %v", v.Len())
	}
	if (Vec2{}).Normalized() != (Vec2{}) {
		t.Fatal("zero vector should normalize to zero")
	}
}

func TestPoolNearestByLetter(t *testing.T) {
	pool := NewPool()
	near := NewEnemy(EnemySlime, 'A', Vec2{X: 10})
	far := NewEnemy(EnemySlime, 'A', Vec2{X: 100})
	other := NewEnemy(EnemySkeleton, 'C', Vec2{X: 1})
	pool.Add(near)
	pool.Add(far)
	pool.Add(other)

	got, ok := pool.NearestByLetter('a', Vec2{})
	if !ok {
		t.Fatal("expected a match")
	}
	if got.ID() != near.ID() {
		t.Fatalf("expected nearest A at x=10, got %v", got.Pos())
	}

	if _, ok := pool.NearestByLetter('Z', Vec2{}); ok {
		t.Fatal("no Z in pool, expected no match")
	}
}

func TestPoolNearestSkipsDead(t *testing.T) {
	pool := NewPool()
	near := NewEnemy(EnemySlime, 'A', Vec2{X: 10})
	far := NewEnemy(EnemySlime, 'A', Vec2{X: 100})
	pool.Add(near)
	pool.Add(far)

	near.TakeDamage(EnemyMaxHealth)

	got, ok := pool.NearestByLetter('A', Vec2{})
	if !ok || got.ID() != far.ID() {
		t.Fatal("dead entity must never be selected")
	}
	if pool.AliveCount() != 1 {
		t.Fatalf("alive count = %d, want 1", pool.AliveCount())
	}
}

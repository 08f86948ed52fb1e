package core

import "testing"

func TestStreamsAreDeterministic(t *testing.T) {
	a := NewStreamRNG(11, 3)
	b := NewStreamRNG(11, 3)
	for i := 0; i < 64; i++ {
		if a.Bernoulli(0.5) != b.Bernoulli(0.5) {
			t.Fatalf("draw %d differs for identical seed and stream", i)
		}
	}
}

func TestBernoulliExtremes(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 256; i++ {
		if r.Bernoulli(0) {
			t.Fatal("p=0 must never succeed")
		}
		if !r.Bernoulli(1) {
			t.Fatal("p=1 must always succeed")
		}
	}
}

package rng

import "testing"

func TestNew_Determinism(t *testing.T) {
	s1 := New(123456789)
	s2 := New(123456789)

	if s1.Seed() != s2.Seed() {
		t.Fatalf("same seed produced different Seed(): %d vs %d", s1.Seed(), s2.Seed())
	}

	for i := 0; i < 100; i++ {
		v1 := s1.Random(0, 1000)
		v2 := s2.Random(0, 1000)
		if v1 != v2 {
			t.Fatalf("iteration %d: diverged: %d vs %d", i, v1, v2)
		}
	}
}

func TestNew_DifferentSeeds(t *testing.T) {
	s1 := New(1)
	s2 := New(2)

	same := true
	for i := 0; i < 20; i++ {
		if s1.Random(0, 1<<30) != s2.Random(0, 1<<30) {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical sequences (extremely unlikely)")
	}
}

func TestRandom_Bounds(t *testing.T) {
	s := New(42)
	for i := 0; i < 1000; i++ {
		v := s.Random(5, 10)
		if v < 5 || v >= 10 {
			t.Fatalf("Random(5,10) out of range: %d", v)
		}
	}
}

func TestRandom_PanicsOnEmptyRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Random(5,5) did not panic")
		}
	}()
	New(1).Random(5, 5)
}

func TestRandomEven(t *testing.T) {
	s := New(7)
	for i := 0; i < 500; i++ {
		v := s.RandomEven(2, 9)
		if v < 2 || v >= 9 || v%2 != 0 {
			t.Fatalf("RandomEven(2,9) produced %d", v)
		}
	}
}

func TestRandomEven_OddLowerBound(t *testing.T) {
	s := New(7)
	for i := 0; i < 100; i++ {
		v := s.RandomEven(3, 8)
		if v < 4 || v >= 8 || v%2 != 0 {
			t.Fatalf("RandomEven(3,8) produced %d", v)
		}
	}
}

func TestRandomEven_PanicsWhenNoEvenValue(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("RandomEven(3,4) did not panic")
		}
	}()
	New(1).RandomEven(3, 4)
}

func TestFloat64_Bounds(t *testing.T) {
	s := New(99)
	for i := 0; i < 1000; i++ {
		v := s.Float64()
		if v < 0.0 || v >= 1.0 {
			t.Fatalf("Float64 out of range: %f", v)
		}
	}
}

func TestChance_Determinism(t *testing.T) {
	s1 := New(5)
	s2 := New(5)
	for i := 0; i < 100; i++ {
		if s1.Chance(1, 6) != s2.Chance(1, 6) {
			t.Fatal("Chance diverged across identical seeds")
		}
	}
}

func TestShuffle_Determinism(t *testing.T) {
	a := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := append([]int(nil), a...)

	New(11).Shuffle(len(a), func(i, j int) { a[i], a[j] = a[j], a[i] })
	New(11).Shuffle(len(b), func(i, j int) { b[i], b[j] = b[j], b[i] })

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("position %d: shuffle not deterministic: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestWeightedChoice(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		want    int
	}{
		{"empty", []float64{}, -1},
		{"all zero", []float64{0, 0, 0}, -1},
		{"single", []float64{1.0}, 0},
		{"skewed", []float64{0.0, 10.0, 0.0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(1).WeightedChoice(tt.weights)
			if got != tt.want {
				t.Errorf("WeightedChoice() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWeightedChoice_PanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("WeightedChoice with negative weight did not panic")
		}
	}()
	New(1).WeightedChoice([]float64{1.0, -1.0})
}

func BenchmarkRandom(b *testing.B) {
	s := New(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Random(0, 100)
	}
}

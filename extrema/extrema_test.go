// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extrema

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeExample(t *testing.T) {
	obs := []Observation{
		{"X", 1, 5.0},
		{"X", 2, 9.0},
		{"Y", 1, 9.0},
		{"Y", 2, 3.0},
	}
	r := Compute(obs, []string{"X", "Y"})

	assert.Equal(t, []CategoryExtremum{
		{"X", 2, 9.0},
		{"Y", 1, 9.0},
	}, r.Categories)
	assert.Equal(t, GlobalExtremum{2, 9.0}, r.Global)
}

func TestComputeGlobalTieFirstCategoryWins(t *testing.T) {
	obs := []Observation{
		{"A", 4, 7.5},
		{"B", 16, 7.5},
	}

	r := Compute(obs, []string{"B", "A"})
	assert.Equal(t, GlobalExtremum{16, 7.5}, r.Global)

	r = Compute(obs, []string{"A", "B"})
	assert.Equal(t, GlobalExtremum{4, 7.5}, r.Global)
}

func TestComputeFirstOccurrenceWithinCategory(t *testing.T) {
	obs := []Observation{
		{"A", 8, 3},
		{"A", 2, 10},
		{"A", 1, 10},
		{"A", 64, 10},
	}
	r := Compute(obs, []string{"A"})
	got, ok := r.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, 2, got.X)
	assert.Equal(t, 10.0, got.Y)
}

func TestComputeAbsentCategories(t *testing.T) {
	obs := []Observation{{"A", 1, 2}, {"C", 1, 100}}
	r := Compute(obs, []string{"A", "B"})

	require.Len(t, r.Categories, 1)
	assert.Equal(t, "A", r.Categories[0].Category)
	_, ok := r.Lookup("B")
	assert.False(t, ok)
	_, ok = r.Lookup("C")
	assert.False(t, ok, "categories outside the order must be ignored")
	assert.Equal(t, GlobalExtremum{1, 2}, r.Global)
}

func TestComputeEmpty(t *testing.T) {
	r := Compute(nil, []string{"A", "B"})
	assert.Empty(t, r.Categories)
	assert.False(t, r.Found())
	assert.Equal(t, GlobalExtremum{}, r.Global)

	r = Compute([]Observation{{"A", 1, 1}}, nil)
	assert.Empty(t, r.Categories)
	assert.Equal(t, GlobalExtremum{}, r.Global)
}

func TestComputeNonPositiveNeverBeatsSentinel(t *testing.T) {
	r := Compute([]Observation{{"A", 3, -1}, {"A", 4, 0}}, []string{"A"})
	got, ok := r.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, CategoryExtremum{"A", 4, 0}, got)
	assert.Equal(t, GlobalExtremum{}, r.Global)
}

func TestComputeDuplicateOrder(t *testing.T) {
	r := Compute([]Observation{{"A", 1, 1}, {"B", 1, 2}}, []string{"A", "B", "A"})
	assert.Len(t, r.Categories, 2)
	assert.Equal(t, []string{"A", "B"}, []string{r.Categories[0].Category, r.Categories[1].Category})
}

func TestGroupPreservesInputOrder(t *testing.T) {
	obs := []Observation{
		{"B", 1, 1}, {"A", 4, 1}, {"B", 2, 1}, {"A", 2, 1},
	}
	series := Group(obs, []string{"A", "B", "Z"})
	require.Len(t, series, 2)
	assert.Equal(t, "A", series[0].Category)
	assert.Equal(t, []Observation{{"A", 4, 1}, {"A", 2, 1}}, series[0].Observations)
	assert.Equal(t, "B", series[1].Category)
	assert.Equal(t, []Observation{{"B", 1, 1}, {"B", 2, 1}}, series[1].Observations)
}

func TestComputeMatchesIndependentMax(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cats := []string{"O", "OR", "OB", "OBT"}
	for iter := 0; iter < 50; iter++ {
		var obs []Observation
		for i := 0; i < 40; i++ {
			obs = append(obs, Observation{
				Category: cats[rng.Intn(len(cats))],
				X:        1 << uint(rng.Intn(7)),
				// Few distinct values so ties are common.
				Y: float64(rng.Intn(10)) + 0.5,
			})
		}
		r := Compute(obs, cats)

		var wantGlobal GlobalExtremum
		for _, cat := range cats {
			first := -1
			for i, o := range obs {
				if o.Category != cat {
					continue
				}
				if first < 0 || o.Y > obs[first].Y {
					first = i
				}
			}
			got, ok := r.Lookup(cat)
			if first < 0 {
				assert.False(t, ok)
				continue
			}
			require.True(t, ok)
			assert.Equal(t, obs[first].Y, got.Y)
			assert.Equal(t, obs[first].X, got.X)
			if obs[first].Y > wantGlobal.Y {
				wantGlobal = GlobalExtremum{obs[first].X, obs[first].Y}
			}
		}
		assert.Equal(t, wantGlobal, r.Global)
	}
}

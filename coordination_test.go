/*
 * coordination_test.go, part of goclust.
 *
 * Copyright 2024 The goclust developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 */

package clust

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnected(t *testing.T) {
	a := at("Pb", 0, 0, 0)
	b := at("I", 3.2, 0, 0)
	assert.True(t, Connected(a, b, 3.2)) //exactly at the threshold counts
	assert.True(t, Connected(a, b, 3.3))
	assert.False(t, Connected(a, b, 3.1))
}

func TestCountCoordination(t *testing.T) {
	thresholds := map[Pair]float64{{Target: "Pb", Neighbor: "I"}: 3.2}

	t.Run("mean and std over targets", func(t *testing.T) {
		//The first Pb has both iodines in range (one exactly at the
		//threshold), the second has none.
		s := &Structure{Core: []*Atom{
			at("Pb", 0, 0, 0),
			at("Pb", 10, 0, 0),
			at("I", 3.0, 0, 0),
			at("I", 3.2, 0, 0),
		}}
		targets := s.Core[:2]
		stats := CountCoordination(s, targets, []string{"I"}, thresholds)
		cs, ok := stats[Pair{Target: "Pb", Neighbor: "I"}]
		require.True(t, ok)
		assert.InDelta(t, 1.0, cs.Mean, 1e-12)
		assert.InDelta(t, 1.0, cs.Std, 1e-12) //population std of {2, 0}
	})

	t.Run("shell atoms count as neighbors", func(t *testing.T) {
		s := &Structure{
			Core:  []*Atom{at("Pb", 0, 0, 0)},
			Shell: []*Atom{at("I", 2.0, 0, 0)},
		}
		stats := CountCoordination(s, s.Core, []string{"I"}, thresholds)
		assert.InDelta(t, 1.0, stats[Pair{Target: "Pb", Neighbor: "I"}].Mean, 1e-12)
	})

	t.Run("zero counts still reported", func(t *testing.T) {
		s := &Structure{Core: []*Atom{at("Pb", 0, 0, 0)}}
		stats := CountCoordination(s, s.Core, []string{"I", "S"}, thresholds)
		//both configured neighbors are present, at zero
		require.Contains(t, stats, Pair{Target: "Pb", Neighbor: "I"})
		require.Contains(t, stats, Pair{Target: "Pb", Neighbor: "S"})
		assert.Equal(t, CoordStat{}, stats[Pair{Target: "Pb", Neighbor: "S"}])
	})

	t.Run("thresholds are directional", func(t *testing.T) {
		//Only Pb->I has a threshold: the iodine target sees no neighbors
		//even though the lead one does.
		s := &Structure{Core: []*Atom{at("Pb", 0, 0, 0), at("I", 2.0, 0, 0)}}
		stats := CountCoordination(s, s.Core, []string{"Pb", "I"}, thresholds)
		assert.InDelta(t, 1.0, stats[Pair{Target: "Pb", Neighbor: "I"}].Mean, 1e-12)
		assert.InDelta(t, 0.0, stats[Pair{Target: "I", Neighbor: "Pb"}].Mean, 1e-12)
	})

	t.Run("an atom is not its own neighbor", func(t *testing.T) {
		s := &Structure{Core: []*Atom{at("Pb", 0, 0, 0)}}
		th := map[Pair]float64{{Target: "Pb", Neighbor: "Pb"}: 5.0}
		stats := CountCoordination(s, s.Core, []string{"Pb"}, th)
		assert.InDelta(t, 0.0, stats[Pair{Target: "Pb", Neighbor: "Pb"}].Mean, 1e-12)
	})

	t.Run("deterministic", func(t *testing.T) {
		s := &Structure{Core: []*Atom{
			at("Pb", 0, 0, 0), at("Pb", 3, 0, 0),
			at("I", 1.5, 0, 0), at("I", 1.5, 2, 0), at("I", 6, 0, 0),
		}}
		first := CountCoordination(s, s.Core[:2], []string{"I"}, thresholds)
		second := CountCoordination(s, s.Core[:2], []string{"I"}, thresholds)
		assert.Equal(t, first, second)
	})
}

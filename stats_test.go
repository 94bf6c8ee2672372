/*
 * stats_test.go, part of goclust.
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

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil)
	require.NotNil(t, stats)
	assert.Empty(t, stats.Sizes)
	assert.Empty(t, stats.BySize)
}

func TestAggregate(t *testing.T) {
	pbI := Pair{Target: "Pb", Neighbor: "I"}
	records := []*Record{
		{Path: "a.pdb", Size: 2, Volume: 10, HasVolume: true, Charge: 1,
			Coordination: CoordinationStats{pbI: {Mean: 4}}},
		{Path: "b.pdb", Size: 2, Volume: 12, HasVolume: true, Charge: 1,
			Coordination: CoordinationStats{pbI: {Mean: 6}}},
		{Path: "c.pdb", Size: 3, Volume: 9, HasVolume: true, Charge: -1,
			Coordination: CoordinationStats{pbI: {Mean: 5}}},
	}
	stats := Aggregate(records)

	t.Run("sizes ascending", func(t *testing.T) {
		assert.Equal(t, []int{2, 3}, stats.Sizes)
	})

	t.Run("per-size volume statistics", func(t *testing.T) {
		s2 := stats.BySize[2]
		require.NotNil(t, s2)
		assert.Equal(t, 2, s2.Count)
		assert.InDelta(t, 11.0, s2.MeanVolume, 1e-12)
		assert.InDelta(t, 1.0, s2.StdVolume, 1e-12) //population std of {10, 12}
		s3 := stats.BySize[3]
		require.NotNil(t, s3)
		assert.Equal(t, 1, s3.Count)
		assert.InDelta(t, 9.0, s3.MeanVolume, 1e-12)
		assert.InDelta(t, 0.0, s3.StdVolume, 1e-12)
	})

	t.Run("volume fractions", func(t *testing.T) {
		//total = 11*2 + 9*1 = 31
		assert.InDelta(t, 22.0/31.0, stats.BySize[2].VolumeFraction, 1e-12)
		assert.InDelta(t, 9.0/31.0, stats.BySize[3].VolumeFraction, 1e-12)
		total := stats.BySize[2].VolumeFraction + stats.BySize[3].VolumeFraction
		assert.InDelta(t, 1.0, total, 1e-12)
	})

	t.Run("phi times mean volume", func(t *testing.T) {
		assert.InDelta(t, (22.0/31.0)*11.0, stats.BySize[2].PhiVc, 1e-12)
		assert.InDelta(t, (9.0/31.0)*9.0, stats.BySize[3].PhiVc, 1e-12)
	})

	t.Run("mode is the largest fraction", func(t *testing.T) {
		assert.Equal(t, 2, stats.Mode)
	})

	t.Run("charge statistics", func(t *testing.T) {
		assert.InDelta(t, 1.0, stats.BySize[2].MeanCharge, 1e-12)
		assert.InDelta(t, 0.0, stats.BySize[2].StdCharge, 1e-12)
		assert.InDelta(t, -1.0, stats.BySize[3].MeanCharge, 1e-12)
	})

	t.Run("coordination means per bucket", func(t *testing.T) {
		assert.InDelta(t, 5.0, stats.BySize[2].Coordination[pbI], 1e-12)
		assert.InDelta(t, 5.0, stats.BySize[3].Coordination[pbI], 1e-12)
	})

	t.Run("count-weighted coordination", func(t *testing.T) {
		//(5*2 + 5*1) / 3
		assert.InDelta(t, 5.0, stats.WeightedCoordination[pbI], 1e-12)
	})
}

func TestAggregateOrderIndependent(t *testing.T) {
	records := []*Record{
		{Size: 2, Volume: 10, Charge: 1},
		{Size: 2, Volume: 12, Charge: 1},
		{Size: 3, Volume: 9, Charge: -1},
	}
	reversed := []*Record{records[2], records[1], records[0]}
	a := Aggregate(records)
	b := Aggregate(reversed)
	assert.Equal(t, a.Sizes, b.Sizes)
	assert.Equal(t, a.Mode, b.Mode)
	for _, size := range a.Sizes {
		assert.InDelta(t, a.BySize[size].MeanVolume, b.BySize[size].MeanVolume, 1e-12)
		assert.InDelta(t, a.BySize[size].VolumeFraction, b.BySize[size].VolumeFraction, 1e-12)
	}
}

func TestAggregateZeroVolumes(t *testing.T) {
	records := []*Record{
		{Size: 2, Volume: 0},
		{Size: 4, Volume: 0},
	}
	stats := Aggregate(records)
	//no volume at all: fractions stay zero instead of dividing by zero
	assert.Equal(t, 0.0, stats.BySize[2].VolumeFraction)
	assert.Equal(t, 0.0, stats.BySize[4].VolumeFraction)
	assert.Equal(t, 2, stats.Mode)
}

/*
 * stats.go, part of goclust.
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
	"sort"

	"gonum.org/v1/gonum/stat"
)

//SizeStats are the aggregated statistics of one cluster-size bucket.
//VolumeFraction is the scattering contribution of the bucket: the fraction
//of the summed cluster volume (mean volume times bucket count) that this
//size accounts for. PhiVc is that fraction times the mean volume, a
//size-weighted figure used to rank scattering relevance. Coordination
//holds, per pair, the mean over the bucket of the per-cluster mean counts.
type SizeStats struct {
	Size           int
	Count          int
	MeanVolume     float64
	StdVolume      float64
	MeanCharge     float64
	StdCharge      float64
	VolumeFraction float64
	PhiVc          float64
	Coordination   map[Pair]float64
}

//BatchStats is the size-binned aggregation of a whole batch. Mode is the
//cluster size with the largest volume fraction. WeightedCoordination holds
//per-pair coordination means weighted by the number of clusters of each
//size. Standard deviations are population standard deviations; within a
//bucket, volumes were appended in task-completion order, so the means and
//deviations are deterministic only up to floating-point summation order.
type BatchStats struct {
	Sizes                []int //ascending
	BySize               map[int]*SizeStats
	Mode                 int
	WeightedCoordination map[Pair]float64
}

//Aggregate bins the records by cluster size and computes the per-size and
//batch-level statistics. It is a pure, single-threaded read of the
//completed record collection: by the time it runs the worker pool has
//joined, so no locking is involved.
func Aggregate(records []*Record) *BatchStats {
	ret := &BatchStats{
		BySize:               make(map[int]*SizeStats),
		WeightedCoordination: make(map[Pair]float64),
	}
	if len(records) == 0 {
		return ret
	}
	volumes := make(map[int][]float64)
	chargeses := make(map[int][]float64)
	coords := make(map[int]map[Pair][]float64)
	for _, r := range records {
		volumes[r.Size] = append(volumes[r.Size], r.Volume)
		chargeses[r.Size] = append(chargeses[r.Size], r.Charge)
		if coords[r.Size] == nil {
			coords[r.Size] = make(map[Pair][]float64)
		}
		for pair, cs := range r.Coordination {
			coords[r.Size][pair] = append(coords[r.Size][pair], cs.Mean)
		}
	}
	for size := range volumes {
		ret.Sizes = append(ret.Sizes, size)
	}
	sort.Ints(ret.Sizes)

	totalVolume := 0.0
	for size, vols := range volumes {
		s := &SizeStats{
			Size:         size,
			Count:        len(vols),
			MeanVolume:   stat.Mean(vols, nil),
			StdVolume:    stat.PopStdDev(vols, nil),
			MeanCharge:   stat.Mean(chargeses[size], nil),
			StdCharge:    stat.PopStdDev(chargeses[size], nil),
			Coordination: make(map[Pair]float64),
		}
		for pair, means := range coords[size] {
			s.Coordination[pair] = stat.Mean(means, nil)
		}
		ret.BySize[size] = s
		totalVolume += s.MeanVolume * float64(s.Count)
	}
	best := -1.0
	for _, size := range ret.Sizes {
		s := ret.BySize[size]
		if totalVolume > 0 {
			s.VolumeFraction = s.MeanVolume * float64(s.Count) / totalVolume
		}
		s.PhiVc = s.VolumeFraction * s.MeanVolume
		if s.VolumeFraction > best {
			best = s.VolumeFraction
			ret.Mode = size
		}
	}
	//coordination numbers weighted by the cluster count of each size
	totalClusters := float64(len(records))
	for _, size := range ret.Sizes {
		s := ret.BySize[size]
		for pair, mean := range s.Coordination {
			ret.WeightedCoordination[pair] += mean * float64(s.Count) / totalClusters
		}
	}
	return ret
}

/*
 * coordination.go, part of goclust.
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
	"gonum.org/v1/gonum/stat"
)

//Connected returns whether two atoms lie within the threshold distance of
//each other. The threshold is inclusive: a pair exactly at the threshold
//counts.
func Connected(a, b *Atom, threshold float64) bool {
	return a.Coords.Sub(b.Coords).Norm() <= threshold
}

//CountCoordination computes, for each (target element, neighbor element)
//pair, the mean and population standard deviation of the neighbor count
//over the given target atoms. Every configured neighbor element is
//represented for every target element present, even when its counts are all
//zero. Thresholds are directional by (target, neighbor) key; a pair with no
//configured threshold never contributes, even if the reverse pair has one.
func CountCoordination(s *Structure, targets []*Atom, neighbors []string, thresholds map[Pair]float64) CoordinationStats {
	counts := make(map[Pair][]float64)
	all := s.AllAtoms()
	for _, at := range targets {
		perNeighbor := make(map[string]int, len(neighbors))
		for _, n := range neighbors {
			perNeighbor[n] = 0
		}
		for _, other := range all {
			if other == at {
				continue
			}
			if !isInString(neighbors, other.Symbol) {
				continue
			}
			pair := Pair{Target: at.Symbol, Neighbor: other.Symbol}
			threshold, ok := thresholds[pair]
			if !ok {
				continue
			}
			if Connected(at, other, threshold) {
				perNeighbor[other.Symbol]++
			}
		}
		for n, c := range perNeighbor {
			pair := Pair{Target: at.Symbol, Neighbor: n}
			counts[pair] = append(counts[pair], float64(c))
		}
	}
	stats := make(CoordinationStats, len(counts))
	for pair, c := range counts {
		mean := stat.Mean(c, nil)
		stats[pair] = CoordStat{Mean: mean, Std: stat.PopStdDev(c, nil)}
	}
	return stats
}

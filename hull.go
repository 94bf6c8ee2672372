/*
 * hull.go, part of goclust.
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
	"math"

	"github.com/golang/geo/r3"
	quickhull "github.com/markus-wa/quickhull-go/v2"
	log "github.com/sirupsen/logrus"
)

//hullVolume computes the volume enclosed by the convex hull of the given
//points. The hull faces come back triangulated with a consistent winding,
//so the signed tetrahedron volumes against the origin sum to the enclosed
//volume wherever the origin lies.
func hullVolume(points []r3.Vector) float64 {
	hull := new(quickhull.QuickHull).ConvexHull(points, true, false, 0)
	vol := 0.0
	for i := 0; i+2 < len(hull.Indices); i += 3 {
		a := hull.Vertices[hull.Indices[i]]
		b := hull.Vertices[hull.Indices[i+1]]
		c := hull.Vertices[hull.Indices[i+2]]
		vol += a.Dot(b.Cross(c))
	}
	return math.Abs(vol) / 6.0
}

//HullVolume estimates the cluster volume as the volume of the convex hull
//of all atom positions, core and shell. A cluster with fewer than four
//atoms cannot span a volume; that is a legitimate if uninteresting input,
//so it yields zero with a diagnostic rather than an error. Coplanar point
//sets likewise come out as (numerically) zero.
func HullVolume(s *Structure) float64 {
	atoms := s.AllAtoms()
	if len(atoms) < 4 {
		log.WithFields(log.Fields{"file": s.Path, "atoms": len(atoms)}).
			Info("not enough atoms for a convex hull, volume set to 0")
		return 0
	}
	points := make([]r3.Vector, len(atoms))
	for i, at := range atoms {
		points[i] = at.Coords
	}
	return hullVolume(points)
}

/*
 * envelope.go, part of goclust.
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
	log "github.com/sirupsen/logrus"
)

//typicalOxidation fixes the oxidation state used to pick an ionic radius
//for the connected-hull envelope. The map is deliberately small; an element
//outside it is a hard error, not a guess.
var typicalOxidation = map[string]float64{
	"Pb": 2,
	"I":  -1,
	"S":  -2,
	"O":  -2,
	"H":  1,
	"C":  4,
	"N":  -3,
}

//dodecahedronVertices returns the 20 vertices of a regular dodecahedron
//built from the golden ratio, normalized to unit radius.
func dodecahedronVertices() []r3.Vector {
	phi := (1 + math.Sqrt(5)) / 2
	ip := 1 / phi
	raw := []r3.Vector{
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1},
		{X: 0, Y: -ip, Z: -phi}, {X: 0, Y: ip, Z: -phi}, {X: 0, Y: -ip, Z: phi}, {X: 0, Y: ip, Z: phi},
		{X: -ip, Y: -phi, Z: 0}, {X: ip, Y: -phi, Z: 0}, {X: -ip, Y: phi, Z: 0}, {X: ip, Y: phi, Z: 0},
		{X: -phi, Y: 0, Z: -ip}, {X: phi, Y: 0, Z: -ip}, {X: -phi, Y: 0, Z: ip}, {X: phi, Y: 0, Z: ip},
	}
	norm := raw[0].Norm()
	for i := range raw {
		raw[i] = raw[i].Mul(1 / norm)
	}
	return raw
}

//outwardFacingPoints returns the dodecahedron vertices that face away from
//the geometric center, scaled by radius and moved to the atom position.
//Vertices orthogonal to the outward direction are discarded along with the
//inward ones.
func outwardFacingPoints(position r3.Vector, radius float64, center r3.Vector, vertices []r3.Vector) []r3.Vector {
	direction := position.Sub(center)
	n := direction.Norm()
	if n == 0 {
		//an atom sitting exactly on the centroid has no outward direction
		return nil
	}
	direction = direction.Mul(1 / n)
	points := make([]r3.Vector, 0, len(vertices)/2)
	for _, v := range vertices {
		if v.Dot(direction) > 0 {
			points = append(points, position.Add(v.Mul(radius)))
		}
	}
	return points
}

//geometricCenter returns the unweighted centroid of the atom positions.
func geometricCenter(atoms []*Atom) r3.Vector {
	var c r3.Vector
	for _, at := range atoms {
		c = c.Add(at.Coords)
	}
	return c.Mul(1 / float64(len(atoms)))
}

//ConnectedHullVolume estimates the cluster volume as the convex hull of
//outward-facing surface points generated on an ionic sphere around each
//atom. Unlike the plain ionic summation this models a connected envelope
//instead of disjoint spheres. The ionic radius of each atom is chosen by
//its typical oxidation state; an element without a tabulated oxidation
//state is a MissingDataError.
func ConnectedHullVolume(s *Structure, src PropertySource) (float64, error) {
	atoms := s.AllAtoms()
	if len(atoms) == 0 {
		return 0, &MissingDataError{What: "atoms for the connected hull"}
	}
	center := geometricCenter(atoms)
	vertices := dodecahedronVertices()
	radii := make(map[string]float64)
	points := make([]r3.Vector, 0, len(atoms)*len(vertices)/2)
	for _, at := range atoms {
		r, ok := radii[at.Symbol]
		if !ok {
			ox, known := typicalOxidation[at.Symbol]
			if !known {
				return 0, &MissingDataError{Symbol: at.Symbol, What: "typical oxidation state"}
			}
			var err error
			//any coordination will do here; the empty label matches the
			//first tabulated radius with this charge.
			r, err = src.IonicRadius(at.Symbol, ox, "")
			if err != nil {
				return 0, &MissingDataError{Symbol: at.Symbol, Charge: ox, What: "ionic radius"}
			}
			radii[at.Symbol] = r
		}
		points = append(points, outwardFacingPoints(at.Coords, r, center, vertices)...)
	}
	if len(points) < 4 {
		log.WithFields(log.Fields{"file": s.Path, "points": len(points)}).
			Info("not enough surface points for a connected hull, volume set to 0")
		return 0, nil
	}
	return hullVolume(points), nil
}

/*
 * scatter.go, part of goclust.
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
)

//avogadro is used to turn molar masses into grams per atom.
const avogadro = 6.022e23

//ScatteringVolume estimates the cluster volume from the coherent
//scattering cross section of each atom at the given X-ray energy. The
//tabulated cross section (cm2/g) is converted to an effective interaction
//cross section per atom in A2, an equivalent interaction radius is derived
//from area = pi*r^2, and the corresponding sphere volumes are summed over
//all atoms, core and shell. Cross sections and masses are cached per
//element, so each element is looked up once per cluster.
func ScatteringVolume(s *Structure, src PropertySource, energyEV float64) (float64, error) {
	perAtom := make(map[string]float64) //sphere volume per atom of each element
	total := 0.0
	for _, at := range s.AllAtoms() {
		v, ok := perAtom[at.Symbol]
		if !ok {
			sigma, err := src.CoherentCrossSection(at.Symbol, energyEV)
			if err != nil {
				return 0, &MissingDataError{Symbol: at.Symbol, What: "coherent cross section"}
			}
			mass, err := src.AtomicMass(at.Symbol)
			if err != nil {
				return 0, &MissingDataError{Symbol: at.Symbol, What: "atomic mass"}
			}
			//cm2/g -> A2/atom: 1 cm2 = 1e16 A2, mass/N_A grams per atom.
			area := sigma * 1e16 * (mass / avogadro)
			r := math.Sqrt(area / math.Pi)
			v = SphereVolume(r)
			perAtom[at.Symbol] = v
		}
		total += v
	}
	return total, nil
}

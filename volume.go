/*
 * volume.go, part of goclust.
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

//IonicVolume estimates the cluster volume by summing the sphere volumes of
//the ionic radii of all atoms, core and shell. Atoms are grouped by
//(element, tabulated charge); elements missing from the charge table are
//grouped under charge zero, matching the lenient grouping of the charge
//aggregator, but a group whose species has no radius entry is a hard
//MissingDataError rather than a zero contribution.
func IonicVolume(s *Structure, charges FormalChargeTable, radii RadiusLookup) (float64, error) {
	groups := make(map[radiusKey]int)
	for _, at := range s.AllAtoms() {
		key := radiusKey{Symbol: at.Symbol, Charge: charges[at.Symbol].Charge}
		groups[key]++
	}
	total := 0.0
	for key, count := range groups {
		entry := radii[key]
		if entry == nil {
			return 0, &MissingDataError{Symbol: key.Symbol, Charge: key.Charge, What: "radius entry"}
		}
		total += float64(count) * entry.Volume
	}
	return total, nil
}

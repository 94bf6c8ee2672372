/*
 * charge.go, part of goclust.
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

//ClusterCharge sums the tabulated formal charge over every atom of the
//structure, core and shell. Elements missing from the table contribute
//zero. This leniency is deliberate and is not shared by the volume
//estimators, which fail hard on missing reference data: an uncharged
//ligand atom is normal, an atom without a radius is not.
func ClusterCharge(s *Structure, charges FormalChargeTable) float64 {
	total := 0.0
	for _, at := range s.AllAtoms() {
		total += charges[at.Symbol].Charge
	}
	return total
}

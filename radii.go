/*
 * radii.go, part of goclust.
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

	log "github.com/sirupsen/logrus"
)

//radiusKey identifies one ionic species: an element with a formal charge.
type radiusKey struct {
	Symbol string
	Charge float64
}

//RadiusEntry holds the radius of an ionic species, in Angstroms, and the
//volume of the corresponding sphere. Covalent marks entries that fell back
//to the coordination-independent covalent radius.
type RadiusEntry struct {
	Radius   float64
	Volume   float64
	Covalent bool
}

//RadiusLookup caches one RadiusEntry per (element, charge) key. It is built
//once, before the worker pool fans out, and is read-only afterwards.
//Species for which no radius could be found have no entry at all; a missing
//entry is a hard error for the ionic-radius volume method, never a silent
//zero.
type RadiusLookup map[radiusKey]*RadiusEntry

//Entry returns the cached entry for the given species, or nil.
func (R RadiusLookup) Entry(symbol string, charge float64) *RadiusEntry {
	return R[radiusKey{Symbol: symbol, Charge: charge}]
}

//The crystallographic coordination labels used by ionic-radius tables.
var romanNumerals = map[int]string{
	1: "I", 2: "II", 3: "III", 4: "IV", 5: "V",
	6: "VI", 7: "VII", 8: "VIII", 9: "IX", 10: "X",
	11: "XI", 12: "XII", 13: "XIII", 14: "XIV", 15: "XV",
}

//RomanCoordination converts a numeric coordination number to the
//Roman-numeral label used in ionic-radius tables. It returns the empty
//string for coordinations outside 1-15.
func RomanCoordination(n int) string {
	return romanNumerals[n]
}

//SphereVolume returns the volume of a sphere of radius r.
func SphereVolume(r float64) float64 {
	return (4.0 / 3.0) * math.Pi * math.Pow(r, 3)
}

//BuildRadiusLookup derives the (element, charge) -> radius cache from the
//formal-charge table. For each species it looks up an ionic radius whose
//tabulated charge and coordination label match exactly; there is no
//interpolation across coordination numbers. If no exact match exists it
//falls back to the element's covalent radius. Species with neither radius
//get no entry. Entries with an invalid coordination number are skipped with
//a warning, as in practice they are typos in the caller's table.
func BuildRadiusLookup(charges FormalChargeTable, src PropertySource) RadiusLookup {
	lookup := make(RadiusLookup, len(charges))
	for symbol, fc := range charges {
		key := radiusKey{Symbol: symbol, Charge: fc.Charge}
		if _, ok := lookup[key]; ok {
			continue
		}
		roman := RomanCoordination(fc.Coordination)
		if roman == "" {
			log.WithFields(log.Fields{"element": symbol, "coordination": fc.Coordination}).
				Warn("invalid coordination number, species skipped")
			continue
		}
		r, err := src.IonicRadius(symbol, fc.Charge, roman)
		if err == nil {
			lookup[key] = &RadiusEntry{Radius: r, Volume: SphereVolume(r)}
			continue
		}
		//No exact ionic match; the covalent radius is coordination-independent.
		r, err = src.CovalentRadius(symbol)
		if err == nil {
			lookup[key] = &RadiusEntry{Radius: r, Volume: SphereVolume(r), Covalent: true}
			log.WithFields(log.Fields{"element": symbol, "charge": fc.Charge}).
				Debug("no ionic radius, using covalent radius")
			continue
		}
		log.WithFields(log.Fields{"element": symbol, "charge": fc.Charge}).
			Warn("no ionic or covalent radius found")
	}
	return lookup
}

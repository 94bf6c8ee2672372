/*
 * atomdata.go, part of goclust.
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

//Package atomdata is a built-in, read-only source of element reference
//data: electron counts, atomic masses, covalent radii, ionic radii by
//charge and coordination, and coherent scattering cross sections by
//energy. It implements the property-source interface of the root package;
//any other dataset can be swapped in behind that interface.
package atomdata

import (
	"fmt"
)

//Source serves the tabulated element data. The zero value is ready to use
//and safe for concurrent use; all tables are immutable.
type Source struct{}

//New returns a Source backed by the built-in tables.
func New() *Source {
	return &Source{}
}

//Atomic numbers, which for the neutral atom equal the electron count.
var atomicNumber = map[string]int{
	"H": 1, "He": 2, "Li": 3, "Be": 4, "B": 5, "C": 6, "N": 7, "O": 8,
	"F": 9, "Ne": 10, "Na": 11, "Mg": 12, "Al": 13, "Si": 14, "P": 15,
	"S": 16, "Cl": 17, "Ar": 18, "K": 19, "Ca": 20, "Sc": 21, "Ti": 22,
	"V": 23, "Cr": 24, "Mn": 25, "Fe": 26, "Co": 27, "Ni": 28, "Cu": 29,
	"Zn": 30, "Ga": 31, "Ge": 32, "As": 33, "Se": 34, "Br": 35, "Kr": 36,
	"Rb": 37, "Sr": 38, "Y": 39, "Zr": 40, "Nb": 41, "Mo": 42, "Ru": 44,
	"Rh": 45, "Pd": 46, "Ag": 47, "Cd": 48, "In": 49, "Sn": 50, "Sb": 51,
	"Te": 52, "I": 53, "Xe": 54, "Cs": 55, "Ba": 56, "La": 57, "Ce": 58,
	"W": 74, "Re": 75, "Os": 76, "Ir": 77, "Pt": 78, "Au": 79, "Hg": 80,
	"Tl": 81, "Pb": 82, "Bi": 83, "Th": 90, "U": 92,
}

//Standard atomic weights in g/mol.
var atomicMass = map[string]float64{
	"H": 1.008, "He": 4.0026, "Li": 6.94, "Be": 9.012, "B": 10.81,
	"C": 12.011, "N": 14.007, "O": 15.999, "F": 18.998, "Ne": 20.180,
	"Na": 22.990, "Mg": 24.305, "Al": 26.982, "Si": 28.085, "P": 30.974,
	"S": 32.06, "Cl": 35.45, "Ar": 39.948, "K": 39.098, "Ca": 40.078,
	"Ti": 47.867, "V": 50.942, "Cr": 51.996, "Mn": 54.938, "Fe": 55.845,
	"Co": 58.933, "Ni": 58.693, "Cu": 63.546, "Zn": 65.38, "Ga": 69.723,
	"Ge": 72.630, "As": 74.922, "Se": 78.971, "Br": 79.904, "Rb": 85.468,
	"Sr": 87.62, "Ag": 107.87, "Cd": 112.41, "In": 114.82, "Sn": 118.71,
	"Sb": 121.76, "Te": 127.60, "I": 126.904, "Cs": 132.905, "Ba": 137.33,
	"W": 183.84, "Pt": 195.08, "Au": 196.97, "Hg": 200.59, "Tl": 204.38,
	"Pb": 207.2, "Bi": 208.98, "Th": 232.04, "U": 238.03,
}

//Covalent radii in Angstroms, from Cordero et al., 2008
//(DOI:10.1039/B801115J). C is the sp3 radius; Fe, Co and Mn are the
//high-spin values.
var covalentRadius = map[string]float64{
	"H": 0.31, "C": 0.76, "O": 0.66, "N": 0.71, "P": 1.07, "S": 1.05,
	"Se": 1.2, "K": 2.03, "Ca": 1.76, "Mg": 1.41, "Cl": 1.02, "Na": 1.66,
	"Cu": 1.32, "Zn": 1.22, "Co": 1.5, "Fe": 1.52, "Mn": 1.61, "Cr": 1.39,
	"Si": 1.11, "Be": 0.96, "F": 0.57, "Br": 1.2, "I": 1.39, "Rb": 2.2,
	"Sr": 1.95, "Ag": 1.45, "Cd": 1.44, "Sn": 1.39, "Sb": 1.39, "Te": 1.38,
	"Cs": 2.44, "Ba": 2.15, "Pt": 1.36, "Au": 1.36, "Hg": 1.32, "Tl": 1.45,
	"Pb": 1.46, "Bi": 1.48,
}

//ionicEntry is one tabulated ionic radius: a charge, a Roman-numeral
//coordination label, and the crystal radius in picometers.
type ionicEntry struct {
	charge       float64
	coordination string
	radiusPm     float64
}

//Shannon effective ionic radii (1976), in pm, for the species this package
//is typically used with. The H+ value is an effective radius; the bare
//proton has no meaningful crystal radius.
var ionicRadii = map[string][]ionicEntry{
	"H":  {{1, "I", 25}},
	"C":  {{4, "IV", 15}, {4, "VI", 16}},
	"N":  {{-3, "IV", 146}, {5, "VI", 13}},
	"O":  {{-2, "II", 135}, {-2, "III", 136}, {-2, "IV", 138}, {-2, "VI", 140}, {-2, "VIII", 142}},
	"F":  {{-1, "II", 128.5}, {-1, "IV", 131}, {-1, "VI", 133}},
	"Na": {{1, "IV", 99}, {1, "VI", 102}, {1, "VIII", 118}},
	"Mg": {{2, "IV", 57}, {2, "VI", 72}, {2, "VIII", 89}},
	"S":  {{-2, "VI", 184}, {6, "VI", 29}},
	"Cl": {{-1, "VI", 181}},
	"K":  {{1, "VI", 138}, {1, "VIII", 151}, {1, "XII", 164}},
	"Ca": {{2, "VI", 100}, {2, "VIII", 112}, {2, "XII", 134}},
	"Mn": {{2, "VI", 83}, {3, "VI", 64.5}, {4, "VI", 53}},
	"Fe": {{2, "VI", 78}, {3, "VI", 64.5}},
	"Zn": {{2, "IV", 60}, {2, "VI", 74}},
	"Br": {{-1, "VI", 196}},
	"Sr": {{2, "VI", 118}, {2, "VIII", 126}, {2, "XII", 144}},
	"Ag": {{1, "IV", 100}, {1, "VI", 115}},
	"Cd": {{2, "IV", 78}, {2, "VI", 95}},
	"Sn": {{2, "VIII", 122}, {4, "VI", 69}},
	"I":  {{-1, "VI", 220}, {5, "VI", 95}},
	"Cs": {{1, "VI", 167}, {1, "VIII", 174}, {1, "XII", 188}},
	"Ba": {{2, "VI", 135}, {2, "VIII", 142}, {2, "XII", 161}},
	"Pb": {{2, "IV", 98}, {2, "VI", 119}, {2, "VIII", 129}, {2, "XII", 149}, {4, "VI", 77.5}},
	"Bi": {{3, "VI", 103}, {3, "VIII", 117}, {5, "VI", 76}},
}

//ElectronCount returns the number of electrons of the neutral atom.
func (s *Source) ElectronCount(symbol string) (int, error) {
	z, ok := atomicNumber[symbol]
	if !ok {
		return 0, fmt.Errorf("atomdata: no atomic number for %q", symbol)
	}
	return z, nil
}

//AtomicMass returns the standard atomic weight in g/mol.
func (s *Source) AtomicMass(symbol string) (float64, error) {
	m, ok := atomicMass[symbol]
	if !ok {
		return 0, fmt.Errorf("atomdata: no atomic mass for %q", symbol)
	}
	return m, nil
}

//CovalentRadius returns the covalent radius in Angstroms.
func (s *Source) CovalentRadius(symbol string) (float64, error) {
	r, ok := covalentRadius[symbol]
	if !ok {
		return 0, fmt.Errorf("atomdata: no covalent radius for %q", symbol)
	}
	return r, nil
}

//IonicRadius returns the Shannon ionic radius, in Angstroms, of the given
//species. Both the charge and the Roman-numeral coordination label must
//match a tabulated entry exactly; there is no interpolation between
//coordinations. An empty coordination label matches the first entry with
//the given charge.
func (s *Source) IonicRadius(symbol string, charge float64, coordination string) (float64, error) {
	for _, e := range ionicRadii[symbol] {
		if e.charge != charge {
			continue
		}
		if coordination == "" || e.coordination == coordination {
			return e.radiusPm / 100.0, nil //pm -> Angstrom
		}
	}
	return 0, fmt.Errorf("atomdata: no ionic radius for %s with charge %+g and coordination %q",
		symbol, charge, coordination)
}

/*
 * pdb.go, part of goclust.
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

//Package pdb loads cluster structures from PDB files, classifying atoms
//into core and shell groups by residue name. It implements the Loader
//interface of the root package. Files ending in .gz are decompressed
//transparently.
package pdb

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/klauspost/compress/gzip"

	clust "github.com/xscatter/goclust"
)

//Handler reads PDB files and splits their atoms into the core group (the
//cluster body) and the shell group (ligand/solvent) by residue name.
//Atoms belonging to neither list are ignored. A Handler is safe for
//concurrent use.
type Handler struct {
	coreResidues  []string
	shellResidues []string
}

//New returns a Handler with the given core and shell residue names.
func New(coreResidues, shellResidues []string) *Handler {
	return &Handler{coreResidues: coreResidues, shellResidues: shellResidues}
}

//Load reads one PDB file and returns the classified structure.
func (h *Handler) Load(path string) (*clust.Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pdb: %w", err)
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("pdb: %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}
	s, err := h.Read(r)
	if err != nil {
		return nil, fmt.Errorf("pdb: %s: %w", path, err)
	}
	s.Path = path
	return s, nil
}

//Read parses PDB text from r. Only ATOM and HETATM records are considered.
func (h *Handler) Read(r io.Reader) (*clust.Structure, error) {
	s := new(clust.Structure)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if !strings.HasPrefix(line, "ATOM") && !strings.HasPrefix(line, "HETATM") {
			continue
		}
		at, resname, err := parseAtomLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		switch {
		case isIn(h.coreResidues, resname):
			s.Core = append(s.Core, at)
		case isIn(h.shellResidues, resname):
			s.Shell = append(s.Shell, at)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

//parseAtomLine reads one ATOM/HETATM record by the fixed PDB columns. Not
//all writers fill every column, so spaces are trimmed liberally.
func parseAtomLine(line string) (*clust.Atom, string, error) {
	if len(line) < 54 {
		return nil, "", fmt.Errorf("truncated atom record")
	}
	name := strings.TrimSpace(line[12:16])
	resname := strings.TrimSpace(line[17:20])
	var coords [3]float64
	var err error
	for i, span := range [][2]int{{30, 38}, {38, 46}, {46, 54}} {
		coords[i], err = strconv.ParseFloat(strings.TrimSpace(line[span[0]:span[1]]), 64)
		if err != nil {
			return nil, "", fmt.Errorf("bad coordinate: %w", err)
		}
	}
	symbol := ""
	if len(line) >= 78 {
		symbol = normalizeSymbol(strings.TrimSpace(line[76:78]))
	}
	if symbol == "" {
		symbol = symbolFromName(name)
	}
	if symbol == "" {
		return nil, "", fmt.Errorf("can't determine the element of atom %q", name)
	}
	at := &clust.Atom{
		Symbol: symbol,
		Coords: r3.Vector{X: coords[0], Y: coords[1], Z: coords[2]},
	}
	return at, resname, nil
}

//normalizeSymbol turns "PB" or "pb" into "Pb".
func normalizeSymbol(sym string) string {
	if sym == "" {
		return ""
	}
	sym = strings.ToLower(sym)
	return strings.ToUpper(sym[:1]) + sym[1:]
}

//Two-letter elements that show up in cluster PDBs, so a name like "PB1"
//resolves to Pb rather than P.
var twoLetter = []string{"Pb", "Bi", "Cs", "Ba", "Br", "Cl", "Na", "Mg", "Ca",
	"Fe", "Zn", "Cd", "Sn", "Se", "Si", "Ag", "Sr"}

//symbolFromName guesses the element from a PDB atom name. It prefers
//two-letter symbols when the first two characters match one; otherwise the
//first letter is taken. Returns "" when no guess is possible.
func symbolFromName(name string) string {
	if name == "" {
		return ""
	}
	if len(name) >= 2 {
		two := normalizeSymbol(name[:2])
		if isIn(twoLetter, two) {
			return two
		}
	}
	c := name[:1]
	if c >= "A" && c <= "Z" {
		return c
	}
	return ""
}

func isIn(container []string, test string) bool {
	for _, v := range container {
		if v == test {
			return true
		}
	}
	return false
}

/*
 * pdb_test.go, part of goclust.
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

package pdb

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//atomLine renders one ATOM record with the fixed PDB columns.
func atomLine(serial int, name, resname string, x, y, z float64, element string) string {
	return fmt.Sprintf("ATOM  %5d %-4s %-3s A%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s",
		serial, name, resname, 1, x, y, z, 1.0, 0.0, element)
}

func samplePDB() string {
	lines := []string{
		"REMARK generated for testing",
		atomLine(1, "PB1", "PBI", 0, 0, 0, "PB"),
		atomLine(2, "I1", "PBI", 3.2, 0, 0, "I"),
		atomLine(3, "I2", "PBI", 0, 3.2, 0, "I"),
		atomLine(4, "S1", "DMS", 5, 5, 5, "S"),
		atomLine(5, "C1", "DMS", 6, 5, 5, "C"),
		atomLine(6, "O1", "HOH", 9, 9, 9, "O"), //neither core nor shell
		"TER",
		"END",
	}
	return strings.Join(lines, "\n") + "\n"
}

func TestRead(t *testing.T) {
	h := New([]string{"PBI"}, []string{"DMS"})
	s, err := h.Read(strings.NewReader(samplePDB()))
	require.NoError(t, err)

	t.Run("classification by residue", func(t *testing.T) {
		require.Len(t, s.Core, 3)
		require.Len(t, s.Shell, 2)
		assert.Equal(t, "Pb", s.Core[0].Symbol)
		assert.Equal(t, "I", s.Core[1].Symbol)
		assert.Equal(t, "S", s.Shell[0].Symbol)
	})
	t.Run("unlisted residues are dropped", func(t *testing.T) {
		for _, at := range s.AllAtoms() {
			assert.NotEqual(t, "O", at.Symbol)
		}
	})
	t.Run("coordinates", func(t *testing.T) {
		assert.InDelta(t, 3.2, s.Core[1].Coords.X, 1e-9)
		assert.InDelta(t, 3.2, s.Core[2].Coords.Y, 1e-9)
		assert.InDelta(t, 5.0, s.Shell[0].Coords.Z, 1e-9)
	})
}

func TestReadElementFallback(t *testing.T) {
	h := New([]string{"PBI"}, nil)
	//no element columns at all: the symbol comes from the atom name,
	//preferring the two-letter match over the bare first character
	line := atomLine(1, "PB1", "PBI", 1, 2, 3, "")[:54]
	s, err := h.Read(strings.NewReader(line + "\n"))
	require.NoError(t, err)
	require.Len(t, s.Core, 1)
	assert.Equal(t, "Pb", s.Core[0].Symbol)
}

func TestReadBadRecords(t *testing.T) {
	h := New([]string{"PBI"}, nil)
	t.Run("truncated atom record", func(t *testing.T) {
		_, err := h.Read(strings.NewReader("ATOM      1  PB1 PBI\n"))
		assert.Error(t, err)
	})
	t.Run("garbage coordinates", func(t *testing.T) {
		line := atomLine(1, "PB1", "PBI", 0, 0, 0, "PB")
		line = line[:30] + "  xx.xxx" + line[38:]
		_, err := h.Read(strings.NewReader(line + "\n"))
		assert.Error(t, err)
	})
}

func TestLoadGzip(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "cluster.pdb")
	packed := filepath.Join(dir, "cluster.pdb.gz")
	require.NoError(t, os.WriteFile(plain, []byte(samplePDB()), 0644))
	f, err := os.Create(packed)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(samplePDB()))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	h := New([]string{"PBI"}, []string{"DMS"})
	sp, err := h.Load(plain)
	require.NoError(t, err)
	sz, err := h.Load(packed)
	require.NoError(t, err)
	assert.Equal(t, plain, sp.Path)
	assert.Equal(t, packed, sz.Path)
	require.Equal(t, sp.Len(), sz.Len())
	for i := range sp.Core {
		assert.Equal(t, sp.Core[i].Symbol, sz.Core[i].Symbol)
		assert.Equal(t, sp.Core[i].Coords, sz.Core[i].Coords)
	}
}

func TestLoadMissingFile(t *testing.T) {
	h := New([]string{"PBI"}, nil)
	_, err := h.Load(filepath.Join(t.TempDir(), "nope.pdb"))
	assert.Error(t, err)
}

func TestSymbolFromName(t *testing.T) {
	cases := map[string]string{
		"PB1":  "Pb",
		"CS":   "Cs",
		"I1":   "I",
		"C2":   "C",
		"OW":   "O", //OW is water oxygen, not a two-letter element
		"1HB2": "",
	}
	for name, want := range cases {
		assert.Equal(t, want, symbolFromName(name), name)
	}
}

func TestNormalizeSymbol(t *testing.T) {
	assert.Equal(t, "Pb", normalizeSymbol("PB"))
	assert.Equal(t, "Pb", normalizeSymbol("pb"))
	assert.Equal(t, "I", normalizeSymbol("I"))
	assert.Equal(t, "", normalizeSymbol(""))
}

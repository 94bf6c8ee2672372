/*
 * volume_test.go, part of goclust.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClusterCharge(t *testing.T) {
	charges := FormalChargeTable{
		"Pb": {Charge: 2, Coordination: 6},
		"I":  {Charge: -1, Coordination: 6},
	}
	t.Run("sums formal charges", func(t *testing.T) {
		s := &Structure{Core: []*Atom{
			at("Pb", 0, 0, 0), at("Pb", 1, 0, 0),
			at("I", 2, 0, 0), at("I", 3, 0, 0), at("I", 4, 0, 0),
		}}
		//2*(+2) + 3*(-1)
		assert.InDelta(t, 1.0, ClusterCharge(s, charges), 1e-12)
	})
	t.Run("missing elements contribute zero", func(t *testing.T) {
		s := &Structure{
			Core:  []*Atom{at("Pb", 0, 0, 0)},
			Shell: []*Atom{at("C", 1, 0, 0), at("Xx", 2, 0, 0)},
		}
		assert.InDelta(t, 2.0, ClusterCharge(s, charges), 1e-12)
	})
	t.Run("empty structure", func(t *testing.T) {
		assert.Equal(t, 0.0, ClusterCharge(&Structure{}, charges))
	})
}

func TestIonicVolume(t *testing.T) {
	charges := FormalChargeTable{
		"Pb": {Charge: 2, Coordination: 6},
		"I":  {Charge: -1, Coordination: 6},
	}
	lookup := BuildRadiusLookup(charges, testSource{})

	t.Run("additive over atoms", func(t *testing.T) {
		s := &Structure{Core: []*Atom{
			at("Pb", 0, 0, 0),
			at("I", 3, 0, 0), at("I", -3, 0, 0),
		}}
		v, err := IonicVolume(s, charges, lookup)
		require.NoError(t, err)
		want := SphereVolume(1.19) + 2*SphereVolume(2.20)
		assert.InDelta(t, want, v, 1e-9)
	})
	t.Run("duplicating the cluster doubles the volume", func(t *testing.T) {
		single := &Structure{Core: []*Atom{at("Pb", 0, 0, 0), at("I", 3, 0, 0)}}
		double := &Structure{Core: []*Atom{
			at("Pb", 0, 0, 0), at("I", 3, 0, 0),
			at("Pb", 10, 0, 0), at("I", 13, 0, 0),
		}}
		v1, err := IonicVolume(single, charges, lookup)
		require.NoError(t, err)
		v2, err := IonicVolume(double, charges, lookup)
		require.NoError(t, err)
		assert.InDelta(t, 2*v1, v2, 1e-9)
	})
	t.Run("independent of geometry", func(t *testing.T) {
		near := &Structure{Core: []*Atom{at("Pb", 0, 0, 0), at("I", 0.1, 0, 0)}}
		far := &Structure{Core: []*Atom{at("Pb", 0, 0, 0), at("I", 100, 0, 0)}}
		vn, err := IonicVolume(near, charges, lookup)
		require.NoError(t, err)
		vf, err := IonicVolume(far, charges, lookup)
		require.NoError(t, err)
		assert.Equal(t, vn, vf)
	})
	t.Run("missing radius entry is an error", func(t *testing.T) {
		s := &Structure{Core: []*Atom{at("Pb", 0, 0, 0), at("Zz", 1, 0, 0)}}
		_, err := IonicVolume(s, charges, lookup)
		require.Error(t, err)
		assert.True(t, IsMissingData(err))
	})
}

/*
 * goclust.go, part of goclust.
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
	"fmt"
	"runtime"
	"strings"

	"github.com/golang/geo/r3"
)

//Atom is one atom of a cluster structure: a chemical symbol and a position
//in Angstroms. Atoms are immutable once loaded.
type Atom struct {
	Symbol string
	Coords r3.Vector
}

//Structure is one parsed structure file, with its atoms already classified
//into the primary cluster body (core) and the surrounding ligand/solvent
//atoms (shell). The classification is done by the loader, not here.
type Structure struct {
	Path  string
	Core  []*Atom
	Shell []*Atom
}

//AllAtoms returns the core and shell atoms as a single slice,
//core first. The atoms are shared with the structure, not copied.
func (S *Structure) AllAtoms() []*Atom {
	all := make([]*Atom, 0, len(S.Core)+len(S.Shell))
	all = append(all, S.Core...)
	all = append(all, S.Shell...)
	return all
}

//Len returns the total number of atoms in the structure.
func (S *Structure) Len() int {
	return len(S.Core) + len(S.Shell)
}

//Loader reads one structure file. Implementations live outside this
//package (see pdb). Load must be safe for concurrent use.
type Loader interface {
	Load(path string) (*Structure, error)
}

//PropertySource supplies read-only element reference data. Any dataset can
//back it; atomdata provides a built-in one. Radii are returned in Angstroms,
//cross sections in cm2/g, masses in g/mol. IonicRadius matches the tabulated
//charge and the Roman-numeral coordination label exactly; an empty label
//matches the first entry with the given charge. Implementations must be safe
//for concurrent use.
type PropertySource interface {
	ElectronCount(symbol string) (int, error)
	AtomicMass(symbol string) (float64, error)
	CovalentRadius(symbol string) (float64, error)
	IonicRadius(symbol string, charge float64, coordination string) (float64, error)
	CoherentCrossSection(symbol string, energyEV float64) (float64, error)
}

//FormalCharge is the tabulated oxidation-state charge of an element plus
//the reference coordination number used for ionic-radius lookups.
type FormalCharge struct {
	Charge       float64
	Coordination int
}

//FormalChargeTable maps element symbols to their formal charges. It is
//supplied by the caller. Elements missing from the table contribute zero to
//the cluster charge but make strict lookups (electron weights, ionic radii)
//fail; the asymmetry is deliberate.
type FormalChargeTable map[string]FormalCharge

//Pair identifies a directional (target element, neighbor element)
//combination. Thresholds are keyed by Pair and are not symmetric.
type Pair struct {
	Target   string
	Neighbor string
}

func (p Pair) String() string {
	return p.Target + "-" + p.Neighbor
}

//CoordStat holds the mean and population standard deviation of a
//coordination number over the target atoms of one cluster.
type CoordStat struct {
	Mean float64
	Std  float64
}

//CoordinationStats maps each configured pair to its statistics. Every
//configured neighbor element is present for every target element found,
//even if its counts are all zero.
type CoordinationStats map[Pair]CoordStat

//Record is the measurement of one successfully processed structure file.
//It is immutable once returned by a worker.
type Record struct {
	Path         string
	Size         int //number of target atoms
	Coordination CoordinationStats
	Volume       float64
	HasVolume    bool
	Rg           [3]float64 //principal radii of gyration, ellipsoid method only
	Charge       float64
}

//VolumeMethod selects one of the five volume estimators. The methods are
//mutually exclusive; exactly one is used per batch.
type VolumeMethod int

const (
	MethodIonicRadius VolumeMethod = iota
	MethodRadiusOfGyration
	MethodConvexHull
	MethodScattering
	MethodConnectedHull
)

var methodNames = map[VolumeMethod]string{
	MethodIonicRadius:      "ionic_radius",
	MethodRadiusOfGyration: "radius_of_gyration",
	MethodConvexHull:       "convex_hull",
	MethodScattering:       "scattering",
	MethodConnectedHull:    "connected_hull",
}

func (m VolumeMethod) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}
	return fmt.Sprintf("VolumeMethod(%d)", int(m))
}

//ParseVolumeMethod translates a method name into a VolumeMethod. Unknown
//names are a configuration error and must be rejected before processing
//starts.
func ParseVolumeMethod(name string) (VolumeMethod, error) {
	for m, s := range methodNames {
		if s == strings.ToLower(strings.TrimSpace(name)) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("goclust: unknown volume method %q", name)
}

//Shape selects the solid assumed by the radius-of-gyration estimator.
type Shape int

const (
	ShapeSphere Shape = iota
	ShapeEllipsoid
)

var shapeNames = map[Shape]string{
	ShapeSphere:    "sphere",
	ShapeEllipsoid: "ellipsoid",
}

func (s Shape) String() string {
	if n, ok := shapeNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

//ParseShape translates a shape name into a Shape.
func ParseShape(name string) (Shape, error) {
	for s, n := range shapeNames {
		if n == strings.ToLower(strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("goclust: unknown shape type %q", name)
}

//DefaultEnergy is the X-ray energy, in eV, used by the scattering-volume
//estimator when none is configured.
const DefaultEnergy = 17000.0

//Options configures a batch analysis.
type Options struct {
	//TargetElements are the elements of primary interest; the number of
	//target atoms in the core group defines the cluster size.
	TargetElements []string
	//NeighborElements are counted around each target atom.
	NeighborElements []string
	//Thresholds gives the maximum neighbor distance, in Angstroms, per
	//directional (target, neighbor) pair. Pairs without a threshold are
	//not counted.
	Thresholds map[Pair]float64
	//Charges is the formal-charge table.
	Charges FormalChargeTable
	Method  VolumeMethod
	Shape   Shape
	//EnergyEV is the X-ray energy for the scattering-volume method.
	EnergyEV float64
	//Cpus is the worker-pool size.
	Cpus int
	//CopyUnmatched, if non-empty, is a directory to which files without
	//target atoms are copied after the batch completes.
	CopyUnmatched string
}

//DefaultOptions returns options with the ionic-radius method, a
//representative X-ray energy, and a pool sized for CPU-bound work
//(cores-1, with a floor of one).
func DefaultOptions() *Options {
	o := new(Options)
	o.Method = MethodIonicRadius
	o.Shape = ShapeSphere
	o.EnergyEV = DefaultEnergy
	o.Cpus = SafeCpus()
	return o
}

//SafeCpus returns a worker count appropriate for CPU-bound work: the
//number of logical cores minus one, never less than one.
func SafeCpus() int {
	n := runtime.NumCPU() - 1
	if n < 1 {
		n = 1
	}
	return n
}

//Validate checks the options for configuration errors. It is called before
//any file is processed so a bad configuration fails the batch fast instead
//of failing file by file.
func (o *Options) Validate() error {
	if len(o.TargetElements) == 0 {
		return fmt.Errorf("goclust: no target elements configured")
	}
	if _, ok := methodNames[o.Method]; !ok {
		return fmt.Errorf("goclust: unknown volume method %d", int(o.Method))
	}
	if _, ok := shapeNames[o.Shape]; !ok {
		return fmt.Errorf("goclust: unknown shape type %d", int(o.Shape))
	}
	if o.Method == MethodScattering && o.EnergyEV <= 0 {
		return fmt.Errorf("goclust: scattering method needs a positive energy, got %g", o.EnergyEV)
	}
	if o.Cpus < 1 {
		o.Cpus = SafeCpus()
	}
	return nil
}

//isInString returns true if test is in container.
//To be replaced by the slices package at some point.
func isInString(container []string, test string) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}

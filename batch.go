/*
 * batch.go, part of goclust.
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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
)

//Analyzer runs the batch analysis. Its configuration, property source and
//radius lookup are built once and are read-only during a run; workers share
//nothing mutable.
type Analyzer struct {
	o      *Options
	loader Loader
	src    PropertySource
	radii  RadiusLookup
}

//NewAnalyzer validates the options and prepares an Analyzer. Configuration
//errors (unknown method or shape, no targets) surface here, before any file
//is touched. The ionic-radius lookup is built only when the selected method
//needs it; it is not skippable in that case.
func NewAnalyzer(loader Loader, src PropertySource, o *Options) (*Analyzer, error) {
	if o == nil {
		o = DefaultOptions()
	}
	if loader == nil {
		return nil, fmt.Errorf("goclust: nil loader")
	}
	if src == nil {
		return nil, fmt.Errorf("goclust: nil property source")
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	a := &Analyzer{o: o, loader: loader, src: src}
	if o.Method == MethodIonicRadius {
		a.radii = BuildRadiusLookup(o.Charges, src)
	}
	return a, nil
}

//Radii exposes the ionic-radius lookup built for this analyzer, which is
//nil unless the ionic-radius method is selected.
func (A *Analyzer) Radii() RadiusLookup {
	return A.radii
}

//result is what one worker sends back for one file.
type result struct {
	path      string
	record    *Record //nil for unmatched or failed files
	unmatched bool
	err       error
}

//BatchResult collects the outcome of a batch run. Records holds one entry
//per successfully measured cluster; Unmatched the files with no target
//atoms; Failed the files whose processing errored (their errors were
//logged, not propagated).
type BatchResult struct {
	Records   []*Record
	Unmatched []string
	Failed    []string
}

//AnalyzeDir enumerates the structure files (*.pdb and *.pdb.gz) under dir,
//non-recursively, and analyzes them. See Analyze.
func (A *Analyzer) AnalyzeDir(dir string) (*BatchResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("goclust: can't list structure files: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".pdb") || strings.HasSuffix(name, ".pdb.gz") {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)
	return A.Analyze(files)
}

//Analyze processes the given structure files on a fixed pool of workers
//and collects the per-cluster records. Results are gathered in completion
//order; the per-size aggregation downstream is insensitive to that order.
//A batch always runs to completion: a failure inside one file is caught at
//the worker boundary, logged with the file name, and recorded in Failed.
//After the pool joins, files without target atoms are optionally copied to
//the configured side directory.
func (A *Analyzer) Analyze(files []string) (*BatchResult, error) {
	jobs := make(chan string)
	results := make(chan result)
	var wg sync.WaitGroup
	for i := 0; i < A.o.Cpus; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- A.processFile(path)
			}
		}()
	}
	go func() {
		for _, f := range files {
			jobs <- f
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	ret := new(BatchResult)
	for res := range results {
		switch {
		case res.err != nil:
			fields := log.Fields{"file": res.path, "error": res.err}
			var perr *Error
			if errors.As(res.err, &perr) {
				fields["trace"] = perr.Decorate("Analyze")
			}
			log.WithFields(fields).Error("error processing file")
			ret.Failed = append(ret.Failed, res.path)
		case res.unmatched:
			ret.Unmatched = append(ret.Unmatched, res.path)
		default:
			ret.Records = append(ret.Records, res.record)
		}
	}
	log.WithFields(log.Fields{
		"processed": len(ret.Records),
		"unmatched": len(ret.Unmatched),
		"failed":    len(ret.Failed),
	}).Info("batch complete")

	if A.o.CopyUnmatched != "" && len(ret.Unmatched) > 0 {
		if err := copyFiles(ret.Unmatched, A.o.CopyUnmatched); err != nil {
			//failing to archive unmatched files shouldn't void the analysis
			log.WithField("error", err).Warn("couldn't copy unmatched files")
		}
	}
	return ret, nil
}

//processFile is the per-file worker: load, select targets, measure. Any
//failure, including a panic in an estimator, is converted into an empty
//result here so it can't take the batch down with it.
func (A *Analyzer) processFile(path string) (res result) {
	res.path = path
	defer func() {
		if r := recover(); r != nil {
			res.record = nil
			res.err = &Error{
				message: fmt.Sprintf("panic: %v", r),
				deco:    []string{path},
			}
		}
	}()
	s, err := A.loader.Load(path)
	if err != nil {
		res.err = err
		return res
	}
	targets := make([]*Atom, 0, len(s.Core))
	for _, at := range s.Core {
		if isInString(A.o.TargetElements, at.Symbol) {
			targets = append(targets, at)
		}
	}
	if len(targets) == 0 {
		res.unmatched = true
		return res
	}
	rec := &Record{
		Path:         path,
		Size:         len(targets),
		Coordination: CountCoordination(s, targets, A.o.NeighborElements, A.o.Thresholds),
		Charge:       ClusterCharge(s, A.o.Charges),
	}
	vol, rg, err := A.estimateVolume(s, targets)
	if err != nil {
		res.err = err
		return res
	}
	rec.Volume = vol
	rec.HasVolume = true
	rec.Rg = rg
	res.record = rec
	return res
}

//estimateVolume dispatches to the configured estimator. The
//radius-of-gyration methods work on the target atoms; the others consider
//the whole structure.
func (A *Analyzer) estimateVolume(s *Structure, targets []*Atom) (float64, [3]float64, error) {
	var rg [3]float64
	switch A.o.Method {
	case MethodIonicRadius:
		v, err := IonicVolume(s, A.o.Charges, A.radii)
		return v, rg, err
	case MethodRadiusOfGyration:
		return GyrationVolume(targets, A.o.Charges, A.src, A.o.Shape)
	case MethodConvexHull:
		return HullVolume(s), rg, nil
	case MethodScattering:
		v, err := ScatteringVolume(s, A.src, A.o.EnergyEV)
		return v, rg, err
	case MethodConnectedHull:
		v, err := ConnectedHullVolume(s, A.src)
		return v, rg, err
	}
	//Validate rejects unknown methods before fan-out
	return 0, rg, fmt.Errorf("goclust: unknown volume method %v", A.o.Method)
}

//copyFiles copies the given files into dir, creating it if needed.
func copyFiles(files []string, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, f := range files {
		if err := copyFile(f, filepath.Join(dir, filepath.Base(f))); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, in)
	return err
}

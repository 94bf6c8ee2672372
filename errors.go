/*
 * errors.go, part of goclust.
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
)

//Error is the error type used for propagation inside the package. The deco
//slice accumulates the names of the callers the error went through.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate adds dec to the decoration slice of the error and returns the
//resulting slice.
func (err Error) Decorate(dec string) []string {
	err.deco = append(err.deco, dec)
	return err.deco
}

//Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool { return err.critical }

//MissingDataError reports that the reference data needed by a volume
//estimator (an ionic radius, oxidation state, electron count or cross
//section) has no entry for an element. It is fatal for the affected file's
//volume but is downgraded to an empty result at the worker boundary.
type MissingDataError struct {
	Symbol string
	Charge float64
	What   string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("goclust: no %s for %s (charge %+g)", e.What, e.Symbol, e.Charge)
}

//IsMissingData returns whether err, anywhere in its chain, is a
//MissingDataError.
func IsMissingData(err error) bool {
	var m *MissingDataError
	return errors.As(err, &m)
}

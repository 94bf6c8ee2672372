/*
 * doc.go, part of goclust.
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

//Package clust analyzes batches of atomic-structure files, each holding one
//chemical cluster, and characterizes cluster size, coordination environment,
//geometric volume and net formal charge. Per-cluster measurements are binned
//by cluster size into statistics meant for downstream scattering-intensity
//modeling.
//
//Files are processed concurrently by a fixed pool of workers. A failure in
//one file is logged and never aborts the batch. Five alternative volume
//estimators are provided; the method is selected at configuration time and
//invalid selections are rejected before any file is read.
//
//The package does not parse structure files itself (see the pdb subpackage
//for a loader) and does not plot or compute scattering curves; it only
//produces the per-cluster volumes and radii such code consumes.
package clust

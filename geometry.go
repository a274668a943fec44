/*
 * geometry.go, part of goSALC.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package salc

import (
	"math"

	v3 "github.com/rmera/gosalc/v3"
)

//AnglesToVectors returns the unit vectors pointing in the directions given by
//angles. Each element of angles is an [azimuth, elevation] pair in degrees,
//the azimuth measured from the x axis in the xy plane, the elevation from the xy
//plane. The vectors are returned as the rows of a v3.Matrix, in the same order.
func AnglesToVectors(angles [][]float64) (*v3.Matrix, error) {
	if len(angles) == 0 {
		return nil, newError(ErrLengthMismatch, "AnglesToVectors", "no angles given")
	}
	data := make([]float64, 0, 3*len(angles))
	for i, v := range angles {
		if len(v) != 2 {
			return nil, newError(ErrLengthMismatch, "AnglesToVectors", "ligand %d: %d angles given, need azimuth and elevation", i, len(v))
		}
		az, el := deg2Rad(v[0]), deg2Rad(v[1])
		data = append(data, math.Cos(az)*math.Cos(el), math.Sin(az)*math.Cos(el), math.Sin(el))
	}
	return newMatrix(data, "AnglesToVectors")
}

//vectors puts the given cartesian vectors in a v3.Matrix.
func vectors(vecs [][]float64) (*v3.Matrix, error) {
	if len(vecs) == 0 {
		return nil, newError(ErrLengthMismatch, "vectors", "no vectors given")
	}
	data := make([]float64, 0, 3*len(vecs))
	for i, v := range vecs {
		if len(v) != 3 {
			return nil, newError(ErrLengthMismatch, "vectors", "ligand %d: %d coordinates given, need x, y and z", i, len(v))
		}
		data = append(data, v...)
	}
	return newMatrix(data, "vectors")
}

func newMatrix(data []float64, caller string) (*v3.Matrix, error) {
	m, err := v3.NewMatrix(data)
	if err != nil {
		return nil, errDecorate(err, caller)
	}
	return m, nil
}

func deg2Rad(f float64) float64 {
	return f * math.Pi / 180
}

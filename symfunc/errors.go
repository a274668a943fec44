/*
 * errors.go, part of goSALC.
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

package symfunc

import (
	"errors"
	"fmt"
)

//ErrSyntax is wrapped by all the errors returned by Parse.
var ErrSyntax = errors.New("goSALC/symfunc: invalid polynomial")

//Error is the error type for the symfunc package.
type Error struct {
	message  string
	expr     string //the offending expression
	deco     []string
	critical bool
}

func newError(message, expr string) Error {
	return Error{message: message, expr: expr, critical: true}
}

func (err Error) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrSyntax, err.expr, err.message)
}

//Unwrap allows errors.Is(err, ErrSyntax)
func (err Error) Unwrap() error { return ErrSyntax }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

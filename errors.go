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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package salc

import (
	"errors"
	"fmt"
)

var (
	//ErrInvalidMode is wrapped by the error returned when the ligand positions are
	//given in a mode other than Vector or Angle.
	ErrInvalidMode = errors.New("goSALC: invalid mode, must be 'angle' or 'vector'")
	//ErrLengthMismatch is wrapped by errors caused by inputs of the wrong size, i.e.
	//a number of projection results different from the order of the group.
	ErrLengthMismatch = errors.New("goSALC: length mismatch")
)

//Error is the error type for the salc package. Errors from the other goSALC packages
//are wrapped in an Error, so errors.Is and errors.As work through it.
type Error struct {
	message  string
	deco     []string
	critical bool
	err      error
}

//Error returns a string with an error message.
func (err Error) Error() string {
	if err.message == "" {
		return err.err.Error()
	}
	return fmt.Sprintf("%s: %s", err.err, err.message)
}

//Unwrap returns the wrapped error
func (err Error) Unwrap() error { return err.err }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

func newError(sentinel error, caller string, format string, a ...interface{}) Error {
	return Error{message: fmt.Sprintf(format, a...), deco: []string{caller}, critical: true, err: sentinel}
}

//errDecorate adds the caller's name to the decoration of err. Errors that are not
//an Error (i.e. those from the tables package) are wrapped in one first.
func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.deco = e.Decorate(caller)
		return e
	}
	return Error{deco: []string{caller}, critical: true, err: err}
}

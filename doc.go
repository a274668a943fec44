/*
 * doc.go, part of goSALC.
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

/*Package salc computes Symmetry Adapted Linear Combinations (SALCs), also called group
orbitals, for a set of ligands (outer atoms or orbitals) around a central atom, in a given
point group.

Two independent methods are implemented:

	The projection operator method (Project). The caller labels each ligand, and gives
	the result of applying each symmetry operation of the group to one reference orbital,
	as a linear combination of those labels (see the lincomb package). For each irreducible
	representation, the results are weighted by the characters of the operations and added.
	Irreps with no SALC give the zero combination.

	The symmetry function method (FromFunctions). The caller gives the position of each
	ligand, as unit vectors or as azimuth/elevation angles in degrees. The symmetry basis
	functions of each irreducible representation (from the tables package) are evaluated
	at each position, giving the weight of each ligand orbital in the SALC. The weights are
	normalized so the dominant one is 1.

The character tables are read once, when the program starts, and are never modified, so
all the functions in this package can be called concurrently.

The projection results must be given in the same order as the symmetry operations in the
tables: classes in the table order, each class repeated as many times as it has operations
(see Expand). Only the number of results is checked, a wrong order gives wrong SALCs with no error.
*/
package salc

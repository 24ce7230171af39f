/*
 * doc.go, part of grotop
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
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

/*
Top is a package for reading, editing and writing Gromacs system topologies
(the .top file that is given to grompp, not the molecule .itp files).

Only the [ system ] and [ molecules ] sections are actually parsed. Everything
else (comments, #include and #define lines, other sections) is kept as text and
written back in the same order. The [ system ] and [ molecules ] sections are
always written last.

	T, err := top.ReadFile("topol.top")
	if err != nil {
		return err
	}
	T.Include("ligand.itp")
	T.Molecules.Append("LIG", 1)
	err = T.WriteFile("topol_lig.top")

Files ending in .gz or .zst are decompressed when read and compressed when written.
*/
package top

/*
 * === This file is part of Lander ===
 *
 * Copyright 2026 the Lander authors.
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

// Package app holds the identity of the lander command line program.
package app

const (
	NAME             = "lander"
	PRETTY_SHORTNAME = "lander"
	PRETTY_FULLNAME  = "Lander command line simulator"
)

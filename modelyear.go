package vin

import "github.com/davidpeckham/vin/pkg/ent/vehicle"

// YearUnknown marks a model year that could not be determined, such as
// a `0` year character.
const YearUnknown = vehicle.YearUnknown

// yearCodes maps the position-10 character to the base model year of
// the 1980-2009 cycle. The codes repeat every 30 years.
var yearCodes = map[byte]int{
	'A': 1980, 'B': 1981, 'C': 1982, 'D': 1983, 'E': 1984,
	'F': 1985, 'G': 1986, 'H': 1987, 'J': 1988, 'K': 1989,
	'L': 1990, 'M': 1991, 'N': 1992, 'P': 1993, 'R': 1994,
	'S': 1995, 'T': 1996, 'V': 1997, 'W': 1998, 'X': 1999,
	'Y': 2000,
	'1': 2001, '2': 2002, '3': 2003, '4': 2004, '5': 2005,
	'6': 2006, '7': 2007, '8': 2008, '9': 2009,
}

// decodeModelYear resolves the position-10 year code. Per 49 CFR
// 565.15, an alphabetic position 7 marks vehicles of the 2010-2039
// cycle; a numeric one keeps the base cycle. Years beyond maxYear fall
// back one cycle so a future code cannot outrun the snapshot.
func decodeModelYear(yearChar, cycleChar byte, maxYear int) int {
	base, ok := yearCodes[yearChar]
	if !ok {
		return YearUnknown
	}
	year := base
	if cycleChar >= 'A' && cycleChar <= 'Z' {
		year += 30
	}
	for maxYear > 0 && year > maxYear && year-30 >= 1980 {
		year -= 30
	}
	return year
}

// Package humanize renders byte counts and raw bytes for human consumption.
package humanize

import "strconv"

var sizeUnits = [...]string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// Size formats a byte count with binary (1024) multiples and a fixed number
// of decimals, with no space before the unit: Size(1536, 1) == "1.5KB".
//
// The value is divided by 1024 while it is at least 1024 and a larger unit is
// left, so counts beyond the yottabyte range stay in YB. A negative precision
// is treated as zero.
func Size(size uint64, precision int) string {
	precision = max(precision, 0)

	value := float64(size)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	return strconv.FormatFloat(value, 'f', precision, 64) + sizeUnits[unit]
}

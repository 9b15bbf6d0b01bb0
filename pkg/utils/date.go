package utils

import "time"

// jakarta is used for display so dates match what admins see locally.
var jakarta = loadLocation("Asia/Jakarta")

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}

// FormatDate renders t as an Indonesian short date (dd/mm/yy).
func FormatDate(t time.Time) string {
	return t.In(jakarta).Format("02/01/06")
}

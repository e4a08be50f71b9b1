// Package timezone keeps every timestamp the hotel stores or shows in one
// configured zone (APP_TIMEZONE, an IANA name such as "Asia/Jakarta").
//
// Stay dates arrive as calendar days and are read at local midnight:
//
//	checkIn, _ := timezone.ParseDate("2026-03-14")
//	checkOut, _ := timezone.ParseDate("2026-03-16")
//	nights := timezone.Nights(checkIn, checkOut) // 2
//
// Audit columns use Now, and responses go through Format:
//
//	created := timezone.Now()
//	timezone.Format(created, constant.DateFormat)
//
// A zone name that fails to load falls back to UTC and is logged.
package timezone

// Package size provides Size, a signed count of bytes that can be built from
// decimal (KB, MB, ...) and binary (KiB, MiB, ...) units, compared, added and
// scaled, rendered as human-readable text and parsed back from it.
//
//	s := size.FromMiB(12.9).Add(size.FromBytes(440 * size.KB))
//	fmt.Println(s)                                // 13.3 MiB
//	fmt.Println(s.Format(size.Base10, size.Full)) // 14.0 Megabytes
//
//	p, err := size.Parse("12.34 kIloByte") // 12340 bytes
//
// Formatting picks the unit and precision from the magnitude: whole bytes
// below one kilo/kibibyte, then two, one or no decimals while the value is in
// [1, 10), [10, 100) or [100, 1000) of its unit.
//
// All functions are safe for concurrent use.
package size

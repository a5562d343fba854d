// Package serialization saves and loads network parameters in a compact
// binary format.
//
//	Format Structure:
//	  [4 bytes: W1 rows (int32 LE)]
//	  [4 bytes: W1 cols (int32 LE)]
//	  [4 bytes: W2 rows (int32 LE)]
//	  [4 bytes: W2 cols (int32 LE)]
//	  [4 bytes: b1 rows (int32 LE)]
//	  [4 bytes: b2 rows (int32 LE)]
//	  [W1, W2, b1, b2: float32 LE, each column-major]
//
// Values are held as float64 in memory and narrowed to float32 on disk, so a
// round-trip is exact to float32 precision.
//
// Example usage:
//
//	if err := serialization.SaveFile("models/model.bin", params); err != nil {
//	    log.Fatal(err)
//	}
//
//	params, err := serialization.LoadFile("models/model.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
package serialization

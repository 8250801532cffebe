// SPDX-License-Identifier: MIT

// Package stream opens and creates the byte streams behind CSV sources and
// sinks: plain files, standard input and output, and compressed files.
//
// Compression is chosen from the file extension:
//
//	.gz   gzip     (github.com/klauspost/compress/gzip)
//	.zst  zstd     (github.com/klauspost/compress/zstd)
//	.s2   s2       (github.com/klauspost/compress/s2)
//	.lz4  lz4      (github.com/pierrec/lz4/v4)
//
// WithMaxBytes caps the number of decompressed bytes a reader may deliver.
// Dynamic-shape reads have no row bound of their own, so untrusted input
// should always be opened with a cap.
//
// Example:
//
//	rc, err := stream.Open("matrix.csv.zst", stream.WithMaxBytes(64<<20))
//	if err != nil {
//		return err
//	}
//	defer rc.Close()
//	a, err := csvarray.ReadDynamic(csvio.NewReader(rc), fields.For[float64]())
package stream

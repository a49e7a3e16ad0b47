// Package compress provides compression and decompression codecs for finished
// Variant blob pairs.
//
// Variant's metadata and value blobs are themselves never compressed
// internally — every header, offset, and payload byte is addressed directly
// by readers. This package applies a general-purpose codec to the finished
// (metadata, value) byte pair as an optional outer layer, for callers who
// want to shrink a Variant before storing or transmitting it.
//
// # Overview
//
// The compress package supports multiple algorithms:
//   - None: No compression (fastest, largest)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
// **NoOp Compression** (format.CompressionNone)
//
//	codec := compress.NewNoOpCompressor()
//	compressed, _ := codec.Compress(data)  // Returns data unchanged
//	original, _ := codec.Decompress(compressed)  // Returns data unchanged
//
// Use when:
//   - The value blob is mostly binary/numeric and already dense
//   - CPU is more critical than storage
//
// **Zstandard (Zstd)** (format.CompressionZstd)
//
//	codec := compress.NewZstdCompressor()
//	compressed, _ := codec.Compress(data)  // Best compression ratio
//	original, _ := codec.Decompress(compressed)
//
// Characteristics:
//   - Compression: Excellent, especially on string-heavy objects
//   - Speed: Moderate
//   - Memory: ~2-4 MB for compression, ~1-2 MB for decompression
//
// Best for:
//   - Field-name-heavy metadata blobs with repeated substrings
//   - Cold storage / archival of large Variant documents
//
// **S2 (Snappy Alternative)** (format.CompressionS2)
//
//	codec := compress.NewS2Compressor()
//	compressed, _ := codec.Compress(data)  // Fast with good compression
//	original, _ := codec.Decompress(compressed)
//
// Characteristics:
//   - Compression: Good
//   - Speed: Fast
//   - Memory: ~256KB for compression, ~64KB for decompression
//
// Best for:
//   - Latency-sensitive ingestion of many small Variant documents
//
// **LZ4** (format.CompressionLZ4)
//
//	codec := compress.NewLZ4Compressor()
//	compressed, _ := codec.Compress(data)  // Very fast decompression
//	original, _ := codec.Decompress(compressed)
//
// Characteristics:
//   - Compression: Moderate
//   - Speed: Very fast decompression, moderate compression
//   - Memory: ~64KB for compression, ~16KB for decompression
//
// Best for:
//   - Read-heavy workloads where decompression dominates
//
// # Algorithm Selection Guide
//
// | Workload Type          | Recommended | Reason                              |
// |------------------------|-------------|-------------------------------------|
// | Storage-constrained    | Zstd        | Best compression ratio              |
// | Real-time ingestion    | S2          | Balanced speed and compression      |
// | Query-heavy            | LZ4         | Fastest decompression               |
// | CPU-constrained        | None        | No compression overhead             |
//
// # Memory Management
//
// Codecs differ in how much state they reuse:
//   - Zstd takes its encoder and decoder from sync.Pool instances
//   - LZ4 takes its block compressor from a sync.Pool; output buffers are
//     allocated per call, sized from the input
//   - S2 allocates per call; NoOp allocates nothing
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use.
//
// # Error Handling
//
// Compression errors are rare but can occur on memory allocation failure.
// Decompression errors are more common:
//   - Corrupted compressed data
//   - Invalid compression format
//
// Zstd decompression errors are wrapped with context; the LZ4 and S2 codecs
// return the underlying library's error unchanged.
//
// # Integration with the builder Package
//
// VariantBuilder.FinishCompressed wraps Finish with a codec chosen from
// format.CompressionType:
//
//	b := builder.NewVariantBuilder()
//	b.AppendString("hello")
//	metadata, value, err := b.FinishCompressed(format.CompressionZstd)
//
// Callers decompress both blobs before handing them to decoder.Decode.
//
// # Advanced Usage
//
// For custom compression needs, implement the Compressor/Decompressor interfaces:
//
//	type MyCodec struct{}
//
//	func (c *MyCodec) Compress(data []byte) ([]byte, error) {
//	    return compressedData, nil
//	}
//
//	func (c *MyCodec) Decompress(data []byte) ([]byte, error) {
//	    return originalData, nil
//	}
package compress

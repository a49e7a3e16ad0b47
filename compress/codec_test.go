package compress_test

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/variantfmt/variant/builder"
	"github.com/variantfmt/variant/compress"
	"github.com/variantfmt/variant/format"
)

// buildVariantBlob returns the (metadata, value) pair for a Variant object
// with fieldCount string fields, each holding a repeated-word sentence of
// roughly wordsPerField words. This stands in for a real finished Variant
// blob of a given rough size, the way every codec in this package actually
// receives its input: from VariantBuilder.Finish, not a synthetic byte
// slice.
func buildVariantBlob(t *testing.T, fieldCount, wordsPerField int) (metadata, value []byte) {
	t.Helper()

	b := builder.NewVariantBuilder()
	ob := b.NewObject()
	sentence := bytes.Repeat([]byte("lorem ipsum dolor sit amet "), wordsPerField)
	for i := range fieldCount {
		ob.InsertString(fmt.Sprintf("field_%04d", i), string(sentence))
	}
	require.NoError(t, ob.Finish())

	return b.Finish()
}

// MockCompressor implements the Compressor interface for testing purposes.
type MockCompressor struct {
	compressionType format.CompressionType
	compressionFunc func([]byte) ([]byte, error)
	resetFunc       func()
}

// NewMockCompressor creates a new mock compressor with the specified type.
func NewMockCompressor(compressionType format.CompressionType) *MockCompressor {
	return &MockCompressor{
		compressionType: compressionType,
		compressionFunc: func(data []byte) ([]byte, error) {
			return data, nil
		},
		resetFunc: func() {},
	}
}

func (m *MockCompressor) Type() format.CompressionType {
	return m.compressionType
}

func (m *MockCompressor) Compress(data []byte) ([]byte, error) {
	return m.compressionFunc(data)
}

func (m *MockCompressor) CompressTo(data []byte, writer io.Writer) (int, error) {
	compressed, err := m.Compress(data)
	if err != nil {
		return 0, err
	}

	return writer.Write(compressed)
}

func (m *MockCompressor) EstimateCompressedSize(inputSize int) int {
	switch m.compressionType {
	case format.CompressionNone:
		return inputSize
	case format.CompressionLZ4, format.CompressionS2:
		return int(float64(inputSize) * 0.75)
	case format.CompressionZstd:
		return int(float64(inputSize) * 0.50)
	default:
		return inputSize
	}
}

func (m *MockCompressor) Reset() {
	m.resetFunc()
}

// MockDecompressor implements the Decompressor interface for testing purposes.
type MockDecompressor struct {
	compressionType   format.CompressionType
	decompressionFunc func([]byte) ([]byte, error)
	resetFunc         func()
}

// NewMockDecompressor creates a new mock decompressor with the specified type.
func NewMockDecompressor(compressionType format.CompressionType) *MockDecompressor {
	return &MockDecompressor{
		compressionType: compressionType,
		decompressionFunc: func(data []byte) ([]byte, error) {
			return data, nil
		},
		resetFunc: func() {},
	}
}

func (m *MockDecompressor) Type() format.CompressionType {
	return m.compressionType
}

func (m *MockDecompressor) Decompress(data []byte) ([]byte, error) {
	return m.decompressionFunc(data)
}

func (m *MockDecompressor) DecompressTo(data []byte, writer io.Writer) (int, error) {
	decompressed, err := m.Decompress(data)
	if err != nil {
		return 0, err
	}

	return writer.Write(decompressed)
}

func (m *MockDecompressor) EstimateDecompressedSize(compressedData []byte) int {
	switch m.compressionType {
	case format.CompressionNone:
		return len(compressedData)
	default:
		return len(compressedData) * 2
	}
}

func (m *MockDecompressor) Reset() {
	m.resetFunc()
}

// MockCodec implements the Codec interface.
type MockCodec struct {
	compressionType format.CompressionType
	compressor      *MockCompressor
	decompressor    *MockDecompressor
}

// NewMockCodec creates a new mock codec that implements both compression and decompression.
func NewMockCodec(compressionType format.CompressionType) *MockCodec {
	return &MockCodec{
		compressionType: compressionType,
		compressor:      NewMockCompressor(compressionType),
		decompressor:    NewMockDecompressor(compressionType),
	}
}

func (c *MockCodec) Type() format.CompressionType {
	return c.compressionType
}

func (c *MockCodec) Compress(data []byte) ([]byte, error) {
	return c.compressor.Compress(data)
}

func (c *MockCodec) CompressTo(data []byte, writer io.Writer) (int, error) {
	return c.compressor.CompressTo(data, writer)
}

func (c *MockCodec) EstimateCompressedSize(inputSize int) int {
	return c.compressor.EstimateCompressedSize(inputSize)
}

func (c *MockCodec) Reset() {
	c.compressor.Reset()
	c.decompressor.Reset()
}

func (c *MockCodec) Decompress(data []byte) ([]byte, error) {
	return c.decompressor.Decompress(data)
}

func (c *MockCodec) DecompressTo(data []byte, writer io.Writer) (int, error) {
	return c.decompressor.DecompressTo(data, writer)
}

func (c *MockCodec) EstimateDecompressedSize(compressedData []byte) int {
	return c.decompressor.EstimateDecompressedSize(compressedData)
}

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		name     string
		cType    format.CompressionType
		expected string
	}{
		{name: "none compression", cType: format.CompressionNone, expected: "None"},
		{name: "zstd compression", cType: format.CompressionZstd, expected: "Zstd"},
		{name: "s2 compression", cType: format.CompressionS2, expected: "S2"},
		{name: "lz4 compression", cType: format.CompressionLZ4, expected: "LZ4"},
		{name: "unknown compression", cType: format.CompressionType(0xFF), expected: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.cType.String())
		})
	}
}

func TestCodec_Interface(t *testing.T) {
	_, testData := buildVariantBlob(t, 4, 2)

	codec := NewMockCodec(format.CompressionLZ4)

	require.Implements(t, (*compress.Compressor)(nil), codec)
	require.Implements(t, (*compress.Decompressor)(nil), codec)
	require.Implements(t, (*compress.Codec)(nil), codec)
	require.Equal(t, format.CompressionLZ4, codec.Type())

	compressed, err := codec.Compress(testData)
	require.NoError(t, err)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, testData, decompressed)
}

func TestCompressionStats_Calculations(t *testing.T) {
	tests := []struct {
		name            string
		stats           compress.CompressionStats
		expectedRatio   float64
		expectedSavings float64
	}{
		{
			name: "good compression",
			stats: compress.CompressionStats{
				Algorithm: format.CompressionZstd, OriginalSize: 1000, CompressedSize: 300,
			},
			expectedRatio: 0.3, expectedSavings: 70.0,
		},
		{
			name: "no compression benefit",
			stats: compress.CompressionStats{
				Algorithm: format.CompressionNone, OriginalSize: 500, CompressedSize: 500,
			},
			expectedRatio: 1.0, expectedSavings: 0.0,
		},
		{
			name: "compression overhead",
			stats: compress.CompressionStats{
				Algorithm: format.CompressionS2, OriginalSize: 100, CompressedSize: 120,
			},
			expectedRatio: 1.2, expectedSavings: -20.0,
		},
		{
			name: "zero original size",
			stats: compress.CompressionStats{
				Algorithm: format.CompressionLZ4, OriginalSize: 0, CompressedSize: 100,
			},
			expectedRatio: 0.0, expectedSavings: 100.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.expectedRatio, tt.stats.CompressionRatio(), 0.001)
			require.InDelta(t, tt.expectedSavings, tt.stats.SpaceSavings(), 0.001)
		})
	}
}

// TestFinishCompressed_RoundTrip drives the package's only real entry point:
// building a Variant object of increasing size and finishing it through
// every CompressionType VariantBuilder.FinishCompressed accepts, then
// decompressing both blobs back to their uncompressed form.
func TestFinishCompressed_RoundTrip(t *testing.T) {
	sizes := []struct {
		name          string
		fieldCount    int
		wordsPerField int
	}{
		{"small", 4, 2},
		{"medium", 64, 8},
		{"large", 512, 16},
	}

	codecTypes := []format.CompressionType{
		format.CompressionNone,
		format.CompressionLZ4,
		format.CompressionS2,
		format.CompressionZstd,
	}

	for _, sz := range sizes {
		t.Run(sz.name, func(t *testing.T) {
			b := builder.NewVariantBuilder()
			ob := b.NewObject()
			sentence := bytes.Repeat([]byte("lorem ipsum dolor sit amet "), sz.wordsPerField)
			for i := range sz.fieldCount {
				ob.InsertString(fmt.Sprintf("field_%04d", i), string(sentence))
			}
			require.NoError(t, ob.Finish())

			rawMetadata, rawValue := b.Finish()

			for _, ct := range codecTypes {
				t.Run(ct.String(), func(t *testing.T) {
					metadata, value, err := b.FinishCompressed(ct)
					require.NoError(t, err)
					require.NotNil(t, metadata)
					require.NotNil(t, value)

					codec, err := compress.CreateCodec(ct, "test")
					require.NoError(t, err)

					decodedMetadata, err := codec.Decompress(metadata)
					require.NoError(t, err)
					require.Equal(t, rawMetadata, decodedMetadata)

					decodedValue, err := codec.Decompress(value)
					require.NoError(t, err)
					require.Equal(t, rawValue, decodedValue)

					if ct != format.CompressionNone {
						t.Logf("%s: value %d bytes -> %d bytes (%.1f%%)", ct, len(rawValue), len(value),
							float64(len(value))/float64(len(rawValue))*100)
					}
				})
			}
		})
	}
}

// TestFinishCompressed_HighlyRepetitiveObject exercises the case every real
// compressor is meant to shine on: a Variant object whose field values
// repeat heavily, as a batch of near-identical records would.
func TestFinishCompressed_HighlyRepetitiveObject(t *testing.T) {
	b := builder.NewVariantBuilder()
	ob := b.NewObject()
	for i := range 2000 {
		ob.InsertString(fmt.Sprintf("field_%04d", i), "the quick brown fox jumps over the lazy dog")
	}
	require.NoError(t, ob.Finish())

	_, rawValue := b.Finish()

	for _, ct := range []format.CompressionType{format.CompressionLZ4, format.CompressionS2, format.CompressionZstd} {
		t.Run(ct.String(), func(t *testing.T) {
			_, value, err := b.FinishCompressed(ct)
			require.NoError(t, err)
			require.Less(t, len(value), len(rawValue)/4,
				"repetitive Variant payload should compress to under a quarter of its raw size")
		})
	}
}

func getAllCodecs() map[string]compress.Codec {
	return map[string]compress.Codec{
		"NoOp": compress.NewNoOpCompressor(),
		"LZ4":  compress.NewLZ4Compressor(),
		"S2":   compress.NewS2Compressor(),
		"Zstd": compress.NewZstdCompressor(),
	}
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Nil(t, compressed, "compressing nil should return nil")

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Nil(t, decompressed, "decompressing nil should return nil")

			empty := []byte{}
			compressed, err = codec.Compress(empty)
			require.NoError(t, err)

			decompressed, err = codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed, "decompressing empty should return empty")
		})
	}
}

// TestAllCodecs_VariantBlobRoundTrip round-trips real (metadata, value)
// blobs, produced by VariantBuilder for object shapes ranging from a
// single short string field to a nested object/list mix, through every
// codec directly (bypassing FinishCompressed) to pin down each Codec
// implementation's own Compress/Decompress contract.
func TestAllCodecs_VariantBlobRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		build func(t *testing.T) (metadata, value []byte)
	}{
		{
			name: "single_short_string",
			build: func(t *testing.T) ([]byte, []byte) {
				b := builder.NewVariantBuilder()
				b.AppendString("hi")

				return b.Finish()
			},
		},
		{
			name: "small_object",
			build: func(t *testing.T) ([]byte, []byte) { return buildVariantBlob(t, 4, 2) },
		},
		{
			name: "medium_object",
			build: func(t *testing.T) ([]byte, []byte) { return buildVariantBlob(t, 64, 8) },
		},
		{
			name: "object_with_nested_list",
			build: func(t *testing.T) ([]byte, []byte) {
				b := builder.NewVariantBuilder()
				ob := b.NewObject()
				ob.InsertString("name", "dataset")
				lb := ob.NewList("tags")
				lb.AppendString("a")
				lb.AppendString("b")
				lb.AppendString("c")
				lb.Finish()
				require.NoError(t, ob.Finish())

				return b.Finish()
			},
		},
	}

	codecs := getAllCodecs()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, value := tc.build(t)

			for codecName, codec := range codecs {
				t.Run(codecName, func(t *testing.T) {
					compressed, err := codec.Compress(value)
					require.NoError(t, err)
					require.NotNil(t, compressed)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, value, decompressed, "decompressed value blob must match original")
				})
			}
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalidInputs := []struct {
		name string
		data []byte
	}{
		{name: "random_bytes", data: []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{name: "text_as_compressed", data: []byte("this is not compressed data")},
		{name: "corrupted_header", data: []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			if codecName == "NoOp" {
				t.Skip("NoOp codec doesn't validate data")
			}

			for _, input := range invalidInputs {
				t.Run(input.name, func(t *testing.T) {
					_, err := codec.Decompress(input.data)
					require.Error(t, err, "should return error for invalid compressed data")
				})
			}
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const numGoroutines = 20
	_, testData := buildVariantBlob(t, 16, 4)

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(testData)
			require.NoError(t, err)

			done := make(chan error, numGoroutines)
			for range numGoroutines {
				go func() {
					decompressed, err := codec.Decompress(compressed)
					if err != nil {
						done <- err
						return
					}
					if !bytes.Equal(testData, decompressed) {
						done <- fmt.Errorf("decompressed data mismatch")
						return
					}
					done <- nil
				}()
			}

			for range numGoroutines {
				require.NoError(t, <-done)
			}
		})
	}
}

func TestAllCodecs_InterfaceCompliance(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			var _ compress.Codec = codec
			require.NotNil(t, codec)
		})
	}
}

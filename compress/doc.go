// Package compress provides the codecs applied to snapshot payloads.
//
// A snapshot payload is a flat run of float64 values. Compression is
// applied to the whole payload after it has been laid out, and the snapshot
// header records which codec was used together with the uncompressed size,
// so every Decompress call knows exactly how large its output must be.
//
// Supported algorithms:
//
//   - None: payload stored as is
//   - Zstd: best ratio, github.com/klauspost/compress/zstd
//   - S2:   balanced speed and ratio, github.com/klauspost/compress/s2
//   - LZ4:  fastest decoding, github.com/pierrec/lz4/v4 block format
//
// Codecs are stateless values and safe for concurrent use. Zstd encoders
// and decoders and LZ4 compressors are pooled internally.
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//	...
//	payload, err = codec.Decompress(packed, rawSize)
package compress

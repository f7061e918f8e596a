package match

import (
	"bytes"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// benchText returns about n bytes of word-structured text, so that there
// are plenty of repeats at a range of distances.
func benchText(n int) []byte {
	rng := rand.New(rand.NewSource(1))
	words := strings.Fields(`the of and to in is that it was for on are as with
		his they at be this from have or by one had not but what all were when we
		there can an your which their said if do will each about how up out them
		light rays colours refraction prism glass experiment red violet`)
	var b bytes.Buffer
	for b.Len() < n {
		b.WriteString(words[rng.Intn(len(words))])
		if rng.Intn(12) == 0 {
			b.WriteString(".\n")
		} else {
			b.WriteByte(' ')
		}
	}
	return b.Bytes()[:n]
}

func benchmarkDecompose(b *testing.B, cfg Config) {
	b.StopTimer()
	b.ReportAllocs()
	data := benchText(1 << 18)
	b.SetBytes(int64(len(data)))

	var sum Summary
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m, err := New[byte, uint32](cfg)
		if err != nil {
			b.Fatal(err)
		}
		m.Append(data)
		m.Decompose(false)
		sum = Summarize(m.Tokens())
	}
	b.ReportMetric(float64(sum.Literals)/float64(len(data)), "literal-fraction")
	b.ReportMetric(float64(sum.Tokens), "tokens")
}

func BenchmarkDecompose(b *testing.B)           { benchmarkDecompose(b, Config{}) }
func BenchmarkDecomposeExhaustive(b *testing.B) { benchmarkDecompose(b, Config{Exhaustive: true}) }
func BenchmarkDecomposeLongWindow(b *testing.B) { benchmarkDecompose(b, Config{MaxMatch: 32}) }
func BenchmarkDecomposeSmallTable(b *testing.B) { benchmarkDecompose(b, Config{HashBits: 10}) }

func BenchmarkFinder(b *testing.B) {
	b.StopTimer()
	b.ReportAllocs()
	data := benchText(1 << 18)
	b.SetBytes(int64(len(data)))
	var f Finder
	var matches []Match
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		f.Reset()
		for start := 0; start < len(data); start += 1 << 16 {
			matches = f.FindMatches(matches[:0], data[start:min(start+1<<16, len(data))])
		}
	}
}

// The benchmarks below give reference points from complete compressors on
// the same input. Their ratio includes entropy coding, which this package
// does not do.

func benchmarkBaseline(b *testing.B, compress func([]byte) []byte) {
	b.StopTimer()
	b.ReportAllocs()
	data := benchText(1 << 18)
	b.SetBytes(int64(len(data)))
	out := compress(data)
	b.ReportMetric(float64(len(data))/float64(len(out)), "ratio")
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		compress(data)
	}
}

func BenchmarkBaselineSnappy(b *testing.B) {
	benchmarkBaseline(b, func(data []byte) []byte {
		return snappy.Encode(nil, data)
	})
}

func BenchmarkBaselineZstd(b *testing.B) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		b.Fatal(err)
	}
	defer enc.Close()
	benchmarkBaseline(b, func(data []byte) []byte {
		return enc.EncodeAll(data, nil)
	})
}

func BenchmarkBaselineLZ4(b *testing.B) {
	benchmarkBaseline(b, func(data []byte) []byte {
		dst := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, dst, nil)
		if err != nil {
			b.Fatal(err)
		}
		return dst[:n]
	})
}

func BenchmarkBaselineBrotli(b *testing.B) {
	benchmarkBaseline(b, func(data []byte) []byte {
		buf := new(bytes.Buffer)
		w := brotli.NewWriterLevel(buf, 5)
		w.Write(data)
		w.Close()
		return buf.Bytes()
	})
}

// TestBaselineRoundTrip checks that the reference compressors accept the
// benchmark input, so the baselines measure real work.
func TestBaselineRoundTrip(t *testing.T) {
	data := benchText(1 << 14)

	if got, err := snappy.Decode(nil, snappy.Encode(nil, data)); err != nil || !bytes.Equal(got, data) {
		t.Errorf("snappy round trip failed: %v", err)
	}

	enc, _ := zstd.NewWriter(nil)
	dec, _ := zstd.NewReader(nil)
	defer dec.Close()
	if got, err := dec.DecodeAll(enc.EncodeAll(data, nil), nil); err != nil || !bytes.Equal(got, data) {
		t.Errorf("zstd round trip failed: %v", err)
	}
	enc.Close()

	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, dst, nil)
	if err != nil {
		t.Fatalf("lz4: %v", err)
	}
	out := make([]byte, len(data))
	if m, err := lz4.UncompressBlock(dst[:n], out); err != nil || m != len(data) || !bytes.Equal(out, data) {
		t.Errorf("lz4 round trip failed: %v", err)
	}

	buf := new(bytes.Buffer)
	w := brotli.NewWriterLevel(buf, 5)
	w.Write(data)
	w.Close()
	if got, err := io.ReadAll(brotli.NewReader(buf)); err != nil || !bytes.Equal(got, data) {
		t.Errorf("brotli round trip failed: %v", err)
	}

	// The matcher finds repeats in the same text.
	m := decomposeChunks(t, Config{}, false, string(data))
	if s := Summarize(m.Tokens()); s.Copies < len(data)/4 {
		t.Errorf("only %d of %d bytes covered by copies", s.Copies, len(data))
	}
}

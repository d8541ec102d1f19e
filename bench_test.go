package qremis_test

import (
	"testing"

	qremis "github.com/reoring/qremis"
)

// --- Fixtures ---

func benchObjectJSON() []byte {
	return []byte(`{"objectIdentifier":[{"objectIdentifierType":"uuid","objectIdentifierValue":"0b0f"}],` +
		`"objectCategory":"file",` +
		`"objectCharacteristics":[{"fixity":[{"messageDigestAlgorithm":"SHA-256","messageDigest":"abc123"}],` +
		`"size":"1024","format":[{"formatDesignation":{"formatName":"PDF/A"}}]}]}`)
}

func benchObject(tb testing.TB) *qremis.Record {
	tb.Helper()
	r, err := qremis.Decode(qremis.TypeObject, benchObjectJSON())
	if err != nil {
		tb.Fatalf("decode fixture: %v", err)
	}
	return r
}

// --- Construction ---

func Benchmark_New_Fixity(b *testing.B) {
	values := qremis.Values{"messageDigestAlgorithm": "MD5", "messageDigest": "abc"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := qremis.New(qremis.TypeFixity, nil, values); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Add_FormatNote(b *testing.B) {
	r := qremis.MustNew(qremis.TypeFormat, nil, qremis.Values{"formatNote": "first"})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := r.Add("formatNote", "n"); err != nil {
			b.Fatal(err)
		}
	}
}

// --- Codec ---

func Benchmark_Serialize_Object(b *testing.B) {
	r := benchObject(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := qremis.Serialize(r); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Decode_Object(b *testing.B) {
	data := benchObjectJSON()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := qremis.Decode(qremis.TypeObject, data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Validate_Object(b *testing.B) {
	r := benchObject(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := qremis.Validate(r); err != nil {
			b.Fatal(err)
		}
	}
}

// --- Introspection ---

func Benchmark_DescribeSchema_Root(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := qremis.DescribeSchema(qremis.TypeRoot); err != nil {
			b.Fatal(err)
		}
	}
}

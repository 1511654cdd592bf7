package hamt

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

func BenchmarkGoMap_InsertString(b *testing.B) {
	var (
		keys = getKeys(b.N)
		m    = make(map[string]struct{})
	)

	b.ResetTimer()

	for _, key := range keys {
		m[key] = struct{}{}
	}
}

func BenchmarkGoMap_FindString(b *testing.B) {
	var (
		keys = getKeys(b.N)
		m    = make(map[string]struct{})
	)

	for _, key := range keys {
		m[key] = struct{}{}
	}

	b.ResetTimer()

	for _, key := range keys {
		_ = m[key]
	}
}

func BenchmarkTrie_InsertString(b *testing.B) {
	var (
		keys = getKeys(b.N)
		tr   = New(String)
	)

	b.ResetTimer()

	for _, key := range keys {
		tr.Insert(key)
	}
}

func BenchmarkTrie_FindString(b *testing.B) {
	var (
		keys = getKeys(b.N)
		tr   = New(String)
	)

	for _, key := range keys {
		tr.Insert(key)
	}

	b.ResetTimer()

	for _, key := range keys {
		_ = tr.Find(key)
	}
}

func BenchmarkGoMap_InsertInt(b *testing.B) {
	m := make(map[int]struct{})

	for i := 0; i < b.N; i++ {
		m[i] = struct{}{}
	}
}

func BenchmarkTrie_InsertInt(b *testing.B) {
	tr := New(Integer[int])

	for i := 0; i < b.N; i++ {
		tr.Insert(i)
	}
}

func BenchmarkTrie_InsertIntIdentity(b *testing.B) {
	tr := New(Identity[int])

	for i := 0; i < b.N; i++ {
		tr.Insert(i)
	}
}

func BenchmarkTrie_FindInt(b *testing.B) {
	tr := New(Integer[int])

	for i := 0; i < b.N; i++ {
		tr.Insert(i)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = tr.Contains(i)
	}
}

func BenchmarkTrie_Iterate(b *testing.B) {
	tr := New(Integer[int])

	for i := 0; i < 100_000; i++ {
		tr.Insert(i)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for range tr.All() {
		}
	}
}

func getKeys(total int) []string {
	const seed = 1234567890

	var (
		faker = gofakeit.New(seed)
		keys  = make([]string, total)
	)

	for i := range keys {
		keys[i] = faker.Sentence(4)
	}

	return keys
}

package kmergo_test

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/kmergo"
	"github.com/hupe1980/kmergo/dbg"
	"github.com/hupe1980/kmergo/kmer"
	"github.com/hupe1980/kmergo/persistence"
)

// Example demonstrates building a hash-backed index and querying
// membership and successors.
func Example() {
	space := kmer.MustNew[uint64](5)
	source := kmergo.SliceSource{[]byte("ACGTACGTACGT")}

	g, stats, err := kmergo.Build(context.Background(), space, dbg.NewHashBuilder(space), &source)
	if err != nil {
		log.Fatal(err)
	}

	km := space.Canonical(space.FromBytes([]byte("ACGTA")))
	fmt.Println(stats.Kmers, g.Len(), g.Contains(km))
	// Output: 8 2 true
}

// Example_successors walks one step along the implicit de Bruijn graph of
// a linear sequence.
func Example_successors() {
	space := kmer.MustNew[uint32](4)
	source := kmergo.SliceSource{[]byte("ATCGGA")}

	g, _, err := kmergo.Build(context.Background(), space, dbg.NewHashBuilder(space), &source,
		kmergo.WithCanonical(false))
	if err != nil {
		log.Fatal(err)
	}

	km := space.FromBytes([]byte("ATCG"))
	for _, succ := range dbg.Successors(g, km) {
		fmt.Println(space.String(succ))
	}
	// Output: TCGG
}

// Example_persistence round-trips a sparse index through its stored form.
func Example_persistence() {
	space := kmer.MustNew[uint16](6)
	source := kmergo.SliceSource{[]byte("ACGATTACAGGATCC")}

	g, _, err := kmergo.Build(context.Background(), space, dbg.NewSparseBuilder(space), &source)
	if err != nil {
		log.Fatal(err)
	}

	var buf bytes.Buffer
	if err := persistence.Save(&buf, g, persistence.WithLZ4()); err != nil {
		log.Fatal(err)
	}
	loaded, err := persistence.Load(&buf, space)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(loaded.Len() == g.Len())
	// Output: true
}

// Package kmergo builds queryable k-mer membership indexes from DNA
// sequence reads.
//
// K-mers are fixed-length substrings packed two bits per base into an
// unsigned integer, optionally merged across strands via their canonical
// representative. The set of observed k-mers forms the node set of an
// implicit de Bruijn graph; edges are derived per query from one-base
// extensions and membership.
//
// # Quick Start
//
//	space := kmer.MustNew[uint64](21)
//	reads, _ := fasta.Open("reads.fa.gz")
//	defer reads.Close()
//
//	g, stats, _ := kmergo.Build(ctx, space, dbg.NewHashBuilder(space), kmergo.FASTA(reads))
//	fmt.Println(stats.Kmers, g.Len())
//
//	km := space.Canonical(space.FromBytes([]byte("ACGATTACAGGATCCAGATTT")))
//	g.Contains(km)
//	dbg.Successors(g, km)
//
// # Backends
//
// Three index backends share one builder/query contract:
//
//   - dbg.NewHashBuilder — hash set; any K, memory per distinct key.
//   - dbg.NewDenseBuilder — bit vector over the whole 4^K universe; small K.
//   - dbg.NewSparseBuilder — compressed rank/select set; sparse keys in a
//     large universe.
//
// Dense and sparse indexes persist via the persistence package; the hash
// backend has no stored form.
package kmergo

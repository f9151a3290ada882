// Workload driver comparing chunked.Vec against the usual growable
// containers: a plain slice, immutable.List and a B-tree. Scan results are
// folded through HighwayHash so the compiler cannot discard the work and so
// a mismatch between containers is caught.
//
// Usage:
//
//	go run ./tools/bench -n 1048576 -chunk 1024 -workers 4 -profile cpu.pb.gz
package main

import (
	"encoding/binary"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/benbjohnson/immutable"
	"github.com/felixge/fgprof"
	"github.com/gernest/chunked"
	"github.com/google/btree"
	"github.com/minio/highwayhash"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var hashKey = [32]byte{
	0x4b, 0xe7, 0x34, 0xfa, 0x8e, 0x23, 0x8a, 0xcd,
	0x26, 0x3e, 0x83, 0xe6, 0xbb, 0x96, 0x85, 0x52,
	0x04, 0x09, 0x71, 0x2e, 0x99, 0xcb, 0x72, 0x6b,
	0x17, 0x28, 0x26, 0xab, 0x8f, 0xe8, 0xb4, 0x63,
}

type entry struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type model struct {
	Name    string  `json:"name"`
	Unit    string  `json:"unit"`
	Step    float64 `json:"step"`
	Entries []entry `json:"entries"`
}

func main() {
	var (
		n       = flag.Int("n", 1<<20, "elements per workload")
		chunk   = flag.Int("chunk", 1<<10, "chunk size for chunked.Vec")
		workers = flag.Int("workers", 1, "independent concurrent instances for the push workload")
		profile = flag.String("profile", "", "write an fgprof profile to this file")
		asJSON  = flag.Bool("json", false, "emit chart json instead of text")
	)
	flag.Parse()

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			fatal(errors.Wrap(err, "creating profile file"))
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err := stop(); err != nil {
				fatal(errors.Wrap(err, "stopping profiler"))
			}
			if err := f.Close(); err != nil {
				fatal(errors.Wrap(err, "closing profile file"))
			}
		}()
	}

	entries, sum, err := run(*n, *chunk, *workers)
	if err != nil {
		fatal(err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode([]model{{Name: "chunked-bench", Unit: "ns", Step: 50, Entries: entries}})
		return
	}
	for _, e := range entries {
		fmt.Printf("%-16s %10.2f ns/op\n", e.Name, e.Value)
	}
	fmt.Printf("scan checksum    %016x\n", sum)
}

func run(n, chunkSize, workers int) ([]entry, uint64, error) {
	if workers < 1 {
		workers = 1
	}
	var out []entry
	measure := func(name string, ops int, fn func()) {
		start := time.Now()
		fn()
		out = append(out, entry{
			Name:  name,
			Value: float64(time.Since(start).Nanoseconds()) / float64(ops),
		})
	}

	// push: workers independent Vec instances, one goroutine each. The
	// container is single-owner, so nothing is shared.
	vecs := make([]*chunked.Vec[uint64], workers)
	measure("push/chunked", n*workers, func() {
		var g errgroup.Group
		for w := range workers {
			g.Go(func() error {
				v := chunked.New[uint64](chunkSize)
				for i := range n {
					v.Push(uint64(i))
				}
				vecs[w] = v
				return nil
			})
		}
		g.Wait()
	})

	var sl []uint64
	measure("push/slice", n, func() {
		for i := range n {
			sl = append(sl, uint64(i))
		}
	})

	var list *immutable.List[uint64]
	measure("push/immutable", n, func() {
		b := immutable.NewListBuilder[uint64]()
		for i := range n {
			b.Append(uint64(i))
		}
		list = b.List()
	})

	tree := btree.NewG(32, func(a, b uint64) bool { return a < b })
	measure("push/btree", n, func() {
		for i := range n {
			tree.ReplaceOrInsert(uint64(i))
		}
	})

	vec := vecs[0]
	sums := make([]uint64, 0, 4)
	var derr error
	scan := func(name string, iterate func(emit func(uint64))) {
		measure(name, n, func() {
			sum, err := digest(iterate)
			if err != nil {
				derr = err
				return
			}
			sums = append(sums, sum)
		})
	}
	scan("scan/chunked", func(emit func(uint64)) {
		for x := range vec.Values() {
			emit(x)
		}
	})
	scan("scan/slice", func(emit func(uint64)) {
		for _, x := range sl {
			emit(x)
		}
	})
	scan("scan/immutable", func(emit func(uint64)) {
		itr := list.Iterator()
		for !itr.Done() {
			_, x := itr.Next()
			emit(x)
		}
	})
	scan("scan/btree", func(emit func(uint64)) {
		tree.Ascend(func(x uint64) bool {
			emit(x)
			return true
		})
	})
	if derr != nil {
		return nil, 0, derr
	}
	for _, s := range sums[1:] {
		if s != sums[0] {
			return nil, 0, errors.Errorf("scan checksum mismatch: %v", sums)
		}
	}

	rng := rand.New(rand.NewPCG(0x6368756e, 0x6b656421))
	var sink uint64
	measure("at/chunked", n, func() {
		for range n {
			sink += vec.At(rng.IntN(vec.Len()))
		}
	})
	measure("swap/chunked", n, func() {
		for range n {
			vec.Swap(rng.IntN(vec.Len()), rng.IntN(vec.Len()))
		}
	})
	measure("pushpop/chunked", n, func() {
		for i := range n {
			vec.Push(uint64(i))
			vec.Pop()
		}
	})
	_ = sink

	return out, sums[0], nil
}

func digest(iterate func(emit func(uint64))) (uint64, error) {
	h, err := highwayhash.New64(hashKey[:])
	if err != nil {
		return 0, errors.Wrap(err, "initializing highwayhash")
	}
	var buf [8]byte
	iterate(func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	})
	return h.Sum64(), nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// Bench is a benchmarking tool for measuring rank/select throughput, rank
// directory overhead and universal code sizes.
//
// Usage:
//
//	go run ./cmd/bench -bits 67108864 -density 0.5 -width 64 -workers 8
//
// Flags:
//
//	-bits        Number of bits in the generated store (default: 2^26)
//	-density     Fraction of set bits (default: 0.5)
//	-width       Block width: 8, 16, 32 or 64 (default: 64)
//	-superblock  Rank superblock size in bits (default: 32768)
//	-queries     Number of select queries (default: 1,000,000)
//	-workers     Number of parallel query workers (default: GOMAXPROCS)
//	-hash        Pattern hash: xxh3 or murmur3 (default: xxh3)
//	-values      Number of values per code family (default: 100,000)
package main

import (
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"slices"
	"time"

	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/cpu"

	"github.com/tamirms/succinct"
	"github.com/tamirms/succinct/bitio"
	"github.com/tamirms/succinct/coding"
	intbits "github.com/tamirms/succinct/internal/bits"
)

// densityScale is the resolution of the density threshold.
const densityScale = 1 << 20

type hashFunc func(buf []byte) uint64

func hashByName(name string) (hashFunc, error) {
	switch name {
	case "xxh3":
		return xxh3.Hash, nil
	case "murmur3":
		return func(buf []byte) uint64 { return murmur3.Sum64WithSeed(buf, 0x1234) }, nil
	default:
		return nil, fmt.Errorf("unknown hash %q (use 'xxh3' or 'murmur3')", name)
	}
}

// hashPos hashes a position together with a stream tag, so pattern and query
// streams stay independent.
func hashPos(h hashFunc, tag byte, pos uint64) uint64 {
	var buf [9]byte
	buf[0] = tag
	binary.LittleEndian.PutUint64(buf[1:], pos)
	return h(buf[:])
}

type config struct {
	bits       uint64
	density    float64
	superblock int
	queries    int
	workers    int
	hash       hashFunc
}

type result struct {
	buildDuration  time.Duration
	rankDuration   time.Duration
	selectDuration time.Duration
	setBits        uint64
	storeBytes     int
	directoryBytes int
}

// generate sets bit i when the hash of i falls under the density threshold.
func generate[B succinct.Block](cfg config) *succinct.Vector[B] {
	w := uint64(succinct.BlockWidth[B]())
	blocks := make([]B, (cfg.bits+w-1)/w)
	threshold := uint64(cfg.density * densityScale)
	for i := range cfg.bits {
		if intbits.FastRange64(hashPos(cfg.hash, 'p', i), densityScale) < threshold {
			blocks[i/w] |= B(1) << (w - 1 - i%w)
		}
	}
	return succinct.NewVector(blocks, cfg.bits)
}

func run[B succinct.Block](cfg config) (result, error) {
	var res result
	store := generate[B](cfg)
	res.storeBytes = store.BlockLen() * int(succinct.BlockWidth[B]()/8)

	buildStart := time.Now()
	rank, err := succinct.NewJacobsonRank[B](store, succinct.WithSuperblockBits(cfg.superblock))
	if err != nil {
		return res, err
	}
	sel := succinct.NewBinSearchSelect[B](rank)
	res.buildDuration = time.Since(buildStart)
	res.setBits = sel.MaxRank()
	res.directoryBytes = rank.DirectorySize()

	if cfg.bits == 0 {
		return res, nil
	}

	var sink uint64
	rankStart := time.Now()
	for q := range cfg.queries {
		sink += rank.Rank(intbits.FastRange64(hashPos(cfg.hash, 'r', uint64(q)), cfg.bits))
	}
	res.rankDuration = time.Since(rankStart)
	_ = sink

	if res.setBits == 0 {
		return res, nil
	}

	// Every worker verifies its answers, so a wrong select aborts the run.
	g, ctx := errgroup.WithContext(context.Background())
	perWorker := (cfg.queries + cfg.workers - 1) / cfg.workers
	selectStart := time.Now()
	for w := range cfg.workers {
		from := w * perWorker
		to := min(from+perWorker, cfg.queries)
		g.Go(func() error {
			for q := from; q < to; q++ {
				if q%4096 == 0 && ctx.Err() != nil {
					return ctx.Err()
				}
				k := intbits.FastRange64(hashPos(cfg.hash, 's', uint64(q)), res.setBits)
				pos, ok := sel.Select(k)
				if !ok {
					return fmt.Errorf("select(%d): none, %d bits set", k, res.setBits)
				}
				if !sel.GetBit(pos) || sel.Rank(pos) != k+1 {
					return fmt.Errorf("select(%d) = %d: rank %d", k, pos, sel.Rank(pos))
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}
	res.selectDuration = time.Since(selectStart)
	return res, nil
}

type codeResult struct {
	name     string
	bits     uint64
	encode   time.Duration
	decode   time.Duration
	maxValue uint64
}

// measureCodes encodes a hashed value stream with every family and decodes it
// back. Families whose code length grows linearly get small values.
func measureCodes(h hashFunc, n int) ([]codeResult, error) {
	small := make([]uint64, n)
	wide := make([]uint64, n)
	for i := range n {
		x := hashPos(h, 'v', uint64(i))
		small[i] = x%1024 + 1
		wide[i] = x>>(x%63+1) + 1
	}

	families := []struct {
		name   string
		code   coding.UniversalCode
		values []uint64
	}{
		{"unary", coding.Unary{}, small},
		{"truncated(1024)", coding.TruncatedBinary{N: 1024}, small},
		{"rice(6)", coding.Rice{K: 6}, small},
		{"gamma", coding.EliasGamma{}, wide},
		{"delta", coding.EliasDelta{}, wide},
		{"omega", coding.EliasOmega{}, wide},
		{"fibonacci", coding.Fibonacci{}, wide},
	}

	results := make([]codeResult, 0, len(families))
	w := bitio.NewWriter(n * 64)
	for _, f := range families {
		w.Reset()
		encodeStart := time.Now()
		if err := coding.EncodeAll(f.code, w, f.values); err != nil {
			return nil, fmt.Errorf("%s: %w", f.name, err)
		}
		encodeDuration := time.Since(encodeStart)

		decodeStart := time.Now()
		got, err := coding.DecodeAll(f.code, w.Reader())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.name, err)
		}
		decodeDuration := time.Since(decodeStart)
		if len(got) != len(f.values) {
			return nil, fmt.Errorf("%s: decoded %d values, want %d", f.name, len(got), len(f.values))
		}

		results = append(results, codeResult{
			name:     f.name,
			bits:     w.BitLen(),
			encode:   encodeDuration,
			decode:   decodeDuration,
			maxValue: slices.Max(f.values),
		})
	}
	return results, nil
}

func main() {
	bitsFlag := flag.Uint64("bits", 1<<26, "number of bits in the store")
	densityFlag := flag.Float64("density", 0.5, "fraction of set bits")
	widthFlag := flag.Int("width", 64, "block width: 8, 16, 32 or 64")
	superblockFlag := flag.Int("superblock", 1<<15, "rank superblock size in bits")
	queriesFlag := flag.Int("queries", 1_000_000, "number of select queries")
	workersFlag := flag.Int("workers", runtime.GOMAXPROCS(0), "number of parallel query workers")
	hashFlag := flag.String("hash", "xxh3", "pattern hash: xxh3 or murmur3")
	valuesFlag := flag.Int("values", 100_000, "number of values per code family")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	flag.Parse()

	h, err := hashByName(*hashFlag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	if *densityFlag < 0 || *densityFlag > 1 {
		fmt.Printf("Density %v outside [0, 1]\n", *densityFlag)
		os.Exit(2)
	}
	cfg := config{
		bits:       *bitsFlag,
		density:    *densityFlag,
		superblock: *superblockFlag,
		queries:    max(*queriesFlag, 1),
		workers:    max(*workersFlag, 1),
		hash:       h,
	}

	fmt.Printf("CPU: POPCNT=%v BMI2=%v GOARCH=%s\n", cpu.X86.HasPOPCNT, cpu.X86.HasBMI2, runtime.GOARCH)

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Printf("could not create CPU profile: %v\n", err)
			return
		}
		defer func() { _ = f.Close() }()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("could not start CPU profile: %v\n", err)
			return
		}
		defer pprof.StopCPUProfile()
	}

	fmt.Printf("Generating %d bits (density %.3f, %s)...\n", cfg.bits, cfg.density, *hashFlag)
	var res result
	switch *widthFlag {
	case 8:
		res, err = run[uint8](cfg)
	case 16:
		res, err = run[uint16](cfg)
	case 32:
		res, err = run[uint32](cfg)
	case 64:
		res, err = run[uint64](cfg)
	default:
		err = fmt.Errorf("unsupported block width %d (use 8, 16, 32 or 64)", *widthFlag)
	}
	if err != nil {
		fmt.Printf("Run failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Measuring code sizes...")
	numValues := max(*valuesFlag, 1)
	codes, err := measureCodes(h, numValues)
	if err != nil {
		fmt.Printf("Code measurement failed: %v\n", err)
		os.Exit(1)
	}

	overhead := 0.0
	if res.storeBytes > 0 {
		overhead = 100 * float64(res.directoryBytes) / float64(res.storeBytes)
	}
	perQuery := func(d time.Duration) float64 {
		return float64(d.Nanoseconds()) / float64(cfg.queries)
	}

	fmt.Printf("\n")
	fmt.Printf("╔═════════════════════╦════════════════════╗\n")
	fmt.Printf("║ Width: %-13d║ Superblock: %-7d║\n", *widthFlag, cfg.superblock)
	fmt.Printf("╠═════════════════════╬════════════════════╣\n")
	fmt.Printf("║ Set bits            ║ %-18d ║\n", res.setBits)
	fmt.Printf("║ Store size          ║ %8.2f MB        ║\n", float64(res.storeBytes)/1_000_000)
	fmt.Printf("║ Rank directory      ║ %8.2f MB        ║\n", float64(res.directoryBytes)/1_000_000)
	fmt.Printf("║   - Overhead        ║ %8.2f %%         ║\n", overhead)
	fmt.Printf("║ Build time          ║ %8.3f sec       ║\n", res.buildDuration.Seconds())
	fmt.Printf("║ Rank latency        ║ %8.1f ns        ║\n", perQuery(res.rankDuration))
	fmt.Printf("║ Select latency      ║ %8.1f ns (x%-3d) ║\n", perQuery(res.selectDuration)*float64(cfg.workers), cfg.workers)
	fmt.Printf("║ Select throughput   ║ %8.2f M/sec     ║\n", float64(cfg.queries)/res.selectDuration.Seconds()/1_000_000)
	fmt.Printf("╚═════════════════════╩════════════════════╝\n")

	fmt.Printf("\n%-16s %12s %10s %10s %10s\n", "code", "max value", "bits/val", "enc ns/v", "dec ns/v")
	for _, c := range codes {
		n := float64(numValues)
		fmt.Printf("%-16s %12d %10.2f %10.1f %10.1f\n",
			c.name, c.maxValue, float64(c.bits)/n,
			float64(c.encode.Nanoseconds())/n, float64(c.decode.Nanoseconds())/n)
	}
}

package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/c9s/rbtree/pkg/envvar"
	"github.com/c9s/rbtree/pkg/metrics"
	"github.com/c9s/rbtree/pkg/rbtree"
	"github.com/c9s/rbtree/pkg/style"
)

func init() {
	defaultWorkers, _ := envvar.Int("RBTREE_BENCH_WORKERS", runtime.NumCPU())

	BenchCmd.Flags().Int("n", 100_000, "number of keys per worker")
	BenchCmd.Flags().Int("workers", defaultWorkers, "number of workers, each one owns its own tree")
	BenchCmd.Flags().Int64("seed", 1, "random seed")
	BenchCmd.Flags().String("metrics-addr", "", "serve prometheus metrics on this address, e.g. :9090")
	BenchCmd.Flags().Bool("no-progress", false, "disable the progress bar")
	BenchCmd.Flags().StringP("output", "o", "table", "report format: table or yaml")
	RootCmd.AddCommand(BenchCmd)
}

const (
	opInsert = "insert"
	opFind   = "find"
	opErase  = "erase"
)

var benchOps = []string{opInsert, opFind, opErase}

type OpReport struct {
	Op       string  `yaml:"op"`
	Count    int     `yaml:"count"`
	MeanNs   float64 `yaml:"meanNs"`
	StdDevNs float64 `yaml:"stdDevNs"`
	P50Ns    float64 `yaml:"p50Ns"`
	P99Ns    float64 `yaml:"p99Ns"`
	MaxNs    float64 `yaml:"maxNs"`
}

type BenchReport struct {
	Workers   int           `yaml:"workers"`
	Keys      int           `yaml:"keysPerWorker"`
	MaxHeight int           `yaml:"maxHeight"`
	Elapsed   time.Duration `yaml:"elapsed"`
	Ops       []OpReport    `yaml:"ops"`
}

// workerResult holds the latencies of one worker, in nanoseconds, by op.
type workerResult struct {
	latencies map[string][]float64
	height    int
}

type benchProgress interface {
	Increment() *pb.ProgressBar
}

type nopProgress struct{}

func (nopProgress) Increment() *pb.ProgressBar { return nil }

// BenchCmd measures insert, find and erase latencies
// go run ./cmd/rbtree bench --n 1000000 --workers 4
var BenchCmd = &cobra.Command{
	Use:   "bench",
	Short: "benchmark insert, find and erase on independent trees",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		n, err := cmd.Flags().GetInt("n")
		if err != nil {
			return err
		}

		workers, err := cmd.Flags().GetInt("workers")
		if err != nil {
			return err
		}

		if n <= 0 || workers <= 0 {
			return errors.New("--n and --workers must be positive")
		}

		seed, err := cmd.Flags().GetInt64("seed")
		if err != nil {
			return err
		}

		metricsAddr, err := cmd.Flags().GetString("metrics-addr")
		if err != nil {
			return err
		}

		noProgress, err := cmd.Flags().GetBool("no-progress")
		if err != nil {
			return err
		}

		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}

		if len(metricsAddr) > 0 {
			go serveMetrics(metricsAddr)
		}

		var progress benchProgress = nopProgress{}
		if !noProgress {
			bar := pb.Full.Start(workers * n * len(benchOps))
			bar.SetTemplateString(`{{ string . "log" | green}} | {{counters . }} {{bar . }} {{percent . }} {{etime . }} {{rtime . "ETA %s"}}`)
			bar.Set("log", fmt.Sprintf("%d workers", workers))
			defer bar.Finish()
			progress = bar
		}

		startTime := time.Now()
		results := make([]workerResult, workers)
		eg, egCtx := errgroup.WithContext(ctx)
		for w := 0; w < workers; w++ {
			w := w
			eg.Go(func() error {
				name := fmt.Sprintf("bench-%d", w)
				rnd := rand.New(rand.NewSource(seed + int64(w)))
				result, err := runBenchWorker(egCtx, name, rnd, n, progress)
				if err != nil {
					return errors.Wrapf(err, "worker %s", name)
				}

				results[w] = result
				return nil
			})
		}

		if err := eg.Wait(); err != nil {
			return err
		}

		report := buildBenchReport(results, n, time.Since(startTime))
		switch output {
		case "yaml":
			out, err := yaml.Marshal(report)
			if err != nil {
				return err
			}
			fmt.Print(string(out))

		case "table":
			t := style.NewTable(os.Stdout,
				fmt.Sprintf("%d workers x %d keys, max height %d, %s", report.Workers, report.Keys, report.MaxHeight, report.Elapsed),
				"op", "count", "mean", "stddev", "p50", "p99", "max")
			for _, op := range report.Ops {
				t.AppendRow([]interface{}{
					op.Op, op.Count,
					time.Duration(op.MeanNs), time.Duration(op.StdDevNs),
					time.Duration(op.P50Ns), time.Duration(op.P99Ns), time.Duration(op.MaxNs),
				})
			}
			t.Render()

		default:
			return fmt.Errorf("unsupported output format %q", output)
		}

		return nil
	},
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	log.Infof("serving metrics on %s/metrics", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.WithError(err).Errorf("metrics server error")
	}
}

// runBenchWorker inserts n random keys, finds each of them and erases them
// all in random order. The tree is owned by the calling goroutine.
func runBenchWorker(ctx context.Context, name string, rnd *rand.Rand, n int, progress benchProgress) (workerResult, error) {
	result := workerResult{latencies: make(map[string][]float64, len(benchOps))}
	for _, op := range benchOps {
		result.latencies[op] = make([]float64, 0, n)
	}

	tree := newTree(rbtree.WithObserver(metrics.NewObserver(name)))
	defer tree.Destroy()

	keys := make([]int64, n)
	refs := make([]rbtree.NodeRef, n)
	for i := range keys {
		keys[i] = rnd.Int63()

		start := time.Now()
		ref, err := tree.Insert(keys[i])
		result.latencies[opInsert] = append(result.latencies[opInsert], float64(time.Since(start)))
		if err != nil {
			return result, err
		}

		refs[i] = ref
		progress.Increment()

		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return result, err
			}
		}
	}

	metrics.UpdateTreeMetrics(name, tree)
	result.height = tree.Height()

	for _, k := range keys {
		start := time.Now()
		_, ok := tree.Find(k)
		result.latencies[opFind] = append(result.latencies[opFind], float64(time.Since(start)))
		if !ok {
			return result, fmt.Errorf("inserted key %d not found", k)
		}

		progress.Increment()
	}

	rnd.Shuffle(len(refs), func(i, j int) { refs[i], refs[j] = refs[j], refs[i] })
	for i, ref := range refs {
		start := time.Now()
		err := tree.Erase(ref)
		result.latencies[opErase] = append(result.latencies[opErase], float64(time.Since(start)))
		if err != nil {
			return result, err
		}

		progress.Increment()

		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return result, err
			}
		}
	}

	if err := tree.Verify(); err != nil {
		return result, err
	}

	metrics.UpdateTreeMetrics(name, tree)
	return result, nil
}

func buildBenchReport(results []workerResult, n int, elapsed time.Duration) BenchReport {
	report := BenchReport{
		Workers: len(results),
		Keys:    n,
		Elapsed: elapsed,
	}

	for _, r := range results {
		if r.height > report.MaxHeight {
			report.MaxHeight = r.height
		}
	}

	for _, op := range benchOps {
		var samples []float64
		for _, r := range results {
			samples = append(samples, r.latencies[op]...)
		}

		report.Ops = append(report.Ops, newOpReport(op, samples))
	}

	return report
}

func newOpReport(op string, samples []float64) OpReport {
	report := OpReport{Op: op, Count: len(samples)}
	if len(samples) == 0 {
		return report
	}

	sort.Float64s(samples)
	report.MeanNs, report.StdDevNs = stat.MeanStdDev(samples, nil)
	report.P50Ns = stat.Quantile(0.5, stat.Empirical, samples, nil)
	report.P99Ns = stat.Quantile(0.99, stat.Empirical, samples, nil)
	report.MaxNs = samples[len(samples)-1]
	return report
}

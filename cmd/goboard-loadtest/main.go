package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	goBoard "github.com/MrEthical07/goBoard"
	"github.com/MrEthical07/goBoard/board"
)

type stroke struct {
	X, Y  int
	Color string
}

func main() {
	var (
		concurrency = flag.Int("concurrency", 256, "number of concurrent workers, one engine each")
		ops         = flag.Int("ops", 200000, "operations per phase (login + validate + append)")
		metricsOn   = flag.Bool("metrics", false, "enable metrics counters on every engine")
		histograms  = flag.Bool("histograms", false, "enable token check latency histograms (implies -metrics)")
		auditOn     = flag.Bool("audit", false, "enable audit dispatch to a no-op sink (drop-if-full)")
	)
	flag.Parse()

	if *concurrency <= 0 || *ops <= 0 {
		fmt.Fprintln(os.Stderr, "concurrency and ops must be > 0")
		os.Exit(2)
	}
	if *histograms {
		*metricsOn = true
	}

	ctx := context.Background()

	cfg := goBoard.DefaultConfig()
	cfg.Metrics.Enabled = *metricsOn
	cfg.Metrics.EnableLatencyHistograms = *histograms
	cfg.Audit.Enabled = *auditOn
	cfg.Audit.DropIfFull = true

	// Session and canvas state are single-goroutine by contract, so every
	// worker drives its own engine.
	engines := make([]*goBoard.Engine, *concurrency)
	fmt.Printf("building %d engines...\n", *concurrency)
	startBuild := time.Now()
	for i := range engines {
		engine, err := goBoard.New().
			WithConfig(cfg).
			WithCanvas(board.New(board.Size{Width: 1920, Height: 1080})).
			Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "build failed: %v\n", err)
			os.Exit(1)
		}
		engines[i] = engine
	}
	fmt.Printf("built in %s\n", time.Since(startBuild).Round(time.Millisecond))
	defer func() {
		for _, engine := range engines {
			engine.Close()
		}
	}()

	loginStats := runLoginPhase(ctx, engines, *ops)
	validateStats := runValidatePhase(ctx, engines, *ops)
	appendStats := runAppendPhase(ctx, engines, *ops)

	fmt.Println("---- results ----")
	printStats("login", loginStats)
	printStats("validate", validateStats)
	printStats("append", appendStats)

	if *metricsOn {
		printCounters(engines)
	}
}

func runLoginPhase(ctx context.Context, engines []*goBoard.Engine, ops int) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := range engines {
		wg.Add(1)
		go func(engine *goBoard.Engine) {
			defer wg.Done()
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				t0 := time.Now()
				ok := engine.Login(ctx, goBoard.DefaultUsername, goBoard.DefaultPassword)
				d := time.Since(t0)
				if !ok {
					atomic.AddInt64(&failures, 1)
				}
				engine.Logout(ctx)
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}(engines[w])
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

func runValidatePhase(ctx context.Context, engines []*goBoard.Engine, ops int) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := range engines {
		wg.Add(1)
		go func(worker int, engine *goBoard.Engine) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)*7919))
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				useValid := r.Intn(10) != 0
				token := goBoard.DefaultToken
				if !useValid {
					token = "junk-token"
				}
				t0 := time.Now()
				ok := engine.ValidateToken(ctx, token)
				d := time.Since(t0)
				if ok != useValid {
					atomic.AddInt64(&failures, 1)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}(w, engines[w])
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

func runAppendPhase(ctx context.Context, engines []*goBoard.Engine, ops int) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	// Writes are login-gated; authenticate every engine before the phase.
	for _, engine := range engines {
		if !engine.Login(ctx, goBoard.DefaultUsername, goBoard.DefaultPassword) {
			fmt.Fprintln(os.Stderr, "append phase login failed")
			os.Exit(1)
		}
	}

	start := time.Now()
	for w := range engines {
		wg.Add(1)
		go func(worker int, engine *goBoard.Engine) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)*6151))
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				el := stroke{X: r.Intn(1920), Y: r.Intn(1080), Color: "#a89984"}
				t0 := time.Now()
				err := engine.AddElement(ctx, el)
				d := time.Since(t0)
				if err != nil {
					atomic.AddInt64(&failures, 1)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}(w, engines[w])
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

type phaseStats struct {
	total    time.Duration
	ops      int
	failures int64
	p50      time.Duration
	p95      time.Duration
	p99      time.Duration
	opsPerS  float64
}

func computeStats(total time.Duration, samples []time.Duration, failures int64) phaseStats {
	if len(samples) == 0 {
		return phaseStats{total: total}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return phaseStats{
		total:    total,
		ops:      len(samples),
		failures: failures,
		p50:      percentile(samples, 50),
		p95:      percentile(samples, 95),
		p99:      percentile(samples, 99),
		opsPerS:  float64(len(samples)) / total.Seconds(),
	}
}

func percentile(samples []time.Duration, p int) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	if p <= 0 {
		return samples[0]
	}
	if p >= 100 {
		return samples[len(samples)-1]
	}
	idx := (len(samples) - 1) * p / 100
	return samples[idx]
}

func printStats(name string, s phaseStats) {
	fmt.Printf("%s: ops=%d failures=%d total=%s ops/sec=%.0f p50=%s p95=%s p99=%s\n",
		name,
		s.ops,
		s.failures,
		s.total.Round(time.Millisecond),
		s.opsPerS,
		s.p50.Round(time.Microsecond),
		s.p95.Round(time.Microsecond),
		s.p99.Round(time.Microsecond),
	)
}

func printCounters(engines []*goBoard.Engine) {
	totals := map[goBoard.MetricID]uint64{}
	var dropped uint64
	for _, engine := range engines {
		snapshot := engine.MetricsSnapshot()
		for id, v := range snapshot.Counters {
			totals[id] += v
		}
		dropped += engine.AuditDropped()
	}
	fmt.Printf("metrics: login_success=%d logout=%d token_valid=%d token_invalid=%d element_added=%d audit_dropped=%d\n",
		totals[goBoard.MetricLoginSuccess],
		totals[goBoard.MetricLogout],
		totals[goBoard.MetricTokenValid],
		totals[goBoard.MetricTokenInvalid],
		totals[goBoard.MetricElementAdded],
		dropped,
	)
}

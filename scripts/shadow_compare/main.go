package main

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"reflect"
	"strings"
	"time"

	"go.uber.org/zap"
)

//go:embed targets.json
var defaultTargets []byte

// step is one request of the replayed scenario. Steps run in order against
// both deployments, so mutating steps leave the two stores in the same state.
type step struct {
	Method   string          `json:"method"`
	Path     string          `json:"path"`
	Body     json.RawMessage `json:"body,omitempty"`
	Critical bool            `json:"critical"`
}

type scenario struct {
	Ignore []string `json:"ignore"`
	Steps  []step   `json:"steps"`
}

type comparison struct {
	Step           step
	LegacyStatus   int
	GoStatus       int
	StatusMatch    bool
	BodyMatch      bool
	Error          error
	DurationGo     time.Duration
	DurationLegacy time.Duration
}

func main() {
	var (
		goBase      string
		legacyBase  string
		targetsPath string
		timeout     time.Duration
	)

	flag.StringVar(&goBase, "go-base", "http://localhost:8080", "Go API base URL")
	flag.StringVar(&legacyBase, "legacy-base", "http://localhost:8081", "Legacy API base URL")
	flag.StringVar(&targetsPath, "targets", "", "Path to JSON scenario file (defaults to the embedded scenario)")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync() //nolint:errcheck

	sc, err := loadScenario(targetsPath)
	if err != nil {
		logger.Fatal("failed to load scenario", zap.Error(err))
	}

	client := &http.Client{Timeout: timeout}
	ignore := toSet(sc.Ignore)
	var (
		comparisons  []comparison
		breaking     int
		optionalDiff int
	)

	for _, s := range sc.Steps {
		comp := compareStep(client, goBase, legacyBase, s, ignore)
		if comp.Error != nil || !comp.StatusMatch || !comp.BodyMatch {
			if s.Critical {
				breaking++
			} else {
				optionalDiff++
			}
		}
		comparisons = append(comparisons, comp)
	}

	printReport(os.Stdout, comparisons)

	fmt.Printf("Breaking diffs: %d, Optional diffs: %d\n", breaking, optionalDiff)
	if breaking > 0 {
		os.Exit(1)
	}
}

func loadScenario(path string) (scenario, error) {
	data := defaultTargets
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return scenario{}, err
		}
		data = raw
	}
	var sc scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		return scenario{}, err
	}
	if len(sc.Steps) == 0 {
		return scenario{}, errors.New("scenario has no steps")
	}
	return sc, nil
}

func compareStep(client *http.Client, goBase, legacyBase string, s step, ignore map[string]struct{}) comparison {
	comp := comparison{Step: s}
	goStatus, goBody, goDur, goErr := perform(client, goBase, s)
	legacyStatus, legacyBody, legacyDur, legacyErr := perform(client, legacyBase, s)
	comp.DurationGo = goDur
	comp.DurationLegacy = legacyDur

	if goErr != nil {
		comp.Error = fmt.Errorf("go request failed: %w", goErr)
		return comp
	}
	if legacyErr != nil {
		comp.Error = fmt.Errorf("legacy request failed: %w", legacyErr)
		return comp
	}

	comp.GoStatus = goStatus
	comp.LegacyStatus = legacyStatus
	comp.StatusMatch = goStatus == legacyStatus
	comp.BodyMatch = bodiesEqual(goBody, legacyBody, ignore)
	return comp
}

func perform(client *http.Client, base string, s step) (int, []byte, time.Duration, error) {
	if client == nil {
		return 0, nil, 0, errors.New("nil client")
	}
	method := strings.ToUpper(strings.TrimSpace(s.Method))
	if method == "" {
		method = http.MethodGet
	}
	path := s.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	var body io.Reader
	if len(s.Body) > 0 {
		body = bytes.NewReader(s.Body)
	}
	req, err := http.NewRequest(method, strings.TrimRight(base, "/")+path, body)
	if err != nil {
		return 0, nil, 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("read body: %w", err)
	}
	return resp.StatusCode, payload, time.Since(start), nil
}

// bodiesEqual compares raw bodies, falling back to a JSON comparison that
// drops ignored keys at any depth. Ids and timestamps differ between stores.
func bodiesEqual(a, b []byte, ignore map[string]struct{}) bool {
	if bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b)) {
		return true
	}

	var aj, bj interface{}
	if err := json.Unmarshal(a, &aj); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &bj); err != nil {
		return false
	}
	return reflect.DeepEqual(normalize(aj, ignore), normalize(bj, ignore))
}

func normalize(v interface{}, ignore map[string]struct{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, inner := range val {
			if _, skip := ignore[k]; skip {
				continue
			}
			out[k] = normalize(inner, ignore)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, inner := range val {
			out[i] = normalize(inner, ignore)
		}
		return out
	case float64:
		if val == float64(int64(val)) {
			return int64(val)
		}
	}
	return v
}

func toSet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

func printReport(w io.Writer, results []comparison) {
	fmt.Fprintln(w, "Shadow Compare Report")
	fmt.Fprintln(w, "======================")
	for _, res := range results {
		status := "OK"
		if res.Error != nil {
			status = "ERROR"
		} else if !res.StatusMatch || !res.BodyMatch {
			status = "DIFF"
		}
		fmt.Fprintf(w, "[%s] %s %s\n", status, res.Step.Method, res.Step.Path)
		fmt.Fprintf(w, "  Go Status: %d (%s)\n", res.GoStatus, res.DurationGo)
		fmt.Fprintf(w, "  Legacy Status: %d (%s)\n", res.LegacyStatus, res.DurationLegacy)
		if res.Error != nil {
			fmt.Fprintf(w, "  Error: %v\n", res.Error)
		} else {
			fmt.Fprintf(w, "  Status match: %t | Body match: %t | Critical: %t\n", res.StatusMatch, res.BodyMatch, res.Step.Critical)
		}
	}
}

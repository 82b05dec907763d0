package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"sync"
	"time"
)

// RegisterRequest represents the registration payload
type RegisterRequest struct {
	WalletAddress string `json:"walletAddress"`
	ReferralCode  string `json:"referralCode,omitempty"`
}

// RegisterResponse represents the registration API response
type RegisterResponse struct {
	User struct {
		ID           string `json:"id"`
		ReferralCode string `json:"referralCode"`
	} `json:"user"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// codePool collects referral codes returned by successful registrations so
// later requests can register through them and exercise the ledger path.
type codePool struct {
	codes []string
	lock  sync.Mutex
}

func (p *codePool) add(code string) {
	if code == "" {
		return
	}
	p.lock.Lock()
	p.codes = append(p.codes, code)
	p.lock.Unlock()
}

func (p *codePool) random() string {
	p.lock.Lock()
	defer p.lock.Unlock()
	if len(p.codes) == 0 {
		return ""
	}
	return p.codes[rand.Intn(len(p.codes))]
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	referralPct := flag.Int("referral", 40, "Percent of registrations that use a referral code")
	leaderboardPct := flag.Int("leaderboard", 20, "Percent of requests that read the leaderboard")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	fmt.Printf("Load testing whitelist API at %s\n", *baseURL)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Referral registrations: %d%%, leaderboard reads: %d%%\n", *referralPct, *leaderboardPct)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour, // Start with a high value that will be replaced
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		ScenarioStats:   make(map[string]int),
	}

	pool := &codePool{}
	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	fmt.Println("Starting worker goroutines...")
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(workerID, *baseURL, *delayMs, *referralPct, *leaderboardPct, pool, jobs, results)
		}(i)
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	go func() {
		for result := range results {
			stats.Lock.Lock()
			stats.ScenarioStats[result.Scenario]++
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}

			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime

			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

// randomWallet produces a unique-enough EVM address for a test registration
func randomWallet() string {
	const hexChars = "0123456789abcdef"
	b := make([]byte, 40)
	for i := range b {
		b[i] = hexChars[rand.Intn(len(hexChars))]
	}
	return "0x" + string(b)
}

func worker(id int, baseURL string, delayMs, referralPct, leaderboardPct int,
	pool *codePool, jobs <-chan int, results chan<- TestResult) {

	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	for range jobs {
		// Optional delay between requests to prevent rate limiting
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		roll := rand.Intn(100)
		if roll < leaderboardPct {
			results <- readLeaderboard(client, baseURL)
			continue
		}

		payload := RegisterRequest{WalletAddress: randomWallet()}
		scenario := "Register"
		if rand.Intn(100) < referralPct {
			if code := pool.random(); code != "" {
				payload.ReferralCode = code
				scenario = "Register w/ referral"
			}
		}

		results <- registerWallet(client, baseURL, payload, scenario, pool)
	}
}

func registerWallet(client *http.Client, baseURL string, payload RegisterRequest,
	scenario string, pool *codePool) TestResult {

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return TestResult{Scenario: scenario, Success: false, Error: err}
	}

	req, err := http.NewRequest("POST", baseURL+"/registerWallet", bytes.NewBuffer(jsonData))
	if err != nil {
		return TestResult{Scenario: scenario, Success: false, Error: err}
	}
	req.Header.Set("Content-Type", "application/json")

	startTime := time.Now()
	resp, err := client.Do(req)
	responseTime := time.Since(startTime)

	result := TestResult{
		Scenario:     scenario,
		ResponseTime: responseTime,
	}

	if err != nil {
		result.Success = false
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.Success = resp.StatusCode == http.StatusCreated
	if !result.Success {
		result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		return result
	}

	var registered RegisterResponse
	if err := json.NewDecoder(resp.Body).Decode(&registered); err == nil {
		pool.add(registered.User.ReferralCode)
	}

	return result
}

func readLeaderboard(client *http.Client, baseURL string) TestResult {
	startTime := time.Now()
	resp, err := client.Get(baseURL + "/leaderboard")
	responseTime := time.Since(startTime)

	result := TestResult{
		Scenario:     "Leaderboard",
		ResponseTime: responseTime,
	}

	if err != nil {
		result.Success = false
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.Success = resp.StatusCode == http.StatusOK
	if !result.Success {
		result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	return result
}

func printResults(stats *TestStats) {
	rawTps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()
	theoreticalTps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sortedTimes := make([]time.Duration, len(stats.ResponseTimes))
		copy(sortedTimes, stats.ResponseTimes)
		sort.Slice(sortedTimes, func(i, j int) bool { return sortedTimes[i] < sortedTimes[j] })

		p50 = sortedTimes[len(sortedTimes)*50/100]
		p90 = sortedTimes[len(sortedTimes)*90/100]
		p95 = sortedTimes[len(sortedTimes)*95/100]
		p99 = sortedTimes[len(sortedTimes)*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- PERFORMANCE -----------------")
	fmt.Printf("Raw TPS:             %.2f (successful requests / total time)\n", rawTps)
	fmt.Printf("Theoretical TPS:     %.2f (if all requests were successful)\n", theoreticalTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	totalScenarios := 0
	for _, count := range stats.ScenarioStats {
		totalScenarios += count
	}
	for scenario, count := range stats.ScenarioStats {
		if count > 0 {
			fmt.Printf("%-20s: %d requests (%.1f%%)\n", scenario, count,
				float64(count)/float64(totalScenarios)*100)
		}
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
}

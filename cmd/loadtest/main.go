package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	concurrency := flag.Int("c", 10, "Number of concurrent requests in flight")
	totalRequests := flag.Int("n", 100, "Total number of debit requests to send")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	email := flag.String("email", "loadtest@example.com", "Account used for the burst")
	pin := flag.String("pin", "1234", "PIN of the account")
	amount := flag.Int64("amount", 10, "Amount of every debit")
	deposit := flag.Int64("deposit", 0, "Deposit made before the burst; 0 deposits amount*n/2+1")
	delayMs := flag.Int("delay", 0, "Delay before each request in milliseconds")
	flag.Parse()

	if *deposit == 0 {
		*deposit = *amount*int64(*totalRequests)/2 + 1
	}

	client := newClient(*baseURL, &http.Client{Timeout: 10 * time.Second})
	ctx := context.Background()

	fmt.Printf("Load testing %s as %s\n", *baseURL, *email)
	fmt.Printf("Concurrency: %d, requests: %d, debit amount: %d\n", *concurrency, *totalRequests, *amount)

	if err := client.ensureUser(ctx, *email, *pin); err != nil {
		fail(err)
	}
	if _, err := client.post(ctx, *email, *pin, "Deposit", *deposit); err != nil {
		fail(fmt.Errorf("initial deposit: %w", err))
	}

	startBalance, err := client.balance(ctx, *email, *pin)
	if err != nil {
		fail(err)
	}

	stats := newStats(*totalRequests)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*concurrency)

	started := time.Now()
	for i := 0; i < *totalRequests; i++ {
		g.Go(func() error {
			if *delayMs > 0 {
				time.Sleep(time.Duration(*delayMs) * time.Millisecond)
			}
			begin := time.Now()
			status, err := client.post(gctx, *email, *pin, "Debit", *amount)
			stats.record(status, time.Since(begin), err)
			return nil
		})
	}
	_ = g.Wait()
	stats.totalTime = time.Since(started)

	endBalance, err := client.balance(ctx, *email, *pin)
	if err != nil {
		fail(err)
	}

	stats.print(os.Stdout)

	expected := startBalance - int64(stats.successful)*(*amount)
	fmt.Println("\n================= CONSISTENCY =================")
	fmt.Printf("Start balance:    %d\n", startBalance)
	fmt.Printf("End balance:      %d\n", endBalance)
	fmt.Printf("Expected balance: %d\n", expected)
	if endBalance != expected || endBalance < 0 {
		fmt.Println("FAIL: balance does not match accepted debits")
		os.Exit(1)
	}
	fmt.Println("OK: every accepted debit is reflected exactly once")
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "loadtest: %v\n", err)
	os.Exit(1)
}

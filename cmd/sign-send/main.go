package main

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// sign-send signs a JSON payload the way the order source would and posts
// it to a running webhook-server. Useful for exercising the full pipeline
// without a real store.
//
//	sign-send -secret s3cret -topic orders/create -payload order.json
func main() {
	var (
		url     = flag.String("url", "http://localhost:8080/webhooks/orders", "webhook endpoint")
		secret  = flag.String("secret", "", "shared signing secret (required)")
		topic   = flag.String("topic", "orders/create", "event topic header")
		shop    = flag.String("shop", "dev-store.myshopify.com", "shop domain header")
		payload = flag.String("payload", "", "path to the JSON payload file (required)")
	)
	flag.Parse()

	if *secret == "" || *payload == "" {
		flag.Usage()
		os.Exit(2)
	}

	body, err := os.ReadFile(*payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read payload: %v\n", err)
		os.Exit(1)
	}

	mac := hmac.New(sha256.New, []byte(*secret))
	mac.Write(body)
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	req, err := http.NewRequest(http.MethodPost, *url, bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "new request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Topic", *topic)
	req.Header.Set("X-Shopify-Shop-Domain", *shop)
	req.Header.Set("X-Shopify-Hmac-Sha256", signature)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "post webhook: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	fmt.Printf("%s\n%s\n", resp.Status, respBody)
}

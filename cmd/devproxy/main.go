package main

import (
	"crypto/tls"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
)

// Local HTTPS front for the PocketBase server, for testing auth cookies
// and SSE behind TLS during development.
func main() {
	backendURL := "http://127.0.0.1:8090"
	listenAddr := ":8443"
	certFile := "certs/cert.pem"
	keyFile := "certs/key.pem"

	if _, err := os.Stat(certFile); os.IsNotExist(err) {
		log.Fatalf("SSL certificate not found at '%s'. Run scripts/gen_certs.sh first.", certFile)
	}

	target, err := url.Parse(backendURL)
	if err != nil {
		log.Fatal(err)
	}

	proxy := httputil.NewSingleHostReverseProxy(target)

	originalDirector := proxy.Director
	proxy.Director = func(req *http.Request) {
		originalDirector(req)
		req.Header.Set("X-Forwarded-Proto", "https")
		req.Header.Set("X-Forwarded-Host", req.Host)
	}

	// SSE needs immediate flushing; disable response buffering.
	proxy.FlushInterval = -1

	fmt.Printf("HTTPS proxy listening at https://localhost%s\n", listenAddr)
	fmt.Printf("Forwarding to %s\n", backendURL)
	fmt.Println("Make sure 'go run main.go serve' is running in another terminal.")

	srv := &http.Server{
		Addr:    listenAddr,
		Handler: proxy,
		TLSConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}

	if err := srv.ListenAndServeTLS(certFile, keyFile); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

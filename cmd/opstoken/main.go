package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Mints the bearer token the /api/ops endpoints require. The server
// verifies against the same OPS_TOKEN_SECRET environment variable.
func main() {
	var secret string
	var days int

	flag.StringVar(&secret, "secret", "", "Signing secret (defaults to $OPS_TOKEN_SECRET)")
	flag.IntVar(&days, "days", 0, "Validity days")
	flag.Parse()

	if secret == "" {
		secret = os.Getenv("OPS_TOKEN_SECRET")
	}

	reader := bufio.NewReader(os.Stdin)

	if secret == "" {
		fmt.Print("Enter signing secret: ")
		line, _ := reader.ReadString('\n')
		secret = strings.TrimSpace(line)
	}

	if days == 0 {
		fmt.Print("Enter validity days (e.g. 30): ")
		fmt.Scanln(&days)
	}

	if secret == "" || days <= 0 {
		fmt.Println("Error: Invalid input")
		os.Exit(1)
	}

	expiry := time.Now().AddDate(0, 0, days)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "ops",
		"exp": expiry.Unix(),
		"iat": time.Now().Unix(),
		"iss": "propfirm143-opstoken",
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		fmt.Printf("Error generating token: %v\n", err)
		return
	}

	fmt.Println("\n===========================================")
	fmt.Println("         PROPFIRM143 - OPS TOKEN")
	fmt.Println("===========================================")
	fmt.Printf("Expires : %s (%d days)\n", expiry.Format("2006-01-02"), days)
	fmt.Println("-------------------------------------------")
	fmt.Println("TOKEN (pass as Authorization: Bearer ...):")
	fmt.Println(signed)
	fmt.Println("===========================================")
}

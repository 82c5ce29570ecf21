// scripts/gcal-auth/main.go
//
// Run this once locally to authorize Google Calendar export with OAuth
// Desktop App credentials. The token is written next to the credentials file,
// where the API server looks for it.
//
// Usage:
//
//	go run ./scripts/gcal-auth [google-credentials.json]
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"goal-planner/pkg/gcalendar"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	authURL, err := gcalendar.AuthCodeURL(data)
	if err != nil {
		log.Fatalf("%v\nMake sure %q is an OAuth Desktop App credentials file.", err, credsPath)
	}

	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open this URL in a browser and sign in:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tokenPath := gcalendar.TokenPathFor(credsPath)
	if err := gcalendar.ExchangeAndSave(context.Background(), data, code, tokenPath); err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Println()
	fmt.Printf("Token saved to %s\n", tokenPath)
	fmt.Println("Restart the API server to enable calendar export.")
}

package main

import (
	"bufio"
	"flag"
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Global flags
	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "login":
		loginCmd(apiURL, args)
	case "populate":
		populateCmd(apiURL, args)
	case "watch":
		watchCmd(apiURL)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Portfolio Seeder - Development tool for filling a local backend with content

USAGE:
  seeder <command> [options]

COMMANDS:
  login     Request a login code, read it from stdin and print a token
  populate  Create sample memories, thoughts, gallery images and backgrounds
  watch     Print every event on the change feed
  help      Show this help message

ENVIRONMENT:
  API_URL   Backend API URL (default: http://localhost:8080)
  TOKEN     Admin token used by populate when --token is not given

EXAMPLES:
  # Log in; without SMTP the code is printed in the server log
  seeder login --email=admin@example.com

  # Create three of everything
  TOKEN=$(seeder login --email=admin@example.com --quiet) seeder populate --count=3

  # Follow live changes in another terminal
  seeder watch`)
}

func loginCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "Admin email (required)")
	quiet := fs.Bool("quiet", false, "Print only the token")
	fs.Parse(args)

	if *email == "" {
		fmt.Println("Error: --email is required")
		os.Exit(1)
	}

	client := NewAPIClient(apiURL)
	status := os.Stdout
	if *quiet {
		status = os.Stderr
	}

	fmt.Fprintf(status, "Requesting code for %s... ", *email)
	if err := client.SendOTP(*email); err != nil {
		fmt.Fprintf(status, "FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintln(status, "OK")

	fmt.Fprint(status, "Code: ")
	code, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		fmt.Fprintf(status, "\nFailed to read code: %v\n", err)
		os.Exit(1)
	}

	result, err := client.VerifyOTP(*email, strings.TrimSpace(code))
	if err != nil {
		fmt.Fprintf(status, "Login failed: %v\n", err)
		os.Exit(1)
	}

	if *quiet {
		fmt.Println(result.Token)
		return
	}
	fmt.Println()
	fmt.Printf("  Account: %s (%s)\n", result.Email, result.ID)
	fmt.Printf("  Token:   %s\n", result.Token)
}

var palette = []color.NRGBA{
	{R: 0x7c, G: 0x3a, B: 0xed, A: 0xff},
	{R: 0xdb, G: 0x27, B: 0x77, A: 0xff},
	{R: 0x0e, G: 0xa5, B: 0xe9, A: 0xff},
	{R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff},
	{R: 0x10, G: 0xb9, B: 0x81, A: 0xff},
}

func populateCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("populate", flag.ExitOnError)
	token := fs.String("token", os.Getenv("TOKEN"), "Admin token (default $TOKEN)")
	count := fs.Int("count", 3, "Documents to create per collection")
	fs.Parse(args)

	if *token == "" {
		fmt.Println("Error: --token is required")
		fmt.Println("\nUsage: seeder populate --token=<jwt> [--count=3]")
		os.Exit(1)
	}
	if *count < 1 {
		fmt.Println("Error: --count must be at least 1")
		os.Exit(1)
	}

	client := NewAPIClient(apiURL)
	memoryCategories := []string{"Travel", "Nature", "Friends", "Family", "Moments", "Adventure"}
	thoughtCategories := []string{"Mindset", "Philosophy", "Design", "Growth", "Life", "Engineering"}
	failed := 0

	report := func(kind string, i int, created *Created, err error) {
		if err != nil {
			failed++
			fmt.Printf("  [%d/%d] %s FAILED: %v\n", i+1, *count, kind, err)
			return
		}
		fmt.Printf("  [%d/%d] %s %s\n", i+1, *count, kind, created.ID)
	}

	fmt.Println("=== Portfolio Seeder ===")
	fmt.Println()

	for i := 0; i < *count; i++ {
		c := palette[i%len(palette)]
		stamp := time.Now().Format("15:04:05")

		memory, err := client.CreateWithImages("memories", map[string]string{
			"title":    fmt.Sprintf("Sample memory %d (%s)", i+1, stamp),
			"location": "Somewhere quiet",
			"date":     time.Now().Format("January 2006"),
			"category": memoryCategories[i%len(memoryCategories)],
			"quote":    "Collect moments, not things.",
		}, []Upload{
			{Field: "image", Filename: fmt.Sprintf("memory-%d.jpg", i+1), Color: c},
			{Field: "gallery", Filename: fmt.Sprintf("memory-%d-a.jpg", i+1), Color: palette[(i+1)%len(palette)]},
			{Field: "gallery", Filename: fmt.Sprintf("memory-%d-b.jpg", i+1), Color: palette[(i+2)%len(palette)]},
		}, *token)
		report("memory", i, memory, err)

		thought, err := client.CreateJSON("thoughts", map[string]string{
			"title":    fmt.Sprintf("Sample thought %d (%s)", i+1, stamp),
			"excerpt":  "A short note on building things slowly.",
			"content":  "Long form content goes here.\n\nSecond paragraph.",
			"category": thoughtCategories[i%len(thoughtCategories)],
			"readTime": fmt.Sprintf("%d min read", i+2),
		}, *token)
		report("thought", i, thought, err)

		photo, err := client.CreateWithImages("gallery", map[string]string{
			"title":    fmt.Sprintf("Sample frame %d", i+1),
			"category": "Street",
		}, []Upload{{Field: "image", Filename: fmt.Sprintf("frame-%d.jpg", i+1), Color: c}}, *token)
		report("gallery", i, photo, err)

		background, err := client.CreateWithImages("herobg", map[string]string{
			"label": fmt.Sprintf("Background %d", i+1),
		}, []Upload{{Field: "image", Filename: fmt.Sprintf("hero-%d.jpg", i+1), Color: c}}, *token)
		report("background", i, background, err)
	}

	fmt.Println()
	if failed > 0 {
		fmt.Printf("Done with %d failure(s)\n", failed)
		os.Exit(1)
	}
	fmt.Println("Done!")
}

func watchCmd(apiURL string) {
	client := NewAPIClient(apiURL)

	fmt.Println("Watching change feed, Ctrl+C to stop")
	err := client.Watch(func(msg FeedMessage) {
		at := time.UnixMilli(msg.Timestamp).Format("15:04:05")
		fmt.Printf("[%s] %-16s %s\n", at, msg.Type, string(msg.Payload))
	})
	if err != nil {
		fmt.Printf("Feed closed: %v\n", err)
		os.Exit(1)
	}
}

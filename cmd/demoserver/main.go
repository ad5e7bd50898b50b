// Command demoserver starts the fixture server used to demonstrate the
// accessibility analyzer.
// Usage: go run ./cmd/demoserver [port]
// Default port: 9999
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/raysh454/aria/internal/demoserver"
)

func main() {
	cfg := demoserver.DefaultConfig()

	// Optional: custom port from command line
	if len(os.Args) > 1 {
		port, err := strconv.Atoi(os.Args[1])
		if err != nil || port < 1 || port > 65535 {
			log.Fatalf("Invalid port: %s", os.Args[1])
		}
		cfg.Port = port
	}

	fmt.Println("===========================================")
	fmt.Println("   Aria Demo Server - Fixture Pages")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Println("This server provides pages with known accessibility")
	fmt.Println("properties for demonstrating the analyzer.")
	fmt.Println()
	fmt.Println("Fixtures:")
	fmt.Println("  - /accessible  (clean page, perfect score)")
	fmt.Println("  - /broken      (violates most checks)")
	fmt.Println("  - /forms       (labeled and unlabeled controls)")
	fmt.Println("  - /media       (captions, autoplay, transcripts)")
	fmt.Println()

	server := demoserver.NewDemoServer(cfg)
	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

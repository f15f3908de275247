package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/iscc-nbs-tools/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("iscc-nbs %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		case "validate":
			os.Exit(runValidate(os.Args[2:], os.Stdout, os.Stderr, isTerminal(os.Stdout)))
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("ISCC_MCP_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("ISCC-NBS MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New()
	srv.SetDebug(debug)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printHelp() {
	fmt.Println("iscc-nbs - ISCC-NBS color partition validator and MCP server")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  iscc-nbs [options]                 Run the MCP server on stdin/stdout")
	fmt.Println("  iscc-nbs validate [flags] <file>   Validate a document and print region colors")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Validate flags:")
	fmt.Println("  -collect         Report every overlap and gap, not just the first")
	fmt.Println("  -swatch <png>    Also write the region colors as a PNG swatch sheet")
	fmt.Println("  -cell <px>       Swatch size in pixels (default 32)")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  ISCC_MCP_LOG_LEVEL=debug    Enable debug logging")
	fmt.Println()
	fmt.Println("The server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}

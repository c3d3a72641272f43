package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/shmigatron/volki/internal/log"
	"github.com/shmigatron/volki/internal/version"
	"github.com/shmigatron/volki/lsp"
)

func main() {
	showVersion := flag.Bool("version", false, "print the server version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetFullVersion())
		return
	}

	server, err := lsp.NewServer()
	if err != nil {
		log.Error("Failed to create LSP server: %v", err)
		os.Exit(1)
	}

	// stdio transport, for editors
	if err := server.RunStdio(); err != nil {
		log.Error("Server error: %v", err)
		os.Exit(1)
	}
}

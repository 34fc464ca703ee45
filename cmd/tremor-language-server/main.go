package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/devopstoday11/tremor-language-server/internal/language"
	"github.com/devopstoday11/tremor-language-server/internal/lsp"
)

// Version will be set during the build process using ldflags
var Version = "(dev) v0.0.0"

func main() {
	versionFlag := flag.Bool("version", false, "Print the version of the program")
	languageFlag := flag.String("language", "tremor-script", "Language to serve (tremor-script or tremor-query)")
	logfileFlag := flag.String("logfile", "", "Path to log file")
	flag.Parse()

	// Version tag
	if *versionFlag {
		fmt.Printf("tremor language server version %s\n", Version)
		return
	}

	// Logging. Stdout belongs to the protocol, so everything goes to a file
	// or nowhere.
	if *logfileFlag != "" {
		logFile, err := os.OpenFile(*logfileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
		commonlog.Configure(1, logfileFlag)
	} else {
		log.SetOutput(io.Discard)
		commonlog.Configure(0, nil)
	}

	lang, err := language.Lookup(*languageFlag)
	if err != nil {
		log.Fatalf("Failed to select language: %v", err)
	}

	// Initialize the server
	server, err := lsp.NewServer(lang)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Run the server
	if err := server.RunStdio(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

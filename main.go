package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vulh1209/localtranscript-manual/internal/logging"
	"github.com/vulh1209/localtranscript-manual/internal/manual"
)

const envStdioLog = "MANUAL_STDIO_LOG"

func main() {
	debug := flag.Bool("debug", false, "enable debug logging to ./manual-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr to this file; also configurable via "+envStdioLog)
	flag.Parse()

	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv(envStdioLog)
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
		}
	}

	var logger logging.Logger = logging.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./manual-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = logging.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Fprintln(os.Stderr, "debug log open error:", err)
		}
	}

	g := &manual.Generator{Dir: ".", Stdout: os.Stdout, Logger: logger}
	if err := g.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// Command sitemap writes sitemap.xml for the calculator site.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"DIYCalc/internal/catalog"
	"DIYCalc/internal/config"
	"DIYCalc/internal/sitemap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sitemap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	baseURL := fs.String("base-url", config.DefaultBaseURL, "public site URL")
	out := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cat, err := catalog.Load()
	if err != nil {
		fmt.Fprintf(stderr, "sitemap: %v\n", err)
		return 1
	}
	entries := sitemap.Generate(*baseURL, cat, time.Now())

	if *out == "" {
		if err := sitemap.WriteXML(stdout, entries); err != nil {
			fmt.Fprintf(stderr, "sitemap: %v\n", err)
			return 1
		}
		return 0
	}
	if err := writeFile(*out, entries); err != nil {
		fmt.Fprintf(stderr, "sitemap: %v\n", err)
		return 1
	}
	fmt.Fprintf(stderr, "wrote %d URLs to %s\n", len(entries), *out)
	return 0
}

func writeFile(path string, entries []sitemap.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := sitemap.WriteXML(f, entries); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

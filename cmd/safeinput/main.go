// Command safeinput sanitizes stdin line by line.
//
//	safeinput --mode url  < urls.txt
//	safeinput --mode text < comments.txt
//	safeinput --mode link < urls.txt
//
// Every input line yields exactly one output line. A rejected URL yields
// an empty line in url mode and an anchor without href in link mode.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/njchilds90/safeinput"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "safeinput:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("safeinput", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	mode := fs.StringP("mode", "m", "url", "sanitizer to apply: url, text or link")
	configPath := fs.StringP("config", "c", "", "path to a YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := safeinput.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	logger, err := cfg.NewLogger(stderr)
	if err != nil {
		return err
	}
	policy := cfg.Policy(logger)

	transform, err := transformer(*mode, policy)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"mode":   *mode,
		"config": *configPath,
	}).Debug("Sanitizing stdin")

	w := bufio.NewWriter(stdout)
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lines := 0
	for scanner.Scan() {
		out, err := transform(scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", lines+1, err)
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
		lines++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	logger.WithField("lines", lines).Debug("Done")
	return w.Flush()
}

func transformer(mode string, p *safeinput.Policy) (func(string) (string, error), error) {
	switch mode {
	case "url":
		return func(s string) (string, error) {
			clean, _ := p.SanitizeURL(s)
			return clean, nil
		}, nil
	case "text":
		return func(s string) (string, error) {
			return p.SanitizeText(s), nil
		}, nil
	case "link":
		return func(s string) (string, error) {
			return safeinput.Render(p.Link(s, s))
		}, nil
	}
	return nil, fmt.Errorf("unknown mode %q", mode)
}

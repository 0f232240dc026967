// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snipdoc

// snipdoc converts VSCode snippet files to markdown documentation.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/snipdoc"
)

const (
	// snippetFileExt is the extension of VSCode user snippet files.
	snippetFileExt = ".json"
	// terminalWrapWidth wraps styled terminal markdown output at this width.
	terminalWrapWidth = 100
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/snipdoc"
	_buildTime string
)

var (
	// listHeaderStyle colors the "Available snippets" header line.
	listHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	// listItemStyle colors one snippet name in list output.
	listItemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

// cliOptions describes snipdoc CLI flags and subcommands.
type cliOptions struct {
	Version           versionCommand           `command:"version" description:"Print version information"`
	List              listCommand              `command:"list" description:"List available snippet files in the snippets directory"`
	SnippetToMarkdown snippetToMarkdownCommand `command:"snip2md" description:"Convert a named VSCode snippet file to markdown"`
	FileToMarkdown    fileToMarkdownCommand    `command:"file2md" description:"Convert a snippet file or stdin to markdown"`
}

// snippetsDirFlags groups snippets directory selection flags.
type snippetsDirFlags struct {
	SnippetsDir string `short:"d" long:"snippets-dir" env:"SNIPDOC_SNIPPETS_DIR" description:"Snippets directory (default: platform VSCode user snippets path)"`
}

// markdownRenderFlags groups markdown rendering flags.
type markdownRenderFlags struct {
	Language string `short:"l" long:"language" description:"Language identifier for fenced code blocks (defaults to snippet name)"`
	Print    bool   `short:"p" long:"print" description:"Render markdown to the terminal with styling instead of raw output"`
}

// listCommand lists snippet file names in the snippets directory.
type listCommand struct {
	runner *cliRunner

	DirFlags snippetsDirFlags `group:"Snippets Directory"`
}

// Execute runs list subcommand.
func (command *listCommand) Execute(_ []string) error {
	return command.runner.runList(command.DirFlags.SnippetsDir)
}

// snippetToMarkdownCommand converts one named snippet file from the snippets directory.
type snippetToMarkdownCommand struct {
	runner *cliRunner
	Args   struct {
		Name   string `positional-arg-name:"name" description:"Snippet file name without extension (for example: python)" required:"yes"`
		Output string `positional-arg-name:"output" description:"Output markdown file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	DirFlags    snippetsDirFlags    `group:"Snippets Directory"`
	RenderFlags markdownRenderFlags `group:"Markdown Render"`
}

// Execute runs snip2md subcommand.
func (command *snippetToMarkdownCommand) Execute(_ []string) error {
	return command.runner.runSnippetToMarkdown(
		command.DirFlags.SnippetsDir,
		command.RenderFlags.Language,
		command.RenderFlags.Print,
		command.Args.Name,
		command.Args.Output,
	)
}

// fileToMarkdownCommand converts an explicit snippet file or stdin.
type fileToMarkdownCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input snippet file path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output markdown file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	RenderFlags markdownRenderFlags `group:"Markdown Render"`
}

// Execute runs file2md subcommand.
func (command *fileToMarkdownCommand) Execute(_ []string) error {
	return command.runner.runFileToMarkdown(
		command.RenderFlags.Language,
		command.RenderFlags.Print,
		command.Args.Input,
		command.Args.Output,
	)
}

// versionCommand prints version information.
type versionCommand struct {
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	logger      *log.Logger
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "snipdoc"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
		logger:      log.NewWithOptions(stderr, log.Options{ReportTimestamp: false}),
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runList prints snippet file stems found in the snippets directory.
func (runner *cliRunner) runList(snippetsDir string) error {
	dir, err := resolveSnippetsDir(snippetsDir)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read snippets directory %q: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), snippetFileExt) {
			continue
		}

		names = append(names, strings.TrimSuffix(name, filepath.Ext(name)))
	}

	sort.Strings(names)

	if _, err := fmt.Fprintln(runner.stdout, listHeaderStyle.Render("Available snippets:")); err != nil {
		return fmt.Errorf("write snippet list to stdout: %w", err)
	}

	for _, name := range names {
		if _, err := fmt.Fprintln(runner.stdout, "- "+listItemStyle.Render(name)); err != nil {
			return fmt.Errorf("write snippet list to stdout: %w", err)
		}
	}

	return nil
}

// runSnippetToMarkdown converts one named snippet file from the snippets directory.
func (runner *cliRunner) runSnippetToMarkdown(snippetsDir, language string, printToTerminal bool, name, outputPath string) error {
	dir, err := resolveSnippetsDir(snippetsDir)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, strings.ToLower(strings.TrimSpace(name))+snippetFileExt)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("snippet file not found: %s", path)
	}

	rendered, err := snipdoc.RenderFile(path, snipdoc.Options{
		Language:   language,
		SourceName: name,
	})
	if err != nil {
		return fmt.Errorf("convert snippet %q: %w", name, err)
	}

	return runner.writeMarkdown(rendered, outputPath, printToTerminal)
}

// runFileToMarkdown converts an explicit snippet file path or stdin input.
func (runner *cliRunner) runFileToMarkdown(language string, printToTerminal bool, inputPath, outputPath string) error {
	inputPath = strings.TrimSpace(inputPath)
	if inputPath == "" {
		data, err := io.ReadAll(runner.stdin)
		if err != nil {
			return fmt.Errorf("read snippets from stdin: %w", err)
		}

		if len(strings.TrimSpace(string(data))) == 0 {
			return errors.New("read snippets from stdin: empty input")
		}

		rendered, err := snipdoc.Render(data, snipdoc.Options{Language: language})
		if err != nil {
			return fmt.Errorf("convert snippets from stdin: %w", err)
		}

		return runner.writeMarkdown(rendered, outputPath, printToTerminal)
	}

	switch strings.ToLower(filepath.Ext(inputPath)) {
	case ".json", ".yaml", ".yml":
	default:
		return fmt.Errorf("unsupported snippet file extension %q: expected .json, .yaml or .yml", filepath.Ext(inputPath))
	}

	rendered, err := snipdoc.RenderFile(inputPath, snipdoc.Options{Language: language})
	if err != nil {
		return fmt.Errorf("convert snippet file %q: %w", inputPath, err)
	}

	return runner.writeMarkdown(rendered, outputPath, printToTerminal)
}

// writeMarkdown routes the rendered document to terminal, file or raw stdout.
func (runner *cliRunner) writeMarkdown(rendered, outputPath string, printToTerminal bool) error {
	if printToTerminal {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(terminalWrapWidth),
		)
		if err != nil {
			return fmt.Errorf("create terminal renderer: %w", err)
		}

		styled, err := renderer.Render(rendered)
		if err != nil {
			return fmt.Errorf("render markdown for terminal: %w", err)
		}

		if _, err := io.WriteString(runner.stdout, styled); err != nil {
			return fmt.Errorf("write markdown to stdout: %w", err)
		}
	}

	if strings.TrimSpace(outputPath) != "" {
		if err := os.WriteFile(outputPath, []byte(rendered), 0o600); err != nil {
			return fmt.Errorf("write markdown file %q: %w", outputPath, err)
		}

		runner.logger.Info("snippets exported", "path", outputPath)
		return nil
	}

	if printToTerminal {
		return nil
	}

	if _, err := io.WriteString(runner.stdout, rendered+"\n"); err != nil {
		return fmt.Errorf("write markdown to stdout: %w", err)
	}

	return nil
}

// defaultSnippetsDir resolves the platform VSCode user snippets directory
// once per process; the resolved path is treated as immutable.
var defaultSnippetsDir = sync.OnceValues(func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	switch runtime.GOOS {
	case "linux":
		return filepath.Join(home, ".config", "Code", "User", "snippets"), nil
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Code", "User", "snippets"), nil
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "Code", "User", "snippets"), nil
	default:
		return "", fmt.Errorf("unsupported operating system %q for VSCode snippets path", runtime.GOOS)
	}
})

// resolveSnippetsDir prefers the explicit flag value over the platform default.
func resolveSnippetsDir(flagValue string) (string, error) {
	flagValue = strings.TrimSpace(flagValue)
	if flagValue != "" {
		return flagValue, nil
	}

	return defaultSnippetsDir()
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.List.runner = runner
	options.SnippetToMarkdown.runner = runner
	options.FileToMarkdown.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"list": strings.TrimSpace(fmt.Sprintf(`
List snippet files available in the VSCode user snippets directory.
Use --snippets-dir or SNIPDOC_SNIPPETS_DIR to point at another directory.

Examples:
> $ %s list
> $ %s list -d ~/.vscode/snippets
`, programName, programName)),
		"snip2md": strings.TrimSpace(fmt.Sprintf(`
Convert a named VSCode snippet file to markdown.
The name is resolved to <snippets-dir>/<name>.json; the fenced code block
language defaults to the snippet name unless --language is set.

Examples:
> $ %s snip2md python > python.md
> $ %s snip2md -l shellscript shell docs/shell.md
> $ %s snip2md --print go
`, programName, programName, programName)),
		"file2md": strings.TrimSpace(fmt.Sprintf(`
Convert a snippet file to markdown.
Reads snippets from file argument or stdin; writes markdown to file argument
or stdout. JSON and YAML snippet documents are accepted.

Examples:
> $ %s file2md snippets.json > snippets.md
> $ cat snippets.json | %s file2md -l javascript
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo() {
	fmt.Printf(`url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}

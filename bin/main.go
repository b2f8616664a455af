package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/reeflective/readline"

	"github.com/ajkachnic/sema/core"
)

const version = "0.0.1"

const helpMessage = `sema evaluates integer assignment statements.

Usage:
  sema [flags] [file]

With no file, sema starts an interactive session.
`

const sampleProgram = `
# Sample code
x = 10
y = 5
z = x + y
result = (x + y) / z
`

var maxDepth = flag.Int("max-depth", core.DefaultMaxDepth, "maximum grouping depth")
var noColor = flag.Bool("no-color", false, "disable colored output")
var debugTokens = flag.Bool("debug-tokens", false, "print classified tokens")
var sample = flag.Bool("sample", false, "analyze the built-in sample program")
var showVersion = flag.Bool("version", false, "print version and exit")

var errorColor = color.New(color.FgRed)

func main() {
	flag.Usage = func() {
		fmt.Print(helpMessage)
		flag.PrintDefaults()
	}

	flag.Parse()

	if *noColor {
		color.NoColor = true
	}

	if *showVersion {
		fmt.Println("sema", version)
		return
	}

	args := flag.Args()

	switch {
	case *sample:
		run(os.Stdout, sampleProgram)
	case len(args) > 0:
		runFile(args[0])
	default:
		repl()
	}
}

func newAnalyzer(out io.Writer) *core.Analyzer {
	analyzer := core.NewAnalyzer(core.Config{MaxDepth: *maxDepth})
	if *debugTokens {
		analyzer.TraceTokens = func(name string, tokens []string) {
			fmt.Fprintf(out, "%s: %s\n", name, strings.Join(tokens, " "))
		}
	}
	return analyzer
}

func runFile(path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}

	run(os.Stdout, string(content))
}

// run analyzes source, printing diagnostics followed by the final bindings.
// Failed statements do not change the exit status.
func run(out io.Writer, source string) {
	analyzer := newAnalyzer(out)
	report := analyzer.Analyze(source)

	for _, d := range report.Diagnostics {
		errorColor.Fprintln(out, d.String())
	}

	for _, binding := range analyzer.Result() {
		fmt.Fprintln(out, binding)
	}
}

func repl() {
	rl := readline.NewShell()
	rl.Prompt.Primary(func() string { return "> " })
	rl.SyntaxHighlighter = highlight

	analyzer := newAnalyzer(os.Stdout)

	for {
		text, err := rl.Readline()

		if err == io.EOF {
			break
		} else if err != nil {
			fmt.Println(err)
			break
		}

		binding, err := analyzer.AnalyzeStatement(text)
		if err != nil {
			errorColor.Println("Error: " + err.Error())
			continue
		}

		if binding.Name != "" || strings.Contains(text, "=") {
			fmt.Println(binding)
		}
	}
}

func highlight(line []rune) string {
	tokens := core.Tokenize(string(line))

	builder := strings.Builder{}

	i := 0
	for _, tok := range tokens {
		if tok.Pos.Offset > i {
			builder.WriteString(string(line[i:tok.Pos.Offset]))
		}

		tok = core.Classify(tok)

		switch tok.Kind {
		case core.NUMBER_LITERAL:
			builder.WriteString(color.MagentaString("%s", tok.Payload))
		case core.IDENTIFIER:
			builder.WriteString(tok.Payload)
		case core.PLUS, core.MINUS, core.TIMES, core.DIVIDE, core.MODULUS:
			builder.WriteString(color.CyanString("%s", tok.Payload))
		case core.LEFT_PAREN, core.RIGHT_PAREN:
			builder.WriteString(color.YellowString("%s", tok.Payload))
		default:
			if tok.Payload == "=" {
				builder.WriteString(tok.Payload)
			} else {
				builder.WriteString(color.RedString("%s", tok.Payload))
			}
		}

		i = tok.Pos.Offset + int(tok.Length)
	}

	if i < len(line) {
		builder.WriteString(string(line[i:]))
	}

	return builder.String()
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/GriffinCanCode/calculator/internal/calc"
	"github.com/GriffinCanCode/calculator/internal/config"
	"github.com/GriffinCanCode/calculator/internal/monitoring"
	"github.com/GriffinCanCode/calculator/internal/providers/basic"
	"github.com/GriffinCanCode/calculator/internal/providers/math/common"
	"github.com/GriffinCanCode/calculator/internal/providers/math/utilities"
	"github.com/GriffinCanCode/calculator/internal/render"
	"github.com/GriffinCanCode/calculator/internal/service"
	"github.com/GriffinCanCode/calculator/internal/session"
	"github.com/GriffinCanCode/calculator/internal/types"
)

// maxLine caps a single input line; bufio's default token limit is 64 KiB.
const maxLine = 16 << 20

// REPL reads commands line by line and renders results for one session
type REPL struct {
	session  *session.Session
	tools    *service.Registry
	out      *render.Renderer
	display  config.DisplayConfig
	metrics  *monitoring.Metrics
	now      func() time.Time
	prompt   io.Writer
	flash    string
	flashEnd time.Time
}

// NewREPL creates a REPL bound to a session. :metrics reports the session's
// collector.
func NewREPL(s *session.Session, out *render.Renderer, display config.DisplayConfig) *REPL {
	tools := service.NewRegistry()
	_ = tools.Register(basic.NewProvider())
	if p, ok := s.Scientific(); ok {
		_ = tools.Register(p)
	}

	return &REPL{
		session: s,
		tools:   tools,
		out:     out,
		display: display,
		metrics: s.Metrics(),
		now:     time.Now,
	}
}

// SetPrompt enables prompts, written to w before each line is read
func (r *REPL) SetPrompt(w io.Writer) {
	r.prompt = w
}

// Run serves lines from in until EOF, :quit or ctx is cancelled
func (r *REPL) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	for r.showPrompt(); scanner.Scan(); r.showPrompt() {
		if err := ctx.Err(); err != nil {
			return nil
		}

		quit, err := r.Execute(scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// Execute handles one input line. quit is true after :quit.
func (r *REPL) Execute(line string) (quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}

	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	switch {
	case strings.HasPrefix(cmd, ":"):
		return r.command(cmd, args)

	case cmd == "mr":
		return false, r.out.Memory(r.session.Memory().Recall())
	case cmd == "mc":
		r.session.MemoryClear()
		return false, r.out.Message("memory cleared")
	case cmd == "m+" || cmd == "m-":
		return false, r.memory(cmd, strings.Join(args, " "))

	case cmd == "pct" || cmd == "neg":
		return false, r.edit(cmd, strings.Join(args, ""))

	case isWord(cmd):
		return false, r.dispatch(cmd, args)
	}

	out, calcErr := r.session.Calculate(line)
	return false, r.out.Answer(render.NewAnswer(line, out, calcErr))
}

func (r *REPL) command(cmd string, args []string) (bool, error) {
	switch cmd {
	case ":quit", ":q", ":exit":
		return true, nil
	case ":help":
		return false, r.help(strings.Join(args, " "))
	case ":history":
		limit := r.display.HistoryLimit
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return false, r.out.Message("usage: :history [n]")
			}
			limit = n
		}
		return false, r.out.History(r.session.History().List(limit))
	case ":clear":
		r.session.ClearHistory()
		return false, r.out.Message("history cleared")
	case ":stats":
		return false, r.out.Summary(r.session.Summary())
	case ":metrics":
		if r.metrics == nil {
			return false, r.out.Message("metrics disabled")
		}
		counts, err := r.metrics.Counts()
		if err != nil {
			return false, fmt.Errorf("failed to gather metrics: %w", err)
		}
		return false, r.out.Counts(counts)
	default:
		return false, r.out.Message(fmt.Sprintf("unknown command %s (try :help)", cmd))
	}
}

func (r *REPL) help(query string) error {
	services := r.tools.List(nil)
	if query != "" {
		services = r.tools.Discover(strings.ToLower(query), 3)
		if len(services) == 0 {
			return r.out.Message("no operations match " + query)
		}
	} else if err := r.out.Message("expressions: + - * / × ÷ ( ); memory: m+ m- mr mc; edit: pct neg; :history :clear :stats :metrics :help [topic] :quit"); err != nil {
		return err
	}

	for _, svc := range services {
		if err := r.out.Service(svc); err != nil {
			return err
		}
	}
	if _, ok := r.session.Scientific(); !ok && query == "" {
		return r.out.Message("scientific operations disabled")
	}
	return nil
}

// dispatch routes a command word through the tool registry. Unknown words
// still go to the scientific dispatcher, which reports them as unsupported.
func (r *REPL) dispatch(word string, args []string) error {
	svc, tool, ok := r.tools.Lookup(word)
	switch {
	case ok && svc.Category == types.CategoryArithmetic:
		if required, _ := tool.Arity(); len(args) != required {
			return r.out.Message(fmt.Sprintf("usage: %s <a> <b>", tool.Tag))
		}
		return r.basic(tool.Tag, args)

	case word == common.TagConst:
		if len(args) != 1 {
			return r.out.Message("usage: const <" + strings.Join(utilities.Names(), "|") + ">")
		}
		return r.operation(r.session.Constant(strings.ToLower(args[0])))
	}
	return r.perform(word, args)
}

func (r *REPL) memory(cmd, expr string) error {
	var err error
	if cmd == "m+" {
		err = r.session.MemoryAdd(expr)
	} else {
		err = r.session.MemorySubtract(expr)
	}
	if err != nil {
		return r.out.Answer(render.NewAnswer(expr, "", err))
	}

	// M=<value> stays on the prompt for the configured flash duration
	r.flash = "M=" + r.session.MemoryRecall()
	r.flashEnd = r.now().Add(r.display.MemoryFlash())
	return r.out.Memory(r.session.Memory().Recall())
}

func (r *REPL) showPrompt() {
	if r.prompt != nil {
		_, _ = io.WriteString(r.prompt, r.Prompt())
	}
}

// Prompt returns the input prompt, including the memory flash while it lasts
func (r *REPL) Prompt() string {
	if r.flash != "" && r.now().Before(r.flashEnd) {
		return "[" + r.flash + "] > "
	}
	r.flash = ""
	return "> "
}

func (r *REPL) edit(cmd, input string) error {
	var (
		out string
		ok  bool
	)
	if cmd == "pct" {
		out, ok = calc.Percent(input)
	} else {
		out, ok = calc.ToggleSign(input)
	}
	if !ok {
		return r.out.Message("nothing to " + cmd)
	}
	return r.out.Message(out)
}

func (r *REPL) basic(op string, args []string) error {
	operands, err := r.operands(args)
	if err != nil {
		return r.out.Answer(render.NewAnswer(strings.Join(args, " "), "", err))
	}
	res, display := r.session.Basic(op, operands[0], operands[1])
	return r.out.Operation(res, display)
}

func (r *REPL) perform(tag string, args []string) error {
	operands, err := r.operands(args)
	if err != nil {
		return r.out.Answer(render.NewAnswer(strings.Join(args, " "), "", err))
	}
	return r.operation(r.session.Perform(tag, operands))
}

func (r *REPL) operation(res common.CalculationResult) error {
	display := ""
	if res.OK() {
		display = calc.FormatScientific(res.Value)
	}
	return r.out.Operation(res, display)
}

// operands evaluates each argument as an expression
func (r *REPL) operands(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := r.session.Evaluate(arg)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func isWord(s string) bool {
	for _, c := range s {
		if !unicode.IsLetter(c) {
			return false
		}
	}
	return s != ""
}

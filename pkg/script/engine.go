package script

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/chazu/lignin/pkg/scene"
	zygo "github.com/glycerine/zygomys/zygo"
)

// EvalTimeout is the hard limit for a single evaluation.
const EvalTimeout = 5 * time.Second

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error or a runtime error in user code.
type EvalError struct {
	Line    int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// evalResult carries an evaluation's outcome from the goroutine that ran it
// back to the waiting Evaluate call.
type evalResult struct {
	scene *scene.Scene
	errs  []EvalError
	err   error
}

// Engine wraps the zygomys interpreter for scene evaluation. It holds no
// state of its own: each call to Evaluate builds a fresh sandboxed
// environment and runs on its own goroutine and channel, so concurrent
// calls never share anything and never need to coordinate with each other.
// This differs from a live-reload setting where a newer edit should cancel
// an in-flight one for the same buffer; dmcgen invokes Evaluate once per
// run, so there is no "newer request" for an older one to be superseded by.
type Engine struct{}

// NewEngine creates a new Engine instance.
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate takes DSL source and produces a new Scene.
//
// Return semantics:
//   - On success: returns scene + nil errors + nil error
//   - On parse/eval failure: returns nil scene + eval errors + nil error
//   - On fatal failure (timeout, panic): returns nil + nil + error
func (e *Engine) Evaluate(source string) (*scene.Scene, []EvalError, error) {
	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		sc, evalErrs, err := e.evaluate(source)
		ch <- evalResult{scene: sc, errs: evalErrs, err: err}
	}()

	select {
	case res := <-ch:
		return res.scene, res.errs, res.err
	case <-time.After(EvalTimeout):
		// The goroutine above may still be running; ch is buffered so it
		// can deliver its result into the void without blocking forever.
		return nil, nil, fmt.Errorf("script: evaluation timed out after %s", EvalTimeout)
	}
}

func (e *Engine) evaluate(source string) (*scene.Scene, []EvalError, error) {
	if strings.TrimSpace(source) == "" {
		return scene.New(), nil, nil
	}

	env := zygo.NewZlispSandbox()
	defer env.Stop()

	s := scene.New()
	registerBuiltins(env, s)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, parseZygomysError(err), nil
	}

	if _, err := env.Run(); err != nil {
		return nil, parseZygomysError(err), nil
	}

	return s, nil, nil
}

var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}
	if m := linePatternShort.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}

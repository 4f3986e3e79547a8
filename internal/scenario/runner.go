package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/headless/internal/errors"
	"github.com/vango-dev/headless/internal/stories"
	"github.com/vango-dev/headless/pkg/reactive"
	"github.com/vango-dev/headless/pkg/vtest"
)

const tracerName = "github.com/vango-dev/headless/internal/scenario"

// Result reports one scenario run.
type Result struct {
	Scenario string
	Story    string
	Steps    []StepResult
	Duration time.Duration
	// Err is the first error; the steps after it did not run.
	Err error
}

// Passed reports whether every step ran and every expectation held.
func (r Result) Passed() bool {
	return r.Err == nil
}

// StepResult reports one step.
type StepResult struct {
	Index  int
	Action string
	Target string
	Checks []Check
	Err    error
}

// Check is one evaluated expectation.
type Check struct {
	Expr   string
	Passed bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. Steps are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithTracer sets the tracer. The default uses the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(r *Runner) {
		r.tracer = t
	}
}

// WithRootOptions passes options to every mounted story's root.
func WithRootOptions(opts ...reactive.RootOption) Option {
	return func(r *Runner) {
		r.rootOpts = append(r.rootOpts, opts...)
	}
}

// Runner plays scenarios against stories from a registry. A Runner is not
// safe for concurrent use.
type Runner struct {
	registry *stories.Registry
	logger   *slog.Logger
	tracer   trace.Tracer
	rootOpts []reactive.RootOption
	programs map[string]*vm.Program
}

// NewRunner returns a runner for the stories in reg.
func NewRunner(reg *stories.Registry, opts ...Option) *Runner {
	r := &Runner{
		registry: reg,
		logger:   slog.Default().With("component", "scenario"),
		programs: make(map[string]*vm.Program),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.tracer == nil {
		r.tracer = otel.Tracer(tracerName)
	}
	return r
}

// Run plays sc against a freshly mounted story using the default runner
// settings.
func Run(ctx context.Context, sc *Scenario, reg *stories.Registry) Result {
	return NewRunner(reg).Run(ctx, sc)
}

// Run mounts the scenario's story and plays its steps in order. It stops at
// the first failing step or when ctx is done.
func (r *Runner) Run(ctx context.Context, sc *Scenario) Result {
	start := time.Now()
	res := Result{Scenario: sc.Name, Story: sc.Story}

	ctx, span := r.tracer.Start(ctx, "scenario.run", trace.WithAttributes(
		attribute.String("headless.scenario", sc.Name),
		attribute.String("headless.story", sc.Story),
	))
	defer span.End()

	defer func() {
		res.Duration = time.Since(start)
		if res.Err != nil {
			span.RecordError(res.Err)
			span.SetStatus(codes.Error, res.Err.Error())
			r.logger.Info("scenario failed", "scenario", sc.Name, "story", sc.Story, "error", res.Err)
			return
		}
		span.SetStatus(codes.Ok, "")
		r.logger.Info("scenario passed", "scenario", sc.Name, "story", sc.Story, "steps", len(res.Steps), "duration", res.Duration)
	}()

	story, ok := r.registry.Get(sc.Story)
	if !ok {
		res.Err = errors.New("E301").WithDetail(fmt.Sprintf("scenario %s: no story %q", sc.Name, sc.Story))
		return res
	}
	comp, actions := story.Mount(r.logger)
	screen := vtest.Mount(comp, r.rootOpts...)
	defer screen.Unmount()

	env := environment(screen, actions)
	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			res.Err = err
			return res
		}
		sr := r.runStep(ctx, sc, i, step, screen, env)
		res.Steps = append(res.Steps, sr)
		if sr.Err != nil {
			res.Err = sr.Err
			return res
		}
	}
	return res
}

func (r *Runner) runStep(ctx context.Context, sc *Scenario, i int, step Step, screen *vtest.Screen, env map[string]any) StepResult {
	sr := StepResult{Index: i, Action: step.Action, Target: step.Target()}

	_, span := r.tracer.Start(ctx, "scenario.step", trace.WithAttributes(
		attribute.Int("headless.step", i+1),
		attribute.String("headless.action", step.Action),
		attribute.String("headless.target", sr.Target),
	))
	defer span.End()

	fail := func(err *errors.HeadlessError) StepResult {
		if step.line > 0 {
			err = err.WithLocation(sc.Source, step.line, 0)
		}
		sr.Err = err
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return sr
	}

	if step.Action != "" {
		if err := perform(screen, step); err != nil {
			return fail(err.WithDetail(fmt.Sprintf("step %d: no element matches %s", i+1, sr.Target)))
		}
		r.logger.Debug("step", "scenario", sc.Name, "step", i+1, "action", step.Action, "target", sr.Target)
	}

	for _, expression := range step.Expect {
		program, err := r.compile(expression, env)
		if err != nil {
			return fail(errors.New("E204").WithDetail(fmt.Sprintf("step %d: %s", i+1, expression)).Wrap(err))
		}
		out, err := expr.Run(program, env)
		if err != nil {
			return fail(errors.New("E204").WithDetail(fmt.Sprintf("step %d: %s", i+1, expression)).Wrap(err))
		}
		passed, ok := out.(bool)
		if !ok {
			return fail(errors.New("E206").WithDetail(fmt.Sprintf("step %d: %s returned %T", i+1, expression, out)))
		}
		sr.Checks = append(sr.Checks, Check{Expr: expression, Passed: passed})
		if !passed {
			return fail(errors.New("E205").
				WithDetail(fmt.Sprintf("step %d: %s", i+1, expression)).
				WithSuggestion("Rendered HTML:\n" + screen.HTML()))
		}
	}
	return sr
}

// compile caches programs by expression. The environment's shape is the same
// for every run, so a program compiled once can run against any screen.
func (r *Runner) compile(expression string, env map[string]any) (*vm.Program, error) {
	if p, ok := r.programs[expression]; ok {
		return p, nil
	}
	p, err := expr.Compile(expression, expr.Env(env))
	if err != nil {
		return nil, err
	}
	r.programs[expression] = p
	return p, nil
}

// perform runs the step's action. It returns E203 when the target element
// is missing.
func perform(screen *vtest.Screen, step Step) *errors.HeadlessError {
	if step.Action == ActionKeyboard {
		screen.Keyboard(step.Key)
		return nil
	}

	var el *vtest.Element
	if step.Role != "" {
		opts := []vtest.QueryOption{}
		if step.Name != "" {
			opts = append(opts, vtest.Name(step.Name))
		}
		el = screen.QueryByRole(step.Role, opts...)
	} else {
		el = screen.QueryByText(step.Text)
	}
	if el == nil {
		return errors.New("E203")
	}

	switch step.Action {
	case ActionClick:
		screen.Click(el)
	case ActionHover:
		screen.Hover(el)
	case ActionUnhover:
		screen.Unhover(el)
	case ActionKeyDown:
		screen.KeyDown(el, step.Key)
	}
	return nil
}

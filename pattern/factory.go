package pattern

import (
	"fmt"
	"sync"
	"time"
	"unicode"

	"github.com/reugn/go-darecali/logger"
	"github.com/reugn/go-darecali/strategy"
)

// WeeklyKind is the kind letter of the EveryNthWeek notation:
// "W<interval>" selects every day of the week, "W<days>,<interval>"
// selects the days of the week encoded in the bit field.
const WeeklyKind = 'W'

// Constructor creates a Strategy from the numeric arguments of a pattern.
type Constructor func(args []int) (strategy.Strategy, error)

// FactoryOptions represents options for the Factory.
type FactoryOptions struct {
	// Logger receives a debug record for every created strategy and a
	// warn record for every rejected pattern.
	// Logging is disabled if nil.
	Logger logger.Logger

	// WeekOptions configures the strategies created for WeeklyKind patterns.
	WeekOptions strategy.EveryNthWeekOptions
}

// Factory translates textual recurrence patterns into strategies.
// A Factory is safe for concurrent use.
type Factory struct {
	mtx          sync.RWMutex
	constructors map[rune]Constructor
	logger       logger.Logger
}

// NewFactory returns a new Factory supporting the weekly notation with
// Sunday-aligned weeks.
func NewFactory() *Factory {
	return NewFactoryWithOptions(FactoryOptions{})
}

// NewFactoryWithOptions returns a new Factory configured with the given
// options.
func NewFactoryWithOptions(opts FactoryOptions) *Factory {
	f := &Factory{
		constructors: make(map[rune]Constructor),
		logger:       logger.OrNoOp(opts.Logger),
	}
	f.constructors[WeeklyKind] = weekly(opts.WeekOptions)
	return f
}

// Register adds a constructor for the kind letter.
// Kinds are case-insensitive and may be registered once.
func (f *Factory) Register(kind rune, constructor Constructor) error {
	if constructor == nil {
		return illegalArgumentError("constructor is nil")
	}
	kind = unicode.ToUpper(kind)

	f.mtx.Lock()
	defer f.mtx.Unlock()

	if _, ok := f.constructors[kind]; ok {
		return illegalArgumentError(fmt.Sprintf("kind %q is already registered", kind))
	}
	f.constructors[kind] = constructor
	return nil
}

// Create parses the pattern and returns the matching Strategy.
// The error unwraps to ErrPatternParse, and additionally to
// strategy.ErrOutOfRange when an argument is out of bounds.
func (f *Factory) Create(expr string) (strategy.Strategy, error) {
	s, err := f.create(expr)
	if err != nil {
		f.logger.Warn("Rejected recurrence pattern.", "pattern", expr, "error", err)
		return nil, err
	}
	f.logger.Debug("Created recurrence strategy.", "pattern", expr,
		"strategy", s.Description())
	return s, nil
}

// CreateController parses the pattern and returns the sequence of its
// dates starting from the calendar date of start.
func (f *Factory) CreateController(start time.Time, expr string) (strategy.Iterator, error) {
	s, err := f.Create(expr)
	if err != nil {
		return nil, err
	}
	f.logger.Trace("Generating recurrence.", "pattern", expr,
		"start", strategy.Date(start))
	return s.Generate(start), nil
}

func (f *Factory) create(expr string) (strategy.Strategy, error) {
	p, err := Parse(expr)
	if err != nil {
		return nil, err
	}

	f.mtx.RLock()
	constructor, ok := f.constructors[p.Kind]
	f.mtx.RUnlock()
	if !ok {
		return nil, patternParseError(expr, fmt.Sprintf("unsupported strategy %q", p.Kind))
	}

	s, err := constructor(p.Args)
	if err != nil {
		return nil, wrapParseError(expr, err)
	}
	return s, nil
}

// weekly returns the Constructor of the EveryNthWeek notation.
func weekly(opts strategy.EveryNthWeekOptions) Constructor {
	return func(args []int) (strategy.Strategy, error) {
		days, interval := int(strategy.EveryDay), 0
		switch len(args) {
		case 1:
			interval = args[0]
		case 2:
			days, interval = args[0], args[1]
		default:
			return nil, fmt.Errorf("expected 1 or 2 arguments, got %d", len(args))
		}
		s, err := strategy.NewEveryNthWeekWithOptions(days, interval, opts)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

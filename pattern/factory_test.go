package pattern_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/reugn/go-darecali/internal/assert"
	"github.com/reugn/go-darecali/internal/mock"
	"github.com/reugn/go-darecali/logger"
	"github.com/reugn/go-darecali/pattern"
	"github.com/reugn/go-darecali/strategy"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCreateControllerEveryWeek(t *testing.T) {
	start := date(2016, 2, 24)
	it, err := pattern.NewFactory().CreateController(start, "W1")
	assert.Equal(t, err, nil)
	dates := strategy.Take(it, 21)
	for i, d := range dates {
		assert.Equal(t, d, start.AddDate(0, 0, i))
	}
}

func TestCreateControllerWeekdays(t *testing.T) {
	it, err := pattern.NewFactory().CreateController(date(2016, 2, 22), "W62,3")
	assert.Equal(t, err, nil)
	assert.Dates(t, strategy.Take(it, 6), []time.Time{
		date(2016, 2, 22), date(2016, 2, 23), date(2016, 2, 24), date(2016, 2, 25), date(2016, 2, 26),
		date(2016, 3, 14),
	})
}

func TestCreateControllerThursdayToSaturday(t *testing.T) {
	it, err := pattern.NewFactory().CreateController(date(2016, 2, 21), "W112,3")
	assert.Equal(t, err, nil)
	assert.Dates(t, strategy.Take(it, 9), []time.Time{
		date(2016, 2, 25), date(2016, 2, 26), date(2016, 2, 27),
		date(2016, 3, 17), date(2016, 3, 18), date(2016, 3, 19),
		date(2016, 4, 7), date(2016, 4, 8), date(2016, 4, 9),
	})
}

func TestCreateControllerAlignToStart(t *testing.T) {
	factory := pattern.NewFactoryWithOptions(pattern.FactoryOptions{
		WeekOptions: strategy.EveryNthWeekOptions{AlignToStart: true},
	})
	start := date(2016, 2, 22)
	for _, tt := range []struct {
		expr     string
		interval int
	}{
		{"W2", 2},
		{"W3", 3},
	} {
		it, err := factory.CreateController(start, tt.expr)
		assert.Equal(t, err, nil)
		dates := strategy.Take(it, 21)
		for block := 0; block < 3; block++ {
			for i := 0; i < 7; i++ {
				assert.Equal(t, dates[7*block+i], start.AddDate(0, 0, 7*tt.interval*block+i))
			}
		}
	}
}

func TestCreateOutOfRange(t *testing.T) {
	factory := pattern.NewFactory()
	for _, expr := range []string{"W0", "W-1", "W0,1", "W128,1", "W62,0"} {
		s, err := factory.Create(expr)
		assert.ErrorIs(t, err, pattern.ErrPatternParse)
		assert.ErrorIs(t, err, strategy.ErrOutOfRange)
		if s != nil {
			t.Fatalf("strategy for %q must be nil", expr)
		}
	}
}

func TestCreateParseError(t *testing.T) {
	factory := pattern.NewFactory()
	for _, expr := range []string{"", "X1", "W1,2,3", "Wfoo"} {
		_, err := factory.Create(expr)
		assert.ErrorIs(t, err, pattern.ErrPatternParse)
		if errors.Is(err, strategy.ErrOutOfRange) {
			t.Fatalf("%q must not be a range error", expr)
		}
	}
}

func TestCreateStrategy(t *testing.T) {
	s, err := pattern.NewFactory().Create("w65,2")
	assert.Equal(t, err, nil)
	weekly, ok := s.(*strategy.EveryNthWeek)
	if !ok {
		t.Fatalf("unexpected strategy %T", s)
	}
	assert.Equal(t, weekly.DaysOfWeek(), strategy.WeekendDays)
	assert.Equal(t, weekly.Interval(), 2)

	s, err = pattern.NewFactory().Create("W4")
	assert.Equal(t, err, nil)
	assert.Equal(t, s.(*strategy.EveryNthWeek).DaysOfWeek(), strategy.EveryDay)
}

func TestRegister(t *testing.T) {
	factory := pattern.NewFactory()
	var args []int
	err := factory.Register('d', func(a []int) (strategy.Strategy, error) {
		args = a
		return mock.Strategy{}, nil
	})
	assert.Equal(t, err, nil)

	it, err := factory.CreateController(date(2016, 2, 28), "D5")
	assert.Equal(t, err, nil)
	assert.Equal(t, args, []int{5})
	assert.Dates(t, strategy.Take(it, 2), []time.Time{date(2016, 2, 28), date(2016, 2, 29)})

	err = factory.Register('D', func([]int) (strategy.Strategy, error) { return mock.Strategy{}, nil })
	assert.ErrorIs(t, err, pattern.ErrIllegalArgument)
	err = factory.Register('w', func([]int) (strategy.Strategy, error) { return mock.Strategy{}, nil })
	assert.ErrorIs(t, err, pattern.ErrIllegalArgument)
	err = factory.Register('M', nil)
	assert.ErrorIs(t, err, pattern.ErrIllegalArgument)
}

func TestFactoryLogging(t *testing.T) {
	var b bytes.Buffer
	l := logger.NewSimpleLogger(log.New(&b, "", 0), logger.LevelDebug)
	factory := pattern.NewFactoryWithOptions(pattern.FactoryOptions{Logger: l})

	_, err := factory.Create("W62,1")
	assert.Equal(t, err, nil)
	_, err = factory.Create("W0,1")
	assert.NotEqual(t, err, nil)

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	assert.Equal(t, len(lines), 2)
	if !strings.HasPrefix(lines[0], "DEBUG msg=Created recurrence strategy., pattern=W62,1") {
		t.Fatalf("unexpected record: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "WARN msg=Rejected recurrence pattern., pattern=W0,1") {
		t.Fatalf("unexpected record: %s", lines[1])
	}
}

func TestFactorySlogLogging(t *testing.T) {
	var b bytes.Buffer
	handler := slog.NewTextHandler(&b, &slog.HandlerOptions{
		Level:       slog.Level(logger.LevelTrace),
		ReplaceAttr: logger.ReplaceLevelAttr,
	})
	l := logger.NewSlogLogger(context.Background(), slog.New(handler)).
		With("component", "pattern")
	factory := pattern.NewFactoryWithOptions(pattern.FactoryOptions{Logger: l})

	start := time.Date(2016, 2, 21, 10, 30, 0, 0, time.UTC)
	_, err := factory.CreateController(start, "W112,3")
	assert.Equal(t, err, nil)

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	assert.Equal(t, len(lines), 2)
	for _, want := range []string{"level=DEBUG", "component=pattern",
		`strategy="EveryNthWeek: Thu|Fri|Sat every 3 week(s), weeks start on Sunday"`} {
		if !strings.Contains(lines[0], want) {
			t.Fatalf("%q not found in %s", want, lines[0])
		}
	}
	for _, want := range []string{"level=TRACE", "component=pattern",
		"pattern=W112,3", "start=2016-02-21"} {
		if !strings.Contains(lines[1], want) {
			t.Fatalf("%q not found in %s", want, lines[1])
		}
	}
}

func TestFactoryConcurrentUse(t *testing.T) {
	factory := pattern.NewFactory()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			it, err := factory.CreateController(date(2016, 2, 22), "W62,2")
			if err != nil {
				t.Error(err)
				return
			}
			if first := it.Next(); !first.Equal(date(2016, 2, 22)) {
				t.Errorf("unexpected first date %s", first)
			}
		}()
	}
	wg.Wait()
}

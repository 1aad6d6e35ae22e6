package rules

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// recorder captures hook invocations as readable strings.
type recorder struct {
	events []string
}

func (r *recorder) options() []Option {
	return []Option{
		WithOnMatch(func(table string, op Op, index int, entry string) {
			r.add("match", table, op, strconv.Itoa(index), strconv.Quote(entry))
		}),
		WithOnDispatch(func(table string, op Op, index int, entry string) {
			r.add("dispatch", table, op, strconv.Itoa(index), strconv.Quote(entry))
		}),
		WithOnSuccess(func(table string, op Op, index int, entry string, _ time.Duration) {
			r.add("success", table, op, strconv.Itoa(index), strconv.Quote(entry))
		}),
		WithOnFailure(func(table string, op Op, index int, entry string, _ error, _ time.Duration) {
			r.add("failure", table, op, strconv.Itoa(index), strconv.Quote(entry))
		}),
		WithOnNoMatch(func(table string, op Op) {
			r.add("no_match", table, op)
		}),
		WithOnAmbiguous(func(table string, op Op, indexes []int, entries []string) {
			r.add("ambiguous", table, op, fmt.Sprint(indexes), fmt.Sprintf("%q", entries))
		}),
		WithOnFallback(func(table string, op Op) {
			r.add("fallback", table, op)
		}),
	}
}

func (r *recorder) add(kind, table string, op Op, details ...string) {
	parts := append([]string{kind, table, string(op)}, details...)
	r.events = append(r.events, strings.Join(parts, " "))
}

type HooksSuite struct {
	suite.Suite
	rec   *recorder
	rules *Table[purchase, float64]
}

func TestHooksSuite(t *testing.T) {
	suite.Run(t, new(HooksSuite))
}

func (s *HooksSuite) SetupTest() {
	s.rec = &recorder{}
	opts := append([]Option{WithName("discounts")}, s.rec.options()...)
	s.rules = discountRules(opts...)
}

func (s *HooksSuite) TestCallReportsDispatchAndSuccess() {
	_, err := s.rules.Call(individual)

	s.Require().NoError(err)
	s.Assert().Equal([]string{
		`match discounts call 1 "individual"`,
		`dispatch discounts call 1 "individual"`,
		`success discounts call 1 "individual"`,
	}, s.rec.events)
}

func (s *HooksSuite) TestCallReportsNoMatch() {
	_, err := s.rules.Call(nobody)

	s.Require().Error(err)
	s.Assert().Equal([]string{"no_match discounts call"}, s.rec.events)
}

func (s *HooksSuite) TestCallReportsAmbiguity() {
	_, err := s.rules.Call(overlap)

	s.Require().Error(err)
	s.Assert().Equal([]string{`ambiguous discounts call [0 1] ["large order" "individual"]`}, s.rec.events)
}

func (s *HooksSuite) TestCallOrReportsFallback() {
	_, err := s.rules.CallOr(nobody, noDiscount)

	s.Require().NoError(err)
	s.Assert().Equal([]string{
		"fallback discounts call_or",
		`dispatch discounts call_or -1 ""`,
		`success discounts call_or -1 ""`,
	}, s.rec.events)
}

func (s *HooksSuite) TestCallAllReportsEachHandler() {
	_, err := s.rules.CallAll(overlap)

	s.Require().NoError(err)
	s.Assert().Equal([]string{
		`match discounts call_all 0 "large order"`,
		`match discounts call_all 1 "individual"`,
		`dispatch discounts call_all 0 "large order"`,
		`success discounts call_all 0 "large order"`,
		`dispatch discounts call_all 1 "individual"`,
		`success discounts call_all 1 "individual"`,
	}, s.rec.events)
}

func (s *HooksSuite) TestTolerantOperationsDoNotReportNoMatch() {
	_, _, err := s.rules.SingleOrDefault(nobody)
	s.Require().NoError(err)
	_, _ = s.rules.FirstOrDefault(nobody)
	_, err = s.rules.CallAll(nobody)
	s.Require().NoError(err)
	s.rules.CountOf(nobody)

	s.Assert().Empty(s.rec.events)
}

func (s *HooksSuite) TestFirstReportsNoMatch() {
	_, err := s.rules.First(nobody)

	s.Require().Error(err)
	s.Assert().Equal([]string{"no_match discounts first"}, s.rec.events)
}

func (s *HooksSuite) TestFirstReportsEarliestMatch() {
	_, err := s.rules.First(overlap)
	s.Require().NoError(err)
	_, ok := s.rules.FirstOrDefault(individual)
	s.Require().True(ok)

	s.Assert().Equal([]string{
		`match discounts first 0 "large order"`,
		`match discounts first_or_default 1 "individual"`,
	}, s.rec.events)
}

func (s *HooksSuite) TestLookupsWithoutInvocationReportMatch() {
	_, err := s.rules.Single(individual)
	s.Require().NoError(err)
	_, ok, err := s.rules.SingleOrDefault(bigSpender)
	s.Require().NoError(err)
	s.Require().True(ok)
	_, err = s.rules.IndexOf(individual)
	s.Require().NoError(err)

	s.Assert().Equal([]string{
		`match discounts single 1 "individual"`,
		`match discounts single_or_default 0 "large order"`,
		`match discounts index_of 1 "individual"`,
	}, s.rec.events)
}

func (s *HooksSuite) TestFailureReported() {
	rec := &recorder{}
	t := New(func(r *Registry[int, int]) {
		r.Register(Always[int](), func(int) (int, error) { return 0, errors.New("fail") })
	}, rec.options()...)

	_, err := t.Call(1)

	s.Require().Error(err)
	s.Assert().Equal([]string{`match  call 0 ""`, `dispatch  call 0 ""`, `failure  call 0 ""`}, rec.events)
}

func (s *HooksSuite) TestMultipleHooksCalledInOrder() {
	var order []string
	t := New(func(r *Registry[int, int]) {
		r.Register(Always[int](), Value[int](1))
	},
		WithOnDispatch(func(string, Op, int, string) { order = append(order, "first") }),
		WithOnDispatch(func(string, Op, int, string) { order = append(order, "second") }),
	)

	_, err := t.Call(1)

	s.Require().NoError(err)
	s.Assert().Equal([]string{"first", "second"}, order)
}

func (s *HooksSuite) TestAmbiguousHookCannotAlterError() {
	t := New(func(r *Registry[int, int]) {
		r.Register(Always[int](), Value[int](1))
		r.Register(Always[int](), Value[int](2))
	}, WithOnAmbiguous(func(_ string, _ Op, indexes []int, entries []string) {
		indexes[0] = 99
		entries[0] = "changed"
	}))

	_, err := t.Call(1)

	var me *MatchError
	s.Require().ErrorAs(err, &me)
	s.Assert().Equal([]int{0, 1}, me.Indexes)
	s.Assert().Equal([]string{"", ""}, me.Entries)
}

func (s *HooksSuite) TestWithOptionsAppliesAll() {
	var n int
	count := WithOnDispatch(func(string, Op, int, string) { n++ })
	t := New(func(r *Registry[int, int]) {
		r.Register(Always[int](), Value[int](1))
	}, WithOptions(count, count, WithName("grouped")))

	_, err := t.Call(1)

	s.Require().NoError(err)
	s.Assert().Equal(2, n)
	s.Assert().Equal("grouped", t.Name())
}

type LoggerSuite struct {
	suite.Suite
	buf    *bytes.Buffer
	logger *slog.Logger
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerSuite))
}

func (s *LoggerSuite) SetupTest() {
	s.buf = &bytes.Buffer{}
	s.logger = slog.New(slog.NewTextHandler(s.buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func (s *LoggerSuite) TestLogsDispatchAtDebug() {
	t := discountRules(WithName("discounts"), WithLogger(s.logger))

	_, err := t.Call(individual)

	s.Require().NoError(err)
	out := s.buf.String()
	s.Assert().Contains(out, "level=DEBUG")
	s.Assert().Contains(out, `msg="rules: dispatch"`)
	s.Assert().Contains(out, "table=discounts")
	s.Assert().Contains(out, "op=call")
	s.Assert().Contains(out, "index=1")
	s.Assert().Contains(out, "entry=individual")
	s.Assert().Contains(out, `msg="rules: match"`)
}

func (s *LoggerSuite) TestLogsAmbiguityAtWarn() {
	t := discountRules(WithName("discounts"), WithLogger(s.logger))

	_, err := t.Call(overlap)

	s.Require().ErrorIs(err, ErrAmbiguousMatch)
	out := s.buf.String()
	s.Assert().Contains(out, "level=WARN")
	s.Assert().Contains(out, `msg="rules: ambiguous match"`)
	s.Assert().Contains(out, `indexes="[0 1]"`)
	s.Assert().Contains(out, `entries="[large order individual]"`)
	s.Assert().Contains(err.Error(), `[entries 0 "large order", 1 "individual"]`)
}

func (s *LoggerSuite) TestLogsHandlerFailureAtWarn() {
	t := New(func(r *Registry[int, int]) {
		r.Register(Always[int](), func(int) (int, error) { return 0, errors.New("db down") })
	}, WithLogger(s.logger))

	_, err := t.Call(1)

	s.Require().Error(err)
	out := s.buf.String()
	s.Assert().Contains(out, "level=WARN")
	s.Assert().Contains(out, `error="db down"`)
	s.Assert().NotContains(out, "entry=")
}

func (s *LoggerSuite) TestSilentWithoutLogger() {
	t := discountRules(WithName("discounts"))

	_, _ = t.Call(overlap)
	_, _ = t.CallOr(nobody, noDiscount)

	s.Assert().Empty(s.buf.String())
}

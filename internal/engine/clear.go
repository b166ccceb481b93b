package engine

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Axis tells whether a cleared line is a row or a column.
type Axis int

const (
	AxisRow Axis = iota
	AxisColumn
)

func (a Axis) String() string {
	if a == AxisColumn {
		return "column"
	}
	return "row"
}

// ClearKind tells which predicate marked a line.
type ClearKind int

const (
	ClearFiller    ClearKind = iota // line made entirely of filler
	ClearItemCombo                  // item combination of one kind
)

// LineClear marks one row or column for removal.
type LineClear struct {
	Axis  Axis
	Index int
	Kind  ClearKind
	Item  ItemKind // valid when Kind == ClearItemCombo
}

// ClearRule scans a static board and marks lines to clear. Each line is marked
// at most once.
type ClearRule interface {
	Name() string
	Scan(b *Board) []LineClear
}

// Scoring holds the point values awarded by a clear pass.
type Scoring struct {
	LineBase     int      // multiplied by n*n for n lines in one pass
	PrimaryItem  ItemKind // item kind earning PrimaryBonus
	PrimaryBonus int      // per item-combo line of PrimaryItem
	ItemBonus    int      // per item-combo line of any other kind
}

// DefaultScoring is 100*n^2 plus +150 for burger combos and +50 for others.
func DefaultScoring() Scoring {
	return Scoring{LineBase: 100, PrimaryItem: ItemBurger, PrimaryBonus: 150, ItemBonus: 50}
}

// Award returns the points for one pass that marked the given lines.
func (s Scoring) Award(lines []LineClear) int {
	n := len(lines)
	if n == 0 {
		return 0
	}
	points := s.LineBase * n * n
	for _, l := range lines {
		if l.Kind != ClearItemCombo {
			continue
		}
		if l.Item == s.PrimaryItem {
			points += s.PrimaryBonus
		} else {
			points += s.ItemBonus
		}
	}
	return points
}

// ClearResult describes one clear pass.
type ClearResult struct {
	Lines  []LineClear
	Points int
}

// Rows returns the cleared row indices.
func (r ClearResult) Rows() []int { return r.indices(AxisRow) }

// Columns returns the cleared column indices.
func (r ClearResult) Columns() []int { return r.indices(AxisColumn) }

func (r ClearResult) indices(axis Axis) []int {
	var out []int
	for _, l := range r.Lines {
		if l.Axis == axis {
			out = append(out, l.Index)
		}
	}
	return out
}

// Combos returns how many lines were item combos.
func (r ClearResult) Combos() int {
	n := 0
	for _, l := range r.Lines {
		if l.Kind == ClearItemCombo {
			n++
		}
	}
	return n
}

// runClearPass scans the board once, removes every marked line and scores the pass.
// Rows and columns are both indexed against the board as scanned; removing
// rows does not shift column indices, so rows go first.
func runClearPass(b *Board, rule ClearRule, scoring Scoring) ClearResult {
	lines := rule.Scan(b)
	if len(lines) == 0 {
		return ClearResult{}
	}
	res := ClearResult{Lines: lines, Points: scoring.Award(lines)}
	b.RemoveRows(res.Rows())
	b.RemoveColumns(res.Columns())
	return res
}

// lineIsFiller reports whether every cell is filler.
func lineIsFiller(cells []Cell) bool {
	for _, c := range cells {
		if !c.IsFiller() {
			return false
		}
	}
	return true
}

// firstTriplet returns the kind of the first run of three identical item cells.
func firstTriplet(cells []Cell) (ItemKind, bool) {
	for i := 0; i+2 < len(cells); i++ {
		c := cells[i]
		if c.IsItem() && cells[i+1] == c && cells[i+2] == c {
			k, _ := c.Kind()
			return k, true
		}
	}
	return 0, false
}

// classicLine applies the filler rule, then the triplet rule.
func classicLine(cells []Cell) (LineClear, bool) {
	if lineIsFiller(cells) {
		return LineClear{Kind: ClearFiller}, true
	}
	if k, ok := firstTriplet(cells); ok {
		return LineClear{Kind: ClearItemCombo, Item: k}, true
	}
	return LineClear{}, false
}

// hybridLine applies the filler rule, then accepts a full line of filler plus
// at least three cells of one item kind.
func hybridLine(cells []Cell) (LineClear, bool) {
	if lineIsFiller(cells) {
		return LineClear{Kind: ClearFiller}, true
	}
	var item Cell
	count := 0
	for _, c := range cells {
		switch {
		case c.IsEmpty():
			return LineClear{}, false
		case c.IsFiller():
		case item == Empty || item == c:
			item = c
			count++
		default:
			return LineClear{}, false
		}
	}
	if count < 3 {
		return LineClear{}, false
	}
	k, _ := item.Kind()
	return LineClear{Kind: ClearItemCombo, Item: k}, true
}

// ClassicRule clears full filler rows and rows holding three adjacent
// identical items.
type ClassicRule struct{}

func (ClassicRule) Name() string { return "classic" }

func (ClassicRule) Scan(b *Board) []LineClear {
	return scanRows(b, classicLine)
}

// HybridRule clears rows that are full once filler and a single item kind
// (three or more of it) are counted together.
type HybridRule struct{}

func (HybridRule) Name() string { return "hybrid" }

func (HybridRule) Scan(b *Board) []LineClear {
	return scanRows(b, hybridLine)
}

// ColumnRule applies the classic predicate to rows and to columns. Both are
// marked against the same board and removed in the same pass.
type ColumnRule struct{}

func (ColumnRule) Name() string { return "columns" }

func (ColumnRule) Scan(b *Board) []LineClear {
	lines := scanRows(b, classicLine)
	for x := 0; x < b.Width(); x++ {
		if l, ok := classicLine(b.Column(x)); ok {
			l.Axis, l.Index = AxisColumn, x
			lines = append(lines, l)
		}
	}
	return lines
}

func scanRows(b *Board, match func([]Cell) (LineClear, bool)) []LineClear {
	var lines []LineClear
	for y := 0; y < b.Height(); y++ {
		if l, ok := match(b.Row(y)); ok {
			l.Axis, l.Index = AxisRow, y
			lines = append(lines, l)
		}
	}
	return lines
}

// ErrUnknownRule is returned by RuleByName for unregistered names.
var ErrUnknownRule = errors.New("engine: unknown clear rule")

// DefaultRule is the rule used when none is named.
const DefaultRule = "classic"

var (
	rules   = make(map[string]ClearRule)
	rulesMu sync.RWMutex
)

func init() {
	RegisterRule(ClassicRule{})
	RegisterRule(HybridRule{})
	RegisterRule(ColumnRule{})
}

// RegisterRule adds a named clear rule. Panics on duplicate names.
func RegisterRule(r ClearRule) {
	rulesMu.Lock()
	defer rulesMu.Unlock()

	if _, exists := rules[r.Name()]; exists {
		panic(fmt.Sprintf("engine: clear rule %q already registered", r.Name()))
	}
	rules[r.Name()] = r
}

// RuleByName returns a registered rule. An empty name selects DefaultRule.
func RuleByName(name string) (ClearRule, error) {
	if name == "" {
		name = DefaultRule
	}
	rulesMu.RLock()
	defer rulesMu.RUnlock()

	r, ok := rules[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	return r, nil
}

// RuleNames lists registered rules, sorted.
func RuleNames() []string {
	rulesMu.RLock()
	defer rulesMu.RUnlock()

	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package variables

import (
	"fmt"
	"regexp"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/matcalc"
	"github.com/npillmayer/matcalc/grammar"
	"github.com/npillmayer/matcalc/matrix"
)

// EphemeralPrefix starts every ephemeral name.
const EphemeralPrefix = "#"

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Symbol is an entry of the symbol table.
type Symbol struct {
	Name      string
	Value     *matrix.Matrix
	Ephemeral bool // generated for a literal, lives for one evaluation only
}

func (sym *Symbol) String() string {
	return fmt.Sprintf("<%s=%dx%d>", sym.Name, sym.Value.Rows(), sym.Value.Cols())
}

// === Symbol Table ==========================================================

// SymbolTable maps names to matrices.
type SymbolTable struct {
	table  *treemap.Map // name → *Symbol, ordered by name
	serial int64        // for generating ephemeral names
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		table: treemap.NewWithStringComparator(),
	}
}

// CheckName returns an error if name may not be used for a persistent entry.
func CheckName(name string) error {
	if !identifier.MatchString(name) {
		return fmt.Errorf("%w: %q must start with a letter or '_' and contain only letters, digits or '_'",
			matcalc.ErrInvalidName, name)
	}
	if grammar.IsFunction(name) {
		return fmt.Errorf("%w: %q is a reserved function name", matcalc.ErrInvalidName, name)
	}
	return nil
}

// Insert stores m under a persistent name, replacing an existing entry.
func (st *SymbolTable) Insert(name string, m *matrix.Matrix) error {
	if err := CheckName(name); err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("%w: no matrix for %q", matrix.ErrBadShape, name)
	}
	st.table.Put(name, &Symbol{Name: name, Value: m})
	tracer().P("var", name).Debugf("stored %d×%d matrix", m.Rows(), m.Cols())
	return nil
}

// Lookup returns the matrix stored under name.
func (st *SymbolTable) Lookup(name string) (*matrix.Matrix, bool) {
	sym := st.Resolve(name)
	if sym == nil {
		return nil, false
	}
	return sym.Value, true
}

// Resolve returns the symbol for name, or nil.
func (st *SymbolTable) Resolve(name string) *Symbol {
	if s, found := st.table.Get(name); found {
		return s.(*Symbol)
	}
	return nil
}

// Remove deletes the entry for name. Returns false if there was none.
func (st *SymbolTable) Remove(name string) bool {
	if _, found := st.table.Get(name); !found {
		return false
	}
	st.table.Remove(name)
	tracer().P("var", name).Debugf("removed")
	return true
}

// Names returns the persistent names, sorted.
func (st *SymbolTable) Names() []string {
	names := make([]string, 0, st.table.Size())
	it := st.table.Iterator()
	for it.Next() {
		if sym := it.Value().(*Symbol); !sym.Ephemeral {
			names = append(names, sym.Name)
		}
	}
	return names
}

// Size returns the number of entries, ephemeral ones included.
func (st *SymbolTable) Size() int {
	return st.table.Size()
}

// EphemeralCount returns the number of live ephemeral entries.
func (st *SymbolTable) EphemeralCount() int {
	n := 0
	it := st.table.Iterator()
	for it.Next() {
		if it.Value().(*Symbol).Ephemeral {
			n++
		}
	}
	return n
}

// === Scratch ===============================================================

// Scratch collects the ephemeral names created for one evaluation.
// Release removes all of them from the symbol table.
type Scratch struct {
	symtab *SymbolTable
	names  []string
}

// OpenScratch starts a new collection of ephemeral names.
func (st *SymbolTable) OpenScratch() *Scratch {
	return &Scratch{symtab: st}
}

// Register stores m under a fresh ephemeral name and returns the name.
func (s *Scratch) Register(m *matrix.Matrix) string {
	name := fmt.Sprintf("%slit%d", EphemeralPrefix, s.symtab.serial)
	s.symtab.serial++
	s.symtab.table.Put(name, &Symbol{Name: name, Value: m, Ephemeral: true})
	s.names = append(s.names, name)
	return name
}

// Names returns the ephemeral names registered so far.
func (s *Scratch) Names() []string {
	return s.names
}

// Release removes all ephemeral entries of this scratch from the symbol
// table. Release may be called more than once.
func (s *Scratch) Release() {
	for _, name := range s.names {
		s.symtab.table.Remove(name)
	}
	if len(s.names) > 0 {
		tracer().Debugf("released %d ephemeral names", len(s.names))
	}
	s.names = s.names[:0]
}

var _ grammar.LiteralRegistry = (*Scratch)(nil)

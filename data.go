package eda

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
)

var (
	// ErrNoSuchColumn is returned when a column is not part of a data frame.
	ErrNoSuchColumn = errors.New("eda: no such column")

	// ErrNotNumeric is returned when a numeric operation is applied to
	// a string column.
	ErrNotNumeric = errors.New("eda: column is not numeric")
)

// FieldType represents the basic type of a field.
type FieldType uint

const (
	Int FieldType = iota
	Float
	String
)

func (t FieldType) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	}
	return "FieldType(" + strconv.Itoa(int(t)) + ")"
}

// Field is one column of a data frame. All values are stored as float64;
// values of a String field are indices into Pool.
type Field struct {
	Type FieldType
	Data []float64
	Pool *StringPool
}

// NewField makes a zero valued field of length n.
func NewField(n int, t FieldType, pool *StringPool) Field {
	return Field{
		Type: t,
		Data: make([]float64, n),
		Pool: pool,
	}
}

// Discrete reports whether f holds categorical values.
func (f Field) Discrete() bool {
	return f.Type == Int || f.Type == String
}

// Format formats the value x of f.
func (f Field) Format(x float64) string {
	switch f.Type {
	case String:
		return f.Pool.Get(int(x))
	case Int:
		return strconv.FormatInt(int64(x), 10)
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// Value formats the i'th value of f.
func (f Field) Value(i int) string {
	return f.Format(f.Data[i])
}

func (f Field) Copy() Field {
	c := f
	c.Data = make([]float64, len(f.Data))
	copy(c.Data, f.Data)
	return c
}

// Levels returns the distinct values of f.
func (f Field) Levels() FloatSet {
	levels := NewFloatSet()
	for _, x := range f.Data {
		levels.Add(x)
	}
	return levels
}

// Less orders values of f: strings lexically, numbers numerically.
func (f Field) Less(a, b float64) bool {
	if f.Type == String {
		return f.Pool.Get(int(a)) < f.Pool.Get(int(b))
	}
	return a < b
}

// SortedLevels returns the distinct values of f in ascending order
// (descending if desc is set).
func (f Field) SortedLevels(desc bool) []float64 {
	levels := f.Levels().Elements()
	sort.SliceStable(levels, func(i, j int) bool {
		if desc {
			return f.Less(levels[j], levels[i])
		}
		return f.Less(levels[i], levels[j])
	})
	return levels
}

// DataFrame is a column oriented table of N rows.
type DataFrame struct {
	Name    string
	N       int
	Columns map[string]Field
	Pool    *StringPool
}

// NewDataFrame returns an empty data frame. A nil pool allocates a new one.
func NewDataFrame(name string, pool *StringPool) *DataFrame {
	if pool == nil {
		pool = NewStringPool()
	}
	return &DataFrame{
		Name:    name,
		Columns: make(map[string]Field),
		Pool:    pool,
	}
}

// NewDataFrameFrom constructs a data frame from a slice of structs.
// Exported fields of integer, float and string kind become columns,
// as do methods without arguments returning one of these kinds.
// All other fields and methods are ignored.
func NewDataFrameFrom(data interface{}) (*DataFrame, error) {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return nil, fmt.Errorf("eda: cannot convert %T to data frame", data)
	}
	t := v.Type().Elem()
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("eda: cannot convert %T to data frame", data)
	}

	n := v.Len()
	df := NewDataFrame(t.Name(), nil)
	df.N = n

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		ft, ok := fieldType(f.Type.Kind())
		if !ok {
			continue
		}
		field := NewField(n, ft, df.Pool)
		for r := 0; r < n; r++ {
			field.Data[r] = df.convert(ft, v.Index(r).Field(i))
		}
		df.Columns[f.Name] = field
	}

	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		mt := m.Type
		if mt.NumIn() != 1 || mt.NumOut() != 1 {
			continue
		}
		ft, ok := fieldType(mt.Out(0).Kind())
		if !ok {
			continue
		}
		field := NewField(n, ft, df.Pool)
		for r := 0; r < n; r++ {
			out := m.Func.Call([]reflect.Value{v.Index(r)})[0]
			field.Data[r] = df.convert(ft, out)
		}
		df.Columns[m.Name] = field
	}

	return df, nil
}

func fieldType(k reflect.Kind) (FieldType, bool) {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Int, true
	case reflect.Float32, reflect.Float64:
		return Float, true
	case reflect.String:
		return String, true
	}
	return 0, false
}

func (df *DataFrame) convert(ft FieldType, v reflect.Value) float64 {
	switch ft {
	case String:
		return float64(df.Pool.Add(v.String()))
	case Float:
		return v.Float()
	}
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	}
	return float64(v.Int())
}

// AddFloats adds a Float column. The first column added determines N.
func (df *DataFrame) AddFloats(name string, values []float64) error {
	field := NewField(len(values), Float, df.Pool)
	copy(field.Data, values)
	return df.add(name, field)
}

// AddInts adds an Int column.
func (df *DataFrame) AddInts(name string, values []int) error {
	field := NewField(len(values), Int, df.Pool)
	for i, x := range values {
		field.Data[i] = float64(x)
	}
	return df.add(name, field)
}

// AddStrings adds a String column.
func (df *DataFrame) AddStrings(name string, values []string) error {
	field := NewField(len(values), String, df.Pool)
	for i, s := range values {
		field.Data[i] = float64(df.Pool.Add(s))
	}
	return df.add(name, field)
}

func (df *DataFrame) add(name string, field Field) error {
	if len(df.Columns) > 0 && len(field.Data) != df.N {
		return fmt.Errorf("eda: column %s has %d rows, data frame %s has %d",
			name, len(field.Data), df.Name, df.N)
	}
	df.N = len(field.Data)
	df.Columns[name] = field
	return nil
}

// Has reports whether df contains the column name.
func (df *DataFrame) Has(name string) bool {
	_, ok := df.Columns[name]
	return ok
}

// FieldNames returns the sorted column names.
func (df *DataFrame) FieldNames() []string {
	names := make([]string, 0, len(df.Columns))
	for name := range df.Columns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Copy makes a deep copy of df. The string pool is shared.
func (df *DataFrame) Copy() *DataFrame {
	c := NewDataFrame(df.Name, df.Pool)
	c.N = df.N
	for name, field := range df.Columns {
		c.Columns[name] = field.Copy()
	}
	return c
}

// Rename renames the column from to to. Renaming a missing column is a no-op.
func (df *DataFrame) Rename(from, to string) {
	if from == to {
		return
	}
	field, ok := df.Columns[from]
	if !ok {
		return
	}
	df.Columns[to] = field
	delete(df.Columns, from)
}

func (df *DataFrame) Delete(name string) {
	delete(df.Columns, name)
}

// Column returns the named field.
func (df *DataFrame) Column(name string) (Field, error) {
	field, ok := df.Columns[name]
	if !ok {
		return Field{}, fmt.Errorf("%w %q in %s", ErrNoSuchColumn, name, df.Name)
	}
	return field, nil
}

// Float returns a copy of the values of a numeric column.
func (df *DataFrame) Float(name string) ([]float64, error) {
	field, err := df.Column(name)
	if err != nil {
		return nil, err
	}
	if field.Type == String {
		return nil, fmt.Errorf("%w: %q in %s", ErrNotNumeric, name, df.Name)
	}
	return field.Copy().Data, nil
}

// FilterRows returns a new data frame with all rows i for which keep(i)
// holds. df is unchanged.
func (df *DataFrame) FilterRows(keep func(i int) bool) *DataFrame {
	var rows []int
	for i := 0; i < df.N; i++ {
		if keep(i) {
			rows = append(rows, i)
		}
	}

	result := NewDataFrame(df.Name, df.Pool)
	result.N = len(rows)
	for name, field := range df.Columns {
		f := NewField(len(rows), field.Type, field.Pool)
		for j, i := range rows {
			f.Data[j] = field.Data[i]
		}
		result.Columns[name] = f
	}
	return result
}

// Filter extracts all rows from df where field==value.
// Value may be an integer, a float or a string.
func Filter(df *DataFrame, field string, value interface{}) (*DataFrame, error) {
	f, err := df.Column(field)
	if err != nil {
		return nil, err
	}

	var want float64
	rv := reflect.ValueOf(value)
	switch kind := rv.Kind(); {
	case kind == reflect.String:
		if f.Type != String {
			return nil, fmt.Errorf("eda: cannot filter %s field %s by string", f.Type, field)
		}
		idx := df.Pool.Find(rv.String())
		if idx == -1 {
			return df.FilterRows(func(int) bool { return false }), nil
		}
		want = float64(idx)
	case kind >= reflect.Int && kind <= reflect.Float64:
		if f.Type == String {
			return nil, fmt.Errorf("eda: cannot filter string field %s by %T", field, value)
		}
		want = rv.Convert(reflect.TypeOf(float64(0))).Float()
	default:
		return nil, fmt.Errorf("eda: bad filter value type %T", value)
	}

	return df.FilterRows(func(i int) bool { return f.Data[i] == want }), nil
}

// Levels returns the distinct values of field in df. Missing fields
// have no levels.
func Levels(df *DataFrame, field string) FloatSet {
	f, ok := df.Columns[field]
	if !ok {
		return NewFloatSet()
	}
	return f.Levels()
}

// Print writes df as an aligned table to w.
func (df *DataFrame) Print(w io.Writer) {
	names := df.FieldNames()
	tw := tabwriter.NewWriter(w, 4, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Data frame %q (%d rows)\n", df.Name, df.N)
	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(names, "\t"))
	for i := 0; i < df.N; i++ {
		row := make([]string, len(names))
		for j, name := range names {
			row[j] = df.Columns[name].Value(i)
		}
		fmt.Fprintf(tw, "%d\t%s\t\n", i, strings.Join(row, "\t"))
	}
	tw.Flush()
}

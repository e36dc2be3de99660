package nexusdb

import (
	"fmt"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
)

// ToArrowRecord converts the decoded result set into an Arrow record.
//
// Column types follow the first-row inference of ColumnTypes: Int maps to
// int64, Float to float64, Bool to boolean, and everything else (Str, Uuid,
// Json, List, Unknown) to a string column carrying the value's string or
// JSON representation. Null cells stay null. With zero rows every column is
// a string column.
func (rs *ResultSet) ToArrowRecord() (arrow.Record, error) {
	types := rs.ColumnTypes()

	fields := make([]arrow.Field, len(rs.Headers))
	for i, h := range rs.Headers {
		typ := UnknownDataType
		if i < len(types) {
			typ = types[i]
		}
		fields[i] = arrow.Field{Name: h, Type: arrowType(typ), Nullable: true}
	}
	schema := arrow.NewSchema(fields, nil)

	pool := memory.NewGoAllocator()
	b := array.NewRecordBuilder(pool, schema)
	defer b.Release()

	for _, row := range rs.DecodedRows() {
		for i := range fields {
			if i >= len(row) {
				b.Field(i).AppendNull()
				continue
			}
			if err := appendValue(b.Field(i), row[i]); err != nil {
				return nil, fmt.Errorf("column %q: %w", rs.Headers[i], err)
			}
		}
	}
	return b.NewRecord(), nil
}

func arrowType(t DataType) arrow.DataType {
	switch t {
	case IntDataType:
		return arrow.PrimitiveTypes.Int64
	case FloatDataType:
		return arrow.PrimitiveTypes.Float64
	case BoolDataType:
		return arrow.FixedWidthTypes.Boolean
	default:
		return arrow.BinaryTypes.String
	}
}

func appendValue(b array.Builder, v Value) error {
	if v == nil {
		b.AppendNull()
		return nil
	}
	switch fb := b.(type) {
	case *array.Int64Builder:
		switch n := v.(type) {
		case int64:
			fb.Append(n)
		case float64:
			fb.Append(int64(n))
		default:
			return fmt.Errorf("expected int value, got %T", v)
		}
	case *array.Float64Builder:
		switch n := v.(type) {
		case float64:
			fb.Append(n)
		case int64:
			fb.Append(float64(n))
		default:
			return fmt.Errorf("expected float value, got %T", v)
		}
	case *array.BooleanBuilder:
		bv, ok := v.(bool)
		if !ok {
			return fmt.Errorf("expected bool value, got %T", v)
		}
		fb.Append(bv)
	case *array.StringBuilder:
		if s, ok := v.(string); ok {
			fb.Append(s)
		} else {
			fb.Append(stringify(v))
		}
	default:
		return fmt.Errorf("unsupported builder type %T", b)
	}
	return nil
}

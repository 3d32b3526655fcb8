package goparse

import (
	"go/ast"
	"go/token"

	"github.com/calavera/lambda-rust-gen/internal/astmodel"
)

// namedPrimitives maps a bare Go identifier to the GoType it denotes when
// it isn't one of the built-in primitive keywords. Grounded on
// original_source/aws_lambda_events_codegen/go_to_rust/src/lib.rs's
// parse_go_ident: the AWS Lambda Go SDK spells epoch timestamps and
// durations as named int64 aliases with these exact identifiers.
var namedPrimitives = map[string]astmodel.GoTypeKind{
	"MilliSecondsEpochTime": astmodel.KindTimestampMillis,
	"SecondsEpochTime":      astmodel.KindTimestampSeconds,
	"DurationSeconds":       astmodel.KindDurationSeconds,
	"DurationMinutes":       astmodel.KindDurationMinutes,
}

// packageQualified maps a "pkg.Ident" selector to the GoType it denotes.
// Grounded on lib.rs's parse_go_package_ident: there is no general
// import-resolution mechanism, just this closed table.
var packageQualified = map[string]astmodel.GoTypeKind{
	"time.Time":        astmodel.KindTime,
	"json.RawMessage":  astmodel.KindJSONRaw,
}

func basicPrimitive(name string) (astmodel.GoTypeKind, bool) {
	switch name {
	case "string":
		return astmodel.KindString, true
	case "int", "int8", "int16", "int32", "int64":
		return astmodel.KindInt, true
	case "uint", "uint8", "uint16", "uint32", "uint64":
		return astmodel.KindUInt, true
	case "float32", "float64":
		return astmodel.KindFloat, true
	case "bool":
		return astmodel.KindBool, true
	case "byte":
		return astmodel.KindByte, true
	default:
		return 0, false
	}
}

// typeExprToGoType lifts a go/ast type expression into astmodel.GoType.
// It recognizes exactly the restricted subset named in spec §4.1; any
// other shape (generics, function types, channel types, method sets) is
// a ParseError.
func (p *parser) typeExprToGoType(expr ast.Expr) (astmodel.GoType, error) {
	switch e := expr.(type) {
	case *ast.Ident:
		if kind, ok := basicPrimitive(e.Name); ok {
			return astmodel.GoType{Kind: kind}, nil
		}
		if kind, ok := namedPrimitives[e.Name]; ok {
			return astmodel.GoType{Kind: kind}, nil
		}
		return astmodel.GoType{Kind: astmodel.KindNamed, Name: e.Name}, nil

	case *ast.SelectorExpr:
		pkgIdent, ok := e.X.(*ast.Ident)
		if !ok {
			return astmodel.GoType{}, p.errorf(e.Pos(), "unsupported package-qualified type %v", e)
		}
		qualified := pkgIdent.Name + "." + e.Sel.Name
		if kind, ok := packageQualified[qualified]; ok {
			return astmodel.GoType{Kind: kind}, nil
		}
		return astmodel.GoType{}, p.errorf(e.Pos(), "unrecognized package-qualified identifier %q", qualified)

	case *ast.StarExpr:
		elem, err := p.typeExprToGoType(e.X)
		if err != nil {
			return astmodel.GoType{}, err
		}
		return astmodel.GoType{Kind: astmodel.KindPointer, Elem: &elem}, nil

	case *ast.ArrayType:
		if e.Len != nil {
			return astmodel.GoType{}, p.errorf(e.Pos(), "fixed-size arrays are not a recognized data shape")
		}
		elem, err := p.typeExprToGoType(e.Elt)
		if err != nil {
			return astmodel.GoType{}, err
		}
		return astmodel.GoType{Kind: astmodel.KindArray, Elem: &elem}, nil

	case *ast.MapType:
		key, err := p.typeExprToGoType(e.Key)
		if err != nil {
			return astmodel.GoType{}, err
		}
		val, err := p.typeExprToGoType(e.Value)
		if err != nil {
			return astmodel.GoType{}, err
		}
		return astmodel.GoType{Kind: astmodel.KindMap, Key: &key, Elem: &val}, nil

	case *ast.InterfaceType:
		return astmodel.GoType{Kind: astmodel.KindInterface}, nil

	default:
		return astmodel.GoType{}, p.errorf(expr.Pos(), "unsupported type expression (generics, channels, and function types are not data shapes)")
	}
}

func (p *parser) errorf(pos token.Pos, format string, args ...interface{}) *ParseError {
	return newParseError(p.fset, pos, format, args...)
}

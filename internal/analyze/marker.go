package analyze

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Marker is the directive comment that selects a type for generation.
// It takes no parameters; placement on the type declaration is the
// entire discovery signal.
const Marker = "//bulkcopy:generate"

// markedType records one occurrence of the marker on a type declaration.
type markedType struct {
	Name string
	Pos  string // "file:line" of the type spec
}

// markedTypes walks a package's syntax trees and returns every type
// declaration carrying the marker, in source order.
func markedTypes(pkg *packages.Package) []markedType {
	var marked []markedType

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			declMarked := hasMarker(gd.Doc)

			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				// Each mark occurrence is recorded separately so the
				// scanner can warn about doubly marked types.
				pos := pkg.Fset.Position(ts.Pos())
				mt := markedType{
					Name: ts.Name.Name,
					Pos:  pos.Filename + ":" + strconv.Itoa(pos.Line),
				}

				if declMarked {
					marked = append(marked, mt)
				}

				if hasMarker(ts.Doc) {
					marked = append(marked, mt)
				}
			}
		}
	}

	return marked
}

// hasMarker reports whether a comment group contains the marker directive.
// Directives are whole-line comments; trailing text disqualifies the line.
func hasMarker(cg *ast.CommentGroup) bool {
	if cg == nil {
		return false
	}

	for _, c := range cg.List {
		if strings.TrimRight(c.Text, " \t") == Marker {
			return true
		}
	}

	return false
}

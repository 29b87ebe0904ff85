package analyze

import (
	"fmt"
	"go/types"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"bulkcopy-generator/internal/diagnostic"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Scanner loads Go packages and discovers marked candidate types.
type Scanner struct {
	// Dir is the working directory for package resolution.
	// Empty means the process working directory.
	Dir string
}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan loads the specified packages and builds the candidate model.
// Patterns are standard Go package patterns (e.g., "./...",
// "bulkcopy-generator/examples/store").
//
// Load failures are returned as an error; per-candidate rejections are
// reported through Model.Diagnostics instead.
func (s *Scanner) Scan(patterns ...string) (*Model, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  s.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	model := &Model{}
	seen := make(map[TypeID]bool)

	for _, pkg := range pkgs {
		s.processPackage(pkg, model, seen)
	}

	// Deterministic ordering across packages and load runs.
	sort.Slice(model.Candidates, func(i, j int) bool {
		a, b := model.Candidates[i].ID, model.Candidates[j].ID
		if a.PkgPath != b.PkgPath {
			return a.PkgPath < b.PkgPath
		}

		return a.Name < b.Name
	})

	return model, nil
}

// processPackage extracts candidates from a loaded package.
func (s *Scanner) processPackage(pkg *packages.Package, model *Model, seen map[TypeID]bool) {
	marked := markedTypes(pkg)
	if len(marked) == 0 {
		return
	}

	dir := packageDir(pkg)

	for _, m := range marked {
		id := TypeID{PkgPath: pkg.PkgPath, Name: m.Name}
		if seen[id] {
			model.Diagnostics.AddWarning(diagnostic.CodeDuplicateMark,
				"type is marked more than once", id.String(), "")
			continue
		}

		seen[id] = true

		cand, diags := s.buildCandidate(pkg, m, dir)
		model.Diagnostics.Merge(diags)

		if cand != nil {
			model.Candidates = append(model.Candidates, *cand)
		}
	}
}

// buildCandidate validates one marked type and collects its members.
// Returns nil when the type is rejected.
func (s *Scanner) buildCandidate(
	pkg *packages.Package,
	m markedType,
	dir string,
) (*Candidate, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	id := TypeID{PkgPath: pkg.PkgPath, Name: m.Name}

	obj := pkg.Types.Scope().Lookup(m.Name)
	typeName, ok := obj.(*types.TypeName)
	if !ok {
		diags.AddError(diagnostic.CodeNotAStruct,
			"marked declaration is not a type", id.String(), m.Pos)
		return nil, diags
	}

	if !typeName.Exported() {
		diags.AddError(diagnostic.CodeUnexportedType,
			"marked type must be exported", id.String(), m.Pos)
		return nil, diags
	}

	st, ok := typeName.Type().Underlying().(*types.Struct)
	if !ok {
		diags.AddError(diagnostic.CodeNotAStruct,
			fmt.Sprintf("marked type must be a struct, have %s",
				typeName.Type().Underlying()),
			id.String(), m.Pos)
		return nil, diags
	}

	cand := &Candidate{
		ID:      id,
		PkgName: pkg.Name,
		Dir:     dir,
		Table:   TableName(m.Name),
		Pos:     m.Pos,
	}

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		if !field.Exported() {
			continue
		}

		if field.Embedded() {
			diags.AddWarning(diagnostic.CodeEmbeddedField,
				"embedded field skipped", id.String(), field.Name())
			continue
		}

		override, excluded := columnTag(reflect.StructTag(st.Tag(i)))
		if excluded {
			continue
		}

		column := override
		if column == "" {
			column = ColumnName(field.Name())
		}

		cand.Members = append(cand.Members, Member{
			Name:     field.Name(),
			Column:   column,
			Type:     types.TypeString(field.Type(), relativeTo(pkg.Types)),
			Nullable: isNullable(field.Type()),
			Index:    i,
		})
	}

	if len(cand.Members) == 0 {
		diags.AddWarning(diagnostic.CodeNoColumns,
			"candidate has no qualifying fields; the generated adapter has zero columns",
			id.String(), "")
	}

	return cand, diags
}

// relativeTo qualifies type names with short package names, omitting the
// qualifier for the declaring package itself.
func relativeTo(pkg *types.Package) types.Qualifier {
	return func(other *types.Package) string {
		if other == pkg {
			return ""
		}

		return other.Name()
	}
}

// isNullable reports whether a field type maps to a nullable column:
// any pointer, or one of database/sql's Null wrappers.
func isNullable(t types.Type) bool {
	if _, ok := t.(*types.Pointer); ok {
		return true
	}

	named, ok := t.(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()
	if obj.Pkg() == nil {
		return false
	}

	return obj.Pkg().Path() == "database/sql" && strings.HasPrefix(obj.Name(), "Null")
}

// packageDir returns the on-disk directory of a loaded package.
func packageDir(pkg *packages.Package) string {
	if len(pkg.GoFiles) > 0 {
		return filepath.Dir(pkg.GoFiles[0])
	}

	return ""
}

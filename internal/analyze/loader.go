package analyze

import (
	"fmt"
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"

	"variantgen/internal/rule"
	"variantgen/internal/schema"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes

// directiveMarker prefixes every recognized comment directive.
const directiveMarker = "variantgen:"

// LoadRecord loads the package matching pattern and extracts the canonical
// record from the declaration of the named struct.
func LoadRecord(pattern, typeName string) (*schema.Record, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load package %s: %w", pattern, err)
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

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			rec, err := findRecord(file, typeName)
			if err != nil {
				return nil, err
			}

			if rec != nil {
				rec.Package = pkg.Name
				return rec, nil
			}
		}
	}

	return nil, fmt.Errorf("struct %s not found in %s", typeName, pattern)
}

// findRecord scans one file for the named struct declaration and extracts
// the record. Returns (nil, nil) if the file does not declare it.
func findRecord(file *ast.File, typeName string) (*schema.Record, error) {
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}

		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || ts.Name.Name != typeName {
				continue
			}

			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				return nil, fmt.Errorf("type %s is not a struct", typeName)
			}

			return extractRecord(file, gd, ts, st)
		}
	}

	return nil, nil
}

func extractRecord(file *ast.File, gd *ast.GenDecl, ts *ast.TypeSpec, st *ast.StructType) (*schema.Record, error) {
	rec := &schema.Record{Name: ts.Name.Name}

	// The doc comment may sit on the GenDecl or on the TypeSpec.
	for _, doc := range []*ast.CommentGroup{gd.Doc, ts.Doc} {
		variants, attrs := recordDirectives(doc)
		rec.Variants = append(rec.Variants, variants...)
		rec.Attrs = append(rec.Attrs, attrs...)
	}

	for _, field := range st.Fields.List {
		annotations := append(directiveLines(field.Doc), directiveLines(field.Comment)...)

		var raw []string
		for _, line := range annotations {
			raw = append(raw, rule.SplitList(line)...)
		}

		typeStr := types.ExprString(field.Type)
		importPath := fieldImport(file, field.Type)

		if len(field.Names) == 0 {
			// Embedded field: recorded unnamed so validation rejects it.
			rec.Fields = append(rec.Fields, schema.FieldSpec{Type: typeStr})
			continue
		}

		for _, name := range field.Names {
			rec.Fields = append(rec.Fields, schema.FieldSpec{
				Name:        name.Name,
				Type:        typeStr,
				Import:      importPath,
				Annotations: raw,
			})
		}
	}

	return rec, nil
}

// recordDirectives splits a type's doc comment into the variant declaration
// list and the raw record-level annotations.
func recordDirectives(doc *ast.CommentGroup) (variants, attrs []string) {
	for _, line := range directiveLines(doc) {
		if rest, ok := strings.CutPrefix(line, "variants "); ok {
			variants = append(variants, strings.Fields(rest)...)
			continue
		}

		attrs = append(attrs, line)
	}

	return variants, attrs
}

// directiveLines extracts the payload of every marker comment in the group:
// "//variantgen: only_in(A), default" -> "only_in(A), default".
func directiveLines(doc *ast.CommentGroup) []string {
	if doc == nil {
		return nil
	}

	var out []string
	for _, c := range doc.List {
		line := strings.TrimSpace(strings.TrimPrefix(c.Text, "//"))

		rest, ok := strings.CutPrefix(line, directiveMarker)
		if !ok {
			continue
		}

		if rest = strings.TrimSpace(rest); rest != "" {
			out = append(out, rest)
		}
	}

	return out
}

// fieldImport resolves the import path behind a qualified type expression
// like time.Time, matching the qualifier against the file's imports.
func fieldImport(file *ast.File, expr ast.Expr) string {
	qualifier := typeQualifier(expr)
	if qualifier == "" {
		return ""
	}

	for _, imp := range file.Imports {
		path := strings.Trim(imp.Path.Value, `"`)

		name := path
		if i := strings.LastIndexByte(path, '/'); i >= 0 {
			name = path[i+1:]
		}
		if imp.Name != nil {
			name = imp.Name.Name
		}

		if name == qualifier {
			return path
		}
	}

	return ""
}

// typeQualifier digs the package qualifier out of a type expression,
// unwrapping pointers and element types.
func typeQualifier(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.SelectorExpr:
		if ident, ok := t.X.(*ast.Ident); ok {
			return ident.Name
		}
	case *ast.StarExpr:
		return typeQualifier(t.X)
	case *ast.ArrayType:
		return typeQualifier(t.Elt)
	}

	return ""
}

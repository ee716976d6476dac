// Package noosexit implements a custom analyzer restricting os.Exit.
package noosexit

import (
	"go/ast"
	"go/types"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/types/typeutil"
)

// Analyzer reports os.Exit calls that would skip deferred cleanup, such as
// closing the output file: any call outside package main, and direct calls in
// the body of main.main.
var Analyzer = &analysis.Analyzer{
	Name: "noosexit",
	Doc:  "forbid os.Exit outside package main and directly in main.main",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	if pass.Pkg == nil || strings.HasSuffix(pass.Pkg.Path(), "/cmd/staticlint") {
		return nil, nil
	}
	isMain := pass.Pkg.Name() == "main"

	for _, f := range pass.Files {
		fn := pass.Fset.Position(f.Pos()).Filename
		if strings.Contains(fn, "/.cache/go-build/") || isGenerated(f) || importsTesting(f) {
			continue
		}

		for _, decl := range f.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok || fd.Body == nil {
				continue
			}
			inMainMain := isMain && fd.Recv == nil && fd.Name.Name == "main"
			if isMain && !inMainMain {
				continue
			}
			ast.Inspect(fd.Body, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok || !isOSExit(pass.TypesInfo, call) {
					return true
				}
				if inMainMain {
					pass.Reportf(call.Pos(), "do not call os.Exit inside main.main; delegate to run() and return an error")
				} else {
					pass.Reportf(call.Pos(), "os.Exit is only allowed in package main; return an error instead")
				}
				return true
			})
		}
	}
	return nil, nil
}

func isOSExit(info *types.Info, call *ast.CallExpr) bool {
	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || fn.Pkg() == nil {
		return false
	}
	return fn.Pkg().Path() == "os" && fn.Name() == "Exit"
}

func isGenerated(f *ast.File) bool {
	for _, cg := range f.Comments {
		for _, c := range cg.List {
			if strings.Contains(c.Text, "Code generated") && strings.Contains(c.Text, "DO NOT EDIT") {
				return true
			}
		}
	}
	return false
}

func importsTesting(f *ast.File) bool {
	for _, im := range f.Imports {
		if p, _ := strconv.Unquote(im.Path.Value); p == "testing" || p == "testing/internal/testdeps" {
			return true
		}
	}
	return false
}

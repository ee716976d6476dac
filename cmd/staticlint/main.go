// Package main provides the staticlint multichecker for this project.
//
// Build:
//
//	go build -o staticlint ./cmd/staticlint
//
// Usage:
//
//	./staticlint ./...
//
// Analyzers:
//
// Std passes (golang.org/x/tools/go/analysis/passes):
//
//	assign, atomic, bools, buildtag, composite, copylock, errorsas,
//	ifaceassert, loopclosure, lostcancel, nilfunc, printf, shadow, shift,
//	sigchanyzer, stdmethods, stringintconv, structtag, tests, unmarshal,
//	unreachable, unusedresult.
//
// Staticcheck (honnef.co/go/tools): all SA* analyzers and ST1000 (package comment).
//
// Public analyzers:
//
//	nilerr (github.com/gostaticanalysis/nilerr) — returning nil from an `if err != nil` branch.
//
// Custom:
//
//	noosexit — forbids os.Exit outside package main and directly in main.main,
//	so deferred closes of the output file always run.
package main

import (
	"strings"

	"github.com/gostaticanalysis/nilerr"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/buildtag"
	"golang.org/x/tools/go/analysis/passes/composite"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/ifaceassert"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/shift"
	"golang.org/x/tools/go/analysis/passes/sigchanyzer"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/stringintconv"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"github.com/and161185/cpufreq-monitor/internal/analyzers/noosexit"
)

func collect() []*analysis.Analyzer {
	list := []*analysis.Analyzer{
		assign.Analyzer, atomic.Analyzer, bools.Analyzer, buildtag.Analyzer, composite.Analyzer,
		copylock.Analyzer, errorsas.Analyzer, ifaceassert.Analyzer, loopclosure.Analyzer, lostcancel.Analyzer,
		nilfunc.Analyzer, printf.Analyzer, shadow.Analyzer, shift.Analyzer, sigchanyzer.Analyzer,
		stdmethods.Analyzer, stringintconv.Analyzer, structtag.Analyzer, tests.Analyzer, unmarshal.Analyzer,
		unreachable.Analyzer, unusedresult.Analyzer,

		nilerr.Analyzer,
		noosexit.Analyzer,
	}

	for _, a := range staticcheck.Analyzers {
		if strings.HasPrefix(a.Analyzer.Name, "SA") {
			list = append(list, a.Analyzer)
		}
	}
	for _, a := range stylecheck.Analyzers {
		if a.Analyzer.Name == "ST1000" {
			list = append(list, a.Analyzer)
		}
	}

	return list
}

func main() {
	multichecker.Main(collect()...)
}

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mirocana/typecheck/internal/classreg"
	"github.com/mirocana/typecheck/internal/evalctx"
	"github.com/mirocana/typecheck/internal/types"
	"github.com/mirocana/typecheck/internal/unify"
)

// classDecl declares an extra class and its direct nominal ancestors,
// beyond the builtin object/type/str/unicode/basestring family that every
// fixture file gets for free.
type classDecl struct {
	Name        string   `yaml:"name"`
	SubclassOf  []string `yaml:"subclassOf"`
	ABCParentOf []string `yaml:"abcParentOf"`
}

type memberDecl struct {
	Class string   `yaml:"class"`
	Names []string `yaml:"names"`
}

type matchScenario struct {
	Name     string `yaml:"name"`
	Canned   string `yaml:"canned"`
	Expected string `yaml:"expected"`
	Actual   string `yaml:"actual"`
	Want     bool   `yaml:"want"`
}

type paramDecl struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	IsArgs   bool   `yaml:"isArgs"`
	IsKwargs bool   `yaml:"isKwargs"`
}

type callScenario struct {
	Name   string            `yaml:"name"`
	Params []paramDecl       `yaml:"params"`
	Args   map[string]string `yaml:"args"`
	Want   bool              `yaml:"want"`
}

// fixtureFile is the root YAML document cmd/typecheck-fixtures reads.
type fixtureFile struct {
	Classes   []classDecl     `yaml:"classes"`
	Members   []memberDecl    `yaml:"members"`
	Scenarios []matchScenario `yaml:"scenarios"`
	Calls     []callScenario  `yaml:"calls"`
}

func loadFixtureFile(path string) (*fixtureFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture file: %w", err)
	}
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture file %s: %w", path, err)
	}
	return &f, nil
}

// buildRegistry wires the numeric promotion chain and string family (so
// fixtures get bool/int/long/float/complex/number and str/unicode/
// basestring for free) and then layers the file's own class/member
// declarations on top.
func buildRegistry(f *fixtureFile) *classreg.StaticRegistry {
	reg := classreg.NewStaticRegistry()
	reg.SetBuiltins(classreg.NewBuiltinCache(reg))

	chain := []string{"bool", "int", "long", "float", "complex", "number"}
	for i := 0; i+1 < len(chain); i++ {
		reg.RegisterSubclass(chain[i], chain[i+1])
	}

	for _, c := range f.Classes {
		reg.Declare(c.Name)
		for _, super := range c.SubclassOf {
			reg.RegisterSubclass(c.Name, super)
		}
		for _, sub := range c.ABCParentOf {
			reg.RegisterABCSubclass(sub, c.Name)
		}
	}
	for _, m := range f.Members {
		for _, name := range m.Names {
			reg.RegisterMember(m.Class, name, false)
		}
	}
	return reg
}

// result is one scenario's outcome, ready for the report to render.
type result struct {
	Name    string
	Want    bool
	Got     bool
	Pass    bool
	Detail  string
	Skipped bool
}

func runMatchScenarios(f *fixtureFile, reg *classreg.StaticRegistry, ctx *evalctx.MemoryContext, verbose bool) []result {
	var out []result
	for _, s := range f.Scenarios {
		if s.Canned != "" {
			scen, ok := cannedScenarios[s.Canned]
			if !ok {
				out = append(out, result{Name: s.Name, Skipped: true, Detail: fmt.Sprintf("unknown canned scenario %q", s.Canned)})
				continue
			}
			expected, actual, want := scen(reg)
			got := runMatch(expected, actual, ctx, verbose)
			out = append(out, result{Name: s.Name, Want: want, Got: got, Pass: got == want})
			continue
		}

		expected, err := parseTypeExpr(s.Expected, reg)
		if err != nil {
			out = append(out, result{Name: s.Name, Skipped: true, Detail: err.Error()})
			continue
		}
		actual, err := parseTypeExpr(s.Actual, reg)
		if err != nil {
			out = append(out, result{Name: s.Name, Skipped: true, Detail: err.Error()})
			continue
		}
		got := runMatch(expected, actual, ctx, verbose)
		out = append(out, result{Name: s.Name, Want: s.Want, Got: got, Pass: got == s.Want})
	}
	return out
}

func runCallScenarios(f *fixtureFile, reg *classreg.StaticRegistry, ctx *evalctx.MemoryContext) []result {
	var out []result
	for _, c := range f.Calls {
		var args []unify.Arg
		parseErr := ""
		for _, p := range c.Params {
			pt, err := parseTypeExpr(p.Type, reg)
			if err != nil {
				parseErr = err.Error()
				break
			}
			exprName := p.Name
			if argType, ok := c.Args[p.Name]; ok {
				at, err := parseTypeExpr(argType, reg)
				if err != nil {
					parseErr = err.Error()
					break
				}
				ctx.SetExprType(exprName, at)
			}
			args = append(args, unify.Arg{
				Param: types.Param{Name: p.Name, Type: pt, IsArgs: p.IsArgs, IsKwargs: p.IsKwargs},
				Expr:  exprName,
			})
		}
		if parseErr != "" {
			out = append(out, result{Name: c.Name, Skipped: true, Detail: parseErr})
			continue
		}
		_, ok := unify.UnifyGenericCall(nil, args, ctx, nil)
		out = append(out, result{Name: c.Name, Want: c.Want, Got: ok, Pass: ok == c.Want})
	}
	return out
}

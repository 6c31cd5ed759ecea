package fuzztests

import (
	"context"

	"jsxform/internal/ast"
	"jsxform/internal/moduleimports"
	"jsxform/internal/plan"
	"jsxform/internal/transform"
)

func planProgram(p *plan.Plan) *ast.Program {
	b := ast.Synthetic()
	prog := &ast.Program{}
	for _, line := range p.Program.Body {
		prog.Body = append(prog.Body, b.Verbatim(line))
	}
	return prog
}

func requestRule(group plan.RuleRequests) transform.Rule {
	return transform.RuleFunc{
		RuleName: group.Name,
		Fn: func(_ context.Context, _ *ast.Program, st *transform.State) error {
			for _, req := range group.Requests {
				kind, err := req.ImportKind()
				if err != nil {
					return err
				}
				switch kind {
				case moduleimports.KindNamed:
					st.Imports.AddImport(req.Source, moduleimports.NewSpecifier(req.Imported, req.Local, st.DeclareImportBinding(req.LocalName())))
				case moduleimports.KindDefault:
					st.Imports.AddDefault(req.Source, moduleimports.NewSpecifier(req.Imported, "", st.DeclareImportBinding(req.Imported)))
				case moduleimports.KindRequire:
					st.Imports.AddRequire(req.Source, moduleimports.NewSpecifier(req.Imported, req.Local, st.DeclareImportBinding(req.LocalName())), req.Front)
				}
			}
			return nil
		},
	}
}

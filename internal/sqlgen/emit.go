package sqlgen

import (
	"github.com/dave/jennifer/jen"
)

// EmitScaffoldGo writes a compilable Go source file containing the generated
// SQL as constants, a create-table function, an insert function whose
// arguments are the rendered access expressions, and the typed getter
// helpers the expressions call. Records are expected to be decoded with
// encoding/json into map[string]any, so numbers arrive as float64.
func EmitScaffoldGo(pkgName, outFile string, td *TableDef) error {
	return scaffoldFile(pkgName, td).Save(outFile)
}

func scaffoldFile(pkgName string, td *TableDef) *jen.File {
	f := jen.NewFile(pkgName)
	f.HeaderComment("Code generated by genscaffold. DO NOT EDIT.")

	plural := tableNameToGoName(td.Name) + "s"
	singular := tableNameToGoName(td.Name)
	createConst := "create" + plural + "SQL"
	insertConst := "insert" + plural + "SQL"

	f.Const().Id(createConst).Op("=").Lit(GenerateCreateSQL(td))
	f.Line()

	f.Commentf("Create%sTable creates the %s table if it does not exist.", plural, td.Name)
	f.Func().Id("Create"+plural+"Table").Params(
		jen.Id("ctx").Qual("context", "Context"),
		jen.Id("db").Op("*").Qual("database/sql", "DB"),
	).Error().Block(
		jen.List(jen.Id("_"), jen.Err()).Op(":=").Id("db").Dot("ExecContext").Call(
			jen.Id("ctx"), jen.Id(createConst),
		),
		jen.Return(jen.Err()),
	)
	f.Line()

	f.Const().Id(insertConst).Op("=").Lit(GenerateInsertSQL(td))
	f.Line()

	f.Commentf("Insert%s inserts one decoded %s record within a transaction.", singular, td.BaseName)
	insertParams := []jen.Code{
		jen.Id("ctx").Qual("context", "Context"),
		jen.Id("tx").Op("*").Qual("database/sql", "Tx"),
		jen.Id(td.BaseName).Map(jen.String()).Any(),
	}
	execArgs := []jen.Code{jen.Id("ctx"), jen.Id(insertConst)}
	if td.Rel != nil {
		arg := columnToArgName(td.Rel.Column)
		insertParams = append(insertParams, jen.Id(arg).Int64())
		execArgs = append(execArgs, jen.Id(arg))
	}
	for _, col := range td.Columns {
		callArgs := []jen.Code{jen.Id(td.BaseName)}
		for _, key := range col.Path {
			callArgs = append(callArgs, jen.Lit(key))
		}
		execArgs = append(execArgs, jen.Id(accessFunc(col.Kind)).Call(callArgs...))
	}
	f.Func().Id("Insert"+singular).Params(insertParams...).Error().Block(
		jen.List(jen.Id("_"), jen.Err()).Op(":=").Id("tx").Dot("ExecContext").Call(execArgs...),
		jen.Return(jen.Err()),
	)
	f.Line()

	emitGetters(f)
	return f
}

// emitGetters writes the lookup helper and the four typed getters. Getters
// return any so that a missing or mistyped value inserts as NULL rather
// than panicking.
func emitGetters(f *jen.File) {
	recParams := func() []jen.Code {
		return []jen.Code{
			jen.Id("rec").Map(jen.String()).Any(),
			jen.Id("path").Op("...").String(),
		}
	}
	lookupCall := func() *jen.Statement {
		return jen.Id("lookup").Call(jen.Id("rec"), jen.Id("path").Op("..."))
	}

	f.Comment("lookup walks the decoded record by its original document keys.")
	f.Func().Id("lookup").Params(recParams()...).Any().Block(
		jen.Var().Id("v").Any().Op("=").Id("rec"),
		jen.For(jen.List(jen.Id("_"), jen.Id("key")).Op(":=").Range().Id("path")).Block(
			jen.List(jen.Id("m"), jen.Id("ok")).Op(":=").Id("v").Assert(jen.Map(jen.String()).Any()),
			jen.If(jen.Op("!").Id("ok")).Block(jen.Return(jen.Nil())),
			jen.Id("v").Op("=").Id("m").Index(jen.Id("key")),
		),
		jen.Return(jen.Id("v")),
	)
	f.Line()

	f.Func().Id("getString").Params(recParams()...).Any().Block(
		jen.If(
			jen.List(jen.Id("s"), jen.Id("ok")).Op(":=").Add(lookupCall()).Assert(jen.String()),
			jen.Id("ok"),
		).Block(jen.Return(jen.Id("s"))),
		jen.Return(jen.Nil()),
	)
	f.Line()

	f.Func().Id("getFloat").Params(recParams()...).Any().Block(
		jen.If(
			jen.List(jen.Id("n"), jen.Id("ok")).Op(":=").Add(lookupCall()).Assert(jen.Float64()),
			jen.Id("ok"),
		).Block(jen.Return(jen.Id("n"))),
		jen.Return(jen.Nil()),
	)
	f.Line()

	f.Func().Id("getInt").Params(recParams()...).Any().Block(
		jen.If(
			jen.List(jen.Id("n"), jen.Id("ok")).Op(":=").Add(lookupCall()).Assert(jen.Float64()),
			jen.Id("ok"),
		).Block(jen.Return(jen.Int64().Call(jen.Id("n")))),
		jen.Return(jen.Nil()),
	)
	f.Line()

	f.Comment("getBool renders booleans as 0/1 for INTEGER columns.")
	f.Func().Id("getBool").Params(recParams()...).Any().Block(
		jen.If(
			jen.List(jen.Id("b"), jen.Id("ok")).Op(":=").Add(lookupCall()).Assert(jen.Bool()),
			jen.Id("ok"),
		).Block(
			jen.If(jen.Id("b")).Block(jen.Return(jen.Int64().Call(jen.Lit(1)))),
			jen.Return(jen.Int64().Call(jen.Lit(0))),
		),
		jen.Return(jen.Nil()),
	)
}

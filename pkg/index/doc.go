// Package index assembles the TypeScript module that initializes the
// localization runtime with every generated resource file.
//
// Generated files are grouped by language and namespace into a Table whose
// values are import identifiers ("enCommonNs"). A static table supplied by
// the caller is merged underneath; when both define the same language and
// namespace the generated identifier wins. Assemble turns the table, the
// middleware list and the init options into an Artifact, and Render prints
// it:
//
//	a, err := index.Assemble(index.Config{
//		Path:             "src/i18n.ts",
//		DefaultNamespace: "translation",
//		Middlewares: []index.Import{
//			{Name: "initReactI18next", From: "react-i18next"},
//		},
//	}, files)
//	src, err := index.Render(a)
//
// The rendered module imports the runtime, registers middlewares, exports
// the resource table, the init options and a Namespace union type, calls
// init and re-exports the runtime instance.
package index

package languages

// Presets are keyed by the names go-enry reports.
var Presets = []Language{
	{Name: "C", Style: "//", Extensions: []string{".c", ".h"}},
	{Name: "C#", Style: "//", Extensions: []string{".cs"}},
	{Name: "C++", Style: "//", Extensions: []string{".cpp", ".cc", ".cxx", ".hpp", ".hh"}},
	{Name: "CSS", Style: "/* */", Extensions: []string{".css"}},
	{Name: "Clojure", Style: ";;", Extensions: []string{".clj", ".cljs", ".cljc"}},
	{Name: "Dart", Style: "//", Extensions: []string{".dart"}},
	{Name: "Elixir", Style: "#", Extensions: []string{".ex", ".exs"}},
	{Name: "Elm", Style: "--", Extensions: []string{".elm"}},
	{Name: "Erlang", Style: "%", Extensions: []string{".erl", ".hrl"}},
	{Name: "Go", Style: "//", Extensions: []string{".go"}},
	{Name: "GraphQL", Style: "#", Extensions: []string{".graphql", ".gql"}},
	{Name: "HCL", Style: "#", Extensions: []string{".hcl", ".tf"}},
	{Name: "HTML", Style: "<!-- -->", Extensions: []string{".html", ".htm"}},
	{Name: "Haskell", Style: "--", Extensions: []string{".hs"}},
	{Name: "Java", Style: "//", Extensions: []string{".java"}},
	{Name: "JavaScript", Style: "//", Extensions: []string{".js", ".mjs", ".cjs", ".jsx"}},
	{Name: "Kotlin", Style: "//", Extensions: []string{".kt", ".kts"}},
	{Name: "Less", Style: "//", Extensions: []string{".less"}},
	{Name: "Lua", Style: "--", Extensions: []string{".lua"}},
	{Name: "Markdown", Style: "<!-- -->", Extensions: []string{".md", ".markdown"}},
	{Name: "Objective-C", Style: "//", Extensions: []string{".m"}},
	{Name: "OCaml", Style: "(* *)", Extensions: []string{".ml", ".mli"}},
	{Name: "PHP", Style: "//", Extensions: []string{".php"}},
	{Name: "Perl", Style: "#", Extensions: []string{".pl", ".pm"}},
	{Name: "PowerShell", Style: "#", Extensions: []string{".ps1", ".psm1"}},
	{Name: "Python", Style: "#", Extensions: []string{".py", ".pyi"}},
	{Name: "R", Style: "#", Extensions: []string{".r", ".R"}},
	{Name: "Ruby", Style: "#", Extensions: []string{".rb", ".rake"}},
	{Name: "Rust", Style: "//", Extensions: []string{".rs"}},
	{Name: "SCSS", Style: "//", Extensions: []string{".scss"}},
	{Name: "SQL", Style: "--", Extensions: []string{".sql"}},
	{Name: "Scala", Style: "//", Extensions: []string{".scala", ".sc"}},
	{Name: "Shell", Style: "#", Extensions: []string{".sh", ".bash", ".zsh"}},
	{Name: "Swift", Style: "//", Extensions: []string{".swift"}},
	{Name: "TOML", Style: "#", Extensions: []string{".toml"}},
	{Name: "TSX", Style: "//", Extensions: []string{".tsx"}},
	{Name: "TeX", Style: "%", Extensions: []string{".tex"}},
	{Name: "TypeScript", Style: "//", Extensions: []string{".ts", ".mts", ".cts"}},
	{Name: "Vue", Style: "<!-- -->", Extensions: []string{".vue"}},
	{Name: "XML", Style: "<!-- -->", Extensions: []string{".xml", ".xsd"}},
	{Name: "YAML", Style: "#", Extensions: []string{".yaml", ".yml"}},
}

package highlighter

import (
	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/styles"
)

var DemoplayDark = styles.Register(chroma.MustNewStyle("demoplay", chroma.StyleEntries{
	chroma.Comment:             "#a8a8a8",
	chroma.Keyword:             "bold #FF69B4",
	chroma.KeywordNamespace:    "bold #FF69B4",
	chroma.String:              "#90EE90",
	chroma.LiteralStringDouble: "#90EE90",
	chroma.Literal:             "#90EE90",
	chroma.StringChar:          "#90EE90",
	chroma.KeywordType:         "#7FFFD4",
	chroma.KeywordDeclaration:  "bold #7FFFD4",
	chroma.KeywordReserved:     "#7FFFD4",
	chroma.NameTag:             "#7FFFD4",
	chroma.NameFunction:        "#7FFFD4",
	chroma.NumberInteger:       "#00BFFF",
	chroma.NameBuiltinPseudo:   "#FF69B4",
	chroma.NameFunctionMagic:   "#7FFFD4",
}))

var DemoplayLight = styles.Register(chroma.MustNewStyle("demoplay-light", chroma.StyleEntries{
	chroma.Comment:             "#a8a8a8",
	chroma.Keyword:             "bold #FF69B4",
	chroma.KeywordNamespace:    "bold #FF69B4",
	chroma.String:              "#65aa70",
	chroma.LiteralStringDouble: "#65aa70",
	chroma.Literal:             "#65aa70",
	chroma.StringChar:          "#65aa70",
	chroma.KeywordType:         "#60CCC0",
	chroma.KeywordDeclaration:  "bold #60CCC0",
	chroma.KeywordReserved:     "#60CCC0",
	chroma.NameTag:             "#60CCC0",
	chroma.NameFunction:        "#60CCC0",
	chroma.NumberInteger:       "#00BFFF",
	chroma.NameFunctionMagic:   "#60CCC0",
	chroma.NameBuiltinPseudo:   "#FF69B4",
}))

package minic

// Kind classifies a lexical token, mirroring the seven token kinds the
// lexer distinguishes: DELIMITER, IDENTIFIER, NUMBER, KEYWORD, TEMP,
// STRING, BLOCK.
type Kind int

const (
	KindDelimiter Kind = iota
	KindIdentifier
	KindNumber
	KindKeyword
	KindTemp
	KindString
	KindBlock
)

func (k Kind) String() string {
	switch k {
	case KindDelimiter:
		return "delimiter"
	case KindIdentifier:
		return "identifier"
	case KindNumber:
		return "number"
	case KindKeyword:
		return "keyword"
	case KindTemp:
		return "temp"
	case KindString:
		return "string"
	case KindBlock:
		return "block"
	default:
		return "invalid"
	}
}

// Code is a token's internal representation: which keyword it names, or
// which relational operator it is. Relational codes live outside the
// ASCII range so the evaluator can scan for them with a plain byte test
// against a lexeme, the same way it scans for '+' or '*'.
type Code byte

const (
	codeNone Code = 0

	CodeARG Code = iota + 1
	CodeCHAR
	CodeINT
	CodeIF
	CodeELSE
	CodeFOR
	CodeDO
	CodeWHILE
	CodeRETURN
	CodeCONTINUE
	CodeBREAK
	CodeFINISHED
	CodeEND
)

const (
	// CodeLT..CodeNE encode relational operators; both bytes of a
	// two-character operator's lexeme equal this code.
	CodeLT Code = 0x81 + iota
	CodeLE
	CodeGT
	CodeGE
	CodeEQ
	CodeNE
)

var keywords = map[string]Code{
	"if":       CodeIF,
	"else":     CodeELSE,
	"for":      CodeFOR,
	"do":       CodeDO,
	"while":    CodeWHILE,
	"char":     CodeCHAR,
	"int":      CodeINT,
	"return":   CodeRETURN,
	"continue": CodeCONTINUE,
	"break":    CodeBREAK,
	"end":      CodeEND,
}

// Token is the lexer's unit of output: a kind, a lexeme, and an internal
// code distinguishing keywords and relational operators.
type Token struct {
	Kind Kind
	Text string
	Code Code
}

package token

import "testing"

func collect(src string) []Token {
	tz := New("t.hlsl", src)
	var out []Token
	for {
		tok := tz.Token()
		out = append(out, tok)
		if tok.Kind == EOF {
			return out
		}
		tz.Next()
	}
}

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func assertKinds(t *testing.T, src string, want ...Kind) {
	got := kinds(collect(src))
	if len(got) != len(want) {
		t.Fatalf("tokenize(%q) = %v, want %v", src, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tokenize(%q)[%d] = %v, want %v (full: %v)", src, i, got[i], want[i], got)
		}
	}
}

func TestTokenizerPunctuationAndCompounds(t *testing.T) {
	assertKinds(t, "(){}[];,.:?",
		LeftParen, RightParen, LeftBrace, RightBrace, LeftBracket, RightBracket,
		Semicolon, Comma, Dot, Colon, Question, EOF)
}

func TestTokenizerCompoundOperators(t *testing.T) {
	assertKinds(t, "== != <= >= && || ++ -- += -= *= /=",
		EqualEqual, NotEqual, LessEqual, GreaterEqual, AndAnd, BarBar,
		PlusPlus, MinusMinus, PlusEqual, MinusEqual, TimesEqual, DivideEqual, EOF)
}

func TestTokenizerSingleCharFallback(t *testing.T) {
	assertKinds(t, "+ - * / < > = !", Plus, Minus, Times, Divide, Less, Greater, Equal, Bang, EOF)
}

func TestTokenizerKeywords(t *testing.T) {
	assertKinds(t, "float float3x3 struct cbuffer register if else for return discard break continue true false in out inout uniform static row_major column_major",
		KwFloat, KwFloat3x3, KwStruct, KwCBuffer, KwRegister, KwIf, KwElse, KwFor,
		KwReturn, KwDiscard, KwBreak, KwContinue, KwTrue, KwFalse, KwIn, KwOut, KwInOut,
		KwUniform, KwStatic, KwRowMajor, KwColumnMajor, EOF)
}

func TestTokenizerIdentifiers(t *testing.T) {
	toks := collect("_foo bar123 Baz_Qux")
	if len(toks) != 4 {
		t.Fatalf("got %d tokens, want 4 (3 idents + EOF)", len(toks))
	}
	for i, want := range []string{"_foo", "bar123", "Baz_Qux"} {
		if toks[i].Kind != Identifier || toks[i].Text != want {
			t.Fatalf("token %d = %+v, want identifier %q", i, toks[i], want)
		}
	}
}

func TestTokenizerIntegerLiterals(t *testing.T) {
	toks := collect("0 42 0x1F 7u")
	for i, want := range []string{"0", "42", "0x1F", "7u"} {
		if toks[i].Kind != IntLiteral || toks[i].Text != want {
			t.Fatalf("token %d = %+v, want int literal %q", i, toks[i], want)
		}
	}
}

func TestTokenizerFloatLiterals(t *testing.T) {
	toks := collect("1.0 .5 2. 3e10 1.5e-3f 2h")
	for i, want := range []string{"1.0", ".5", "2.", "3e10", "1.5e-3f", "2h"} {
		if toks[i].Kind != FloatLiteral || toks[i].Text != want {
			t.Fatalf("token %d = %+v, want float literal %q", i, toks[i], want)
		}
	}
}

func TestTokenizerSkipsLineAndBlockComments(t *testing.T) {
	assertKinds(t, "float // a comment\n int /* block\nspan */ bool", KwFloat, KwInt, KwBool, EOF)
}

func TestTokenizerTracksLineNumbers(t *testing.T) {
	toks := collect("float\n\nint")
	if toks[0].Line != 1 {
		t.Fatalf("first token line = %d, want 1", toks[0].Line)
	}
	if toks[1].Line != 3 {
		t.Fatalf("second token line = %d, want 3", toks[1].Line)
	}
}

func TestTokenizerLatchesToEOFAfterError(t *testing.T) {
	tz := New("bad.hlsl", "float @ int")
	if tz.Token().Kind != KwFloat {
		t.Fatalf("first token = %v, want KwFloat", tz.Token().Kind)
	}
	tz.Next()
	if tz.Token().Kind != EOF {
		t.Fatalf("token after '@' = %v, want EOF (lexical error)", tz.Token().Kind)
	}
	if tz.Err() == nil {
		t.Fatal("expected a lexical error to be recorded")
	}
	tz.Next()
	if tz.Token().Kind != EOF {
		t.Fatal("tokenizer should stay latched to EOF after the error")
	}
}

func TestTokenizerOneTokenLookaheadDoesNotConsume(t *testing.T) {
	tz := New("t.hlsl", "float bar")
	if tz.Token().Kind != KwFloat {
		t.Fatalf("Token() = %v, want KwFloat", tz.Token().Kind)
	}
	if tz.Token().Kind != KwFloat {
		t.Fatal("calling Token() twice should not advance the tokenizer")
	}
	tz.Next()
	if tz.Token().Kind != Identifier || tz.Token().Text != "bar" {
		t.Fatalf("after Next(), Token() = %+v, want identifier bar", tz.Token())
	}
}

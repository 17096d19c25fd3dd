package minic

// prescan implements §4.4: a single pass over the whole source,
// starting at position 0, registering every top-level function and
// global variable declaration before any user code executes. It
// restores the cursor to where it was before the pass when done.
func (ip *Interp) prescan() {
	saved := ip.prog
	ip.prog = 0

	depth := 0
	for {
		ip.advance()
		if ip.tok.Code == CodeFINISHED {
			if depth > 0 {
				ip.fail(ErrUnbalBraces)
			}
			break
		}

		if depth > 0 {
			if ip.tok.Kind == KindBlock && ip.tok.Text == "{" {
				depth++
			} else if ip.tok.Kind == KindBlock && ip.tok.Text == "}" {
				depth--
			}
			continue
		}

		if ip.tok.Code != CodeINT && ip.tok.Code != CodeCHAR {
			continue
		}
		var typ VarType
		if ip.tok.Code == CodeINT {
			typ = TypeInt
		} else {
			typ = TypeChar
		}
		declStart := ip.prog - len(ip.tok.Text)

		ip.advance()
		if ip.tok.Kind != KindIdentifier {
			ip.fail(ErrSyntax)
		}
		name := ip.tok.Text

		ip.advance()
		if ip.tok.Text == "(" {
			ip.pushback() // leave cursor at '(' — the function's entry
			ip.registerFunc(name, typ, ip.prog)
			ip.skipMatchedParenAtTopLevel()

			ip.advance()
			if ip.tok.Kind != KindBlock || ip.tok.Text != "{" {
				ip.fail(ErrSyntax)
			}
			depth = 1
			continue
		}

		// not a function: rewind to the start of the declaration and
		// process it as a global.
		ip.prog = declStart
		ip.declGlobal()
	}

	ip.prog = saved
}

// skipMatchedParenAtTopLevel skips from a function's opening '(' to
// just past its matching ')'.
func (ip *Interp) skipMatchedParenAtTopLevel() {
	ip.advance()
	if ip.tok.Text != "(" {
		ip.fail(ErrParenExpected)
	}
	depth := 1
	for depth > 0 {
		ip.advance()
		switch {
		case ip.tok.Code == CodeFINISHED:
			ip.fail(ErrUnbalParens)
		case ip.tok.Text == "(":
			depth++
		case ip.tok.Text == ")":
			depth--
		}
	}
}

// declGlobal registers a comma-separated list of int/char globals,
// each initialized to 0, terminated by ';'.
func (ip *Interp) declGlobal() {
	ip.advance()
	var typ VarType
	switch ip.tok.Code {
	case CodeINT:
		typ = TypeInt
	case CodeCHAR:
		typ = TypeChar
	default:
		ip.fail(ErrTypeExpected)
	}

	for {
		ip.advance()
		if ip.tok.Kind != KindIdentifier {
			ip.fail(ErrSyntax)
		}
		ip.growGlobal(ip.tok.Text, typ)

		ip.advance()
		if ip.tok.Text == ";" {
			return
		}
		if ip.tok.Text != "," {
			ip.fail(ErrSemiExpected)
		}
	}
}

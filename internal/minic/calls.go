package minic

// call implements the function call protocol of §4.6: evaluate the
// argument list, push the values onto the local stack in reverse so
// parameter i can be bound by decrementing from lvartos-1, save the
// call frame and return cursor, jump to the function's entry, bind
// parameters, interpret the body, then restore.
func (ip *Interp) call(fn *function) int {
	args := ip.evalArgs()

	if ip.functos >= ip.limits.FuncCalls {
		ip.fail(ErrNestFunc)
	}

	for i := len(args) - 1; i >= 0; i-- {
		ip.pushLocal("", TypeArg, args[i])
	}

	returnPos := ip.prog
	ip.callStack = append(ip.callStack[:ip.functos], ip.lvartos-len(args))
	ip.functos++

	ip.prog = fn.Entry
	ip.retOccurring = false
	ip.logf(">", "call %s @%d", fn.Name, fn.Entry)

	ip.bindParams(len(args))
	ip.interpretBlock()

	ip.retOccurring = false
	ip.prog = returnPos
	ip.functos--
	ip.lvartos = ip.callStack[ip.functos]
	ip.logf("<", "return %s = %d", fn.Name, ip.retValue)

	return ip.retValue
}

// evalArgs parses a call's comma-separated argument list at the call
// site into a temporary buffer of values. The identifier naming the
// function has already been consumed; the cursor sits at '('.
func (ip *Interp) evalArgs() []int {
	ip.advance()
	if ip.tok.Text != "(" {
		ip.fail(ErrParenExpected)
	}

	ip.advance()
	if ip.tok.Text == ")" {
		return nil
	}
	ip.pushback()

	var args []int
	for {
		args = append(args, ip.evalAssign())
		ip.advance()
		if ip.tok.Text == ")" {
			break
		}
		if ip.tok.Text != "," {
			ip.fail(ErrParamErr)
		}
	}
	return args
}

// bindParams lexes the called function's parameter list and, for each
// declared parameter, renames the corresponding already-pushed local to
// the declared name and updates its type. Arguments were pushed in
// reverse, so the first declared parameter binds to the topmost slot,
// not the one at the frame floor: slot index is floor+nargs-1-idx.
// nargs is how many ARG slots evalArgs pushed.
func (ip *Interp) bindParams(nargs int) {
	ip.advance()
	if ip.tok.Text != "(" {
		ip.fail(ErrParenExpected)
	}

	floor := ip.frameFloor()
	idx := 0

	ip.advance()
	if ip.tok.Text != ")" {
		ip.pushback()
		for {
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

			ip.advance()
			if ip.tok.Kind != KindIdentifier {
				ip.fail(ErrParamErr)
			}
			if idx >= nargs {
				ip.fail(ErrParamErr)
			}
			slot := floor + nargs - 1 - idx
			ip.locals[slot].Name = ip.tok.Text
			ip.locals[slot].Type = typ
			idx++

			ip.advance()
			if ip.tok.Text == ")" {
				break
			}
			if ip.tok.Text != "," {
				ip.fail(ErrParamErr)
			}
		}
	}
}

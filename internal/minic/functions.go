package minic

// findFunc performs a linear scan of the function table, as §4.3
// specifies. Returns nil if no function with that name was registered
// by prescan.
func (ip *Interp) findFunc(name string) *function {
	for i := range ip.funcs {
		if ip.funcs[i].Name == name {
			return &ip.funcs[i]
		}
	}
	return nil
}

func (ip *Interp) registerFunc(name string, retType VarType, entry int) {
	if len(ip.funcs) >= ip.limits.NumFunc {
		ip.fail(ErrTooManyLvars)
	}
	ip.funcs = append(ip.funcs, function{Name: name, RetType: retType, Entry: entry})
}

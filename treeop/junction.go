package treeop

// And holds when every given condition holds, evaluated left to right
// with a short circuit on the first failure. With no conditions it
// holds vacuously. Conjunction arguments flatten into the result, so
// And(And(a, b), c) and And(a, And(b, c)) build the same condition
// rather than wrappers of wrappers.
func And(conds ...Condition) Condition {
	res := make(conjunction, 0, len(conds))
	for _, c := range conds {
		if same, ok := c.(conjunction); ok {
			res = append(res, same...)
			continue
		}
		res = append(res, c)
	}
	return res
}

type conjunction []Condition

func (cs conjunction) Holds(ctx Context) bool {
	for _, c := range cs {
		if !c.Holds(ctx) {
			return false
		}
	}
	return true
}

// Or holds when any given condition holds, evaluated left to right
// with a short circuit on the first success. With no conditions it
// never holds. Disjunction arguments flatten the same way And
// flattens conjunctions.
func Or(conds ...Condition) Condition {
	res := make(disjunction, 0, len(conds))
	for _, c := range conds {
		if same, ok := c.(disjunction); ok {
			res = append(res, same...)
			continue
		}
		res = append(res, c)
	}
	return res
}

type disjunction []Condition

func (cs disjunction) Holds(ctx Context) bool {
	for _, c := range cs {
		if c.Holds(ctx) {
			return true
		}
	}
	return false
}

/*
Package sat decides satisfiability and validity of expressions with free
variables using the gophersat SAT solver.

A truth table needs 2^k rows for k variables and is capped accordingly.
The solver has no such cap. An expression is encoded once into clauses,
one fresh variable per binary connective, and the solver is asked for a
model of it and a model of its negation.

	res, err := sat.Solve("(A → B) ∧ A ∧ ¬B")
	if err != nil {
		return err
	}
	fmt.Println(res.Satisfiable, res.Classification()) // false contradiction

Every model is checked by the calculator before it is returned.
*/
package sat

/*
Package canonical derives truth tables and normal forms from expressions
with free variables.

Variables are single uppercase letters. T and F are shorthand for true and
false and never count as variables. Every assignment is substituted into the
expression text, which is then evaluated by the calculator, so the accepted
grammar is exactly the core grammar plus variables:

	table, err := canonical.BuildTable("((A ∧ B) → C) ↔ A")
	if err != nil {
		return err
	}
	canonical.Render(os.Stdout, table)
	fmt.Println("DNF:", canonical.DNF(table))
	fmt.Println("CNF:", canonical.CNF(table))
*/
package canonical

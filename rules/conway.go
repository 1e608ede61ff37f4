package rules

/*
ApplyConwayRules determines the next state of a cell from its current state
and the number of populated neighbours.

A populated cell with fewer than two neighbours dies of solitude, with four
or more it dies of overpopulation, and with two or three it survives. An
empty cell with exactly three neighbours becomes populated. That reduces to:
(alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
